// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schedule

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// RecentSet is the set of players most recently drawn into an American
// Doubles rotation.
type RecentSet struct {
	players map[string]struct{}
}

func NewRecentSet() *RecentSet {
	return &RecentSet{players: make(map[string]struct{})}
}

// Replace replaces the contents of the set with the given players.
func (set *RecentSet) Replace(players ...string) {
	set.players = make(map[string]struct{}, len(players))
	for _, player := range players {
		set.players[player] = struct{}{}
	}
}

func (set *RecentSet) Contains(player string) bool {
	_, found := set.players[player]
	return found
}

func (set *RecentSet) Len() int {
	return len(set.players)
}

func (set *RecentSet) Clear() {
	set.players = make(map[string]struct{})
}

// Players returns the members of the set in sorted order.
func (set *RecentSet) Players() []string {
	players := make([]string, 0, len(set.players))
	for player := range set.players {
		players = append(players, player)
	}

	sort.Strings(players)
	return players
}

func (set RecentSet) MarshalYAML() (any, error) {
	return set.Players(), nil
}

func (set *RecentSet) UnmarshalYAML(value *yaml.Node) error {
	var players []string
	if err := value.Decode(&players); err != nil {
		return err
	}

	set.Replace(players...)
	return nil
}
