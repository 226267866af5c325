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

// Package roster manages the lists of players and courts that rounds are
// scheduled from.
package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"

	courtside "laptudirm.com/x/courtside/pkg/common"
	"laptudirm.com/x/courtside/pkg/internal/util"
)

var (
	ErrDuplicateEntry = errors.New("already exists")
	ErrNotFound       = errors.New("not found")
	ErrEmptyEntry     = errors.New("empty name")
)

// Roster is the list of players and courts available to a session. Every
// entry is unique within its list.
type Roster struct {
	Players []string `yaml:"players"`
	Courts  []string `yaml:"courts"`
}

// AddPlayer adds a new player to the roster.
func (roster *Roster) AddPlayer(name string) error {
	return add(&roster.Players, "player", name)
}

// RemovePlayer removes the given player from the roster.
func (roster *Roster) RemovePlayer(name string) error {
	return remove(&roster.Players, "player", name)
}

// AddCourt adds a new court to the roster.
func (roster *Roster) AddCourt(label string) error {
	return add(&roster.Courts, "court", label)
}

// RemoveCourt removes the given court from the roster.
func (roster *Roster) RemoveCourt(label string) error {
	return remove(&roster.Courts, "court", label)
}

func (roster *Roster) ResetPlayers() {
	roster.Players = nil
}

func (roster *Roster) ResetCourts() {
	roster.Courts = nil
}

// SortedCourts returns the courts in natural order, without changing the
// order they are allocated in.
func (roster *Roster) SortedCourts() []string {
	courts := make([]string, len(roster.Courts))
	copy(courts, roster.Courts)
	util.SortAlphanum(courts)
	return courts
}

func add(list *[]string, kind, entry string) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return fmt.Errorf("add %s: %w", kind, ErrEmptyEntry)
	}

	for _, existing := range *list {
		if existing == entry {
			return fmt.Errorf("%s %s %w", kind, entry, ErrDuplicateEntry)
		}
	}

	*list = append(*list, entry)
	return nil
}

func remove(list *[]string, kind, entry string) error {
	entry = strings.TrimSpace(entry)
	for i, existing := range *list {
		if existing == entry {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			return nil
		}
	}

	if suggestion, found := Suggest(entry, *list); found {
		return fmt.Errorf("%s %s %w, did you mean %s?", kind, entry, ErrNotFound, suggestion)
	}

	return fmt.Errorf("%s %s %w", kind, entry, ErrNotFound)
}

// Suggest returns the entry of the list closest to the given name.
func Suggest(name string, list []string) (string, bool) {
	matches := fuzzy.RankFindFold(name, list)
	if len(matches) == 0 {
		// try the other way around, for names longer than the entry
		for _, entry := range list {
			if fuzzy.MatchFold(entry, name) {
				return entry, true
			}
		}

		return "", false
	}

	sort.Sort(matches)
	return matches[0].Target, true
}

// Load reads the roster stored at the given path. A missing file is an
// empty roster.
func Load(path string) (*Roster, error) {
	var roster Roster

	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &roster, nil
	} else if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(file, &roster); err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	return &roster, nil
}

// Dump writes the roster to the given path.
func (roster *Roster) Dump(path string) error {
	file, err := yaml.Marshal(roster)
	if err != nil {
		return err
	}

	return os.WriteFile(path, file, courtside.FilePermissions)
}
