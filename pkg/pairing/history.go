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

// Package pairing keeps track of how many times each pair of players has
// shared a match during a session.
package pairing

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Pair is the canonical key of an unordered pair of players. A is always
// lexicographically smaller than or equal to B.
type Pair struct {
	A, B string
}

// NewPair returns the canonical Pair for the two given players.
func NewPair(a, b string) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// PairCount is a single entry of a History snapshot.
type PairCount struct {
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Count int    `yaml:"count"`
}

// History is a symmetric counter of the number of matches shared by every
// pair of players. Since the keys are canonical, count(a, b) and count(b, a)
// are the same entry.
type History struct {
	counts map[Pair]int
}

// NewHistory creates a new empty History.
func NewHistory() *History {
	return &History{counts: make(map[Pair]int)}
}

// Record increments the shared count of every unordered pair of distinct
// players in the given list.
func (history *History) Record(players ...string) {
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			if players[i] == players[j] {
				continue
			}

			history.counts[NewPair(players[i], players[j])]++
		}
	}
}

// TimesPlayed returns how many times the two players have shared a match.
func (history *History) TimesPlayed(a, b string) int {
	return history.counts[NewPair(a, b)]
}

// Reset clears every count in the History.
func (history *History) Reset() {
	history.counts = make(map[Pair]int)
}

// Len returns the number of distinct pairs that have been recorded.
func (history *History) Len() int {
	return len(history.counts)
}

// Counts returns a snapshot of the History sorted by pair.
func (history *History) Counts() []PairCount {
	counts := make([]PairCount, 0, len(history.counts))
	for pair, count := range history.counts {
		counts = append(counts, PairCount{A: pair.A, B: pair.B, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].A != counts[j].A {
			return counts[i].A < counts[j].A
		}

		return counts[i].B < counts[j].B
	})

	return counts
}

// MarshalYAML encodes the History as a list of pair counts.
func (history History) MarshalYAML() (any, error) {
	return history.Counts(), nil
}

// UnmarshalYAML decodes a list of pair counts into the History.
func (history *History) UnmarshalYAML(value *yaml.Node) error {
	var counts []PairCount
	if err := value.Decode(&counts); err != nil {
		return err
	}

	history.counts = make(map[Pair]int, len(counts))
	for _, entry := range counts {
		if entry.Count <= 0 || entry.A == entry.B {
			continue
		}

		history.counts[NewPair(entry.A, entry.B)] += entry.Count
	}

	return nil
}
