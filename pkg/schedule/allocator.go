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

// Package schedule assigns players to courts for the rounds of a session.
package schedule

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/courtside/pkg/pairing"
)

// NewAllocator creates a history aware Allocator which records the formed
// matches in the given History.
func NewAllocator(history *pairing.History, recent *RecentSet) *Allocator {
	return &Allocator{
		History:      history,
		Recent:       recent,
		Random:       NewRandom(),
		HistoryAware: true,
	}
}

// Allocator assigns the players of a round to courts.
//
// A history aware Allocator records every played match in its History and
// keeps the players last drawn into American Doubles in Recent, so that they
// are not picked again immediately. Otherwise both are ignored and may be nil.
type Allocator struct {
	History *pairing.History
	Recent  *RecentSet
	Random  Random

	HistoryAware bool
}

// Allocate produces a single round for the given players and courts. The
// players are shuffled and then consumed in groups of the format's size, one
// group per court in the order the courts are listed. Players that could not
// be placed are resolved according to the leftover policy.
func (alloc *Allocator) Allocate(players, courts []string, format Format, policy Policy) Result {
	var result Result

	size := format.GroupSize()
	if needed := len(players) / size; len(courts) < needed {
		result.Warnings = append(result.Warnings, insufficientCourts(len(courts), needed))
	}

	pool := shuffled(alloc.random(), players)

	var used []string
	for court := 0; court < len(courts) && len(pool) >= size; court++ {
		match := Match{
			Court:   courts[court],
			Kind:    format.Kind(),
			Players: pool[:size:size],
		}
		pool = pool[size:]

		used = append(used, match.Players...)
		alloc.record(match)
		result.Round = append(result.Round, match)
	}

	result.Leftovers = pool
	if match, ok := alloc.resolve(pool, used, format, policy); ok {
		result.Round = append(result.Round, match)
	}

	logrus.WithFields(logrus.Fields{
		"format":    format,
		"policy":    policy,
		"matches":   len(result.Round),
		"leftovers": len(result.Leftovers),
	}).Debug("Allocated round")

	return result
}

// resolve decides what happens to the leftover players of a round. Only
// exact leftover counts have a resolution; leftovers of any other size sit
// out without a group of their own.
func (alloc *Allocator) resolve(leftovers, used []string, format Format, policy Policy) (Match, bool) {
	switch format {
	case Singles:
		if len(leftovers) != 1 {
			break
		}

		switch {
		case policy == Rest:
			return Match{Kind: KindRest, Players: leftovers}, true
		case len(used) >= 2:
			return alloc.rotate(leftovers, used, 2), true
		}

	case Doubles:
		switch len(leftovers) {
		case 2, 3:
			return Match{Kind: KindOverflow, Players: leftovers}, true
		case 1:
			switch {
			case policy == Rest:
				return Match{Kind: KindRest, Players: leftovers}, true
			case len(used) >= 3:
				return alloc.rotate(leftovers, used, 3), true
			}
		}
	}

	return Match{}, false
}

// rotate forms an American Doubles group out of the leftovers and n players
// already placed this round, preferring those who did not rotate last time.
func (alloc *Allocator) rotate(leftovers, used []string, n int) Match {
	candidates := used
	if alloc.HistoryAware && alloc.Recent != nil {
		fresh := make([]string, 0, len(used))
		for _, player := range used {
			if !alloc.Recent.Contains(player) {
				fresh = append(fresh, player)
			}
		}

		if len(fresh) >= n {
			candidates = fresh
		}
	}

	players := make([]string, 0, len(leftovers)+n)
	players = append(players, leftovers...)
	players = append(players, sample(alloc.random(), candidates, n)...)

	match := Match{Kind: KindAmericanDoubles, Players: players}
	alloc.record(match)

	if alloc.HistoryAware && alloc.Recent != nil {
		alloc.Recent.Replace(players...)
	}

	logrus.WithField("players", players).Debug("Rotating leftovers into American Doubles")
	return match
}

func (alloc *Allocator) record(match Match) {
	if alloc.HistoryAware && alloc.History != nil && match.Kind.Plays() {
		alloc.History.Record(match.Players...)
	}
}

func (alloc *Allocator) random() Random {
	if alloc.Random == nil {
		alloc.Random = NewRandom()
	}

	return alloc.Random
}
