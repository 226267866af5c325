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
	"errors"
	"fmt"
	"strings"
)

// Kind tags the variant of a Match.
type Kind int

const (
	KindSingles Kind = iota
	KindDoubles
	KindAmericanDoubles
	KindRest
	KindOverflow
)

// ParseKind parses the name of a match kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "singles":
		return KindSingles, nil
	case "doubles":
		return KindDoubles, nil
	case "american doubles", "american-doubles", "rotate":
		return KindAmericanDoubles, nil
	case "rest":
		return KindRest, nil
	case "overflow":
		return KindOverflow, nil
	default:
		return 0, fmt.Errorf("parse kind: invalid match kind %s", name)
	}
}

func (kind Kind) String() string {
	switch kind {
	case KindSingles:
		return "Singles"
	case KindDoubles:
		return "Doubles"
	case KindAmericanDoubles:
		return "American Doubles"
	case KindRest:
		return "Rest"
	case KindOverflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// Plays reports whether matches of the kind are actually played, and so
// are recorded in the pairing history.
func (kind Kind) Plays() bool {
	switch kind {
	case KindSingles, KindDoubles, KindAmericanDoubles:
		return true
	default:
		return false
	}
}

func (kind Kind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

func (kind *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*kind = parsed
	return nil
}

var ErrInvalidMatch = errors.New("schedule: invalid match")

// Match is a group of players formed by the allocator. The Kind decides how
// the Players are to be read:
//
//	Singles          - Players[0] vs Players[1]
//	Doubles          - Players[0] & Players[1] vs Players[2] & Players[3]
//	American Doubles - the leftover followed by the rotating partners
//	Rest, Overflow   - players sitting out, no court assigned
//
// An American Doubles group formed by the session allocator rotates onto the
// courts already in play and has no Court of its own.
type Match struct {
	Court   string   `yaml:"court,omitempty"`
	Kind    Kind     `yaml:"kind"`
	Players []string `yaml:"players"`
}

// Teams returns the two teams of a Doubles match.
func (match Match) Teams() (team1, team2 [2]string, ok bool) {
	if match.Kind != KindDoubles || len(match.Players) != 4 {
		return team1, team2, false
	}

	team1 = [2]string{match.Players[0], match.Players[1]}
	team2 = [2]string{match.Players[2], match.Players[3]}
	return team1, team2, true
}

// Slot returns the label the match is displayed under: its court if it has
// one, or a synthetic label for court-less groups.
func (match Match) Slot() string {
	if match.Court != "" {
		return match.Court
	}

	switch match.Kind {
	case KindAmericanDoubles:
		return "Rotate"
	default:
		return match.Kind.String()
	}
}

// Validate checks that the number of participants agrees with the Kind.
func (match Match) Validate() error {
	n := len(match.Players)

	var ok bool
	switch match.Kind {
	case KindSingles:
		ok = n == 2
	case KindDoubles:
		ok = n == 4
	case KindAmericanDoubles:
		ok = n == 3 || n == 4
	case KindRest, KindOverflow:
		ok = n >= 1 && n <= 3
	}

	if !ok {
		return fmt.Errorf("%w: %s with %d players", ErrInvalidMatch, match.Kind, n)
	}

	return nil
}

func (match Match) String() string {
	return fmt.Sprintf("Court %s: %s", match.Slot(), strings.Join(match.Players, " vs. "))
}

// Round is the ordered list of matches produced by a single allocation.
type Round []Match

// Players returns every player appearing in the round, in match order.
func (round Round) Players() []string {
	var players []string
	for _, match := range round {
		players = append(players, match.Players...)
	}

	return players
}

// Result is the output of a single allocation.
type Result struct {
	Round Round

	// Leftovers are the players that were not placed in a main match.
	Leftovers []string

	// Warnings are non-fatal conditions found while allocating.
	Warnings []error
}
