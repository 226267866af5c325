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
)

// MinPlayers is the least number of players a round can be generated for.
const MinPlayers = 2

var (
	// ErrInsufficientCourts is reported as a warning when there are fewer
	// courts than the matches needed to use every player.
	ErrInsufficientCourts = errors.New("not enough courts for the number of players")

	// ErrInsufficientPlayers rejects a round with too few players.
	ErrInsufficientPlayers = errors.New("not enough players")

	// ErrNoCourts rejects a round when no courts are configured.
	ErrNoCourts = errors.New("no courts configured")
)

// Validate checks that a round can be generated for the given players and
// courts. It does not check for the conditions allocation only warns about.
func Validate(players, courts []string) error {
	if len(players) < MinPlayers {
		return fmt.Errorf("%w: need at least %d, have %d", ErrInsufficientPlayers, MinPlayers, len(players))
	}

	if len(courts) == 0 {
		return ErrNoCourts
	}

	return nil
}

func insufficientCourts(courts, needed int) error {
	return fmt.Errorf("%w: %d courts for %d matches", ErrInsufficientCourts, courts, needed)
}
