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
	"github.com/sirupsen/logrus"
)

// Batch schedules rounds until every player has been placed in a match
// once. Each round is filled from the players not yet placed by earlier
// rounds. With the American Doubles policy, three leftovers take a court
// that is still free after the main matches.
//
// A round which places nobody ends the batch: the players still waiting are
// returned as a final round holding a single Rest group.
func (alloc *Allocator) Batch(players, courts []string, format Format, policy Policy) []Round {
	var rounds []Round

	size := format.GroupSize()
	pool := shuffled(alloc.random(), players)

	for len(pool) > 0 {
		var round Round

		court := 0
		for ; court < len(courts) && len(pool) >= size; court++ {
			match := Match{
				Court:   courts[court],
				Kind:    format.Kind(),
				Players: pool[:size:size],
			}
			pool = pool[size:]

			alloc.record(match)
			round = append(round, match)
		}

		if policy == AmericanDoubles && len(pool) >= 3 && court < len(courts) {
			match := Match{
				Court:   courts[court],
				Kind:    KindAmericanDoubles,
				Players: pool[:3:3],
			}
			pool = pool[3:]

			alloc.record(match)
			round = append(round, match)
		}

		if len(round) == 0 {
			rounds = append(rounds, Round{{Kind: KindRest, Players: pool}})
			break
		}

		rounds = append(rounds, round)
	}

	logrus.WithFields(logrus.Fields{
		"format": format,
		"policy": policy,
		"rounds": len(rounds),
	}).Debug("Scheduled batch")

	return rounds
}
