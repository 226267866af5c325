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
	"math/rand"
	"time"
)

// Random is the source of randomness used by the allocator. *rand.Rand
// satisfies it.
type Random interface {
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a non-deterministic Random.
func NewRandom() Random {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func shuffled(random Random, players []string) []string {
	pool := make([]string, len(players))
	copy(pool, players)

	random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool
}

// sample picks n players out of the given ones without replacement.
func sample(random Random, players []string, n int) []string {
	return shuffled(random, players)[:n]
}
