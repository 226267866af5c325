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

package util

import (
	"regexp"
	"sort"
	"strconv"
)

var chunkRegexp = regexp.MustCompile(`(\d+|\D+)`)

// AlphanumLess reports whether a precedes b in natural order, where runs of
// digits are compared by their numeric value: "Court 2" < "Court 10".
func AlphanumLess(a, b string) bool {
	chunksA := chunkRegexp.FindAllString(a, -1)
	chunksB := chunkRegexp.FindAllString(b, -1)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		x, y := chunksA[i], chunksB[i]
		if x == y {
			continue
		}

		xInt, xErr := strconv.Atoi(x)
		yInt, yErr := strconv.Atoi(y)
		if xErr == nil && yErr == nil && xInt != yInt {
			return xInt < yInt
		}

		return x < y
	}

	// one is a prefix of the other
	return len(chunksA) < len(chunksB)
}

// SortAlphanum sorts the given strings in natural order.
func SortAlphanum(list []string) {
	sort.SliceStable(list, func(i, j int) bool {
		return AlphanumLess(list[i], list[j])
	})
}
