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

package roster

import (
	"strings"

	"github.com/go-andiamo/splitter"
)

var listSplitter = mustSplitter(',')

func mustSplitter(separator rune) splitter.Splitter {
	s, err := splitter.NewSplitter(separator, splitter.DoubleQuotes)
	if err != nil {
		panic(err)
	}

	return s
}

// ParseList splits user input like `1, 2, 17, 18` or `"Smith, J", Lee` into
// its entries. Quotes keep a separator inside an entry; empty entries are
// dropped.
func ParseList(input string) ([]string, error) {
	parts, err := listSplitter.Split(input)
	if err != nil {
		return nil, err
	}

	var entries []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) >= 2 && strings.HasPrefix(part, `"`) && strings.HasSuffix(part, `"`) {
			part = strings.TrimSpace(part[1 : len(part)-1])
		}

		if part != "" {
			entries = append(entries, part)
		}
	}

	return entries, nil
}
