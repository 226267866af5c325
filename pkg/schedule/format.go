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
	"fmt"
	"strings"
)

// Format is the format of the main matches of a round.
type Format int

const (
	Singles Format = iota
	Doubles
)

// ParseFormat parses the name of a match format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "singles":
		return Singles, nil
	case "doubles", "":
		return Doubles, nil
	default:
		return 0, fmt.Errorf("parse format: invalid format %s", name)
	}
}

// GroupSize returns the number of players in a main match of the format.
func (format Format) GroupSize() int {
	if format == Singles {
		return 2
	}

	return 4
}

// Kind returns the kind of the main matches of the format.
func (format Format) Kind() Kind {
	if format == Singles {
		return KindSingles
	}

	return KindDoubles
}

func (format Format) String() string {
	switch format {
	case Singles:
		return "singles"
	case Doubles:
		return "doubles"
	default:
		return "unknown"
	}
}

func (format Format) MarshalText() ([]byte, error) {
	return []byte(format.String()), nil
}

func (format *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*format = parsed
	return nil
}

// Policy decides what happens to the players left over after the main
// matches of a round have been filled.
type Policy int

const (
	Rest Policy = iota
	AmericanDoubles
)

// ParsePolicy parses the name of a leftover policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rest", "":
		return Rest, nil
	case "american-doubles", "american", "rotate":
		return AmericanDoubles, nil
	default:
		return 0, fmt.Errorf("parse policy: invalid leftover policy %s", name)
	}
}

func (policy Policy) String() string {
	switch policy {
	case Rest:
		return "rest"
	case AmericanDoubles:
		return "american-doubles"
	default:
		return "unknown"
	}
}

func (policy Policy) MarshalText() ([]byte, error) {
	return []byte(policy.String()), nil
}

func (policy *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}

	*policy = parsed
	return nil
}
