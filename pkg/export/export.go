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

// Package export renders rounds as text, CSV tables and PDF documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"laptudirm.com/x/courtside/pkg/schedule"
)

// Heading returns the heading line of the given round.
func Heading(number int) string {
	return fmt.Sprintf("Round %d", number)
}

// Text writes the round as a heading followed by one line per match.
func Text(w io.Writer, number int, round schedule.Round) error {
	if _, err := fmt.Fprintln(w, Heading(number)); err != nil {
		return err
	}

	for _, match := range round {
		if _, err := fmt.Fprintln(w, match); err != nil {
			return err
		}
	}

	return nil
}

// CSV writes the round as a table with a Court and a Players column.
func CSV(w io.Writer, round schedule.Round) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Court", "Players"}); err != nil {
		return err
	}

	for _, match := range round {
		if err := writer.Write([]string{match.Slot(), strings.Join(match.Players, ", ")}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
