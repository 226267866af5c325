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

package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"laptudirm.com/x/courtside/pkg/schedule"
)

// Page layout, in points.
const (
	margin      = 50.0
	headingGap  = 30.0
	lineHeight  = 20.0
	headingLeft = 100.0
	lineLeft    = 50.0
)

// PDF writes the round as a Letter sized document. The first page starts
// with the round's heading, and every match gets a line of its own.
func PDF(w io.Writer, number int, round schedule.Round) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	_, height := pdf.GetPageSize()

	for i, page := range paginate(len(round), height) {
		pdf.AddPage()
		y := margin

		if i == 0 {
			pdf.SetFont("Helvetica", "B", 16)
			pdf.Text(headingLeft, y, translate(fmt.Sprintf("Tennis Schedule - %s", Heading(number))))
			y += headingGap
		}

		pdf.SetFont("Helvetica", "", 12)
		for _, match := range round[page[0]:page[1]] {
			pdf.Text(lineLeft, y, translate(match.String()))
			y += lineHeight
		}
	}

	return pdf.Output(w)
}

// paginate splits n lines into pages of the given height. Every page is a
// [start, end) range of line indices; there is always at least one page,
// which holds the heading.
func paginate(n int, height float64) [][2]int {
	var pages [][2]int

	start, y := 0, margin+headingGap
	for i := 0; i < n; i++ {
		if y > height-margin {
			pages = append(pages, [2]int{start, i})
			start, y = i, margin
		}

		y += lineHeight
	}

	return append(pages, [2]int{start, n})
}
