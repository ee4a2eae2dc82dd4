// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package layout

import (
	"strings"

	"pdflayout.dev/pdf/arena"
	"pdflayout.dev/pdf/geom"
)

// LTPage is the layout analyzer's output for one page: its text boxes in
// final reading order, plus the whitespace-only lines phase 1 routed
// into the empties bucket (kept around for callers that want them, e.g.
// to preserve blank-line spacing, but excluded from TextBoxes).
type LTPage struct {
	PageID    int
	BBox      geom.Rect
	Rotate    int
	TextBoxes []*LTTextBox
	Empties   []*LTTextLine
}

// Text concatenates every text box's text in reading order.
func (p *LTPage) Text() string {
	var b strings.Builder
	for _, box := range p.TextBoxes {
		b.WriteString(box.Text())
	}
	return b.String()
}

// Analyze runs all four phases over one page's rendered content:
// character→line, line→box, box→group (when params.DetectBoxesFlow),
// and the final reading-order assignment.
func Analyze(a *arena.Arena, page *arena.ArenaPage, params LAParams) *LTPage {
	chars := CharsFromArena(a, page.Items, params.AllTexts)
	lines, empties := GroupChars(chars, params)
	boxes := GroupLines(lines, params)

	var ordered []*LTTextBox
	if params.DetectBoxesFlow {
		tops := GroupBoxes(boxes)
		ordered = OrderTree(tops, params.BoxesFlow)
	} else {
		ordered = OrderWithoutFlow(boxes)
	}

	return &LTPage{
		PageID:    page.PageID,
		BBox:      page.BBox,
		Rotate:    page.Rotate,
		TextBoxes: ordered,
		Empties:   empties,
	}
}
