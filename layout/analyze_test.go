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
	"testing"

	"pdflayout.dev/pdf/arena"
	"pdflayout.dev/pdf/geom"
)

func TestAnalyzeProducesTwoLinesReadTopToBottom(t *testing.T) {
	a := arena.New()
	put := func(x0, y0, x1, y1 float64, text string) {
		a.NewChar(arena.ArenaChar{
			BBox:    geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1},
			TextKey: a.Intern(text),
			FontKey: a.Intern("F1"),
			Size:    10,
		})
	}
	// "Top" on its own line near the top of the page.
	put(0, 700, 20, 710, "T")
	put(20, 700, 40, 710, "o")
	put(40, 700, 60, 710, "p")
	// "Bot" far below, its own line.
	put(0, 100, 20, 110, "B")
	put(20, 100, 40, 110, "o")
	put(40, 100, 60, 110, "t")

	page := a.Finish(1, geom.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}, 0)

	result := Analyze(a, page, DefaultLAParams())
	if len(result.TextBoxes) != 2 {
		t.Fatalf("len(TextBoxes) = %d, want 2", len(result.TextBoxes))
	}
	if result.TextBoxes[0].Text() != "Top\n" {
		t.Errorf("TextBoxes[0].Text() = %q, want %q", result.TextBoxes[0].Text(), "Top\n")
	}
	if result.TextBoxes[1].Text() != "Bot\n" {
		t.Errorf("TextBoxes[1].Text() = %q, want %q", result.TextBoxes[1].Text(), "Bot\n")
	}
	if result.TextBoxes[0].Index != 0 || result.TextBoxes[1].Index != 1 {
		t.Errorf("indices not in reading order")
	}
}
