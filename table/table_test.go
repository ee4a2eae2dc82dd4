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

package table

import (
	"testing"

	"pdflayout.dev/pdf/arena"
	"pdflayout.dev/pdf/geom"
)

// TestFindTablesOnRuledGrid builds a page with a 2x2 ruled grid (three
// vertical and three horizontal lines) and one character per cell, and
// checks that one table with four cells comes out, each holding the
// right character.
func TestFindTablesOnRuledGrid(t *testing.T) {
	a := arena.New()

	const pageHeight = 792.0
	// mediabox frame (bottom-left origin): grid spans y in [pageHeight-20, pageHeight]
	top0, top1, top2 := pageHeight, pageHeight-10, pageHeight-20

	a.NewLine(arena.ArenaLine{P0: geom.Point{X: 0, Y: top0}, P1: geom.Point{X: 20, Y: top0}})
	a.NewLine(arena.ArenaLine{P0: geom.Point{X: 0, Y: top1}, P1: geom.Point{X: 20, Y: top1}})
	a.NewLine(arena.ArenaLine{P0: geom.Point{X: 0, Y: top2}, P1: geom.Point{X: 20, Y: top2}})
	a.NewLine(arena.ArenaLine{P0: geom.Point{X: 0, Y: top2}, P1: geom.Point{X: 0, Y: top0}})
	a.NewLine(arena.ArenaLine{P0: geom.Point{X: 10, Y: top2}, P1: geom.Point{X: 10, Y: top0}})
	a.NewLine(arena.ArenaLine{P0: geom.Point{X: 20, Y: top2}, P1: geom.Point{X: 20, Y: top0}})

	a.NewChar(arena.ArenaChar{BBox: geom.Rect{X0: 2, Y0: top1 + 2, X1: 8, Y1: top0 - 2}, TextKey: a.Intern("A")})
	a.NewChar(arena.ArenaChar{BBox: geom.Rect{X0: 12, Y0: top1 + 2, X1: 18, Y1: top0 - 2}, TextKey: a.Intern("B")})
	a.NewChar(arena.ArenaChar{BBox: geom.Rect{X0: 2, Y0: top2 + 2, X1: 8, Y1: top1 - 2}, TextKey: a.Intern("C")})
	a.NewChar(arena.ArenaChar{BBox: geom.Rect{X0: 12, Y0: top2 + 2, X1: 18, Y1: top1 - 2}, TextKey: a.Intern("D")})

	page := a.Finish(1, geom.Rect{X0: 0, Y0: 0, X1: 20, Y1: pageHeight}, 0)

	settings := DefaultSettings()
	settings.SnapXTolerance, settings.SnapYTolerance = 0.5, 0.5
	settings.JoinTolerance = 0.5
	settings.IntersectionXTolerance, settings.IntersectionYTolerance = 0.5, 0.5

	tables := FindTables(a, page, settings)
	if len(tables) != 1 {
		t.Fatalf("len(tables) = %d, want 1", len(tables))
	}
	tbl := tables[0]
	if len(tbl.Cells) != 4 {
		t.Fatalf("len(tbl.Cells) = %d, want 4", len(tbl.Cells))
	}

	got := make(map[string]bool)
	for _, text := range tbl.CellText {
		got[text] = true
	}
	for _, want := range []string{"A", "B", "C", "D"} {
		if !got[want] {
			t.Errorf("cell text %q missing from %v", want, tbl.CellText)
		}
	}
}
