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

package spatial

import (
	"testing"

	"pdflayout.dev/pdf/geom"
)

type rectBox struct {
	r        geom.Rect
	vertical bool
}

func (b rectBox) Bbox() geom.Rect  { return b.r }
func (b rectBox) IsVertical() bool { return b.vertical }

func TestGroupAlignedStacksLeftAlignedLines(t *testing.T) {
	boxes := []Box{
		rectBox{r: geom.Rect{X0: 0, Y0: 100, X1: 50, Y1: 110}},
		rectBox{r: geom.Rect{X0: 0, Y0: 86, X1: 40, Y1: 96}},
		rectBox{r: geom.Rect{X0: 500, Y0: 500, X1: 540, Y1: 510}},
	}
	groups := GroupAligned(boxes, 0.5)
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if len(groups[0]) != 2 || groups[0][0] != 0 || groups[0][1] != 1 {
		t.Errorf("groups[0] = %v, want [0 1]", groups[0])
	}
	if len(groups[1]) != 1 || groups[1][0] != 2 {
		t.Errorf("groups[1] = %v, want [2]", groups[1])
	}
}

func TestGroupAlignedKeepsUnalignedLinesSeparate(t *testing.T) {
	boxes := []Box{
		rectBox{r: geom.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}},
		rectBox{r: geom.Rect{X0: 1000, Y0: 1000, X1: 1010, Y1: 1010}},
	}
	groups := GroupAligned(boxes, 0.5)
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
}
