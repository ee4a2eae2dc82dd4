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

	"pdflayout.dev/pdf/geom"
)

func box(x0, y0, x1, y1 float64) *LTTextBox {
	return &LTTextBox{Rect: geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}}
}

func TestGroupBoxesMergesIntoOneTreeWhenNothingBlocks(t *testing.T) {
	boxes := []*LTTextBox{
		box(0, 0, 10, 10),
		box(20, 0, 30, 10),
		box(0, 100, 10, 110),
	}
	tops := GroupBoxes(boxes)
	if len(tops) == 0 {
		t.Fatal("GroupBoxes returned no top-level groups")
	}
	// nothing else on the page blocks any pairwise merge, so isany never
	// fails and the whole page collapses to a single tree.
	if len(tops) != 1 {
		t.Fatalf("len(tops) = %d, want 1 (no blocking elements)", len(tops))
	}
}

func TestGroupBoxesIsAnyBlocksCrossingMerge(t *testing.T) {
	// a and c are the closest pair (distance 300-100-100 = 100), but the
	// tall box b crosses their union bbox, so isany blocks that merge; the
	// next pair, a with b (distance 1800-100-600 = 1100, tied with b/c and
	// first by id), is unblocked and merges first, then c joins.
	a := box(0, 0, 10, 10)
	b := box(12, -50, 18, 50)
	c := box(20, 0, 30, 10)
	tops := GroupBoxes([]*LTTextBox{a, b, c})
	if len(tops) < 1 {
		t.Fatal("GroupBoxes returned nothing")
	}
	root, ok := tops[0].(*LTTextGroup)
	if !ok || len(tops) != 1 || len(root.Children) != 2 {
		t.Fatalf("GroupBoxes = %v, want one two-child root group", tops)
	}
	first, ok := root.Children[0].(*LTTextGroup)
	if !ok || len(first.Children) != 2 || first.Children[0] != Component(a) || first.Children[1] != Component(b) {
		t.Errorf("first merge = %v, want a with b (a/c blocked by isany)", root.Children[0])
	}
}

func TestOrderTreeAssignsDepthFirstIndices(t *testing.T) {
	boxes := []*LTTextBox{
		box(0, 90, 50, 100), // top line
		box(0, 0, 50, 10),   // bottom line
	}
	tops := GroupBoxes(boxes)
	ordered := OrderTree(tops, 0.5)
	if len(ordered) != 2 {
		t.Fatalf("len(ordered) = %d, want 2", len(ordered))
	}
	// top-to-bottom reading order: the higher box (larger y) should be
	// read first for a purely vertical stack with boxes_flow=0.5.
	if ordered[0].Index != 0 || ordered[1].Index != 1 {
		t.Errorf("indices not assigned 0,1 in order: %v", []int{ordered[0].Index, ordered[1].Index})
	}
	if ordered[0].Rect.Y0 < ordered[1].Rect.Y0 {
		t.Errorf("expected the upper box to be read first, got order %+v then %+v", ordered[0].Rect, ordered[1].Rect)
	}
}

func TestOrderWithoutFlowSortsTopToBottom(t *testing.T) {
	boxes := []*LTTextBox{
		box(0, 0, 50, 10),
		box(0, 90, 50, 100),
	}
	ordered := OrderWithoutFlow(boxes)
	if ordered[0].Rect.Y0 != 90 {
		t.Errorf("expected upper box first, got %+v", ordered[0].Rect)
	}
	if ordered[0].Index != 0 || ordered[1].Index != 1 {
		t.Errorf("indices not assigned 0,1 in order")
	}
}
