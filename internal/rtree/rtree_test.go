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

package rtree

import (
	"sort"
	"testing"

	"pdflayout.dev/pdf/geom"
)

func box(x0, y0, x1, y1 float64) geom.Rect {
	return geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func TestFindStrictIntersection(t *testing.T) {
	p := New()
	p.Extend([]geom.Rect{
		box(0, 0, 10, 10),
		box(10, 0, 20, 10), // touches the first only at the edge x=10
		box(5, 5, 15, 15),
	})

	got := p.Find(box(0, 0, 10, 10))
	sort.Ints(got)
	want := []int{0, 2}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

func TestFindAfterDynamicInsert(t *testing.T) {
	p := New()
	p.Extend([]geom.Rect{box(0, 0, 1, 1)})
	id := p.Add(box(100, 100, 101, 101))

	got := p.Find(box(99, 99, 102, 102))
	if len(got) != 1 || got[0] != id {
		t.Errorf("Find after Add = %v, want [%d]", got, id)
	}
}

func TestRemoveByIDTombstones(t *testing.T) {
	p := New()
	p.Extend([]geom.Rect{box(0, 0, 10, 10)})
	p.RemoveByID(0)
	if got := p.Find(box(0, 0, 10, 10)); len(got) != 0 {
		t.Errorf("Find after RemoveByID = %v, want empty", got)
	}
}

func TestInsertionIndicesAreStable(t *testing.T) {
	p := New()
	ids := p.Extend([]geom.Rect{box(0, 0, 1, 1), box(2, 2, 3, 3)})
	if ids[0] != 0 || ids[1] != 1 {
		t.Fatalf("Extend ids = %v, want [0 1]", ids)
	}
	id := p.Add(box(5, 5, 6, 6))
	if id != 2 {
		t.Errorf("Add id = %d, want 2", id)
	}
}

func TestNeighborsNearestFirst(t *testing.T) {
	p := New()
	p.Extend([]geom.Rect{
		box(10, 10, 11, 11),
		box(0, 0, 1, 1),
		box(5, 5, 6, 6),
	})
	got := p.Neighbors(geom.Point{X: 0, Y: 0}, 2)
	if len(got) != 2 || got[0] != 1 {
		t.Errorf("Neighbors = %v, want nearest-first starting with item 1", got)
	}
}

func TestBulkLoadManyItems(t *testing.T) {
	p := New()
	var boxes []geom.Rect
	for i := 0; i < 200; i++ {
		x := float64(i % 20)
		y := float64(i / 20)
		boxes = append(boxes, box(x, y, x+0.5, y+0.5))
	}
	p.Extend(boxes)
	got := p.Find(box(0, 0, 0.5, 0.5))
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Find in bulk-loaded tree = %v, want [0]", got)
	}
}
