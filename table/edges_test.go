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

func TestEdgesFromArenaClassifiesOrientationAndFlips(t *testing.T) {
	const mbHeight = 100.0
	items := []arena.ArenaItem{
		&arena.ArenaLine{P0: geom.Point{X: 0, Y: 90}, P1: geom.Point{X: 50, Y: 90}},
		&arena.ArenaLine{P0: geom.Point{X: 0, Y: 10}, P1: geom.Point{X: 0, Y: 90}},
	}
	edges := EdgesFromArena(items, mbHeight)
	if len(edges) != 2 {
		t.Fatalf("len(edges) = %d, want 2", len(edges))
	}

	h := edges[0]
	if h.Orientation != Horizontal {
		t.Errorf("edges[0].Orientation = %v, want Horizontal", h.Orientation)
	}
	if h.Top != mbHeight-90 || h.Bottom != h.Top {
		t.Errorf("edges[0].Top/Bottom = %v/%v, want %v/%v", h.Top, h.Bottom, mbHeight-90, mbHeight-90)
	}

	v := edges[1]
	if v.Orientation != Vertical {
		t.Errorf("edges[1].Orientation = %v, want Vertical", v.Orientation)
	}
	if v.Top != mbHeight-90 || v.Bottom != mbHeight-10 {
		t.Errorf("edges[1].Top/Bottom = %v/%v, want %v/%v", v.Top, v.Bottom, mbHeight-90, mbHeight-10)
	}
}

func TestEdgesFromArenaRectProducesFourEdges(t *testing.T) {
	items := []arena.ArenaItem{
		&arena.ArenaRect{BBox: geom.Rect{X0: 0, Y0: 0, X1: 10, Y1: 20}},
	}
	edges := EdgesFromArena(items, 20)
	if len(edges) != 4 {
		t.Fatalf("len(edges) = %d, want 4", len(edges))
	}
	var horiz, vert int
	for _, e := range edges {
		if e.Orientation == Horizontal {
			horiz++
		} else {
			vert++
		}
	}
	if horiz != 2 || vert != 2 {
		t.Errorf("horiz=%d vert=%d, want 2/2", horiz, vert)
	}
}

func TestSnapEdgesMergesNearbyCoordinates(t *testing.T) {
	edges := []Edge{
		{Orientation: Vertical, X0: 10, X1: 10, Top: 0, Bottom: 50},
		{Orientation: Vertical, X0: 10.5, X1: 10.5, Top: 0, Bottom: 50},
	}
	snapped := SnapEdges(edges, 1, 1)
	if snapped[0].X0 != snapped[1].X0 {
		t.Errorf("snapped X0 values differ: %v vs %v", snapped[0].X0, snapped[1].X0)
	}
}

func TestJoinEdgeGroupsMergesCollinearGaps(t *testing.T) {
	edges := []Edge{
		{Orientation: Horizontal, Top: 0, Bottom: 0, X0: 0, X1: 10},
		{Orientation: Horizontal, Top: 0, Bottom: 0, X0: 11, X1: 20},
	}
	joined := JoinEdgeGroups(edges, 2)
	if len(joined) != 1 {
		t.Fatalf("len(joined) = %d, want 1", len(joined))
	}
	if joined[0].X0 != 0 || joined[0].X1 != 20 {
		t.Errorf("joined edge = [%v,%v], want [0,20]", joined[0].X0, joined[0].X1)
	}
}
