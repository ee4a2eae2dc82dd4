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

import "sort"

// Intersection is a point where a vertical and a horizontal edge cross
// (or nearly cross, within tolerance): the corner candidate cell
// derivation starts from.
type Intersection struct {
	X, Y          float64
	VEdgeID       int
	HEdgeID       int
}

type eventKind int

const (
	addV eventKind = iota
	queryH
	removeV
)

type sweepEvent struct {
	y    float64
	kind eventKind
	edge int
}

// FindIntersections sweeps top to bottom over edges (already snapped and
// joined), using a position-ordered set of "active" vertical edges so
// each horizontal edge only has to scan the verticals near its own x
// range rather than every vertical edge on the page.
func FindIntersections(edges []Edge, xTolerance, yTolerance float64) []Intersection {
	var events []sweepEvent
	for i, e := range edges {
		if e.Orientation == Vertical {
			events = append(events, sweepEvent{y: e.Top - yTolerance, kind: addV, edge: i})
			events = append(events, sweepEvent{y: e.Bottom + yTolerance, kind: removeV, edge: i})
		} else {
			events = append(events, sweepEvent{y: e.Top, kind: queryH, edge: i})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].y != events[j].y {
			return events[i].y < events[j].y
		}
		return events[i].kind < events[j].kind
	})

	var active []int // indices into edges, vertical only, sorted by X0
	insert := func(idx int) {
		x := edges[idx].X0
		pos := sort.Search(len(active), func(i int) bool { return edges[active[i]].X0 >= x })
		active = append(active, 0)
		copy(active[pos+1:], active[pos:])
		active[pos] = idx
	}
	remove := func(idx int) {
		for i, a := range active {
			if a == idx {
				active = append(active[:i], active[i+1:]...)
				return
			}
		}
	}

	var out []Intersection
	for _, ev := range events {
		switch ev.kind {
		case addV:
			insert(ev.edge)
		case removeV:
			remove(ev.edge)
		case queryH:
			h := edges[ev.edge]
			lo := sort.Search(len(active), func(i int) bool { return edges[active[i]].X0 >= h.X0-xTolerance })
			for _, idx := range active[lo:] {
				v := edges[idx]
				if v.X0 > h.X1+xTolerance {
					break
				}
				if v.Top-yTolerance <= h.Top && h.Top <= v.Bottom+yTolerance {
					out = append(out, Intersection{X: v.X0, Y: h.Top, VEdgeID: v.ID, HEdgeID: h.ID})
				}
			}
		}
	}
	return out
}
