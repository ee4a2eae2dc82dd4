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
	"container/heap"

	"pdflayout.dev/pdf/geom"
)

// LTTextGroup is an internal node of the phase 3 merge tree: exactly two
// children, which may themselves be groups or [LTTextBox] leaves.
type LTTextGroup struct {
	Rect     geom.Rect
	Vertical bool
	Children []Component
}

func (g *LTTextGroup) Bbox() geom.Rect  { return g.Rect }
func (g *LTTextGroup) IsVertical() bool { return g.Vertical }

func rectsOverlap(a, b geom.Rect) bool {
	return !(a.X1 <= b.X0 || b.X1 <= a.X0 || a.Y1 <= b.Y0 || b.Y1 <= a.Y0)
}

func unionArea(a, b geom.Rect) geom.Rect {
	u := a
	u.Extend(b)
	return u
}

// groupDistance is area(bbox_union(a, b)) - area(a) - area(b): the cost
// of merging a and b is the area their union adds beyond what they
// already individually cover.
func groupDistance(a, b geom.Rect) float64 {
	u := unionArea(a, b)
	return u.Dx()*u.Dy() - a.Dx()*a.Dy() - b.Dx()*b.Dy()
}

// pairEntry is one candidate merge in the best-first queue. Ordering is
// lexicographic on (SkipIsAny, Dist, ID1, ID2), false<true on the
// boolean, matching pdfminer.six's tie-break exactly.
type pairEntry struct {
	SkipIsAny  bool
	Dist       float64
	ID1, ID2   int
}

type pairHeap []pairEntry

func (h pairHeap) Len() int { return len(h) }
func (h pairHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.SkipIsAny != b.SkipIsAny {
		return !a.SkipIsAny
	}
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	if a.ID1 != b.ID1 {
		return a.ID1 < b.ID1
	}
	return a.ID2 < b.ID2
}
func (h pairHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *pairHeap) Push(x any)        { *h = append(*h, x.(pairEntry)) }
func (h *pairHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// GroupBoxes implements phase 3 (box→group tree): repeatedly merges the
// two closest boxes, subject to the isany validity predicate (no other
// live element's bbox may intersect the candidate union), until no more
// merges are possible. The remaining top-level elements are returned in
// document order (by the smallest original box index each transitively
// contains), with every bare [LTTextBox] wrapped in a one-child
// [LTTextGroup] for uniformity.
//
// This enumerates all O(n^2) initial candidate pairs up front rather
// than using pdfminer.six's R-tree "frontier" entries that expand
// lazily — per-page box counts are small enough that the asymptotic
// difference doesn't matter, and the resulting merge order and tree
// shape are identical since both approaches explore the same
// lexicographic (skip_isany, dist, id1, id2) ordering.
func GroupBoxes(boxes []*LTTextBox) []Component {
	n := len(boxes)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []Component{&LTTextGroup{Rect: boxes[0].Rect, Vertical: boxes[0].Vertical, Children: []Component{boxes[0]}}}
	}

	elems := make([]Component, n)
	alive := make([]bool, n)
	firstIdx := make([]int, n)
	for i, b := range boxes {
		elems[i] = b
		alive[i] = true
		firstIdx[i] = i
	}

	h := &pairHeap{}
	heap.Init(h)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			h.Push(pairEntry{Dist: groupDistance(elems[i].Bbox(), elems[j].Bbox()), ID1: i, ID2: j})
		}
	}
	heap.Init(h)

	isAny := func(union geom.Rect, id1, id2 int) bool {
		for k := 0; k < len(elems); k++ {
			if k == id1 || k == id2 || !alive[k] {
				continue
			}
			if rectsOverlap(elems[k].Bbox(), union) {
				return false
			}
		}
		return true
	}

	for h.Len() > 0 {
		e := heap.Pop(h).(pairEntry)
		if e.ID1 >= len(alive) || e.ID2 >= len(alive) || !alive[e.ID1] || !alive[e.ID2] {
			continue
		}
		union := unionArea(elems[e.ID1].Bbox(), elems[e.ID2].Bbox())
		if !e.SkipIsAny && !isAny(union, e.ID1, e.ID2) {
			e.SkipIsAny = true
			heap.Push(h, e)
			continue
		}

		merged := &LTTextGroup{
			Rect:     union,
			Vertical: elems[e.ID1].IsVertical() || elems[e.ID2].IsVertical(),
			Children: []Component{elems[e.ID1], elems[e.ID2]},
		}
		alive[e.ID1] = false
		alive[e.ID2] = false

		newID := len(elems)
		elems = append(elems, merged)
		alive = append(alive, true)
		first := firstIdx[e.ID1]
		if firstIdx[e.ID2] < first {
			first = firstIdx[e.ID2]
		}
		firstIdx = append(firstIdx, first)

		for other := 0; other < newID; other++ {
			if !alive[other] {
				continue
			}
			heap.Push(h, pairEntry{Dist: groupDistance(merged.Bbox(), elems[other].Bbox()), ID1: newID, ID2: other})
		}
	}

	type surviving struct {
		idx   int
		first int
	}
	var rest []surviving
	for i := range elems {
		if alive[i] {
			rest = append(rest, surviving{idx: i, first: firstIdx[i]})
		}
	}
	for i := 1; i < len(rest); i++ {
		for j := i; j > 0 && rest[j].first < rest[j-1].first; j-- {
			rest[j], rest[j-1] = rest[j-1], rest[j]
		}
	}

	out := make([]Component, len(rest))
	for i, s := range rest {
		if box, ok := elems[s.idx].(*LTTextBox); ok {
			out[i] = &LTTextGroup{Rect: box.Rect, Vertical: box.Vertical, Children: []Component{box}}
		} else {
			out[i] = elems[s.idx]
		}
	}
	return out
}
