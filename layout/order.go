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

import "sort"

// flowKey is the boxes_flow-weighted sort key phase 4 orders siblings
// by: it trades off "read top to bottom" against "read left to right"
// according to bf, in [-1, 1].
func flowKey(c Component, bf float64) float64 {
	r := c.Bbox()
	if c.IsVertical() {
		return -(1+bf)*(r.X0+r.X1) - (1-bf)*r.Y1
	}
	return (1-bf)*r.X0 - (1+bf)*(r.Y0+r.Y1)
}

// sortTree recursively sorts every [LTTextGroup]'s children by flowKey,
// bottom-up (children are ordered before their parent's own children
// slice is sorted, matching a post-order "analyze" pass).
func sortTree(c Component, bf float64) {
	g, ok := c.(*LTTextGroup)
	if !ok {
		return
	}
	for _, ch := range g.Children {
		sortTree(ch, bf)
	}
	sort.SliceStable(g.Children, func(i, j int) bool {
		return flowKey(g.Children[i], bf) < flowKey(g.Children[j], bf)
	})
}

// IndexAssigner walks a forest of top-level groups left-to-right,
// depth-first, numbering every [LTTextBox] leaf it visits 0, 1, 2, ...;
// that numbering is the final reading order.
func IndexAssigner(tops []Component) []*LTTextBox {
	next := 0
	var out []*LTTextBox
	var walk func(Component)
	walk = func(c Component) {
		switch v := c.(type) {
		case *LTTextGroup:
			for _, ch := range v.Children {
				walk(ch)
			}
		case *LTTextBox:
			v.Index = next
			next++
			out = append(out, v)
		}
	}
	for _, t := range tops {
		walk(t)
	}
	return out
}

// OrderTree runs phase 4 end to end: sort every group's children by
// flowKey, then assign reading-order indices depth-first.
func OrderTree(tops []Component, bf float64) []*LTTextBox {
	for _, t := range tops {
		sortTree(t, bf)
	}
	return IndexAssigner(tops)
}

// OrderWithoutFlow is phase 4's fallback when boxes_flow is disabled:
// vertical boxes sort before horizontal ones; within each orientation,
// by (-y0, x0) for horizontal boxes and (-x1, -y0) for vertical boxes.
// Matches pdfminer.six's getkey() for laparams.boxes_flow is None.
func OrderWithoutFlow(boxes []*LTTextBox) []*LTTextBox {
	sorted := append([]*LTTextBox(nil), boxes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		av, bv := a.Vertical, b.Vertical
		if av != bv {
			return av // vertical (false "1" key) sorts first
		}
		if av {
			if a.Rect.X1 != b.Rect.X1 {
				return a.Rect.X1 > b.Rect.X1
			}
			return a.Rect.Y0 > b.Rect.Y0
		}
		if a.Rect.Y0 != b.Rect.Y0 {
			return a.Rect.Y0 > b.Rect.Y0
		}
		return a.Rect.X0 < b.Rect.X0
	})
	for i, b := range sorted {
		b.Index = i
	}
	return sorted
}
