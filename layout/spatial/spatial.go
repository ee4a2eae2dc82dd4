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

// Package spatial groups axis-aligned boxes into connected clusters
// using [pdflayout.dev/pdf/internal/rtree] for the neighbor search; it
// implements the layout analyzer's phase 2 (line→box). The table
// extractor groups its cells with its own union-find and does not use
// this package.
package spatial

import (
	"pdflayout.dev/pdf/geom"
	"pdflayout.dev/pdf/internal/rtree"
)

// Box is the minimal shape GroupAligned needs from a candidate member.
type Box interface {
	Bbox() geom.Rect
	IsVertical() bool
}

// unionFind is a standard disjoint-set with path compression and
// union-by-rank, used to accumulate the connectivity that pdfminer.six's
// box-absorbing loop (`boxes.pop(neighbor)`) builds incrementally; the
// two give identical final partitions since alignment is symmetric, and
// union-find does it without pdfminer's per-line throwaway box object.
type unionFind struct {
	parent, rank []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p, rank: make([]int, n)}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

func sameWithin(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// alignedHorizontal reports whether two horizontal-line boxes are close
// enough in height and x-alignment (left, right, or center) to belong to
// the same text box, within tolerance d.
func alignedHorizontal(a, b geom.Rect, d float64) bool {
	if !sameWithin(a.Dy(), b.Dy(), d) {
		return false
	}
	leftAligned := sameWithin(a.X0, b.X0, d)
	rightAligned := sameWithin(a.X1, b.X1, d)
	centerAligned := sameWithin((a.X0+a.X1)/2, (b.X0+b.X1)/2, d)
	return leftAligned || rightAligned || centerAligned
}

// alignedVertical is alignedHorizontal's transpose for vertical lines.
func alignedVertical(a, b geom.Rect, d float64) bool {
	if !sameWithin(a.Dx(), b.Dx(), d) {
		return false
	}
	lowerAligned := sameWithin(a.Y0, b.Y0, d)
	upperAligned := sameWithin(a.Y1, b.Y1, d)
	centerAligned := sameWithin((a.Y0+a.Y1)/2, (b.Y0+b.Y1)/2, d)
	return lowerAligned || upperAligned || centerAligned
}

// searchBox returns the neighbor-search window for box b: a horizontal
// line's box is extended downward by d (its Y0 only), a vertical line's
// box is widened by d on both sides (X0 and X1); neither is extended
// along the line's own run.
func searchBox(b geom.Rect, vertical bool, d float64) geom.Rect {
	if vertical {
		return geom.Rect{X0: b.X0 - d, Y0: b.Y0, X1: b.X1 + d, Y1: b.Y1}
	}
	return geom.Rect{X0: b.X0, Y0: b.Y0 - d, X1: b.X1, Y1: b.Y1}
}

// GroupAligned implements the layout analyzer's line→box grouping: it partitions
// boxes into connected clusters under the alignment relation, searching
// for candidates via an R-tree rather than comparing every pair.
// lineMargin scales each box's own height (width, if vertical) into the
// tolerance d used for both the search window and the alignment tests.
// Clusters are returned as slices of input indices, each sorted
// ascending, ordered by the smallest index appearing in each cluster —
// "the box containing the document's first line comes first".
func GroupAligned(boxes []Box, lineMargin float64) [][]int {
	if len(boxes) == 0 {
		return nil
	}
	rects := make([]geom.Rect, len(boxes))
	for i, b := range boxes {
		rects[i] = b.Bbox()
	}
	plane := rtree.New()
	plane.Extend(rects)

	uf := newUnionFind(len(boxes))
	for i, b := range boxes {
		d := lineMargin * b.Bbox().Dy()
		if b.IsVertical() {
			d = lineMargin * b.Bbox().Dx()
		}
		q := searchBox(b.Bbox(), b.IsVertical(), d)
		for _, j := range plane.Find(q) {
			if j == i {
				continue
			}
			if boxes[j].IsVertical() != b.IsVertical() {
				continue
			}
			var aligned bool
			if b.IsVertical() {
				aligned = alignedVertical(b.Bbox(), boxes[j].Bbox(), d)
			} else {
				aligned = alignedHorizontal(b.Bbox(), boxes[j].Bbox(), d)
			}
			if aligned {
				uf.union(i, j)
			}
		}
	}

	groupOf := make(map[int][]int)
	order := make([]int, 0, len(boxes))
	for i := range boxes {
		root := uf.find(i)
		if _, ok := groupOf[root]; !ok {
			order = append(order, root)
		}
		groupOf[root] = append(groupOf[root], i)
	}
	out := make([][]int, len(order))
	for k, root := range order {
		out[k] = groupOf[root]
	}
	return out
}
