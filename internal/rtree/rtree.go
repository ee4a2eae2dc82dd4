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

// Package rtree implements the spatial index the layout analyzer uses to
// find geometric neighbors without an O(n^2) scan: a static, Hilbert-sorted
// R-tree bulk-loaded once from an initial batch of items, backed by a
// smaller dynamic R-tree that absorbs later inserts.
//
// No library in the surrounding stack offers an R-tree or a Hilbert-curve
// ordering (see the project's DESIGN.md for the libraries that were
// checked); this is the one component of the module built directly on the
// standard library.
package rtree

import (
	"container/heap"
	"math"
	"sort"

	"pdflayout.dev/pdf/geom"
)

const fanout = 8

// leafItem is a leaf's own copy of an item's id and bbox, so that a
// dynamic-tree split can repartition without consulting the owning Plane.
type leafItem struct {
	id  int
	box geom.Rect
}

// node is shared by the static and dynamic trees: a leaf holds leafItem
// copies (id and bbox), an internal node holds child nodes. bbox always
// bounds every item reachable below it.
type node struct {
	bbox     geom.Rect
	children []*node
	items    []leafItem // leaf only
}

func (n *node) isLeaf() bool { return n.children == nil }

// Plane is a set-like container of items keyed by insertion order, each
// with a bounding box, supporting intersection queries and k-nearest
// lookups. Insertion indices are stable: they equal the item's original
// position in the sequence passed to [Plane.Extend] plus any later
// [Plane.Add] calls, which is what lets the layout analyzer use Plane
// order as a proxy for document order.
type Plane struct {
	items  []geom.Rect // bbox per insertion index
	alive  []bool
	static *node
	dyn    *node // root of the dynamic tree; nil until the first dynamic insert
}

// New returns an empty Plane.
func New() *Plane {
	return &Plane{}
}

// Extend bulk-loads a batch of items, assigning them consecutive
// insertion indices starting at len(p.items). Returns the indices
// assigned, in the same order as boxes.
func (p *Plane) Extend(boxes []geom.Rect) []int {
	start := len(p.items)
	ids := make([]int, len(boxes))
	for i, b := range boxes {
		ids[i] = start + i
		p.items = append(p.items, b)
		p.alive = append(p.alive, true)
	}
	all := append([]int(nil), ids...)
	var walk func(*node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		for _, it := range n.items {
			all = append(all, it.id)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(p.static)
	p.static = bulkLoad(all, p.items)
	return ids
}

// Add inserts a single item, assigning it the next insertion index.
func (p *Plane) Add(box geom.Rect) int {
	id := len(p.items)
	p.items = append(p.items, box)
	p.alive = append(p.alive, true)
	if p.dyn == nil {
		p.dyn = &node{bbox: box, items: []leafItem{{id: id, box: box}}}
	} else {
		insert(p.dyn, id, box)
	}
	return id
}

// RemoveByID tombstones an item: it no longer appears in Find or
// Neighbors results, but its insertion index is never reused.
func (p *Plane) RemoveByID(id int) {
	if id >= 0 && id < len(p.alive) {
		p.alive[id] = false
	}
}

// intersects reports whether two boxes share a strictly positive-area
// overlap; boxes touching only at an edge do not count.
func intersects(a, b geom.Rect) bool {
	if a.X1 <= b.X0 || b.X1 <= a.X0 || a.Y1 <= b.Y0 || b.Y1 <= a.Y0 {
		return false
	}
	return true
}

// Find returns every live item whose bbox strictly intersects q.
func (p *Plane) Find(q geom.Rect) []int {
	var out []int
	collect := func(id int) {
		if p.alive[id] && intersects(p.items[id], q) {
			out = append(out, id)
		}
	}
	searchTree(p.static, q, collect)
	searchTree(p.dyn, q, collect)
	return out
}

// IndexedItem pairs an insertion index with the item found at it.
type IndexedItem struct {
	Index int
	Box   geom.Rect
}

// FindWithIndices is [Plane.Find], additionally returning each match's
// insertion index alongside its box.
func (p *Plane) FindWithIndices(q geom.Rect) []IndexedItem {
	ids := p.Find(q)
	out := make([]IndexedItem, len(ids))
	for i, id := range ids {
		out[i] = IndexedItem{Index: id, Box: p.items[id]}
	}
	return out
}

func searchTree(n *node, q geom.Rect, visit func(id int)) {
	if n == nil || !intersects(n.bbox, q) {
		return
	}
	if n.isLeaf() {
		for _, it := range n.items {
			visit(it.id)
		}
		return
	}
	for _, c := range n.children {
		searchTree(c, q, visit)
	}
}

// neighborCand is a heap entry for k-nearest search: distance from the
// query center to the candidate's bbox (0 if the center is inside it).
type neighborCand struct {
	dist float64
	id   int
}

type neighborHeap []neighborCand

func (h neighborHeap) Len() int            { return len(h) }
func (h neighborHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h neighborHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *neighborHeap) Push(x any)         { *h = append(*h, x.(neighborCand)) }
func (h *neighborHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func rectDist(r geom.Rect, p geom.Point) float64 {
	dx := math.Max(r.X0-p.X, math.Max(0, p.X-r.X1))
	dy := math.Max(r.Y0-p.Y, math.Max(0, p.Y-r.Y1))
	return math.Hypot(dx, dy)
}

// Neighbors returns the k live items whose bboxes are closest to center,
// nearest first.
func (p *Plane) Neighbors(center geom.Point, k int) []int {
	if k <= 0 {
		return nil
	}
	h := &neighborHeap{}
	heap.Init(h)
	for id, box := range p.items {
		if !p.alive[id] {
			continue
		}
		heap.Push(h, neighborCand{dist: rectDist(box, center), id: id})
	}
	out := make([]int, 0, k)
	for h.Len() > 0 && len(out) < k {
		out = append(out, heap.Pop(h).(neighborCand).id)
	}
	return out
}

// --- static tree: Hilbert-sorted bulk load ---

const hilbertOrder = 16 // 16 bits per axis is ample for PDF user-space coordinates

func hilbertXY2D(x, y uint32) uint64 {
	var rx, ry uint32
	var d uint64
	for s := uint32(1) << (hilbertOrder - 1); s > 0; s /= 2 {
		if x&s > 0 {
			rx = 1
		} else {
			rx = 0
		}
		if y&s > 0 {
			ry = 1
		} else {
			ry = 0
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)

		// rotate
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}

// hilbertIndex maps a bbox center into a Hilbert-curve position, scaling
// into the fixed-point grid the curve is defined over: the center is
// offset by (minX, minY), multiplied by scale, and each axis is clamped to
// [0, 2^16-1] rather than overflowing.
func hilbertIndex(r geom.Rect, minX, minY, scale float64) uint64 {
	cx := (r.X0+r.X1)/2 - minX
	cy := (r.Y0+r.Y1)/2 - minY
	clamp := func(v float64) uint32 {
		if v < 0 {
			return 0
		}
		max := float64((uint32(1) << hilbertOrder) - 1)
		if v > max {
			return uint32(max)
		}
		return uint32(v)
	}
	return hilbertXY2D(clamp(cx*scale), clamp(cy*scale))
}

// bulkLoad builds a static R-tree from ids/boxes by sorting on Hilbert
// order and grouping consecutive runs of `fanout` into leaves, then
// repeating one level up until a single root remains.
func bulkLoad(ids []int, allBoxes []geom.Rect) *node {
	if len(ids) == 0 {
		return nil
	}

	var bounds geom.Rect
	for _, id := range ids {
		bounds.Extend(allBoxes[id])
	}
	span := math.Max(bounds.Dx(), bounds.Dy())
	scale := 1.0
	if span > 0 {
		scale = float64((uint32(1)<<hilbertOrder)-1) / span
	}

	type scored struct {
		id  int
		h   uint64
	}
	sorted := make([]scored, len(ids))
	for i, id := range ids {
		sorted[i] = scored{id: id, h: hilbertIndex(allBoxes[id], bounds.X0, bounds.Y0, scale)}
	}
	// insertion sort is adequate here: callers bulk-load whole pages at a
	// time, not hot loops, and this keeps the dependency surface stdlib-only
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].h < sorted[j-1].h; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	leaves := make([]*node, 0, (len(sorted)+fanout-1)/fanout)
	for i := 0; i < len(sorted); i += fanout {
		end := min(i+fanout, len(sorted))
		n := &node{}
		for _, s := range sorted[i:end] {
			n.items = append(n.items, leafItem{id: s.id, box: allBoxes[s.id]})
			n.bbox.Extend(allBoxes[s.id])
		}
		leaves = append(leaves, n)
	}

	level := leaves
	for len(level) > 1 {
		next := make([]*node, 0, (len(level)+fanout-1)/fanout)
		for i := 0; i < len(level); i += fanout {
			end := min(i+fanout, len(level))
			n := &node{children: append([]*node{}, level[i:end]...)}
			for _, c := range level[i:end] {
				n.bbox.Extend(c.bbox)
			}
			next = append(next, n)
		}
		level = next
	}
	return level[0]
}

// --- dynamic tree: simple insert-time R-tree ---

func enlargement(bbox, item geom.Rect) float64 {
	var merged geom.Rect
	merged.Extend(bbox)
	merged.Extend(item)
	return merged.Dx()*merged.Dy() - bbox.Dx()*bbox.Dy()
}

func insert(n *node, id int, box geom.Rect) {
	n.bbox.Extend(box)
	if n.isLeaf() {
		n.items = append(n.items, leafItem{id: id, box: box})
		if len(n.items) > fanout {
			splitLeaf(n)
		}
		return
	}
	best := n.children[0]
	bestCost := enlargement(best.bbox, box)
	for _, c := range n.children[1:] {
		if cost := enlargement(c.bbox, box); cost < bestCost {
			best, bestCost = c, cost
		}
	}
	insert(best, id, box)
}

// splitLeaf turns an overflowing leaf into an internal node with two
// children, partitioned along whichever axis of the leaf's bbox has the
// widest spread (a simplified linear split; the static tree carries the
// bulk of the query load, so the dynamic tree favors simplicity over
// tight bounds).
func splitLeaf(n *node) {
	items := n.items
	n.items = nil

	horizontal := n.bbox.Dx() >= n.bbox.Dy()
	sort.Slice(items, func(i, j int) bool {
		if horizontal {
			return (items[i].box.X0 + items[i].box.X1) < (items[j].box.X0 + items[j].box.X1)
		}
		return (items[i].box.Y0 + items[i].box.Y1) < (items[j].box.Y0 + items[j].box.Y1)
	})

	mid := len(items) / 2
	left := &node{items: append([]leafItem{}, items[:mid]...)}
	right := &node{items: append([]leafItem{}, items[mid:]...)}
	for _, it := range left.items {
		left.bbox.Extend(it.box)
	}
	for _, it := range right.items {
		right.bbox.Extend(it.box)
	}
	n.children = []*node{left, right}
}
