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

// Package table finds ruled and whitespace-implied tables on a page and
// extracts their cell text. It works entirely in a top-left-origin
// coordinate frame ("top <= bottom"), the opposite of the PDF default
// user space the rest of this module uses, because the sweep-line and
// cell-derivation algorithms below assume that orientation throughout.
package table

import (
	"math"

	"pdflayout.dev/pdf/arena"
	"pdflayout.dev/pdf/geom"
)

// Orientation is the axis an Edge runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Edge is a single straight ruling, in the top-left frame: X0 <= X1 and
// Top <= Bottom. Horizontal edges have Top == Bottom; vertical edges
// have X0 == X1.
type Edge struct {
	ID          int
	Orientation Orientation
	X0, X1      float64
	Top, Bottom float64
	// FromLine is true for edges derived from a Line primitive, as
	// opposed to a Rect or Curve boundary. The "lines_strict" strategy
	// keeps only these.
	FromLine bool
}

// Length returns the edge's extent along its own orientation.
func (e Edge) Length() float64 {
	if e.Orientation == Horizontal {
		return e.X1 - e.X0
	}
	return e.Bottom - e.Top
}

const axisEps = 1e-6

// flip converts a point from the PDF bottom-left user-space frame to
// this package's top-left frame, given the page's media box height.
func flip(p geom.Point, mbHeight float64) geom.Point {
	return geom.Point{X: p.X, Y: mbHeight - p.Y}
}

// EdgesFromArena derives edges from every Line, Rect and Curve primitive
// in items (not recursing into figures — callers that want form-XObject
// content flattened should walk [arena.ArenaFigure] themselves before
// calling this, matching how the rest of this module treats figures as
// an opt-in boundary). Explicit edges injected by a caller are a
// separate, additive step (see Settings.ExplicitEdges in settings.go).
func EdgesFromArena(items []arena.ArenaItem, mbHeight float64) []Edge {
	var edges []Edge
	add := func(e Edge) {
		e.ID = len(edges)
		edges = append(edges, e)
	}

	for _, it := range items {
		switch v := it.(type) {
		case *arena.ArenaLine:
			p0, p1 := flip(v.P0, mbHeight), flip(v.P1, mbHeight)
			addSegment(add, p0, p1, true)
		case *arena.ArenaRect:
			b := v.BBox
			corners := [4]geom.Point{
				flip(geom.Point{X: b.X0, Y: b.Y0}, mbHeight),
				flip(geom.Point{X: b.X1, Y: b.Y0}, mbHeight),
				flip(geom.Point{X: b.X1, Y: b.Y1}, mbHeight),
				flip(geom.Point{X: b.X0, Y: b.Y1}, mbHeight),
			}
			for i := 0; i < 4; i++ {
				addSegment(add, corners[i], corners[(i+1)%4], false)
			}
		case *arena.ArenaCurve:
			for i := 0; i+1 < len(v.Pts); i++ {
				p0, p1 := flip(v.Pts[i], mbHeight), flip(v.Pts[i+1], mbHeight)
				addSegment(add, p0, p1, false)
			}
		}
	}
	return edges
}

// addSegment classifies one line segment as Horizontal or Vertical by
// axis alignment and emits the corresponding Edge; segments aligned with
// neither axis (beyond axisEps) carry no table information and are
// dropped.
func addSegment(add func(Edge), p0, p1 geom.Point, fromLine bool) {
	if math.Abs(p0.Y-p1.Y) <= axisEps {
		top := p0.Y
		add(Edge{Orientation: Horizontal, X0: math.Min(p0.X, p1.X), X1: math.Max(p0.X, p1.X), Top: top, Bottom: top, FromLine: fromLine})
		return
	}
	if math.Abs(p0.X-p1.X) <= axisEps {
		x := p0.X
		add(Edge{Orientation: Vertical, X0: x, X1: x, Top: math.Min(p0.Y, p1.Y), Bottom: math.Max(p0.Y, p1.Y), FromLine: fromLine})
		return
	}
}
