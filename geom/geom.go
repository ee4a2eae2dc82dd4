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

// Package geom holds the affine-matrix, point and axis-aligned-rectangle
// algebra shared by the content stream interpreter, the layout engine and
// the table extractor. Matrix and Point are the same types the rest of the
// ecosystem already uses for this; Rect is specific to this module's
// reading-side use (bounding boxes accumulated from glyph and path geometry
// rather than rectangles written out to a content stream).
package geom

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"pdflayout.dev/pdf"
)

// Matrix is a PDF affine transform (a, b, c, d, e, f), applying to a point
// (x, y) as (ax+cy+e, bx+dy+f).
type Matrix = matrix.Matrix

// Identity is the matrix (1, 0, 0, 1, 0, 0).
var Identity = matrix.Identity

// Translate, Scale and Rotate construct the corresponding elementary
// affine transforms; re-exported from seehuhn.de/go/geom/matrix so that
// callers need only import this package.
var (
	Translate = matrix.Translate
	Scale     = matrix.Scale
	Rotate    = matrix.Rotate
)

// Point is a point in user space.
type Point = vec.Vec2

// Rect is an axis-aligned rectangle (x0, y0, x1, y1) in a user-space
// coordinate frame. For objects read off a page's content stream the
// origin is bottom-left, matching the PDF default user space; the table
// extractor flips to a top-left frame internally and converts back at its
// boundary.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float64 { return r.X1 - r.X0 }

// Dy returns the height of the rectangle.
func (r Rect) Dy() float64 { return r.Y1 - r.Y0 }

// IsZero reports whether r is the zero Rect, used as the "nothing seen
// yet" sentinel by bounding-box accumulation.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Extend enlarges r in place to also cover other.
func (r *Rect) Extend(other Rect) {
	if other.IsZero() {
		return
	}
	if r.IsZero() {
		*r = other
		return
	}
	r.X0 = math.Min(r.X0, other.X0)
	r.Y0 = math.Min(r.Y0, other.Y0)
	r.X1 = math.Max(r.X1, other.X1)
	r.Y1 = math.Max(r.Y1, other.Y1)
}

// ExtendPoint enlarges r in place to also cover p.
func (r *Rect) ExtendPoint(p Point) {
	isZero := r.IsZero()
	if p.X < r.X0 || isZero {
		r.X0 = p.X
	}
	if p.Y < r.Y0 || isZero {
		r.Y0 = p.Y
	}
	if p.X > r.X1 || isZero {
		r.X1 = p.X
	}
	if p.Y > r.Y1 || isZero {
		r.Y1 = p.Y
	}
}

// Bound returns the axis-aligned rectangle enclosing points, starting the
// accumulation from (+Inf, +Inf, -Inf, -Inf): an empty sequence returns
// that inverted rectangle, a single point a zero-area rectangle at the
// point, and neither is the IsZero sentinel.
func Bound(points ...Point) Rect {
	r := Rect{
		X0: math.Inf(1), Y0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1),
	}
	for _, p := range points {
		if p.X < r.X0 {
			r.X0 = p.X
		}
		if p.Y < r.Y0 {
			r.Y0 = p.Y
		}
		if p.X > r.X1 {
			r.X1 = p.X
		}
		if p.Y > r.Y1 {
			r.Y1 = p.Y
		}
	}
	return r
}

// Apply transforms p by m: (ax+cy+e, bx+dy+f).
func Apply(m Matrix, p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyRect transforms all four corners of r by m and returns their
// axis-aligned bounding rectangle. It never returns a rotated rectangle:
// a 45-degree rotation of a square yields the (larger) bounding square,
// not a diamond.
func ApplyRect(m Matrix, r Rect) Rect {
	corners := [4]Point{
		{X: r.X0, Y: r.Y0},
		{X: r.X1, Y: r.Y0},
		{X: r.X1, Y: r.Y1},
		{X: r.X0, Y: r.Y1},
	}
	for i, c := range corners {
		corners[i] = Apply(m, c)
	}
	return Bound(corners[:]...)
}

// GetMatrix reads obj as a 6-element PDF number array and returns the
// corresponding Matrix. A null object yields the identity matrix.
func GetMatrix(r pdf.Getter, obj pdf.Object) (Matrix, error) {
	a, err := pdf.GetFloatArray(r, obj)
	if err != nil {
		return Identity, err
	}
	if a == nil {
		return Identity, nil
	}
	if len(a) != 6 {
		return Matrix{}, &pdf.StructuralError{
			Err: fmt.Errorf("expected 6 numbers, got %d", len(a)),
		}
	}
	var m Matrix
	copy(m[:], a)
	return m, nil
}

// GetRect reads obj as a 4-element PDF number array ([x0 y0 x1 y1], as
// found in /BBox, /MediaBox, /CropBox and similar entries) and normalizes
// it so that X0<=X1 and Y0<=Y1 regardless of corner order in the file.
func GetRect(r pdf.Getter, obj pdf.Object) (Rect, error) {
	a, err := pdf.GetFloatArray(r, obj)
	if err != nil {
		return Rect{}, err
	}
	if a == nil {
		return Rect{}, nil
	}
	if len(a) != 4 {
		return Rect{}, &pdf.StructuralError{
			Err: fmt.Errorf("expected 4 numbers, got %d", len(a)),
		}
	}
	return Rect{
		X0: math.Min(a[0], a[2]),
		Y0: math.Min(a[1], a[3]),
		X1: math.Max(a[0], a[2]),
		Y1: math.Max(a[1], a[3]),
	}, nil
}
