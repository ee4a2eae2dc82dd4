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

package geom

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
)

func TestApplyIdentity(t *testing.T) {
	p := Point{X: 3, Y: 4}
	got := Apply(Identity, p)
	if got != p {
		t.Errorf("Apply(Identity, %v) = %v, want %v", p, got, p)
	}
}

func TestApplyTranslate(t *testing.T) {
	m := matrix.Translate(10, -5)
	got := Apply(m, Point{X: 1, Y: 1})
	want := Point{X: 11, Y: -4}
	if got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestApplyRectAxisAligns(t *testing.T) {
	// a 90-degree rotation of a non-square rectangle must come back
	// axis-aligned, not rotated: width and height swap.
	m := matrix.Rotate(math.Pi / 2)
	r := Rect{X0: 0, Y0: 0, X1: 10, Y1: 2}
	got := ApplyRect(m, r)

	const eps = 1e-9
	if math.Abs(got.Dx()-2) > eps || math.Abs(got.Dy()-10) > eps {
		t.Errorf("ApplyRect(%v, %v) = %v, want width 2 height 10", m, r, got)
	}
}

func TestBoundEmptyIsInverted(t *testing.T) {
	r := Bound()
	if r.X0 <= r.X1 || r.Y0 <= r.Y1 {
		t.Errorf("Bound() = %v, want an inverted (empty) rectangle", r)
	}
}

func TestBoundAccumulates(t *testing.T) {
	r := Bound(Point{X: 1, Y: 5}, Point{X: -2, Y: 3}, Point{X: 0, Y: 9})
	want := Rect{X0: -2, Y0: 3, X1: 1, Y1: 9}
	if r != want {
		t.Errorf("Bound(...) = %v, want %v", r, want)
	}
}

func TestRectExtend(t *testing.T) {
	var r Rect
	r.Extend(Rect{X0: 1, Y0: 1, X1: 2, Y1: 2})
	r.Extend(Rect{X0: -1, Y0: 0, X1: 1.5, Y1: 5})
	want := Rect{X0: -1, Y0: 0, X1: 2, Y1: 5}
	if r != want {
		t.Errorf("Extend chain = %v, want %v", r, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	if !r.Contains(Point{X: 5, Y: 5}) {
		t.Error("expected (5,5) to be inside r")
	}
	if r.Contains(Point{X: 11, Y: 5}) {
		t.Error("expected (11,5) to be outside r")
	}
}
