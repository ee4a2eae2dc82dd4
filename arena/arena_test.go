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

package arena

import (
	"testing"

	"pdflayout.dev/pdf/geom"
)

func TestInternReturnsStableKeys(t *testing.T) {
	a := New()
	k1 := a.Intern("hello")
	k2 := a.Intern("world")
	k3 := a.Intern("hello")
	if k1 != k3 {
		t.Errorf("Intern(\"hello\") twice = %d, %d, want equal", k1, k3)
	}
	if k1 == k2 {
		t.Errorf("Intern of distinct strings collided: %d", k1)
	}
	if got := a.Resolve(k1); got != "hello" {
		t.Errorf("Resolve(k1) = %q, want hello", got)
	}
}

func TestInternColorStable(t *testing.T) {
	a := New()
	id1 := a.InternColor([]float64{1, 0, 0})
	id2 := a.InternColor([]float64{1, 0, 0})
	id3 := a.InternColor([]float64{0, 1, 0})
	if id1 != id2 {
		t.Errorf("InternColor of equal vectors = %d, %d, want equal", id1, id2)
	}
	if id1 == id3 {
		t.Error("InternColor of distinct vectors collided")
	}
}

func TestNewCharAppendsToPage(t *testing.T) {
	a := New()
	a.NewChar(ArenaChar{BBox: geom.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}})
	a.NewChar(ArenaChar{BBox: geom.Rect{X0: 1, Y0: 0, X1: 2, Y1: 1}})

	page := a.Finish(1, geom.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}, 0)
	if len(page.Items) != 2 {
		t.Fatalf("len(page.Items) = %d, want 2", len(page.Items))
	}
	if _, ok := page.Items[0].(*ArenaChar); !ok {
		t.Errorf("Items[0] has type %T, want *ArenaChar", page.Items[0])
	}
}

func TestFigureNestingScopesItems(t *testing.T) {
	a := New()
	a.NewChar(ArenaChar{}) // before the figure, lands at page level

	fig := a.BeginFigure(a.Intern("Fm1"), geom.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}, geom.Identity)
	a.NewLine(ArenaLine{})
	a.EndFigure(fig)

	a.NewChar(ArenaChar{}) // after the figure, lands at page level again

	page := a.Finish(1, geom.Rect{}, 0)
	if len(page.Items) != 3 {
		t.Fatalf("len(page.Items) = %d, want 3 (char, figure, char)", len(page.Items))
	}
	if len(fig.Items) != 1 {
		t.Errorf("len(fig.Items) = %d, want 1", len(fig.Items))
	}
	if _, ok := fig.Items[0].(*ArenaLine); !ok {
		t.Errorf("fig.Items[0] has type %T, want *ArenaLine", fig.Items[0])
	}
}

func TestResetClearsInterningAndItems(t *testing.T) {
	a := New()
	a.Intern("foo")
	a.NewChar(ArenaChar{})
	a.Reset()

	if len(a.strings) != 0 {
		t.Errorf("len(strings) after Reset = %d, want 0", len(a.strings))
	}
	page := a.Finish(2, geom.Rect{}, 0)
	if len(page.Items) != 0 {
		t.Errorf("len(Items) after Reset = %d, want 0", len(page.Items))
	}
}

func TestBumpAllocatorGrowsAcrossChunks(t *testing.T) {
	a := New()
	var last *ArenaChar
	for i := 0; i < defaultChunkSize*3; i++ {
		last = a.NewChar(ArenaChar{Size: float64(i)})
	}
	if last.Size != float64(defaultChunkSize*3-1) {
		t.Errorf("last.Size = %v, want %v", last.Size, defaultChunkSize*3-1)
	}
	page := a.Finish(1, geom.Rect{}, 0)
	if len(page.Items) != defaultChunkSize*3 {
		t.Errorf("len(Items) = %d, want %d", len(page.Items), defaultChunkSize*3)
	}
}
