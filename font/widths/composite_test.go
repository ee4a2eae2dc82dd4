// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

package widths_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/font/cmap"
	"pdflayout.dev/pdf/font/widths"
)

func TestDecodeCompositeArrayForm(t *testing.T) {
	w := pdf.Array{
		pdf.Integer(1), pdf.Array{pdf.Real(100), pdf.Real(200), pdf.Real(300)},
	}
	got, err := widths.DecodeComposite(nullGetter{}, w, 1000)
	if err != nil {
		t.Fatalf("DecodeComposite: %v", err)
	}
	want := map[cmap.CID]float64{1: 100, 2: 200, 3: 300}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestDecodeCompositeRangeForm(t *testing.T) {
	w := pdf.Array{
		pdf.Integer(10), pdf.Integer(13), pdf.Real(500),
	}
	got, err := widths.DecodeComposite(nullGetter{}, w, 1000)
	if err != nil {
		t.Fatalf("DecodeComposite: %v", err)
	}
	want := map[cmap.CID]float64{10: 500, 11: 500, 12: 500, 13: 500}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestDecodeCompositeMixedForm(t *testing.T) {
	w := pdf.Array{
		pdf.Integer(1), pdf.Array{pdf.Real(100)},
		pdf.Integer(5), pdf.Integer(6), pdf.Real(200),
	}
	got, err := widths.DecodeComposite(nullGetter{}, w, 1000)
	if err != nil {
		t.Fatalf("DecodeComposite: %v", err)
	}
	want := map[cmap.CID]float64{1: 100, 5: 200, 6: 200}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestDecodeCompositeNil(t *testing.T) {
	got, err := widths.DecodeComposite(nullGetter{}, nil, 1000)
	if err != nil {
		t.Fatalf("DecodeComposite: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
