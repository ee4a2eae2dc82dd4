// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package pdfcpudoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdflayout.dev/pdf"
)

func TestFromPDFCPUScalars(t *testing.T) {
	cases := []struct {
		name string
		in   types.Object
		want pdf.Native
	}{
		{"name", types.Name("Font"), pdf.Name("Font")},
		{"integer", types.Integer(42), pdf.Integer(42)},
		{"float", types.Float(1.5), pdf.Real(1.5)},
		{"bool", types.Boolean(true), pdf.Boolean(true)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := fromPDFCPU(c.in)
			if err != nil {
				t.Fatalf("fromPDFCPU: %v", err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDictFromPDFCPUKeepsReferencesUnresolved(t *testing.T) {
	d := types.Dict{
		"Type":  types.Name("Font"),
		"Widths": *types.NewIndirectRef(7, 0),
	}
	got := dictFromPDFCPU(d)

	if got["Type"] != pdf.Name("Font") {
		t.Errorf("Type: got %#v", got["Type"])
	}
	ref, ok := got["Widths"].(pdf.Reference)
	if !ok {
		t.Fatalf("Widths: got %T, want pdf.Reference", got["Widths"])
	}
	if ref.Number() != 7 || ref.Generation() != 0 {
		t.Errorf("Widths: got %v", ref)
	}
}

func TestArrayFromPDFCPU(t *testing.T) {
	a := types.Array{types.Integer(1), types.Integer(2), types.Name("X")}
	got := arrayFromPDFCPU(a)
	want := pdf.Array{pdf.Integer(1), pdf.Integer(2), pdf.Name("X")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToPDFCPUDictConvertsScalars(t *testing.T) {
	d := pdf.Dict{
		"Predictor": pdf.Integer(12),
		"Columns":   pdf.Integer(5),
		"Colors":    pdf.Integer(3),
	}
	got := toPDFCPUDict(d)
	if got["Predictor"] != types.Integer(12) {
		t.Errorf("Predictor: got %#v", got["Predictor"])
	}
	if got["Columns"] != types.Integer(5) {
		t.Errorf("Columns: got %#v", got["Columns"])
	}
}

func TestFilterNames(t *testing.T) {
	if got := filterNames(pdf.Name("FlateDecode")); len(got) != 1 || got[0] != "FlateDecode" {
		t.Errorf("single filter: got %v", got)
	}
	arr := pdf.Array{pdf.Name("ASCII85Decode"), pdf.Name("FlateDecode")}
	got := filterNames(arr)
	want := []string{"ASCII85Decode", "FlateDecode"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
