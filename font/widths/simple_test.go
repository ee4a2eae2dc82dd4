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
	"pdflayout.dev/pdf/font/widths"
)

type nullGetter struct{}

func (nullGetter) Get(ref pdf.Reference) (pdf.Native, error) { return nil, nil }

func uniform(missing float64, set map[int]float64) []float64 {
	res := make([]float64, 256)
	for i := range res {
		res[i] = missing
	}
	for i, w := range set {
		res[i] = w
	}
	return res
}

func TestExtractSimple(t *testing.T) {
	tests := []struct {
		name     string
		fontDict pdf.Dict
		missing  float64
		expected []float64
	}{
		{
			name: "normal case",
			fontDict: pdf.Dict{
				"FirstChar": pdf.Integer(32),
				"Widths":    pdf.Array{pdf.Real(250), pdf.Real(300), pdf.Real(350)},
			},
			missing:  100,
			expected: uniform(100, map[int]float64{32: 250, 33: 300, 34: 350}),
		},
		{
			name: "negative FirstChar clips to the table",
			fontDict: pdf.Dict{
				"FirstChar": pdf.Integer(-2),
				"Widths":    pdf.Array{pdf.Real(100), pdf.Real(200), pdf.Real(300), pdf.Real(400)},
			},
			missing:  50,
			expected: uniform(50, map[int]float64{0: 300, 1: 400}),
		},
		{
			name: "malformed entry is skipped, not fatal",
			fontDict: pdf.Dict{
				"FirstChar": pdf.Integer(32),
				"Widths":    pdf.Array{pdf.Real(250), pdf.Name("Invalid"), pdf.Real(350)},
			},
			missing:  100,
			expected: uniform(100, map[int]float64{32: 250, 34: 350}),
		},
		{
			name: "missing FirstChar defaults to 0",
			fontDict: pdf.Dict{
				"Widths": pdf.Array{pdf.Real(250), pdf.Real(300), pdf.Real(350)},
			},
			missing:  100,
			expected: uniform(100, map[int]float64{0: 250, 1: 300, 2: 350}),
		},
		{
			name: "FirstChar out of bounds leaves everything at missing",
			fontDict: pdf.Dict{
				"FirstChar": pdf.Integer(300),
				"Widths":    pdf.Array{pdf.Real(250), pdf.Real(300), pdf.Real(350)},
			},
			missing:  100,
			expected: uniform(100, nil),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := widths.ExtractSimple(nullGetter{}, tc.fontDict, tc.missing)
			if err != nil {
				t.Fatalf("ExtractSimple: %v", err)
			}
			if d := cmp.Diff(tc.expected, got); d != "" {
				t.Errorf("mismatch (-want +got):\n%s", d)
			}
		})
	}
}
