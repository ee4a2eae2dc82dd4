// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
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

package color

import (
	"testing"

	"pdflayout.dev/pdf"
)

func TestColorIsClosed(t *testing.T) {
	var cases = []Color{
		Gray(0.5),
		RGB{R: 1, G: 0, B: 0},
		CMYK{C: 0, M: 1, Y: 0, K: 0},
		PatternColored{Name: "P1"},
		PatternUncolored{Name: "P2", Underlying: Gray(0.25)},
	}
	for _, c := range cases {
		c.isColor() // must not panic; exercises every variant's method set
	}
}

func TestBlackIsGrayZero(t *testing.T) {
	g, ok := Black.(Gray)
	if !ok || g != 0 {
		t.Fatalf("Black = %#v, want Gray(0)", Black)
	}
}

func TestPatternUncoloredCarriesUnderlyingColor(t *testing.T) {
	p := PatternUncolored{Name: pdf.Name("Hatch"), Underlying: RGB{R: 1, G: 1, B: 1}}
	rgb, ok := p.Underlying.(RGB)
	if !ok || rgb != (RGB{R: 1, G: 1, B: 1}) {
		t.Errorf("Underlying = %#v", p.Underlying)
	}
}
