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

// Package color represents the colors a content stream's graphics state
// can hold, as parsed from the "g"/"rg"/"k"/"cs"/"sc"/"scn" family of
// operators. Unlike a PDF writer, this module never needs to format a
// color back into operator syntax; [Color] is a plain value read off the
// interpreter's graphics state.
package color

import "pdflayout.dev/pdf"

// Color is the value a graphics state's current fill or stroke color
// holds. It is a closed sum type: [Gray], [RGB], [CMYK], [PatternColored]
// and [PatternUncolored] are its only members.
type Color interface {
	isColor()
}

// Gray is a color in the /DeviceGray color space, 0 (black) to 1 (white).
type Gray float64

func (Gray) isColor() {}

// RGB is a color in the /DeviceRGB color space, each component in [0, 1].
type RGB struct {
	R, G, B float64
}

func (RGB) isColor() {}

// CMYK is a color in the /DeviceCMYK color space, each component in [0, 1].
type CMYK struct {
	C, M, Y, K float64
}

func (CMYK) isColor() {}

// PatternColored is an "scn /P1" operand naming a colored tiling or
// shading pattern: the pattern dictionary itself supplies the color, so
// there are no extra numeric operands.
type PatternColored struct {
	Name pdf.Name
}

func (PatternColored) isColor() {}

// PatternUncolored is an "c1 ... cn /P1 scn" operand naming an
// uncolored tiling pattern together with the color (in the pattern's
// underlying color space) it should be painted with.
type PatternUncolored struct {
	Name       pdf.Name
	Underlying Color
}

func (PatternUncolored) isColor() {}

// Black is the default color a new graphics state starts in (/DeviceGray
// 0), for both fill and stroke, per the PDF specification's initial
// graphics state.
var Black Color = Gray(0)
