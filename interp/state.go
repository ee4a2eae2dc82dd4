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

package interp

import (
	"pdflayout.dev/pdf/color"
	"pdflayout.dev/pdf/font"
	"pdflayout.dev/pdf/geom"
)

// dash is a line-dash pattern as set by the "d" operator: an array of
// on/off lengths plus a phase. Only a textual summary is kept (the arena
// interns it as a string) since no primitive the interpreter emits needs
// the individual dash lengths.
type dash struct {
	array []float64
	phase float64
}

// graphicsState is the part of the PDF graphics state the "q"/"Q"
// operators save and restore: everything except the text object's own
// working state (BT/ET scope it independently of q/Q nesting).
type graphicsState struct {
	CTM geom.Matrix

	LineWidth float64
	LineCap   int64
	LineJoin  int64
	MiterLimit float64
	Dash      dash
	RenderingIntent string

	StrokeSpace color.Color
	FillSpace   color.Color

	// StrokeSpaceName and FillSpaceName record the names most recently set
	// by CS and cs, so that
	// a subsequent SC/SCN/sc/scn knows whether it is filling in a Pattern
	// space (which expects a trailing resource name operand).
	StrokeSpaceName string
	FillSpaceName   string

	Font     font.Font
	FontName string
	FontSize float64

	CharSpace  float64
	WordSpace  float64
	HScale     float64 // fraction, e.g. 1.0 for 100%
	Leading    float64
	RenderMode int64
	Rise       float64
}

// newGraphicsState returns the initial graphics state at the start of a
// content stream: identity CTM, black fill/stroke in DeviceGray, 100%
// horizontal scale, everything else zero.
func newGraphicsState() graphicsState {
	return graphicsState{
		CTM:         geom.Identity,
		LineWidth:   1,
		MiterLimit:  10,
		StrokeSpace: color.Black,
		FillSpace:   color.Black,
		HScale:      1,
	}
}

// clone returns a copy of gs suitable for pushing onto the state stack by
// "q"; every field is a value type or an interface holding an immutable
// value, so a shallow copy is sufficient.
func (gs graphicsState) clone() graphicsState {
	return gs
}

// textState is the running position tracked while inside a BT/ET text
// object: the text matrix and line matrix, updated by Td/TD/Tm/T* and by
// each glyph shown.
type textState struct {
	TextMatrix geom.Matrix
	LineMatrix geom.Matrix
}

func newTextState() textState {
	return textState{TextMatrix: geom.Identity, LineMatrix: geom.Identity}
}

// markEntry is one level of the marked-content stack maintained by
// BMC/BDC/EMC: a tag name and, for BDC, the MCID pulled from its
// property list (if present and an integer).
type markEntry struct {
	Tag    string
	MCID   int
	HasMCID bool
}
