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

// Package layout turns a page's flat render arena into a tree of text
// lines, boxes and groups in reading order: the character-to-line state
// machine, the spatial line-to-box grouping (delegated to
// [pdflayout.dev/pdf/layout/spatial]), the best-first hierarchical
// grouping driven by boxes_flow, and the final depth-first index
// assignment that becomes the reading order.
package layout

// LAParams holds the tunables the three grouping phases read. Field
// names and defaults mirror pdfminer.six's LAParams, the reference this
// algorithm is ported from.
type LAParams struct {
	// LineOverlap is the minimum fraction of overlap (along the axis
	// perpendicular to reading direction) two characters must share to
	// be considered part of the same line.
	LineOverlap float64

	// CharMargin is the maximum gap between two characters, as a
	// multiple of character size, for them to still be grouped onto one
	// line.
	CharMargin float64

	// WordMargin is the gap (as a multiple of character size) beyond
	// which a space annotation is inserted between two characters on
	// the same line.
	WordMargin float64

	// LineMargin is the maximum gap between two lines, as a multiple of
	// line height, for them to be grouped into the same box.
	LineMargin float64

	// BoxesFlow biases the reading-order weighting between the
	// horizontal and vertical axes, in [-1, 1]. It is consulted only when
	// DetectBoxesFlow is true; when DetectBoxesFlow is false, Analyze
	// skips phase 3 hierarchical grouping and orders boxes with
	// OrderWithoutFlow, matching boxes_flow=None upstream.
	BoxesFlow float64

	// DetectBoxesFlow reports whether BoxesFlow should be consulted; it
	// exists because Go has no natural "None" for a float64.
	DetectBoxesFlow bool

	// DetectVertical enables the vertical-writing-mode analogues of the
	// char/line/box grouping tests.
	DetectVertical bool

	// AllTexts also analyzes the text inside Form XObject figures,
	// rather than only top-level page content.
	AllTexts bool
}

// DefaultLAParams matches pdfminer.six's LAParams() defaults.
func DefaultLAParams() LAParams {
	return LAParams{
		LineOverlap:     0.5,
		CharMargin:      2.0,
		WordMargin:      0.1,
		LineMargin:      0.5,
		BoxesFlow:       0.5,
		DetectBoxesFlow: true,
		DetectVertical:  false,
		AllTexts:        false,
	}
}
