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

package table

import (
	"pdflayout.dev/pdf/arena"
	"pdflayout.dev/pdf/extract"
	"pdflayout.dev/pdf/layout"
)

// TableWithText is a Table whose cells have been matched up with the
// text they contain.
type TableWithText struct {
	Table
	CellText []string // parallel to Table.Cells
}

// FindTables runs the full pipeline (edge sourcing, snapping, joining,
// intersection detection, cell derivation and grouping) over one page
// and assigns each resulting cell its text.
func FindTables(a *arena.Arena, page *arena.ArenaPage, settings Settings) []TableWithText {
	mbHeight := page.BBox.Dy()

	chars := layout.CharsFromArena(a, page.Items, true)

	lineEdges := EdgesFromArena(page.Items, mbHeight)

	var textEdges []Edge
	if settings.VerticalStrategy == Text || settings.HorizontalStrategy == Text {
		words := extract.ExtractWords(chars, extract.DefaultSettings())
		tol := settings.SnapYTolerance
		if settings.SnapXTolerance > tol {
			tol = settings.SnapXTolerance
		}
		textEdges = TextEdges(words, mbHeight, settings.MinWordsHorizontal, settings.MinWordsVertical, tol)
	}

	var edges []Edge
	edges = append(edges, pickOrientation(lineEdges, textEdges, Vertical, settings.VerticalStrategy)...)
	edges = append(edges, pickOrientation(lineEdges, textEdges, Horizontal, settings.HorizontalStrategy)...)
	edges = filterByLength(edges, settings.EdgeMinLengthPrefilter)
	edges = append(edges, settings.ExplicitEdges...)
	for i := range edges {
		edges[i].ID = i
	}

	edges = SnapEdges(edges, settings.SnapXTolerance, settings.SnapYTolerance)
	edges = JoinEdgeGroups(edges, settings.JoinTolerance)
	edges = filterByLength(edges, settings.EdgeMinLength)

	points := FindIntersections(edges, settings.IntersectionXTolerance, settings.IntersectionYTolerance)
	cells := FindCells(points)
	tables := GroupCells(cells)

	out := make([]TableWithText, len(tables))
	for i, t := range tables {
		out[i] = TableWithText{Table: t, CellText: make([]string, len(t.Cells))}
		for j, c := range t.Cells {
			out[i].CellText[j] = extract.ExtractText(charsInCell(chars, c, mbHeight), extract.DefaultSettings())
		}
	}
	return out
}

func pickOrientation(lineEdges, textEdges []Edge, orientation Orientation, strategy Strategy) []Edge {
	var src []Edge
	if strategy == Text {
		src = textEdges
	} else {
		src = filterStrategy(lineEdges, orientation, strategy)
	}
	out := make([]Edge, 0, len(src))
	for _, e := range src {
		if e.Orientation == orientation {
			out = append(out, e)
		}
	}
	return out
}

// charsInCell returns the characters whose center falls in cell's
// half-open box in this package's top-left frame.
func charsInCell(chars []*layout.LTChar, c Cell, mbHeight float64) []*layout.LTChar {
	var out []*layout.LTChar
	for _, ch := range chars {
		cx := (ch.Rect.X0 + ch.Rect.X1) / 2
		cyBL := (ch.Rect.Y0 + ch.Rect.Y1) / 2
		cyTL := mbHeight - cyBL
		if cx >= c.X0 && cx < c.X1 && cyTL >= c.Top && cyTL < c.Bottom {
			out = append(out, ch)
		}
	}
	return out
}
