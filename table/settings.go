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

// Strategy selects how edges of one orientation are sourced.
type Strategy int

const (
	// Lines uses ruling edges (lines, rects, curves) as found on the page.
	Lines Strategy = iota
	// LinesStrict uses ruling edges but drops any non-Line-derived edge
	// (rect and curve boundaries), for pages where stray filled boxes
	// would otherwise be mistaken for table rulings.
	LinesStrict
	// Text synthesizes edges from word clusters instead of rulings, for
	// whitespace-separated tables with no drawn grid.
	Text
)

// Settings controls every tunable step of the table-finding pipeline.
// Field names and defaults mirror the parameters pdfplumber.six exposes
// under the same names.
type Settings struct {
	VerticalStrategy   Strategy
	HorizontalStrategy Strategy

	SnapXTolerance float64
	SnapYTolerance float64
	JoinTolerance  float64

	EdgeMinLengthPrefilter float64
	EdgeMinLength          float64

	IntersectionXTolerance float64
	IntersectionYTolerance float64

	MinWordsHorizontal int
	MinWordsVertical   int

	// ExplicitEdges are appended to whichever orientation they belong to
	// before snapping, letting a caller hint at rulings the page itself
	// doesn't draw explicitly.
	ExplicitEdges []Edge
}

// DefaultSettings returns the ruling-based defaults: both axes use the
// Lines strategy, 3pt snap/join tolerances, a 1pt minimum edge length,
// and a 3pt intersection tolerance.
func DefaultSettings() Settings {
	return Settings{
		VerticalStrategy:       Lines,
		HorizontalStrategy:     Lines,
		SnapXTolerance:         3,
		SnapYTolerance:         3,
		JoinTolerance:          3,
		EdgeMinLengthPrefilter: 0,
		EdgeMinLength:          1,
		IntersectionXTolerance: 3,
		IntersectionYTolerance: 3,
		MinWordsHorizontal:     1,
		MinWordsVertical:       3,
	}
}

func filterByLength(edges []Edge, minLength float64) []Edge {
	if minLength <= 0 {
		return edges
	}
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Length() >= minLength {
			out = append(out, e)
		}
	}
	return out
}

func filterStrategy(edges []Edge, orientation Orientation, strategy Strategy) []Edge {
	if strategy != LinesStrict {
		return edges
	}
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Orientation != orientation || e.FromLine {
			out = append(out, e)
		}
	}
	return out
}
