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
	"sort"

	"pdflayout.dev/pdf/extract"
)

// wordTopBottom converts a word's bottom-left-frame rect to this
// package's top-left frame: top is the smaller value, bottom the larger.
func wordTopBottom(w *extract.Word, mbHeight float64) (top, bottom float64) {
	top = mbHeight - w.Rect.Y1
	bottom = mbHeight - w.Rect.Y0
	return
}

// textWordLines buckets words sharing (approximately) the same top
// coordinate, using the same previous-value chain [snapClusters] uses
// for edge coordinates.
func textWordLines(words []*extract.Word, mbHeight, tolerance float64) [][]*extract.Word {
	sorted := append([]*extract.Word(nil), words...)
	sort.Slice(sorted, func(i, j int) bool {
		ti, _ := wordTopBottom(sorted[i], mbHeight)
		tj, _ := wordTopBottom(sorted[j], mbHeight)
		return ti < tj
	})

	var lines [][]*extract.Word
	var cur []*extract.Word
	var running float64
	for _, w := range sorted {
		top, _ := wordTopBottom(w, mbHeight)
		if len(cur) == 0 || top-running <= tolerance {
			cur = append(cur, w)
			running = top
		} else {
			lines = append(lines, cur)
			cur = []*extract.Word{w}
			running = top
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// TextEdges synthesizes edges from word positions, for the "text"
// strategy: a horizontal edge at the top of any line with at least
// minWordsHorizontal words, and vertical edges at x0/x1 columns that
// recur across at least minWordsVertical words.
func TextEdges(words []*extract.Word, mbHeight float64, minWordsHorizontal, minWordsVertical int, tolerance float64) []Edge {
	var edges []Edge
	add := func(e Edge) {
		e.ID = len(edges)
		edges = append(edges, e)
	}

	if minWordsHorizontal > 0 {
		for _, line := range textWordLines(words, mbHeight, tolerance) {
			if len(line) < minWordsHorizontal {
				continue
			}
			x0, x1 := line[0].Rect.X0, line[0].Rect.X1
			for _, w := range line[1:] {
				if w.Rect.X0 < x0 {
					x0 = w.Rect.X0
				}
				if w.Rect.X1 > x1 {
					x1 = w.Rect.X1
				}
			}
			top, _ := wordTopBottom(line[0], mbHeight)
			add(Edge{Orientation: Horizontal, X0: x0, X1: x1, Top: top, Bottom: top})
		}
	}

	if minWordsVertical > 0 {
		type column struct {
			x     float64
			count int
			top   float64
			bot   float64
		}
		var columns []*column
		consider := func(x, top, bottom float64) {
			for _, c := range columns {
				if abs(c.x-x) <= tolerance {
					c.count++
					if top < c.top {
						c.top = top
					}
					if bottom > c.bot {
						c.bot = bottom
					}
					return
				}
			}
			columns = append(columns, &column{x: x, count: 1, top: top, bot: bottom})
		}
		for _, w := range words {
			top, bottom := wordTopBottom(w, mbHeight)
			consider(w.Rect.X0, top, bottom)
			consider(w.Rect.X1, top, bottom)
		}
		for _, c := range columns {
			if c.count < minWordsVertical {
				continue
			}
			add(Edge{Orientation: Vertical, X0: c.x, X1: c.x, Top: c.top, Bottom: c.bot})
		}
	}

	return edges
}
