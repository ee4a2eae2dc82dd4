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

package extract

import (
	"sort"
	"strings"

	"pdflayout.dev/pdf/geom"
	"pdflayout.dev/pdf/layout"
)

// wordLines groups words into lines along the axis perpendicular to
// reading direction, the same running-average band chain [bandAxis]
// uses for characters, just operating on already-built words.
func wordLines(words []*Word, tolerance float64, bandKey func(geom.Rect) float64) [][]*Word {
	if len(words) == 0 {
		return nil
	}
	sorted := append([]*Word(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool { return bandKey(sorted[i].Rect) > bandKey(sorted[j].Rect) })
	var lines [][]*Word
	var cur []*Word
	var running float64
	for _, w := range sorted {
		k := bandKey(w.Rect)
		if len(cur) == 0 || running-k <= tolerance {
			cur = append(cur, w)
			running = (running*float64(len(cur)-1) + k) / float64(len(cur))
		} else {
			lines = append(lines, cur)
			cur = []*Word{w}
			running = k
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// ExtractText runs ExtractWords, clusters the resulting words into
// lines, sorts each line by its characters' reading direction (x0
// ascending for "ltr", y1 descending for "ttb" — rtl/btt are not
// implemented, see ExtractWords), joins words with spaces and lines with
// newlines.
func ExtractText(chars []*layout.LTChar, s Settings) string {
	words := ExtractWords(chars, s)
	if len(words) == 0 {
		return ""
	}

	var upright, vertical []*Word
	for _, w := range words {
		if w.Direction == "ttb" {
			vertical = append(vertical, w)
		} else {
			upright = append(upright, w)
		}
	}

	var lines []string
	for _, line := range wordLines(upright, s.YTolerance, func(r geom.Rect) float64 { return (r.Y0 + r.Y1) / 2 }) {
		sort.SliceStable(line, func(i, j int) bool { return line[i].Rect.X0 < line[j].Rect.X0 })
		lines = append(lines, joinWords(line))
	}
	for _, col := range wordLines(vertical, s.XTolerance, func(r geom.Rect) float64 { return (r.X0 + r.X1) / 2 }) {
		sort.SliceStable(col, func(i, j int) bool { return col[i].Rect.Y1 > col[j].Rect.Y1 })
		lines = append(lines, joinWords(col))
	}

	return strings.Join(lines, "\n")
}

func joinWords(words []*Word) string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return strings.Join(texts, " ")
}
