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

// Package extract joins individual characters into words and lines of
// plain text. Unlike [pdflayout.dev/pdf/layout], which builds a full
// reading-order group tree for page segmentation, this package runs a
// flat, tolerance-based clustering over a character set directly — the
// same shape of algorithm a caller reaches for when it already knows
// which characters belong together (e.g. the characters inside one
// table cell) and just wants word/line joining, not page layout.
package extract

import (
	"sort"
	"strings"

	"pdflayout.dev/pdf/geom"
	"pdflayout.dev/pdf/layout"
)

// Settings tunes the clustering tolerances and ligature expansion.
// Field names follow pdfplumber's extract_words/extract_text, the
// algorithm this package is grounded on.
type Settings struct {
	XTolerance      float64
	YTolerance      float64
	ExpandLigatures bool
}

// DefaultSettings matches pdfplumber's WORD_EXTRACTOR_KWARGS defaults.
func DefaultSettings() Settings {
	return Settings{XTolerance: 3, YTolerance: 3, ExpandLigatures: true}
}

// ligatures maps each precomposed ligature rune to its expansion.
var ligatures = map[rune]string{
	'ﬀ': "ff",
	'ﬃ': "ffi",
	'ﬄ': "ffl",
	'ﬁ': "fi",
	'ﬂ': "fl",
	'ﬅ': "st",
	'ﬆ': "st",
}

func expandLigatures(s string) string {
	var b strings.Builder
	for _, r := range s {
		if exp, ok := ligatures[r]; ok {
			b.WriteString(exp)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Word is a run of characters extract_words judged to be one word: no
// gap between consecutive characters wider than the relevant tolerance.
type Word struct {
	Text      string
	Rect      geom.Rect
	Upright   bool
	Direction string // "ltr" or "ttb"; see the package doc for the rtl/btt gap
}

func center(x0, x1 float64) float64 { return (x0 + x1) / 2 }

// bandAxis groups chars into bands along the axis perpendicular to
// reading direction: descending by that axis's center, chaining a char
// into the running band while its center stays within tolerance of the
// band's running average (so a band can drift gradually across a long
// line without anchoring rigidly to its first member).
func bandAxis(chars []*layout.LTChar, tolerance float64, bandKey func(geom.Rect) float64) [][]*layout.LTChar {
	if len(chars) == 0 {
		return nil
	}
	sorted := append([]*layout.LTChar(nil), chars...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bandKey(sorted[i].Rect) > bandKey(sorted[j].Rect)
	})
	var bands [][]*layout.LTChar
	var cur []*layout.LTChar
	var running float64
	for _, c := range sorted {
		k := bandKey(c.Rect)
		if len(cur) == 0 || running-k <= tolerance {
			cur = append(cur, c)
			running = (running*float64(len(cur)-1) + k) / float64(len(cur))
		} else {
			bands = append(bands, cur)
			cur = []*layout.LTChar{c}
			running = k
		}
	}
	if len(cur) > 0 {
		bands = append(bands, cur)
	}
	return bands
}

// chainAxis sorts one band along the reading axis and splits it into
// words wherever the gap between consecutive characters (trailing edge
// of one to leading edge of the next) exceeds tolerance.
func chainAxis(band []*layout.LTChar, tolerance float64, lead, trail func(geom.Rect) float64, ascending bool) [][]*layout.LTChar {
	sorted := append([]*layout.LTChar(nil), band...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return lead(sorted[i].Rect) < lead(sorted[j].Rect)
		}
		return lead(sorted[i].Rect) > lead(sorted[j].Rect)
	})
	var words [][]*layout.LTChar
	var cur []*layout.LTChar
	var runningTrail float64
	for _, c := range sorted {
		l := lead(c.Rect)
		gap := l - runningTrail
		if !ascending {
			gap = runningTrail - l
		}
		if len(cur) > 0 && gap > tolerance {
			words = append(words, cur)
			cur = nil
		}
		cur = append(cur, c)
		runningTrail = trail(c.Rect)
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

// ExtractWords groups chars by writing mode (horizontal vs vertical, by
// LTChar.Vertical). For horizontal text, bands run along y (top to
// bottom) and words chain along x (left to right, "ltr"); for vertical
// text, bands run along x (right to left) and words chain along y (top
// to bottom, "ttb"). The rtl/btt
// reading directions pdfplumber also supports are not implemented: this
// module has no bidi detection.
func ExtractWords(chars []*layout.LTChar, s Settings) []*Word {
	var upright, vertical []*layout.LTChar
	for _, c := range chars {
		if c.Vertical {
			vertical = append(vertical, c)
		} else {
			upright = append(upright, c)
		}
	}

	var words []*Word
	for _, band := range bandAxis(upright, s.YTolerance, func(r geom.Rect) float64 { return center(r.Y0, r.Y1) }) {
		for _, w := range chainAxis(band, s.XTolerance,
			func(r geom.Rect) float64 { return r.X0 },
			func(r geom.Rect) float64 { return r.X1 },
			true) {
			words = append(words, buildWord(w, s, "ltr"))
		}
	}
	for _, band := range bandAxis(vertical, s.XTolerance, func(r geom.Rect) float64 { return center(r.X0, r.X1) }) {
		for _, w := range chainAxis(band, s.YTolerance,
			func(r geom.Rect) float64 { return r.Y1 },
			func(r geom.Rect) float64 { return r.Y0 },
			false) {
			words = append(words, buildWord(w, s, "ttb"))
		}
	}

	sort.SliceStable(words, func(i, j int) bool {
		if words[i].Rect.Y1 != words[j].Rect.Y1 {
			return words[i].Rect.Y1 > words[j].Rect.Y1
		}
		return words[i].Rect.X0 < words[j].Rect.X0
	})
	return words
}

func buildWord(chars []*layout.LTChar, s Settings, direction string) *Word {
	var b strings.Builder
	var rect geom.Rect
	for _, c := range chars {
		b.WriteString(c.Text)
		rect.Extend(c.Rect)
	}
	text := b.String()
	if s.ExpandLigatures {
		text = expandLigatures(text)
	}
	return &Word{Text: text, Rect: rect, Upright: !chars[0].Vertical, Direction: direction}
}
