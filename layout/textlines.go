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

package layout

import (
	"math"
	"strings"

	"pdflayout.dev/pdf/geom"
)

// LTTextLine is a run of characters (and inferred space/newline
// annotations) that phase 1 judged to lie on one text line, either
// horizontal or vertical.
type LTTextLine struct {
	Rect     geom.Rect
	Vertical bool
	Items    []Component
}

func (l *LTTextLine) Bbox() geom.Rect  { return l.Rect }
func (l *LTTextLine) IsVertical() bool { return l.Vertical }

// Text concatenates the line's characters and annotations in order.
func (l *LTTextLine) Text() string {
	var b strings.Builder
	for _, it := range l.Items {
		switch v := it.(type) {
		case *LTChar:
			b.WriteString(v.Text)
		case *LTAnno:
			b.WriteString(v.Text())
		}
	}
	return b.String()
}

// IsEmpty reports whether the line's characters are all whitespace —
// such lines are kept out of the real line sequence phase 2 indexes.
func (l *LTTextLine) IsEmpty() bool {
	for _, it := range l.Items {
		if c, ok := it.(*LTChar); ok {
			if strings.TrimSpace(c.Text) != "" {
				return false
			}
		}
	}
	return true
}

func hgap(a, b geom.Rect) float64 {
	return math.Max(b.X0-a.X1, a.X0-b.X1)
}

func vgap(a, b geom.Rect) float64 {
	return math.Max(b.Y0-a.Y1, a.Y0-b.Y1)
}

func hoverlap(a, b geom.Rect) float64 {
	return math.Min(a.Y1, b.Y1) - math.Max(a.Y0, b.Y0)
}

func voverlap(a, b geom.Rect) float64 {
	return math.Min(a.X1, b.X1) - math.Max(a.X0, b.X0)
}

// halign reports whether a and b belong on the same horizontal line:
// they share enough vertical extent and aren't too far apart
// horizontally, both relative to their own size.
func halign(a, b geom.Rect, params LAParams) bool {
	minH := math.Min(a.Dy(), b.Dy())
	maxW := math.Max(a.Dx(), b.Dx())
	return minH*params.LineOverlap < hoverlap(a, b) && hgap(a, b) < maxW*params.CharMargin
}

// valign is halign's transpose, for vertical writing mode.
func valign(a, b geom.Rect, params LAParams) bool {
	minW := math.Min(a.Dx(), b.Dx())
	maxH := math.Max(a.Dy(), b.Dy())
	return minW*params.LineOverlap < voverlap(a, b) && vgap(a, b) < maxH*params.CharMargin
}

// GroupChars implements phase 1 (character→line): a single left-to-right
// pass over chars in emit order, deciding for each new character whether
// it continues the line in progress or starts a new one. Lines made up
// entirely of whitespace are returned separately (the "empties" bucket)
// so phase 2 doesn't have to special-case them.
func GroupChars(chars []*LTChar, params LAParams) (lines, empties []*LTTextLine) {
	var cur *LTTextLine
	var prev *LTChar

	flush := func() {
		if cur == nil {
			return
		}
		cur.Items = append(cur.Items, &LTAnno{Kind: AnnoNewline})
		if cur.IsEmpty() {
			empties = append(empties, cur)
		} else {
			lines = append(lines, cur)
		}
		cur = nil
	}

	appendChar := func(c *LTChar, vertical bool) {
		if prev != nil {
			var gap float64
			if vertical {
				gap = vgap(prev.Rect, c.Rect)
			} else {
				gap = hgap(prev.Rect, c.Rect)
			}
			maxSize := math.Max(math.Max(prev.Rect.Dx(), prev.Rect.Dy()), math.Max(c.Rect.Dx(), c.Rect.Dy()))
			if gap > params.WordMargin*maxSize {
				cur.Items = append(cur.Items, &LTAnno{Kind: AnnoSpace})
			}
		}
		cur.Items = append(cur.Items, c)
		cur.Rect.Extend(c.Rect)
		prev = c
	}

	for _, c := range chars {
		if cur == nil {
			cur = &LTTextLine{Vertical: params.DetectVertical && c.Vertical, Rect: c.Rect}
			appendChar(c, cur.Vertical)
			continue
		}

		matchesLine := false
		if cur.Vertical {
			matchesLine = valign(prev.Rect, c.Rect, params)
		} else {
			matchesLine = halign(prev.Rect, c.Rect, params)
		}

		if matchesLine {
			appendChar(c, cur.Vertical)
			continue
		}

		flush()
		cur = &LTTextLine{Vertical: params.DetectVertical && c.Vertical, Rect: c.Rect}
		prev = nil
		appendChar(c, cur.Vertical)
	}
	flush()
	return lines, empties
}
