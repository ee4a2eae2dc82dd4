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
	"pdflayout.dev/pdf/arena"
	"pdflayout.dev/pdf/geom"
)

// Component is anything the layout tree can hold: a character, a space
// or newline annotation, a line, a box, or a group. Every phase operates
// on this interface so that phase 3's merges don't care whether a node
// is a leaf box or an already-merged group.
type Component interface {
	Bbox() geom.Rect
	IsVertical() bool
}

// LTChar wraps one rendered glyph with the text and metrics the layout
// phases need, resolved once out of the arena's interning tables so the
// rest of this package never has to touch an [*arena.Arena] again.
type LTChar struct {
	Rect     geom.Rect
	Text     string
	FontName string
	Size     float64
	Adv      float64
	Vertical bool
	Upright  bool
}

func (c *LTChar) Bbox() geom.Rect  { return c.Rect }
func (c *LTChar) IsVertical() bool { return c.Vertical }

// AnnoKind distinguishes the two kinds of synthetic filler the line
// state machine inserts between real characters.
type AnnoKind int

const (
	AnnoSpace AnnoKind = iota
	AnnoNewline
)

// LTAnno is a zero-geometry placeholder inserted into a line's text to
// represent an inferred word gap or line break; it carries no bbox of
// its own and is excluded from box/group geometry.
type LTAnno struct {
	Kind AnnoKind
}

func (a *LTAnno) Text() string {
	if a.Kind == AnnoNewline {
		return "\n"
	}
	return " "
}

// CharsFromArena resolves every [arena.ArenaChar] in items (recursing
// into [arena.ArenaFigure] only when recurseFigures is set, matching
// LAParams.AllTexts) into a flat, emit-ordered []*LTChar.
func CharsFromArena(a *arena.Arena, items []arena.ArenaItem, recurseFigures bool) []*LTChar {
	var out []*LTChar
	var walk func([]arena.ArenaItem)
	walk = func(items []arena.ArenaItem) {
		for _, it := range items {
			switch v := it.(type) {
			case *arena.ArenaChar:
				out = append(out, &LTChar{
					Rect:     v.BBox,
					Text:     a.Resolve(v.TextKey),
					FontName: a.Resolve(v.FontKey),
					Size:     v.Size,
					Adv:      v.Adv,
					Upright:  v.Upright,
					Vertical: v.Vertical,
				})
			case *arena.ArenaFigure:
				if recurseFigures {
					walk(v.Items)
				}
			}
		}
	}
	walk(items)
	return out
}
