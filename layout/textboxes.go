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
	"strings"

	"pdflayout.dev/pdf/geom"
	"pdflayout.dev/pdf/layout/spatial"
)

// LTTextBox is a cluster of [LTTextLine]s that phase 2 judged to be
// aligned closely enough to form one paragraph-like block.
type LTTextBox struct {
	Rect     geom.Rect
	Vertical bool
	Lines    []*LTTextLine

	// Index is the final reading-order position, assigned by
	// [IndexAssigner] after phase 3/4 (or directly by [OrderWithoutFlow]
	// when boxes_flow is disabled).
	Index int
}

func (b *LTTextBox) Bbox() geom.Rect  { return b.Rect }
func (b *LTTextBox) IsVertical() bool { return b.Vertical }

// Text concatenates the box's lines, in their already-ordered sequence.
func (b *LTTextBox) Text() string {
	var sb strings.Builder
	for _, l := range b.Lines {
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// GroupLines implements phase 2 (line→box): it delegates the spatial
// search and union-find clustering to [spatial.GroupAligned], then
// wraps each resulting cluster of lines into an [LTTextBox].
func GroupLines(lines []*LTTextLine, params LAParams) []*LTTextBox {
	if len(lines) == 0 {
		return nil
	}
	asBoxes := make([]spatial.Box, len(lines))
	for i, l := range lines {
		asBoxes[i] = l
	}
	clusters := spatial.GroupAligned(asBoxes, params.LineMargin)

	boxes := make([]*LTTextBox, len(clusters))
	for i, idxs := range clusters {
		tb := &LTTextBox{Vertical: lines[idxs[0]].Vertical}
		for _, idx := range idxs {
			tb.Lines = append(tb.Lines, lines[idx])
			tb.Rect.Extend(lines[idx].Rect)
		}
		boxes[i] = tb
	}
	return boxes
}
