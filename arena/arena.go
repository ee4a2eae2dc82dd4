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

// Package arena is the page-scoped record store the content interpreter
// renders into. It owns every primitive produced while walking one page's
// content stream — characters, lines, curves, rectangles, images, nested
// figures — plus the string and color interning tables they reference,
// and is read-only once the page has finished rendering.
package arena

import (
	"strconv"
	"strings"

	"pdflayout.dev/pdf/geom"
)

// StringKey is a small, stable handle for an interned string: equal
// strings always intern to the same key.
type StringKey int32

// ColorId is a small, stable handle for an interned color component
// vector: equal component slices always intern to the same id.
type ColorId int32

// bump is a typed, chunked allocator: records are appended in place
// inside fixed-size chunks so that pointers returned by Alloc stay valid
// for the arena's lifetime without per-record heap churn. Reset drops all
// chunks but one, ready for reuse on the next page.
type bump[T any] struct {
	chunkSize int
	chunks    [][]T
}

func newBump[T any](chunkSize int) *bump[T] {
	return &bump[T]{chunkSize: chunkSize}
}

func (b *bump[T]) alloc() *T {
	if len(b.chunks) == 0 || len(b.chunks[len(b.chunks)-1]) == cap(b.chunks[len(b.chunks)-1]) {
		b.chunks = append(b.chunks, make([]T, 0, b.chunkSize))
	}
	last := &b.chunks[len(b.chunks)-1]
	*last = append(*last, *new(T))
	return &(*last)[len(*last)-1]
}

func (b *bump[T]) reset() {
	if len(b.chunks) > 1 {
		b.chunks = b.chunks[:1]
	}
	if len(b.chunks) == 1 {
		b.chunks[0] = b.chunks[0][:0]
	}
}

// PaintTail is the set of fields common to every painted path primitive
// (line, rect, curve): stroke/fill flags and the marked-content context
// active when the path was painted.
type PaintTail struct {
	Stroke, Fill, EvenOdd bool
	StrokeColor, FillColor ColorId
	Dashing                StringKey // interned "array phase" description; 0 if none
	MCID                   int
	HasMCID                bool
	Tag                    StringKey
	HasTag                 bool
}

// ArenaItem is the sum type of everything the arena can hold: a
// character, a painted line/rect/curve, an image, or a nested figure.
// Bbox lets the spatial index ([pdflayout.dev/pdf/internal/rtree.Plane])
// treat every primitive uniformly regardless of concrete kind.
type ArenaItem interface {
	Bbox() geom.Rect
	isArenaItem()
}

// ArenaChar is one rendered glyph.
type ArenaChar struct {
	BBox    geom.Rect
	TextKey StringKey
	FontKey StringKey
	Size    float64
	Upright bool
	Vertical bool
	Adv     float64
	Matrix  geom.Matrix
	MCID    int
	HasMCID bool
	Tag     StringKey
	HasTag  bool
	NCS     StringKey // non-stroking color space name
	SCS     StringKey // stroking color space name
	NColor  ColorId
	SColor  ColorId
}

func (c *ArenaChar) Bbox() geom.Rect { return c.BBox }
func (*ArenaChar) isArenaItem()      {}

// ArenaLine is a straight painted path reduced to its two endpoints.
type ArenaLine struct {
	LineWidth float64
	P0, P1    geom.Point
	PaintTail
}

func (l *ArenaLine) Bbox() geom.Rect { return geom.Bound(l.P0, l.P1) }
func (*ArenaLine) isArenaItem()      {}

// ArenaRect is a painted path recognized as an axis-aligned rectangle.
type ArenaRect struct {
	LineWidth float64
	BBox      geom.Rect
	PaintTail
}

func (r *ArenaRect) Bbox() geom.Rect { return r.BBox }
func (*ArenaRect) isArenaItem()      {}

// ArenaCurve is a painted path that is neither a line nor a rectangle:
// its full transformed point list is kept.
type ArenaCurve struct {
	LineWidth float64
	Pts       []geom.Point
	PaintTail
}

func (c *ArenaCurve) Bbox() geom.Rect { return geom.Bound(c.Pts...) }
func (*ArenaCurve) isArenaItem()      {}

// ArenaImage is a render_image event, always inside a 1x1 figure frame
// per the content interpreter's contract for the "Do" image case.
type ArenaImage struct {
	NameKey         StringKey
	BBox            geom.Rect
	SrcWidth        int
	SrcHeight       int
	ImageMask       bool
	Bits            int
	ColorSpaceKeys  []StringKey
}

func (im *ArenaImage) Bbox() geom.Rect { return im.BBox }
func (*ArenaImage) isArenaItem()       {}

// ArenaFigure is a nested Form XObject frame: its own CTM composed with
// the form's /Matrix, holding the items rendered while inside it.
type ArenaFigure struct {
	NameKey StringKey
	BBox    geom.Rect
	Matrix  geom.Matrix
	Items   []ArenaItem
}

func (f *ArenaFigure) Bbox() geom.Rect { return f.BBox }
func (*ArenaFigure) isArenaItem()      {}

// ArenaPage is the immutable snapshot produced when a page finishes
// rendering: every top-level item in emit order, plus page metadata. The
// arena itself must not be mutated after this is produced.
type ArenaPage struct {
	PageID int
	BBox   geom.Rect
	Rotate int
	Items  []ArenaItem
}

const defaultChunkSize = 256

// Arena is the page-scoped render-event sink. The interpreter calls
// New{Char,Line,Rect,Curve,Image,Figure} as it walks a content stream;
// Finish freezes the current top-level item list into an [ArenaPage].
type Arena struct {
	strings    []string
	stringIdx  map[string]StringKey
	colors     [][]float64
	colorIdx   map[string]ColorId

	chars   *bump[ArenaChar]
	lines   *bump[ArenaLine]
	rects   *bump[ArenaRect]
	curves  *bump[ArenaCurve]
	images  *bump[ArenaImage]
	figures *bump[ArenaFigure]

	// figureStack holds the item slice currently being appended to: the
	// page's own top-level items, or the items of whichever ArenaFigure
	// is currently open (Do Form nesting).
	figureStack [][]ArenaItem
}

// New returns an empty arena, ready to render one page into.
func New() *Arena {
	a := &Arena{
		stringIdx: make(map[string]StringKey),
		colorIdx:  make(map[string]ColorId),
		chars:     newBump[ArenaChar](defaultChunkSize),
		lines:     newBump[ArenaLine](defaultChunkSize),
		rects:     newBump[ArenaRect](defaultChunkSize),
		curves:    newBump[ArenaCurve](defaultChunkSize),
		images:    newBump[ArenaImage](defaultChunkSize),
		figures:   newBump[ArenaFigure](defaultChunkSize),
	}
	a.figureStack = [][]ArenaItem{nil}
	return a
}

// Reset clears the arena for reuse on the next page, retaining the bulk
// of its already-allocated chunk capacity.
func (a *Arena) Reset() {
	a.strings = a.strings[:0]
	for k := range a.stringIdx {
		delete(a.stringIdx, k)
	}
	a.colors = a.colors[:0]
	for k := range a.colorIdx {
		delete(a.colorIdx, k)
	}
	a.chars.reset()
	a.lines.reset()
	a.rects.reset()
	a.curves.reset()
	a.images.reset()
	a.figures.reset()
	a.figureStack = [][]ArenaItem{nil}
}

// Intern returns the stable key for s, interning it on first use.
func (a *Arena) Intern(s string) StringKey {
	if k, ok := a.stringIdx[s]; ok {
		return k
	}
	k := StringKey(len(a.strings))
	a.strings = append(a.strings, s)
	a.stringIdx[s] = k
	return k
}

// Resolve returns the string that was interned as k.
func (a *Arena) Resolve(k StringKey) string {
	if int(k) < 0 || int(k) >= len(a.strings) {
		return ""
	}
	return a.strings[k]
}

// InternColor returns the stable id for a color component vector,
// interning it on first use.
func (a *Arena) InternColor(c []float64) ColorId {
	key := colorKey(c)
	if id, ok := a.colorIdx[key]; ok {
		return id
	}
	id := ColorId(len(a.colors))
	stored := append([]float64(nil), c...)
	a.colors = append(a.colors, stored)
	a.colorIdx[key] = id
	return id
}

// Color returns the component vector that was interned as id.
func (a *Arena) Color(id ColorId) []float64 {
	if int(id) < 0 || int(id) >= len(a.colors) {
		return nil
	}
	return a.colors[id]
}

func colorKey(c []float64) string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

func (a *Arena) push(item ArenaItem) {
	top := len(a.figureStack) - 1
	a.figureStack[top] = append(a.figureStack[top], item)
}

// NewChar allocates and emits an ArenaChar.
func (a *Arena) NewChar(c ArenaChar) *ArenaChar {
	p := a.chars.alloc()
	*p = c
	a.push(p)
	return p
}

// NewLine allocates and emits an ArenaLine.
func (a *Arena) NewLine(l ArenaLine) *ArenaLine {
	p := a.lines.alloc()
	*p = l
	a.push(p)
	return p
}

// NewRect allocates and emits an ArenaRect.
func (a *Arena) NewRect(r ArenaRect) *ArenaRect {
	p := a.rects.alloc()
	*p = r
	a.push(p)
	return p
}

// NewCurve allocates and emits an ArenaCurve.
func (a *Arena) NewCurve(c ArenaCurve) *ArenaCurve {
	p := a.curves.alloc()
	*p = c
	a.push(p)
	return p
}

// NewImage allocates and emits an ArenaImage.
func (a *Arena) NewImage(im ArenaImage) *ArenaImage {
	p := a.images.alloc()
	*p = im
	a.push(p)
	return p
}

// BeginFigure allocates an ArenaFigure, emits it into the currently open
// frame, and opens it as the new current frame: subsequent New* calls
// land inside it until EndFigure.
func (a *Arena) BeginFigure(nameKey StringKey, bbox geom.Rect, m geom.Matrix) *ArenaFigure {
	p := a.figures.alloc()
	p.NameKey = nameKey
	p.BBox = bbox
	p.Matrix = m
	a.push(p)
	a.figureStack = append(a.figureStack, nil)
	return p
}

// EndFigure closes the innermost open figure, attaching its accumulated
// items to it.
func (a *Arena) EndFigure(f *ArenaFigure) {
	top := len(a.figureStack) - 1
	if top <= 0 {
		return
	}
	f.Items = a.figureStack[top]
	a.figureStack = a.figureStack[:top]
}

// Finish produces the immutable page snapshot from the arena's top-level
// items. The arena must not be used to render further primitives for
// this page afterwards (call Reset before starting the next page).
func (a *Arena) Finish(pageID int, bbox geom.Rect, rotate int) *ArenaPage {
	return &ArenaPage{
		PageID: pageID,
		BBox:   bbox,
		Rotate: rotate,
		Items:  a.figureStack[0],
	}
}
