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

// Package interp walks a page's content stream and turns its operators
// into the primitives recorded in an [arena.Arena]: the PDF operator VM
// at the base of the extraction pipeline. It never decides what those
// primitives mean for layout (that is [pdflayout.dev/pdf/layout]'s job);
// it only reproduces, faithfully, what the content stream paints.
package interp

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/arena"
	"pdflayout.dev/pdf/color"
	"pdflayout.dev/pdf/font"
	"pdflayout.dev/pdf/geom"
)

// Interpreter renders pages of a [pdf.Document] into [arena.ArenaPage]
// values. It is not safe for concurrent use by multiple goroutines on the
// same page, but independent Interpreters (or a fresh arena per page) can
// run concurrently over the same Document, since pdf.Document's own
// methods are read-only resolution.
type Interpreter struct {
	doc pdf.Document

	// fontCache avoids re-resolving the same indirect font dictionary
	// every time a Tf operator names it again.
	fontCache map[pdf.Reference]font.Font

	// Warnings accumulates every non-fatal problem encountered while
	// rendering the most recent page: unknown operators, resource lookup
	// failures, XObject cycles. Cleared at the start of each RenderPage
	// call.
	Warnings []error

	// arena backs the most recent RenderPage call; callers that need to
	// resolve a returned ArenaPage's interned strings (the layout and
	// table packages do, via arena.Resolve) use Arena to get at it.
	arena *arena.Arena
}

// New returns an Interpreter reading resources and content through doc.
func New(doc pdf.Document) *Interpreter {
	return &Interpreter{
		doc:       doc,
		fontCache: make(map[pdf.Reference]font.Font),
	}
}

func (ip *Interpreter) warn(err error) {
	ip.Warnings = append(ip.Warnings, err)
}

// Arena returns the arena backing the ArenaPage from the most recent
// RenderPage call.
func (ip *Interpreter) Arena() *arena.Arena {
	return ip.arena
}

// RenderPage interprets the content stream of the given 1-based page
// number into a fresh arena, returning the resulting [arena.ArenaPage].
func (ip *Interpreter) RenderPage(pageNumber int) (*arena.ArenaPage, error) {
	ip.Warnings = nil

	page, err := ip.doc.Page(pageNumber)
	if err != nil {
		return nil, err
	}
	res, err := page.Resources()
	if err != nil {
		return nil, &pdf.StructuralError{Err: err, Loc: "page resources"}
	}
	content, err := page.Content()
	if err != nil {
		return nil, &pdf.StructuralError{Err: err, Loc: "page content"}
	}

	mb := page.MediaBox()
	bbox := geom.Rect{X0: mb[0], Y0: mb[1], X1: mb[2], Y1: mb[3]}

	a := arena.New()
	ip.arena = a
	m := &machine{
		ip:    ip,
		a:     a,
		res:   res,
		gs:    newGraphicsState(),
		ts:    newTextState(),
		cycle: make(map[pdf.Reference]bool),
	}
	if err := m.run(bytes.NewReader(content)); err != nil && err != io.EOF {
		return nil, err
	}

	return a.Finish(pageNumber, bbox, page.Rotate()), nil
}

// machine is the mutable state of one content-stream interpretation pass:
// a page, or a Form XObject entered via "Do". A fresh machine (sharing
// the same arena and cycle-detection set) is created for every nested
// Form so that its own /Resources dictionary shadows the caller's without
// disturbing it.
type machine struct {
	ip  *Interpreter
	a   *arena.Arena
	res *pdf.Resources

	gs      graphicsState
	gsStack []graphicsState

	ts      textState
	inText  bool

	markStack []markEntry

	subpaths [][]pathSeg

	cycle map[pdf.Reference]bool
}

type pathSeg struct {
	op  byte // 'm', 'l', 'c', 'v', 'y', 'h'
	pts []geom.Point
}

func (m *machine) run(r io.Reader) error {
	sc := newScanner(r)
	var operands []any
	for {
		tok, err := sc.Object()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if op, ok := tok.(operator); ok {
			switch op {
			case "BI":
				if err := m.inlineImage(sc); err != nil {
					m.ip.warn(err)
				}
			default:
				m.dispatch(string(op), operands)
			}
			operands = operands[:0]
			continue
		}
		operands = append(operands, tok)
	}
}

func num(ops []any, i int) float64 {
	if i < 0 || i >= len(ops) {
		return 0
	}
	obj, ok := ops[i].(pdf.Object)
	if !ok {
		return 0
	}
	v, _ := pdf.Number(obj)
	return v
}

func name(ops []any, i int) (pdf.Name, bool) {
	if i < 0 || i >= len(ops) {
		return "", false
	}
	n, ok := ops[i].(pdf.Name)
	return n, ok
}

func str(ops []any, i int) (pdf.String, bool) {
	if i < 0 || i >= len(ops) {
		return nil, false
	}
	s, ok := ops[i].(pdf.String)
	return s, ok
}

func (m *machine) dispatch(op string, ops []any) {
	switch op {
	case "q":
		m.gsStack = append(m.gsStack, m.gs.clone())
	case "Q":
		if n := len(m.gsStack); n > 0 {
			m.gs = m.gsStack[n-1]
			m.gsStack = m.gsStack[:n-1]
		}

	case "cm":
		if len(ops) < 6 {
			m.ip.warn(&pdf.OperatorError{Op: op, Underflow: true})
			return
		}
		var mm geom.Matrix
		for i := 0; i < 6; i++ {
			mm[i] = num(ops, i)
		}
		m.gs.CTM = mm.Mul(m.gs.CTM)

	case "w":
		m.gs.LineWidth = num(ops, 0)
	case "J":
		m.gs.LineCap = int64(num(ops, 0))
	case "j":
		m.gs.LineJoin = int64(num(ops, 0))
	case "M":
		m.gs.MiterLimit = num(ops, 0)
	case "d":
		if len(ops) >= 2 {
			if a, ok := ops[0].(pdf.Array); ok {
				nums := make([]float64, len(a))
				for i, o := range a {
					v, _ := pdf.Number(o)
					nums[i] = v
				}
				m.gs.Dash = dash{array: nums, phase: num(ops, 1)}
			}
		}
	case "ri":
		if n, ok := name(ops, 0); ok {
			m.gs.RenderingIntent = string(n)
		}
	case "i":
		// flatness tolerance: not observable in extracted output.
	case "gs":
		// ExtGState application (transparency, soft masks) is out of scope
		// for text/geometry extraction; resource existence is not even
		// checked.

	case "m":
		if len(ops) < 2 {
			m.ip.warn(&pdf.OperatorError{Op: op, Underflow: true})
			return
		}
		p := geom.Point{X: num(ops, 0), Y: num(ops, 1)}
		m.subpaths = append(m.subpaths, []pathSeg{{op: 'm', pts: []geom.Point{p}}})
	case "l":
		if len(ops) < 2 {
			m.ip.warn(&pdf.OperatorError{Op: op, Underflow: true})
			return
		}
		m.appendSeg('l', geom.Point{X: num(ops, 0), Y: num(ops, 1)})
	case "c":
		if len(ops) < 6 {
			m.ip.warn(&pdf.OperatorError{Op: op, Underflow: true})
			return
		}
		m.appendCurve('c',
			geom.Point{X: num(ops, 0), Y: num(ops, 1)},
			geom.Point{X: num(ops, 2), Y: num(ops, 3)},
			geom.Point{X: num(ops, 4), Y: num(ops, 5)})
	case "v":
		if len(ops) < 4 {
			m.ip.warn(&pdf.OperatorError{Op: op, Underflow: true})
			return
		}
		m.appendCurve('v',
			geom.Point{X: num(ops, 0), Y: num(ops, 1)},
			geom.Point{X: num(ops, 2), Y: num(ops, 3)})
	case "y":
		if len(ops) < 4 {
			m.ip.warn(&pdf.OperatorError{Op: op, Underflow: true})
			return
		}
		m.appendCurve('y',
			geom.Point{X: num(ops, 0), Y: num(ops, 1)},
			geom.Point{X: num(ops, 2), Y: num(ops, 3)})
	case "h":
		m.closeSubpath()
	case "re":
		if len(ops) < 4 {
			m.ip.warn(&pdf.OperatorError{Op: op, Underflow: true})
			return
		}
		x, y, w, h := num(ops, 0), num(ops, 1), num(ops, 2), num(ops, 3)
		p0 := geom.Point{X: x, Y: y}
		m.subpaths = append(m.subpaths, []pathSeg{
			{op: 'm', pts: []geom.Point{p0}},
			{op: 'l', pts: []geom.Point{{X: x + w, Y: y}}},
			{op: 'l', pts: []geom.Point{{X: x + w, Y: y + h}}},
			{op: 'l', pts: []geom.Point{{X: x, Y: y + h}}},
			{op: 'h'},
		})

	case "S":
		m.paint(true, false, false)
	case "s":
		m.closeSubpath()
		m.paint(true, false, false)
	case "f", "F":
		m.paint(false, true, false)
	case "f*":
		m.paint(false, true, true)
	case "B":
		m.paint(true, true, false)
	case "B*":
		m.paint(true, true, true)
	case "b":
		m.closeSubpath()
		m.paint(true, true, false)
	case "b*":
		m.closeSubpath()
		m.paint(true, true, true)
	case "n":
		m.paint(false, false, false)

	case "G":
		m.gs.StrokeSpace = color.Gray(num(ops, 0))
	case "g":
		m.gs.FillSpace = color.Gray(num(ops, 0))
	case "RG":
		m.gs.StrokeSpace = color.RGB{R: num(ops, 0), G: num(ops, 1), B: num(ops, 2)}
	case "rg":
		m.gs.FillSpace = color.RGB{R: num(ops, 0), G: num(ops, 1), B: num(ops, 2)}
	case "K":
		m.gs.StrokeSpace = color.CMYK{C: num(ops, 0), M: num(ops, 1), Y: num(ops, 2), K: num(ops, 3)}
	case "k":
		m.gs.FillSpace = color.CMYK{C: num(ops, 0), M: num(ops, 1), Y: num(ops, 2), K: num(ops, 3)}
	case "CS":
		if n, ok := name(ops, 0); ok {
			m.gs.StrokeSpaceName = string(n)
		}
	case "cs":
		if n, ok := name(ops, 0); ok {
			m.gs.FillSpaceName = string(n)
		}
	case "SC", "SCN":
		m.gs.StrokeSpace = m.parseColor(ops, m.gs.StrokeSpaceName)
	case "sc", "scn":
		m.gs.FillSpace = m.parseColor(ops, m.gs.FillSpaceName)

	case "BT":
		m.inText = true
		m.ts = newTextState()
	case "ET":
		m.inText = false

	case "Tc":
		m.gs.CharSpace = num(ops, 0)
	case "Tw":
		m.gs.WordSpace = num(ops, 0)
	case "Tz":
		m.gs.HScale = num(ops, 0) / 100
	case "TL":
		m.gs.Leading = num(ops, 0)
	case "Tf":
		if n, ok := name(ops, 0); ok {
			f, err := m.resolveFont(n)
			if err != nil {
				m.ip.warn(&pdf.MissingFontError{Name: n, Err: err})
				f = nil
			}
			m.gs.Font = f
			m.gs.FontName = string(n)
		}
		m.gs.FontSize = num(ops, 1)
	case "Tr":
		m.gs.RenderMode = int64(num(ops, 0))
	case "Ts":
		m.gs.Rise = num(ops, 0)

	case "Td":
		m.textMove(num(ops, 0), num(ops, 1))
	case "TD":
		m.gs.Leading = -num(ops, 1)
		m.textMove(num(ops, 0), num(ops, 1))
	case "Tm":
		if len(ops) < 6 {
			m.ip.warn(&pdf.OperatorError{Op: op, Underflow: true})
			return
		}
		var mm geom.Matrix
		for i := 0; i < 6; i++ {
			mm[i] = num(ops, i)
		}
		m.ts.LineMatrix = mm
		m.ts.TextMatrix = mm
	case "T*":
		m.textMove(0, -m.gs.Leading)

	case "Tj":
		if s, ok := str(ops, 0); ok {
			m.showText(s)
		}
	case "'":
		m.textMove(0, -m.gs.Leading)
		if s, ok := str(ops, 0); ok {
			m.showText(s)
		}
	case "\"":
		if len(ops) >= 3 {
			m.gs.WordSpace = num(ops, 0)
			m.gs.CharSpace = num(ops, 1)
		}
		m.textMove(0, -m.gs.Leading)
		if s, ok := str(ops, len(ops)-1); ok {
			m.showText(s)
		}
	case "TJ":
		if len(ops) > 0 {
			if arr, ok := ops[0].(pdf.Array); ok {
				m.showTextArray(arr)
			}
		}

	case "Do":
		if n, ok := name(ops, 0); ok {
			if err := m.doXObject(n); err != nil {
				m.ip.warn(err)
			}
		}

	case "BMC":
		n, _ := name(ops, 0)
		m.markStack = append(m.markStack, markEntry{Tag: string(n)})
	case "BDC":
		n, _ := name(ops, 0)
		entry := markEntry{Tag: string(n)}
		if len(ops) > 1 {
			if props, ok := ops[1].(pdf.Dict); ok {
				if mcid, ok := props["MCID"].(pdf.Integer); ok {
					entry.MCID, entry.HasMCID = int(mcid), true
				}
			} else if propName, ok := ops[1].(pdf.Name); ok {
				if props, ok := m.res.Properties[propName]; ok {
					if dict, ok := props.(pdf.Dict); ok {
						if mcid, ok := dict["MCID"].(pdf.Integer); ok {
							entry.MCID, entry.HasMCID = int(mcid), true
						}
					}
				}
			}
		}
		m.markStack = append(m.markStack, entry)
	case "EMC":
		if n := len(m.markStack); n > 0 {
			m.markStack = m.markStack[:n-1]
		}
	case "MP", "DP":
		// point-like marked content carries no painted primitive.

	default:
		m.ip.warn(&pdf.OperatorError{Op: op})
	}
}

func (m *machine) appendSeg(op byte, p geom.Point) {
	if len(m.subpaths) == 0 {
		m.subpaths = append(m.subpaths, []pathSeg{{op: 'm', pts: []geom.Point{p}}})
		return
	}
	cur := len(m.subpaths) - 1
	m.subpaths[cur] = append(m.subpaths[cur], pathSeg{op: op, pts: []geom.Point{p}})
}

func (m *machine) appendCurve(op byte, pts ...geom.Point) {
	if len(m.subpaths) == 0 {
		m.subpaths = append(m.subpaths, nil)
	}
	cur := len(m.subpaths) - 1
	m.subpaths[cur] = append(m.subpaths[cur], pathSeg{op: op, pts: pts})
}

func (m *machine) closeSubpath() {
	if len(m.subpaths) == 0 {
		return
	}
	cur := len(m.subpaths) - 1
	m.subpaths[cur] = append(m.subpaths[cur], pathSeg{op: 'h'})
}

func (m *machine) mark() (tag string, mcid int, hasMCID bool) {
	if n := len(m.markStack); n > 0 {
		e := m.markStack[n-1]
		return e.Tag, e.MCID, e.HasMCID
	}
	return "", 0, false
}

// paint applies the current CTM to every accumulated subpath, recognizes
// its shape, and emits the resulting primitive; it always clears the path
// buffer afterwards, matching "n" (no-op paint) as well as the real
// painting operators.
func (m *machine) paint(stroke, fill, evenOdd bool) {
	defer func() { m.subpaths = nil }()

	tag, mcid, hasMCID := m.mark()
	tail := arena.PaintTail{
		Stroke: stroke, Fill: fill, EvenOdd: evenOdd,
		StrokeColor: m.a.InternColor(colorComponents(m.gs.StrokeSpace)),
		FillColor:   m.a.InternColor(colorComponents(m.gs.FillSpace)),
		MCID:        mcid, HasMCID: hasMCID,
	}
	if tag != "" {
		tail.Tag, tail.HasTag = m.a.Intern(tag), true
	}
	if len(m.gs.Dash.array) > 0 {
		tail.Dashing = m.a.Intern(dashKey(m.gs.Dash))
	}

	for _, sub := range m.subpaths {
		pts, shape := reduceShape(sub)
		devPts := make([]geom.Point, len(pts))
		for i, p := range pts {
			devPts[i] = geom.Apply(m.gs.CTM, p)
		}

		switch {
		case shape == "ml" || shape == "mlh":
			m.a.NewLine(arena.ArenaLine{
				LineWidth: m.gs.LineWidth, P0: devPts[0], P1: devPts[1], PaintTail: tail,
			})
		case (shape == "mlllh" || shape == "mlll") && isAxisRect(devPts):
			m.a.NewRect(arena.ArenaRect{
				LineWidth: m.gs.LineWidth, BBox: geom.Bound(devPts[0], devPts[2]), PaintTail: tail,
			})
		default:
			if len(devPts) > 0 {
				m.a.NewCurve(arena.ArenaCurve{
					LineWidth: m.gs.LineWidth, Pts: devPts, PaintTail: tail,
				})
			}
		}
	}
}

// reduceShape flattens a subpath's control points into one point per
// segment (Bézier control points collapse to their endpoint, since shape
// recognition only cares about the polygon a path traces) and its
// operator letters into a compact shape string, applying the two
// simplifications the recognizer expects: a trailing "l" back to the
// subpath's start is dropped, and a redundant "l" immediately before an
// explicit "h" is merged into it.
func reduceShape(sub []pathSeg) ([]geom.Point, string) {
	var pts []geom.Point
	var shape []byte
	for _, seg := range sub {
		switch seg.op {
		case 'h':
			shape = append(shape, 'h')
		default:
			pts = append(pts, seg.pts[len(seg.pts)-1])
			shape = append(shape, seg.op)
		}
	}
	if len(pts) == 0 {
		return pts, string(shape)
	}
	start := pts[0]

	// redundant "l" immediately before a trailing "h"
	if len(shape) >= 2 && shape[len(shape)-1] == 'h' && shape[len(shape)-2] == 'l' &&
		nearlyEqual(pts[len(pts)-1], start) {
		pts = pts[:len(pts)-1]
		shape = append(shape[:len(shape)-2], 'h')
	} else if shape[len(shape)-1] == 'l' && nearlyEqual(pts[len(pts)-1], start) {
		pts = pts[:len(pts)-1]
		shape = shape[:len(shape)-1]
	}
	return pts, string(shape)
}

const rectEps = 1e-6

func nearlyEqual(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < rectEps && math.Abs(a.Y-b.Y) < rectEps
}

// isAxisRect reports whether a 4- or 5-point closed polygon (p4, if
// present, coincides with p0 and is ignored) traces an axis-aligned
// quadrilateral: either the x,x,y,y pattern or its transpose.
func isAxisRect(pts []geom.Point) bool {
	if len(pts) < 4 {
		return false
	}
	p0, p1, p2, p3 := pts[0], pts[1], pts[2], pts[3]
	sameX := func(a, b geom.Point) bool { return math.Abs(a.X-b.X) < rectEps }
	sameY := func(a, b geom.Point) bool { return math.Abs(a.Y-b.Y) < rectEps }
	if sameX(p0, p1) && sameY(p1, p2) && sameX(p2, p3) && sameY(p3, p0) {
		return true
	}
	if sameY(p0, p1) && sameX(p1, p2) && sameY(p2, p3) && sameX(p3, p0) {
		return true
	}
	return false
}

func dashKey(d dash) string {
	var b bytes.Buffer
	for i, v := range d.array {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte('@')
	b.WriteString(strconv.FormatFloat(d.phase, 'g', -1, 64))
	return b.String()
}

func colorComponents(c color.Color) []float64 {
	switch v := c.(type) {
	case color.Gray:
		return []float64{float64(v)}
	case color.RGB:
		return []float64{v.R, v.G, v.B}
	case color.CMYK:
		return []float64{v.C, v.M, v.Y, v.K}
	default:
		return nil
	}
}

func (m *machine) parseColor(ops []any, spaceName string) color.Color {
	n := len(ops)
	if n == 0 {
		return m.gs.FillSpace
	}
	if spaceName == "Pattern" {
		if patName, ok := ops[n-1].(pdf.Name); ok {
			if n == 1 {
				return color.PatternColored{Name: patName}
			}
			return color.PatternUncolored{
				Name:       patName,
				Underlying: numericColor(toFloats(ops[:n-1])),
			}
		}
	}
	return numericColor(toFloats(ops))
}

func toFloats(ops []any) []float64 {
	out := make([]float64, len(ops))
	for i := range ops {
		out[i] = num(ops, i)
	}
	return out
}

func numericColor(v []float64) color.Color {
	switch len(v) {
	case 1:
		return color.Gray(v[0])
	case 3:
		return color.RGB{R: v[0], G: v[1], B: v[2]}
	case 4:
		return color.CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}
	default:
		return color.Black
	}
}

func (m *machine) textMove(tx, ty float64) {
	m.ts.LineMatrix = geom.Translate(tx, ty).Mul(m.ts.LineMatrix)
	m.ts.TextMatrix = m.ts.LineMatrix
}

func (m *machine) resolveFont(n pdf.Name) (font.Font, error) {
	obj, ok := m.res.Font[n]
	if !ok {
		return nil, pdf.Errorf("font %q not in resources", n)
	}
	if ref, ok := obj.(pdf.Reference); ok {
		if f, ok := m.ip.fontCache[ref]; ok {
			return f, nil
		}
		dict, err := pdf.GetDict(m.ip.doc, obj)
		if err != nil {
			return nil, err
		}
		f, err := font.ResolveFontDict(m.ip.doc, dict)
		if err != nil {
			return nil, err
		}
		m.ip.fontCache[ref] = f
		return f, nil
	}
	dict, err := pdf.GetDict(m.ip.doc, obj)
	if err != nil {
		return nil, err
	}
	return font.ResolveFontDict(m.ip.doc, dict)
}

// fallbackFont is substituted when a content stream's Tf names a font
// this interpreter could not resolve, per the missing-font rendering
// contract.
var fallbackFont = &font.Mock{}

func (m *machine) showTextArray(arr pdf.Array) {
	for _, item := range arr {
		switch v := item.(type) {
		case pdf.String:
			m.showText(v)
		default:
			if adj, ok := pdf.Number(item); ok {
				d := -adj / 1000 * m.gs.FontSize * m.gs.HScale
				if m.gs.Font != nil && m.gs.Font.IsVertical() {
					m.ts.LineMatrix = geom.Translate(0, d).Mul(m.ts.LineMatrix)
				} else {
					m.ts.LineMatrix = geom.Translate(d, 0).Mul(m.ts.LineMatrix)
				}
				m.ts.TextMatrix = m.ts.LineMatrix
			}
		}
	}
}

// showText renders each CID of s, advancing the text matrix after every
// glyph, per the character rendering contract.
func (m *machine) showText(s pdf.String) {
	f := m.gs.Font
	if f == nil {
		f = fallbackFont
	}
	fs := m.gs.FontSize
	trm := m.ts.TextMatrix.Mul(m.gs.CTM)
	upright := trm[0]*trm[3]*m.gs.HScale > 0 && trm[1]*trm[2] <= 0
	vertical := f.IsVertical()

	tag, mcid, hasMCID := m.mark()

	for _, cid := range f.Decode(s) {
		width := f.CharWidth(cid)
		vx, vy := f.CharDisp(cid)
		adv := width * fs * m.gs.HScale

		var raw geom.Rect
		if vertical {
			vxAbs := vx * fs
			if vxAbs == 0 {
				vxAbs = fs / 2
			}
			vyAbs := vy * fs
			raw = geom.Rect{
				X0: -vxAbs, Y0: vyAbs + m.gs.Rise,
				X1: -vxAbs + fs, Y1: vyAbs + m.gs.Rise + adv,
			}
		} else {
			raw = geom.Rect{
				X0: 0, Y0: f.Descent()*fs + m.gs.Rise,
				X1: adv, Y1: f.Descent()*fs + m.gs.Rise + fs,
			}
		}

		size := raw.Dy()
		if vertical {
			size = raw.Dx()
		}

		text := ""
		hasText := false
		if t, ok := f.ToUnicode(cid); ok {
			text, hasText = t, true
		} else if cid >= 0x20 && cid < 0x7f {
			text, hasText = string(rune(cid)), true
		}
		if !hasText {
			text = unknownGlyphLabel(cid)
		}

		if m.gs.RenderMode != 3 && m.gs.RenderMode != 7 {
			char := arena.ArenaChar{
				BBox:    geom.ApplyRect(trm, raw),
				TextKey: m.a.Intern(text),
				FontKey: m.a.Intern(m.gs.FontName),
				Size:    size,
				Upright: upright,
				Vertical: vertical,
				Adv:     adv,
				Matrix:  trm,
				MCID:    mcid, HasMCID: hasMCID,
				NColor: m.a.InternColor(colorComponents(m.gs.FillSpace)),
				SColor: m.a.InternColor(colorComponents(m.gs.StrokeSpace)),
			}
			if tag != "" {
				char.Tag, char.HasTag = m.a.Intern(tag), true
			}
			m.a.NewChar(char)
		}

		step := adv + m.gs.CharSpace*m.gs.HScale
		if cid == 32 {
			step += m.gs.WordSpace * m.gs.HScale
		}
		if vertical {
			m.ts.TextMatrix = geom.Translate(0, step).Mul(m.ts.TextMatrix)
		} else {
			m.ts.TextMatrix = geom.Translate(step, 0).Mul(m.ts.TextMatrix)
		}
		trm = m.ts.TextMatrix.Mul(m.gs.CTM)
	}
}

func unknownGlyphLabel(cid font.CID) string {
	return "(cid:" + strconv.FormatInt(int64(cid), 10) + ")"
}

// doXObject dispatches a "Do" operator to a Form or Image XObject.
func (m *machine) doXObject(n pdf.Name) error {
	obj, ok := m.res.XObject[n]
	if !ok {
		return &pdf.ResourceError{Kind: "XObject", Name: string(n), Err: pdf.Errorf("not found")}
	}

	ref, isRef := obj.(pdf.Reference)
	stream, err := pdf.GetStream(m.ip.doc, obj)
	if err != nil {
		return &pdf.ResourceError{Kind: "XObject", Name: string(n), Err: err}
	}
	if stream == nil {
		return &pdf.ResourceError{Kind: "XObject", Name: string(n), Err: pdf.Errorf("null stream")}
	}

	subtype, _ := pdf.GetName(m.ip.doc, stream.Dict["Subtype"])
	switch subtype {
	case "Image":
		return m.doImage(n, stream)
	case "Form":
		if isRef {
			if m.cycle[ref] {
				return &pdf.CycleError{Name: n}
			}
			m.cycle[ref] = true
			defer delete(m.cycle, ref)
		}
		return m.doForm(n, stream)
	default:
		return &pdf.ResourceError{Kind: "XObject", Name: string(n), Err: pdf.Errorf("unsupported subtype %q", subtype)}
	}
}

func (m *machine) doForm(n pdf.Name, stream *pdf.Stream) error {
	formMatrix, err := geom.GetMatrix(m.ip.doc, stream.Dict["Matrix"])
	if err != nil {
		formMatrix = geom.Identity
	}
	formBBox, _ := geom.GetRect(m.ip.doc, stream.Dict["BBox"])

	newCTM := formMatrix.Mul(m.gs.CTM)

	res := m.res
	if stream.Dict["Resources"] != nil {
		if r, err := pdf.ExtractResources(m.ip.doc, stream.Dict["Resources"]); err == nil {
			res = r
		}
	}

	data, err := pdf.DecodeStream(m.ip.doc, stream, 0)
	if err != nil {
		return &pdf.DecodeError{Err: err}
	}

	sub := &machine{
		ip: m.ip, a: m.a, res: res,
		gs:    m.gs.clone(),
		ts:    newTextState(),
		cycle: m.cycle,
	}
	sub.gs.CTM = newCTM

	fig := m.a.BeginFigure(m.a.Intern(string(n)), geom.ApplyRect(newCTM, formBBox), newCTM)
	if err := sub.run(bytes.NewReader(data)); err != nil && err != io.EOF {
		m.a.EndFigure(fig)
		return err
	}
	m.a.EndFigure(fig)
	return nil
}

func (m *machine) doImage(n pdf.Name, stream *pdf.Stream) error {
	unit := geom.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
	bbox := geom.ApplyRect(m.gs.CTM, unit)

	w, _ := pdf.GetInteger(m.ip.doc, stream.Dict["Width"])
	h, _ := pdf.GetInteger(m.ip.doc, stream.Dict["Height"])
	mask, _ := pdf.GetBoolean(m.ip.doc, stream.Dict["ImageMask"])
	bits, _ := pdf.GetInteger(m.ip.doc, stream.Dict["BitsPerComponent"])

	var csKeys []arena.StringKey
	switch cs := stream.Dict["ColorSpace"].(type) {
	case pdf.Name:
		csKeys = []arena.StringKey{m.a.Intern(string(cs))}
	case pdf.Array:
		for _, item := range cs {
			if nm, ok := item.(pdf.Name); ok {
				csKeys = append(csKeys, m.a.Intern(string(nm)))
			}
		}
	}

	fig := m.a.BeginFigure(m.a.Intern(string(n)), bbox, m.gs.CTM)
	m.a.NewImage(arena.ArenaImage{
		NameKey: m.a.Intern(string(n)), BBox: bbox,
		SrcWidth: int(w), SrcHeight: int(h),
		ImageMask: bool(mask), Bits: int(bits),
		ColorSpaceKeys: csKeys,
	})
	m.a.EndFigure(fig)
	return nil
}

// inlineImage consumes a "BI ... ID ... EI" run: the dictionary between
// BI and ID is collected through the regular tokenizer, the raw sample
// bytes between ID and EI are not (they are arbitrary binary and must
// not be run through string/name escaping).
func (m *machine) inlineImage(sc *scanner) error {
	dict := pdf.Dict{}
	for {
		tok, err := sc.token()
		if err != nil {
			return err
		}
		if tok == operator("ID") {
			break
		}
		key, ok := tok.(pdf.Name)
		if !ok {
			continue
		}
		val, err := sc.Object()
		if err != nil {
			return err
		}
		if obj, ok := val.(pdf.Object); ok {
			dict[inlineImageKey(key)] = obj
		}
	}

	data, err := sc.readUntilEI()
	if err != nil {
		return err
	}

	// inline image dictionary entries are always direct objects (the PDF
	// spec forbids indirect references inside BI/ID), so a plain type
	// assertion is enough here.
	w, _ := dict["Width"].(pdf.Integer)
	h, _ := dict["Height"].(pdf.Integer)

	unit := geom.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
	bbox := geom.ApplyRect(m.gs.CTM, unit)
	fig := m.a.BeginFigure(m.a.Intern("inline"), bbox, m.gs.CTM)
	m.a.NewImage(arena.ArenaImage{
		NameKey: m.a.Intern("inline"), BBox: bbox,
		SrcWidth: int(w), SrcHeight: int(h),
	})
	m.a.EndFigure(fig)
	_ = data
	return nil
}

// inlineImageKey expands the handful of abbreviated inline-image
// dictionary keys to their regular XObject equivalents.
func inlineImageKey(k pdf.Name) pdf.Name {
	switch k {
	case "W":
		return "Width"
	case "H":
		return "Height"
	case "BPC":
		return "BitsPerComponent"
	case "CS":
		return "ColorSpace"
	case "IM":
		return "ImageMask"
	case "D":
		return "Decode"
	case "DP":
		return "DecodeParms"
	case "F":
		return "Filter"
	case "I":
		return "Interpolate"
	default:
		return k
	}
}
