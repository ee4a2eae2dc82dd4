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

package interp

import (
	"bytes"
	"io"
	"testing"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/arena"
)

// fakeDoc is an in-memory [pdf.Document] with a single page, built
// directly from Go values rather than parsed bytes: every object is a
// direct (never indirect) value, so DecodeStream only has to hand back
// the bytes it was given.
type fakeDoc struct {
	page *fakePage
}

func (d *fakeDoc) Get(ref pdf.Reference) (pdf.Native, error) {
	return nil, pdf.Errorf("fakeDoc has no indirect objects")
}
func (d *fakeDoc) PageCount() int { return 1 }
func (d *fakeDoc) Page(n int) (pdf.Page, error) {
	if n != 1 {
		return nil, pdf.Errorf("no such page")
	}
	return d.page, nil
}
func (d *fakeDoc) DecodeStream(s *pdf.Stream, numFilters int) ([]byte, error) {
	return io.ReadAll(s.R)
}

type fakePage struct {
	mediaBox [4]float64
	res      *pdf.Resources
	content  []byte
}

func (p *fakePage) MediaBox() [4]float64 { return p.mediaBox }
func (p *fakePage) Rotate() int          { return 0 }
func (p *fakePage) Resources() (*pdf.Resources, error) {
	return p.res, nil
}
func (p *fakePage) Content() ([]byte, error) { return p.content, nil }

func newTestDoc(content string, res *pdf.Resources) *fakeDoc {
	if res == nil {
		res = &pdf.Resources{}
	}
	return &fakeDoc{page: &fakePage{
		mediaBox: [4]float64{0, 0, 612, 792},
		res:      res,
		content:  []byte(content),
	}}
}

func simpleFontDict() pdf.Dict {
	widths := make(pdf.Array, 256-32)
	for i := range widths {
		widths[i] = pdf.Integer(500)
	}
	return pdf.Dict{
		"Subtype":   pdf.Name("Type1"),
		"FirstChar": pdf.Integer(32),
		"Widths":    widths,
	}
}

func TestRenderPageLineAndRect(t *testing.T) {
	content := "1 0 0 RG\n10 10 m 100 10 l S\n0 0 1 rg\n200 10 50 50 re f\n"
	doc := newTestDoc(content, nil)

	ip := New(doc)
	page, err := ip.RenderPage(1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if len(ip.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", ip.Warnings)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}

	line, ok := page.Items[0].(*arena.ArenaLine)
	if !ok {
		t.Fatalf("Items[0] has type %T, want *ArenaLine", page.Items[0])
	}
	if !line.Stroke || line.Fill {
		t.Errorf("line paint flags = stroke=%v fill=%v, want stroke only", line.Stroke, line.Fill)
	}

	rect, ok := page.Items[1].(*arena.ArenaRect)
	if !ok {
		t.Fatalf("Items[1] has type %T, want *ArenaRect", page.Items[1])
	}
	if rect.Fill == false {
		t.Error("rect should be filled")
	}
	if rect.BBox.X0 != 200 || rect.BBox.Y0 != 10 || rect.BBox.X1 != 250 || rect.BBox.Y1 != 60 {
		t.Errorf("rect.BBox = %+v, want (200,10,250,60)", rect.BBox)
	}
}

func TestRenderPageCurlyPathEmitsCurve(t *testing.T) {
	content := "10 10 m 20 40 60 40 70 10 c S\n"
	doc := newTestDoc(content, nil)
	ip := New(doc)
	page, err := ip.RenderPage(1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(page.Items))
	}
	if _, ok := page.Items[0].(*arena.ArenaCurve); !ok {
		t.Errorf("Items[0] has type %T, want *ArenaCurve", page.Items[0])
	}
}

func TestRenderPageShowsText(t *testing.T) {
	res := &pdf.Resources{
		Font: map[pdf.Name]pdf.Object{"F1": simpleFontDict()},
	}
	content := "BT /F1 12 Tf 72 700 Td (Hi) Tj ET\n"
	doc := newTestDoc(content, res)

	ip := New(doc)
	page, err := ip.RenderPage(1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if len(ip.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", ip.Warnings)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2 chars", len(page.Items))
	}
	for i, want := range []string{"H", "i"} {
		ch, ok := page.Items[i].(*arena.ArenaChar)
		if !ok {
			t.Fatalf("Items[%d] has type %T, want *ArenaChar", i, page.Items[i])
		}
		// the font has no ToUnicode map, so the printable-ASCII fallback
		// supplies each char's text; chars must also advance left to right.
		if got := ip.Arena().Resolve(ch.TextKey); got != want {
			t.Errorf("char %d text = %q, want %q", i, got, want)
		}
		if i > 0 {
			prev := page.Items[i-1].(*arena.ArenaChar)
			if ch.BBox.X0 <= prev.BBox.X0 {
				t.Errorf("char %d (%q) did not advance past char %d", i, want, i-1)
			}
		}
	}
}

func TestRenderPageUnknownOperatorWarns(t *testing.T) {
	doc := newTestDoc("1 2 zz\n", nil)
	ip := New(doc)
	if _, err := ip.RenderPage(1); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if len(ip.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(ip.Warnings))
	}
	if _, ok := ip.Warnings[0].(*pdf.OperatorError); !ok {
		t.Errorf("Warnings[0] has type %T, want *pdf.OperatorError", ip.Warnings[0])
	}
}

func TestRenderPageFormXObjectNests(t *testing.T) {
	formContent := []byte("0 0 10 10 re f\n")
	formDict := pdf.Dict{
		"Subtype":   pdf.Name("Form"),
		"Matrix":    pdf.Array{pdf.Real(1), pdf.Real(0), pdf.Real(0), pdf.Real(1), pdf.Real(0), pdf.Real(0)},
		"BBox":      pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(10), pdf.Integer(10)},
	}
	form := &pdf.Stream{Dict: formDict, R: bytes.NewReader(formContent)}

	res := &pdf.Resources{
		XObject: map[pdf.Name]pdf.Object{"Fm1": form},
	}
	doc := newTestDoc("q 1 0 0 1 5 5 cm /Fm1 Do Q\n", res)

	ip := New(doc)
	page, err := ip.RenderPage(1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1 figure", len(page.Items))
	}
	fig, ok := page.Items[0].(*arena.ArenaFigure)
	if !ok {
		t.Fatalf("Items[0] has type %T, want *ArenaFigure", page.Items[0])
	}
	if len(fig.Items) != 1 {
		t.Errorf("len(fig.Items) = %d, want 1", len(fig.Items))
	}
}
