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

package driver

import (
	"context"
	"strings"
	"testing"

	"pdflayout.dev/pdf"
)

// mockDoc is a one-page document with no fonts and no indirect objects,
// whose content stream each test supplies, used to exercise the driver
// end to end without a real PDF file on disk.
type mockDoc struct {
	content []byte
}

func (d *mockDoc) PageCount() int { return 1 }

func (d *mockDoc) Page(pageNumber int) (pdf.Page, error) {
	if pageNumber != 1 {
		return nil, pdf.Errorf("mockDoc: no page %d", pageNumber)
	}
	return &mockPage{content: d.content}, nil
}

func (d *mockDoc) Get(ref pdf.Reference) (pdf.Native, error) { return nil, pdf.Errorf("mockDoc: no objects") }

func (d *mockDoc) DecodeStream(s *pdf.Stream, numFilters int) ([]byte, error) {
	return nil, pdf.Errorf("mockDoc: no streams")
}

type mockPage struct {
	content []byte
}

func (p *mockPage) MediaBox() [4]float64 { return [4]float64{0, 0, 200, 200} }
func (p *mockPage) Rotate() int          { return 0 }
func (p *mockPage) Resources() (*pdf.Resources, error) {
	return &pdf.Resources{Font: map[pdf.Name]pdf.Object{}}, nil
}
func (p *mockPage) Content() ([]byte, error) { return p.content, nil }

func TestExtractTextRunsAllPages(t *testing.T) {
	doc := &mockDoc{content: []byte("1 0 0 RG 0 0 1 150 10 re f\n")}
	d := New(doc, DefaultOptions())
	text, err := d.ExtractText(context.Background())
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	// no Tj/TJ operators in this content stream, so no text is produced,
	// but the page must still render and analyze without error.
	if text != "" {
		t.Errorf("ExtractText = %q, want empty (no text operators)", text)
	}
}

func TestExtractPagesStopsOnCancelledContext(t *testing.T) {
	doc := &mockDoc{content: []byte("")}
	d := New(doc, DefaultOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sawErr bool
	for _, err := range d.ExtractPages(ctx) {
		if err != nil {
			sawErr = true
		}
		break
	}
	if !sawErr {
		t.Error("expected ExtractPages to yield an error for a cancelled context")
	}
}

func TestExtractTablesOnEmptyPageFindsNone(t *testing.T) {
	doc := &mockDoc{content: []byte("")}
	d := New(doc, DefaultOptions())
	tables, err := d.ExtractTables(context.Background(), []int{1}, DefaultOptions().TableSettings)
	if err != nil {
		t.Fatalf("ExtractTables: %v", err)
	}
	if len(tables) != 1 || len(tables[0]) != 0 {
		t.Errorf("ExtractTables = %v, want one page with zero tables", tables)
	}
}

func TestExtractTextAllPagesMatchesSequential(t *testing.T) {
	doc := &mockDoc{content: []byte("")}
	got, err := ExtractTextAllPages(context.Background(), doc, DefaultOptions(), 2)
	if err != nil {
		t.Fatalf("ExtractTextAllPages: %v", err)
	}
	if len(got) != 1 || strings.TrimSpace(got[0]) != "" {
		t.Errorf("ExtractTextAllPages = %v, want one empty page", got)
	}
	want, err := New(doc, DefaultOptions()).ExtractText(context.Background())
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if len(got) == 1 && got[0] != want {
		t.Errorf("ExtractTextAllPages page 1 = %q, sequential ExtractText = %q", got[0], want)
	}
}
