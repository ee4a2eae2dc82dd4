// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package pdfcpudoc backs the pdf.Document/pdf.Page/pdf.Getter contract
// with github.com/pdfcpu/pdfcpu, so that this module never has to parse
// cross-reference tables, object streams or stream filters itself.
package pdfcpudoc

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdflayout.dev/pdf"
)

// Document wraps a pdfcpu *model.Context to implement pdf.Document.
type Document struct {
	ctx *model.Context
}

// Open reads the PDF file at path and returns a [Document] backed by it.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("pdfcpudoc: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("pdfcpudoc: %w", err)
	}
	if err := api.OptimizeContext(ctx); err != nil {
		return nil, fmt.Errorf("pdfcpudoc: %w", err)
	}

	return &Document{ctx: ctx}, nil
}

// PageCount implements [pdf.Document].
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Page implements [pdf.Document].
func (d *Document) Page(pageNumber int) (pdf.Page, error) {
	if pageNumber < 1 || pageNumber > d.ctx.PageCount {
		return nil, &pdf.StructuralError{
			Err: fmt.Errorf("page number %d out of range [1, %d]", pageNumber, d.ctx.PageCount),
		}
	}

	pageDict, _, attrs, err := d.ctx.PageDict(pageNumber, false)
	if err != nil {
		return nil, fmt.Errorf("pdfcpudoc: page %d: %w", pageNumber, err)
	}

	mediaBox := [4]float64{0, 0, 612, 792}
	if attrs != nil && attrs.MediaBox != nil {
		mediaBox = [4]float64{
			attrs.MediaBox.LL.X, attrs.MediaBox.LL.Y,
			attrs.MediaBox.UR.X, attrs.MediaBox.UR.Y,
		}
	}

	rotate := 0
	if attrs != nil {
		rotate = ((attrs.Rotate % 360) + 360) % 360
	} else if rot, ok := pageDict["Rotate"]; ok {
		if n, ok := rot.(types.Integer); ok {
			rotate = ((int(n) % 360) + 360) % 360
		}
	}

	return &page{doc: d, dict: pageDict, mediaBox: mediaBox, rotate: rotate}, nil
}

// Get implements [pdf.Getter].
func (d *Document) Get(ref pdf.Reference) (pdf.Native, error) {
	obj, err := d.ctx.XRefTable.Dereference(*types.NewIndirectRef(int(ref.Number()), int(ref.Generation())))
	if err != nil {
		return nil, err
	}
	return fromPDFCPU(obj)
}

// DecodeStream implements [pdf.Document]. When numFilters is 0 or covers
// the stream's whole /Filter chain, decoding is delegated to pdfcpu's own
// (complete) filter implementation; a smaller positive numFilters walks
// the chain by hand so that callers probing a stream's final encoding
// (e.g. to recognise a DCT-encoded image without inflating it first) can
// stop early.
func (d *Document) DecodeStream(s *pdf.Stream, numFilters int) ([]byte, error) {
	sd, raw, err := streamDictFor(d.ctx, s)
	if err != nil {
		return nil, err
	}

	total := len(sd.FilterPipeline)
	if numFilters <= 0 || numFilters >= total {
		if err := sd.Decode(); err != nil {
			return nil, &pdf.DecodeError{Err: err}
		}
		return sd.Content, nil
	}

	return decodeFilters(raw, sd.FilterPipeline[:numFilters])
}
