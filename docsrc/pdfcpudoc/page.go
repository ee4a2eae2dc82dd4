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

package pdfcpudoc

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdflayout.dev/pdf"
)

type page struct {
	doc      *Document
	dict     types.Dict
	mediaBox [4]float64
	rotate   int
}

// MediaBox implements [pdf.Page].
func (p *page) MediaBox() [4]float64 { return p.mediaBox }

// Rotate implements [pdf.Page].
func (p *page) Rotate() int { return p.rotate }

// Resources implements [pdf.Page].
func (p *page) Resources() (*pdf.Resources, error) {
	resources := objectRefOrNative(p.dict["Resources"])
	return pdf.ExtractResources(p.doc, resources)
}

// Content implements [pdf.Page], concatenating every content stream with a
// newline so that an operator never spans a stream boundary, matching the
// PDF spec's treatment of an array-valued /Contents entry as a single
// logical stream.
func (p *page) Content() ([]byte, error) {
	contents, ok := p.dict["Contents"]
	if !ok || contents == nil {
		return nil, nil
	}

	var refs []types.IndirectRef
	switch v := contents.(type) {
	case types.IndirectRef:
		refs = append(refs, v)
	case *types.IndirectRef:
		refs = append(refs, *v)
	case types.Array:
		for _, item := range v {
			switch ir := item.(type) {
			case types.IndirectRef:
				refs = append(refs, ir)
			case *types.IndirectRef:
				refs = append(refs, *ir)
			}
		}
	default:
		return nil, &pdf.StructuralError{Err: fmt.Errorf("unsupported /Contents type %T", contents)}
	}

	var out []byte
	for i, ref := range refs {
		sd, _, err := p.doc.ctx.DereferenceStreamDict(ref)
		if err != nil {
			return nil, fmt.Errorf("pdfcpudoc: content stream %d: %w", i, err)
		}
		if sd == nil {
			continue
		}
		if err := sd.Decode(); err != nil {
			return nil, &pdf.DecodeError{Err: err}
		}
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, sd.Content...)
	}
	return out, nil
}
