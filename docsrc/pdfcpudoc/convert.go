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
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdflayout.dev/pdf"
)

// fromPDFCPU converts a pdfcpu object value into the corresponding
// pdf.Native value. Streams are returned with their raw (not yet
// filter-decoded) bytes; pdf.DecodeStream applies the filter chain later,
// on demand.
func fromPDFCPU(obj types.Object) (pdf.Native, error) {
	switch v := obj.(type) {
	case nil:
		return nil, nil
	case types.Dict:
		return dictFromPDFCPU(v), nil
	case types.Array:
		return arrayFromPDFCPU(v), nil
	case types.StreamDict:
		return streamFromPDFCPU(&v)
	case *types.StreamDict:
		return streamFromPDFCPU(v)
	case types.Name:
		return pdf.Name(v), nil
	case types.StringLiteral:
		b, err := types.Unescape(v.Value())
		if err != nil {
			return nil, &pdf.DecodeError{Err: err}
		}
		return pdf.String(b), nil
	case types.HexLiteral:
		b, err := v.Bytes()
		if err != nil {
			return nil, &pdf.DecodeError{Err: err}
		}
		return pdf.String(b), nil
	case types.Integer:
		return pdf.Integer(v), nil
	case types.Float:
		return pdf.Real(v), nil
	case types.Boolean:
		return pdf.Boolean(v), nil
	default:
		return nil, &pdf.StructuralError{Err: fmt.Errorf("pdfcpudoc: unsupported object type %T", obj)}
	}
}

func dictFromPDFCPU(d types.Dict) pdf.Dict {
	out := make(pdf.Dict, len(d))
	for k, v := range d {
		out[pdf.Name(k)] = objectRefOrNative(v)
	}
	return out
}

func arrayFromPDFCPU(a types.Array) pdf.Array {
	out := make(pdf.Array, len(a))
	for i, v := range a {
		out[i] = objectRefOrNative(v)
	}
	return out
}

// objectRefOrNative converts a dict/array entry, preserving indirect
// references rather than resolving them eagerly: resource dictionaries in
// particular are walked lazily, entry by entry, as operators need them.
func objectRefOrNative(obj types.Object) pdf.Object {
	switch v := obj.(type) {
	case types.IndirectRef:
		return pdf.NewReference(uint32(v.ObjectNumber), uint16(v.GenerationNumber))
	case *types.IndirectRef:
		return pdf.NewReference(uint32(v.ObjectNumber), uint16(v.GenerationNumber))
	default:
		native, err := fromPDFCPU(obj)
		if err != nil {
			// A value that fails to convert is dropped rather than
			// failing the whole containing dict/array; callers see a
			// missing entry, which every resource lookup already treats
			// as "not present" rather than a hard error.
			return nil
		}
		return native
	}
}

func streamFromPDFCPU(sd *types.StreamDict) (*pdf.Stream, error) {
	dict := dictFromPDFCPU(sd.Dict)
	return &pdf.Stream{
		Dict: dict,
		R:    bytes.NewReader(sd.Raw),
	}, nil
}

func streamDictFor(ctx *model.Context, s *pdf.Stream) (*types.StreamDict, []byte, error) {
	raw, err := readAll(s.R)
	if err != nil {
		return nil, nil, err
	}

	names := filterNames(s.Dict["Filter"])
	parms := decodeParms(s.Dict["DecodeParms"])
	if parms == nil {
		parms = decodeParms(s.Dict["DP"])
	}

	filters := make([]types.PDFFilter, len(names))
	for i, name := range names {
		var p types.Dict
		if i < len(parms) {
			p = parms[i]
		}
		filters[i] = types.PDFFilter{Name: name, DecodeParms: p}
	}

	sd := &types.StreamDict{
		Dict:           make(types.Dict),
		Raw:            raw,
		FilterPipeline: filters,
	}
	return sd, raw, nil
}

func filterNames(obj pdf.Object) []string {
	switch f := obj.(type) {
	case pdf.Name:
		return []string{string(f)}
	case pdf.Array:
		var names []string
		for _, item := range f {
			if name, ok := item.(pdf.Name); ok {
				names = append(names, string(name))
			}
		}
		return names
	}
	return nil
}

// decodeParms converts a /DecodeParms entry (a single dict, or an array
// with one slot per filter, nulls allowed) into pdfcpu's types.Dict form.
func decodeParms(obj pdf.Object) []types.Dict {
	switch v := obj.(type) {
	case pdf.Dict:
		return []types.Dict{toPDFCPUDict(v)}
	case pdf.Array:
		out := make([]types.Dict, len(v))
		for i, item := range v {
			if d, ok := item.(pdf.Dict); ok {
				out[i] = toPDFCPUDict(d)
			}
		}
		return out
	}
	return nil
}

// toPDFCPUDict converts a pdf.Dict back into pdfcpu's types.Dict, for the
// handful of scalar DecodeParms entries (Predictor, Colors,
// BitsPerComponent, Columns, EarlyChange) pdfcpu's filters read.
func toPDFCPUDict(d pdf.Dict) types.Dict {
	out := make(types.Dict, len(d))
	for k, v := range d {
		switch x := v.(type) {
		case pdf.Integer:
			out[string(k)] = types.Integer(x)
		case pdf.Real:
			out[string(k)] = types.Float(x)
		case pdf.Boolean:
			out[string(k)] = types.Boolean(x)
		case pdf.Name:
			out[string(k)] = types.Name(x)
		}
	}
	return out
}
