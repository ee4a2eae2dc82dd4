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

package pdf

// Document is the capability a parsed PDF file must provide: object
// resolution (via the embedded [Getter]) and access to its pages. A
// Document never parses content streams or interprets resources itself;
// that is the job of the content/interp/layout packages further up the
// stack. See pdflayout.dev/pdf/docsrc/pdfcpudoc for the adapter this
// module ships.
type Document interface {
	Getter

	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the page at the given 1-based page number.
	Page(pageNumber int) (Page, error)

	// DecodeStream returns the filter-decoded bytes of s. numFilters, if
	// positive, limits decoding to the first numFilters filters in the
	// stream's /Filter chain (used by callers that want to inspect a
	// stream's bytes after only some of its filters, e.g. to recognise an
	// image's final encoding without decompressing it).
	DecodeStream(s *Stream, numFilters int) ([]byte, error)
}

// Page is a single page of a [Document]: its geometry and the resources
// and content streams an [interp.Interpreter] needs to render it.
type Page interface {
	// MediaBox returns the page's media box in default user space units,
	// as [llx, lly, urx, ury], inherited from an ancestor Pages node if
	// the page dictionary does not set one directly.
	MediaBox() [4]float64

	// Rotate returns the page's inherited /Rotate value: a multiple of
	// 90, normalised to 0, 90, 180 or 270.
	Rotate() int

	// Resources returns the page's (inherited) resource dictionary,
	// decoded into the fixed set of categories content-stream operators
	// can reference.
	Resources() (*Resources, error)

	// Content returns the page's content stream bytes, already
	// filter-decoded and, if the page has more than one content stream,
	// concatenated with a separating newline (per the PDF spec's
	// requirement that operators never span a content-stream boundary).
	Content() ([]byte, error)
}

// Resources is a page's (or Form XObject's) /Resources dictionary, split
// into the fixed set of categories the content-stream operators address
// by name: Tf/Do/gs/scn/sh/BDC all look an operand name up in exactly one
// of these maps. Entries are left unresolved (Object, possibly a
// Reference) since not every resource needs to be loaded eagerly.
type Resources struct {
	Font       map[Name]Object
	XObject    map[Name]Object
	ColorSpace map[Name]Object
	ExtGState  map[Name]Object
	Pattern    map[Name]Object
	Shading    map[Name]Object
	ProcSet    map[Name]Object

	// Properties holds the /Properties sub-dictionary that BDC/DP's
	// marked-content property-list operand names resolve against.
	Properties map[Name]Object
}

// ExtractResources reads a /Resources dictionary (or, if obj is null, an
// empty [Resources]) into the category maps content-stream operators
// expect.
func ExtractResources(r Getter, obj Object) (*Resources, error) {
	dict, err := GetDict(r, obj)
	if err != nil {
		return nil, err
	}

	res := &Resources{}
	fields := []struct {
		key string
		dst *map[Name]Object
	}{
		{"Font", &res.Font},
		{"XObject", &res.XObject},
		{"ColorSpace", &res.ColorSpace},
		{"ExtGState", &res.ExtGState},
		{"Pattern", &res.Pattern},
		{"Shading", &res.Shading},
		{"Properties", &res.Properties},
	}
	for _, f := range fields {
		sub, err := GetDict(r, dict[Name(f.key)])
		if err != nil {
			return nil, &ResourceError{Kind: f.key, Err: err}
		}
		m := make(map[Name]Object, len(sub))
		for k, v := range sub {
			m[k] = v
		}
		*f.dst = m
	}

	if arr, err := GetArray(r, dict["ProcSet"]); err == nil {
		procSet := make(map[Name]Object, len(arr))
		for _, item := range arr {
			if name, ok := item.(Name); ok {
				procSet[name] = Boolean(true)
			}
		}
		res.ProcSet = procSet
	}

	return res, nil
}
