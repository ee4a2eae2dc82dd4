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
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/filter"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/ascii85"
)

// decodeFilters applies a prefix of a stream's filter chain by hand. Every
// filter but ASCII85Decode is handed to pdfcpu's own filter package, which
// already has to exist for this module's Document adapter to work at all;
// ASCII85Decode goes through this module's own ascii85 package instead,
// since it is a plain textual encoding with no PDF-specific quirks and
// giving it real exercise here avoids carrying a decoder nothing calls.
func decodeFilters(raw []byte, chain []types.PDFFilter) ([]byte, error) {
	data := raw
	for _, f := range chain {
		var err error
		switch f.Name {
		case filter.ASCII85:
			r, decErr := ascii85.Decode(bytes.NewReader(data))
			if decErr != nil {
				return nil, &pdf.DecodeError{Err: decErr}
			}
			data, err = readAll(r)
		default:
			var fl filter.Filter
			fl, err = filter.NewFilter(f.Name, f.DecodeParms)
			if err == nil {
				var r io.Reader
				r, err = fl.Decode(bytes.NewReader(data))
				if err == nil {
					data, err = readAll(r)
				}
			}
		}
		if err != nil {
			return nil, &pdf.DecodeError{Err: err}
		}
	}
	return data, nil
}

func readAll(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	return io.ReadAll(r)
}
