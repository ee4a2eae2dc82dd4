// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
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

package cmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/postscript"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/font/charcode"
)

// ExtractToUnicode extracts a ToUnicode CMap from a resource dictionary
// entry. If cs is non-nil, it overrides the code-space range declared
// inside the CMap stream (used when the surrounding font's own encoding is
// known to be narrower than what the stream claims).
func ExtractToUnicode(r pdf.Getter, obj pdf.Object, cs charcode.CodeSpaceRange) (*ToUnicode, error) {
	stm, err := pdf.GetStream(r, obj)
	if err != nil {
		return nil, err
	} else if stm == nil {
		return nil, nil
	}
	data, err := pdf.DecodeStream(r, stm, 0)
	if err != nil {
		return nil, err
	}
	return ReadToUnicode(bytes.NewReader(data), cs)
}

// ReadToUnicode reads a ToUnicode CMap (PostScript CMap program syntax).
// If cs is non-nil, it overrides the code-space range declared inside the
// stream.
func ReadToUnicode(r io.Reader, cs charcode.CodeSpaceRange) (*ToUnicode, error) {
	raw, err := postscript.ReadCMap(r)
	if err != nil {
		return nil, &pdf.CMapParseError{Err: err}
	}

	if tp, ok := raw["CMapType"].(postscript.Integer); ok && tp != 2 {
		return nil, &pdf.CMapParseError{Err: fmt.Errorf("invalid CMapType: %v", tp)}
	}
	codeMap, ok := raw["CodeMap"].(*postscript.CMapInfo)
	if !ok {
		return nil, &pdf.CMapParseError{Err: fmt.Errorf("unsupported CMap format")}
	}

	if cs == nil {
		var csRanges charcode.CodeSpaceRange
		for _, r := range codeMap.CodeSpaceRanges {
			csRanges = append(csRanges, charcode.Range{Low: r.Low, High: r.High})
		}
		cs = csRanges
	}

	res := &ToUnicode{CS: cs}

	for _, c := range codeMap.BfChars {
		code, k := cs.Decode(c.Src)
		if code < 0 || len(c.Src) != k {
			return nil, &pdf.CMapParseError{Err: fmt.Errorf("tounicode: invalid code <%02x>", c.Src)}
		}
		b, err := toUTF16BEBytes(c.Dst)
		if err != nil {
			return nil, err
		}
		res.addSingle(code, utf16BEToString(b))
	}
	for _, r := range codeMap.BfRanges {
		low, k := cs.Decode(r.Low)
		if low < 0 || len(r.Low) != k {
			return nil, &pdf.CMapParseError{Err: fmt.Errorf("tounicode: invalid first code <%02x>", r.Low)}
		}
		high, k := cs.Decode(r.High)
		if high < 0 || len(r.High) != k {
			return nil, &pdf.CMapParseError{Err: fmt.Errorf("tounicode: invalid last code <%02x>", r.High)}
		}

		switch dst := r.Dst.(type) {
		case postscript.String:
			b, err := toUTF16BEBytes(dst)
			if err != nil {
				return nil, err
			}
			res.Ranges = append(res.Ranges, RangeTUEntry{First: low, Last: high, Bytes: b})
		case postscript.Array:
			if len(dst) != int(high)-int(low)+1 {
				return nil, &pdf.CMapParseError{Err: errors.New("invalid bfrange array length")}
			}
			for code := low; code <= high; code++ {
				b, err := toUTF16BEBytes(dst[code-low])
				if err != nil {
					return nil, err
				}
				res.addSingle(code, utf16BEToString(b))
			}
		}
	}

	return res, nil
}

func toUTF16BEBytes(obj postscript.Object) ([]byte, error) {
	dst, ok := obj.(postscript.String)
	if !ok || len(dst)%2 != 0 {
		return nil, &pdf.CMapParseError{Err: fmt.Errorf("invalid ToUnicode CMap destination %T", obj)}
	}
	return []byte(dst), nil
}
