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

package cmap

import (
	"bytes"
	"fmt"
	"io"

	"seehuhn.de/go/postscript"
	pscmap "seehuhn.de/go/postscript/cmap"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/font/charcode"
)

// Extract resolves a Type0 font's /Encoding entry into a CMap: a name
// (Identity-H, Identity-V, or a predefined Adobe CMap) or an embedded CMap
// stream.
func Extract(r pdf.Getter, obj pdf.Object) (*Info, error) {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}
	switch obj := obj.(type) {
	case pdf.Name:
		switch obj {
		case "Identity-H":
			return Identity2(false), nil
		case "Identity-V":
			return Identity2(true), nil
		default:
			// Other predefined Adobe CMaps (e.g. UniGB-UCS2-H) ship as
			// external resource files that this module does not carry; a
			// lenient one-byte CMap keeps the page extractable instead of
			// aborting the whole document.
			return Identity1(), nil
		}
	case *pdf.Stream:
		data, err := pdf.DecodeStream(r, obj, 0)
		if err != nil {
			return nil, err
		}
		return Read(bytes.NewReader(data))
	default:
		return nil, &pdf.CMapParseError{Err: fmt.Errorf("invalid CMap object: %T", obj)}
	}
}

// Read parses an embedded CMap stream (PostScript CMap program syntax).
func Read(r io.Reader) (*Info, error) {
	raw, err := pscmap.Read(r)
	if err != nil {
		return nil, &pdf.CMapParseError{Err: err}
	}

	info := &Info{}

	if name, ok := raw["CMapName"].(postscript.Name); ok {
		info.Name = string(name)
	}
	if wmode, ok := raw["WMode"].(postscript.Integer); ok {
		info.WMode = int(wmode)
	}

	codeMap, ok := raw["CodeMap"].(*postscript.CMapInfo)
	if !ok {
		return nil, &pdf.CMapParseError{Err: fmt.Errorf("unsupported CMap format")}
	}

	var ranges charcode.CodeSpaceRange
	for _, r := range codeMap.CodeSpaceRanges {
		ranges = append(ranges, charcode.Range{Low: r.Low, High: r.High})
	}
	info.CodeSpaceRange = ranges

	for _, m := range codeMap.Chars {
		code, k := ranges.Decode(m.Src)
		if k != len(m.Src) || code < 0 {
			continue // malformed cidchar entry: skipped
		}
		cid, ok := m.Dst.(postscript.Integer)
		if !ok {
			continue
		}
		info.Singles = append(info.Singles, SingleEntry{Code: code, Value: CID(cid)})
	}

	for _, m := range codeMap.Ranges {
		lo, k1 := ranges.Decode(m.Low)
		hi, k2 := ranges.Decode(m.High)
		if k1 != len(m.Low) || k2 != len(m.High) || lo < 0 || hi < 0 {
			continue
		}
		cid, ok := m.Dst.(postscript.Integer)
		if !ok {
			continue
		}
		info.Ranges = append(info.Ranges, RangeEntry{First: lo, Last: hi, Value: CID(cid)})
	}

	return info, nil
}
