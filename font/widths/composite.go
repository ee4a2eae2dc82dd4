// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

package widths

import (
	"fmt"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/font/cmap"
)

// DecodeComposite decodes a CIDFont's /W array (the w argument) into a
// map from CID to glyph width. dw is the font's /DW default width, used by
// callers for any CID this map doesn't mention.
//
// /W entries come in two shapes:
//
//	c [w1 w2 ... wn]   individual widths for CIDs c, c+1, ..., c+n-1
//	cFirst cLast w     a single width for every CID in [cFirst, cLast]
func DecodeComposite(r pdf.Getter, w pdf.Object, dw float64) (map[cmap.CID]float64, error) {
	_ = dw // callers apply dw themselves for CIDs absent from the result
	arr, err := pdf.GetArray(r, w)
	if err != nil || arr == nil {
		return nil, err
	}

	res := make(map[cmap.CID]float64)
	for i := 0; i < len(arr); {
		c1, err := pdf.GetInteger(r, arr[i])
		if err != nil {
			return res, err
		}
		i++
		if i >= len(arr) {
			break
		}

		next, err := pdf.Resolve(r, arr[i])
		if err != nil {
			return res, err
		}

		if ws, ok := next.(pdf.Array); ok {
			for k, item := range ws {
				v, err := pdf.Resolve(r, item)
				if err != nil {
					continue
				}
				width, ok := pdf.Number(v)
				if !ok {
					continue
				}
				res[cmap.CID(c1+pdf.Integer(k))] = width
			}
			i++
			continue
		}

		c2, ok := pdf.Number(next)
		if !ok {
			return res, &pdf.StructuralError{Err: fmt.Errorf("invalid /W entry at index %d", i)}
		}
		i++
		if i >= len(arr) {
			break
		}
		wv, err := pdf.Resolve(r, arr[i])
		if err != nil {
			return res, err
		}
		width, ok := pdf.Number(wv)
		if !ok {
			return res, &pdf.StructuralError{Err: fmt.Errorf("invalid /W width at index %d", i)}
		}
		i++

		for c := int64(c1); c <= int64(c2); c++ {
			res[cmap.CID(c)] = width
		}
	}
	return res, nil
}
