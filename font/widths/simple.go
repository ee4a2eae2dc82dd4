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

// Package widths decodes the glyph-width tables of simple and composite
// font dictionaries into plain per-code (or per-CID) width maps, in glyph
// space (1000 units per em).
package widths

import "pdflayout.dev/pdf"

// ExtractSimple decodes a simple font's /FirstChar + /Widths entries into a
// 256-slot table indexed by character code. Codes the /Widths array does
// not cover (including the whole table, if /Widths is absent) fall back to
// missingWidth.
func ExtractSimple(r pdf.Getter, fontDict pdf.Dict, missingWidth float64) ([]float64, error) {
	res := make([]float64, 256)
	for i := range res {
		res[i] = missingWidth
	}

	firstChar, err := pdf.GetInteger(r, fontDict["FirstChar"])
	if err != nil {
		return res, err
	}

	arr, err := pdf.GetArray(r, fontDict["Widths"])
	if err != nil || arr == nil {
		return res, err
	}

	for i, obj := range arr {
		idx := int64(firstChar) + int64(i)
		if idx < 0 || idx > 255 {
			continue
		}
		resolved, err := pdf.Resolve(r, obj)
		if err != nil {
			continue // skip-with-warning: one malformed width entry doesn't sink the font
		}
		w, ok := pdf.Number(resolved)
		if !ok {
			continue
		}
		res[idx] = w
	}
	return res, nil
}
