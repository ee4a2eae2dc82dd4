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

// Package cmap decodes the byte strings shown by the Tj/TJ operators of a
// composite (Type0) font into character identifiers (CIDs): the first of
// the two mappings character codes go through before reaching a glyph
// (code -> CID -> GID).
//
// https://adobe-type-tools.github.io/font-tech-notes/pdfs/5014.CIDFont_Spec.pdf
package cmap

import (
	"pdflayout.dev/pdf/font/charcode"
)

// CID is the index of a character within the character collection named by
// a font's CIDSystemInfo.
type CID uint32

// SingleEntry maps one code to one CID.
type SingleEntry struct {
	Code  int64
	Value CID
}

// RangeEntry maps a contiguous range of codes [First, Last] to consecutive
// CIDs starting at Value.
type RangeEntry struct {
	First, Last int64
	Value       CID
}

// Info is a decoded CMap: the code-space range declarations plus the
// code->CID mapping, exactly as read from an embedded CMap stream or
// resolved from a predefined name.
type Info struct {
	Name           string
	CodeSpaceRange charcode.CodeSpaceRange
	WMode          int // 0 = horizontal, 1 = vertical
	Singles        []SingleEntry
	Ranges         []RangeEntry

	byCode map[int64]CID
}

// Identity2 is the Identity-H / Identity-V CMap: two-byte codes map to CIDs
// of the same numeric value (the only difference between -H and -V is the
// writing direction, carried by WMode).
func Identity2(vertical bool) *Info {
	info := &Info{
		Name:           identityName(vertical),
		CodeSpaceRange: charcode.UCS2,
	}
	if vertical {
		info.WMode = 1
	}
	return info
}

func identityName(vertical bool) string {
	if vertical {
		return "Identity-V"
	}
	return "Identity-H"
}

// Identity1 is a one-byte identity mapping, used as a lenient fallback when
// a Type0 font's encoding cannot be resolved: codes map to CIDs of the same
// value, one byte at a time.
func Identity1() *Info {
	return &Info{
		Name:           "Identity-1 (fallback)",
		CodeSpaceRange: charcode.Simple,
	}
}

// build indexes Singles/Ranges for Lookup.  Called lazily so that an *Info
// constructed directly (e.g. by Identity2) never pays the cost.
func (info *Info) build() {
	if info.byCode != nil || (len(info.Singles) == 0 && len(info.Ranges) == 0) {
		return
	}
	info.byCode = make(map[int64]CID, len(info.Singles))
	for _, r := range info.Ranges {
		for code := r.First; code <= r.Last; code++ {
			info.byCode[code] = r.Value + CID(code-r.First)
		}
	}
	for _, s := range info.Singles {
		info.byCode[s.Code] = s.Value
	}
}

// LookupCID returns the CID for a decoded character code.
func (info *Info) LookupCID(code int64) (CID, bool) {
	switch info.Name {
	case "Identity-H", "Identity-V", "Identity-1 (fallback)":
		return CID(code), true
	}
	info.build()
	cid, ok := info.byCode[code]
	return cid, ok
}

// Decode iterates over the character codes in s, yielding each code's raw
// bytes and its decoded CID.  A code outside the code-space range, or one
// that has no CID mapping, degrades to CID(0) (the .notdef glyph) rather
// than aborting extraction; no warning is reported.
func (info *Info) Decode(s []byte) func(yield func(raw []byte, cid CID) bool) {
	return func(yield func([]byte, CID) bool) {
		info.CodeSpaceRange.Codes(s)(func(raw []byte, code int64, ok bool) bool {
			var cid CID
			if ok {
				cid, _ = info.LookupCID(code)
			}
			return yield(raw, cid)
		})
	}
}
