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
	"fmt"
	"unicode/utf16"

	"pdflayout.dev/pdf/font/charcode"
)

// ToUnicode holds a decoded ToUnicode CMap: the mapping from character
// codes (as produced by the font's own encoding, not CIDs) to the Unicode
// text they represent.
type ToUnicode struct {
	CS      charcode.CodeSpaceRange
	Singles []SingleTUEntry
	Ranges  []RangeTUEntry

	byCode map[int64]string
}

// SingleTUEntry maps one character code to a decoded Unicode string.
type SingleTUEntry struct {
	Code  int64
	Value string
}

func (s SingleTUEntry) String() string {
	return fmt.Sprintf("%d: %q", s.Code, s.Value)
}

// RangeTUEntry describes a bfrange block whose destination was a single
// hex string rather than an array: the Unicode value for First is given by
// Bytes, and every following code in [First, Last] increments it using the
// same "last 4 bytes as a big-endian counter" rule CMap-producing tools use
// (see [RangeTUEntry.at]), not a plain rune increment.
type RangeTUEntry struct {
	First, Last int64
	Bytes       []byte // raw (UTF-16BE) bytes of the value for First
}

func (r RangeTUEntry) String() string {
	return fmt.Sprintf("%d-%d: %x", r.First, r.Last, r.Bytes)
}

// at decodes the Unicode string for a code known to lie within [First,
// Last]. Only the last min(4, len(Bytes)) bytes of Bytes act as the
// incrementing counter; any leading bytes are a fixed prefix. This mirrors
// how Adobe's own bfrange-generating tools overflow a multi-byte glyph
// name's trailing code point instead of the whole byte string.
func (r RangeTUEntry) at(code int64) []byte {
	offset := uint32(code - r.First)

	n := len(r.Bytes)
	vlen := n
	if vlen > 4 {
		vlen = 4
	}
	varStart := n - vlen
	prefix, v := r.Bytes[:varStart], r.Bytes[varStart:]

	var base uint32
	for _, b := range v {
		base = base<<8 | uint32(b)
	}
	packed := base + offset

	var buf [4]byte
	buf[0] = byte(packed >> 24)
	buf[1] = byte(packed >> 16)
	buf[2] = byte(packed >> 8)
	buf[3] = byte(packed)

	out := make([]byte, 0, len(prefix)+vlen)
	out = append(out, prefix...)
	out = append(out, buf[4-vlen:]...)
	return out
}

// addSingle records code -> value, applying the standard collision rule:
// U+00A0 (NBSP) never overrides an existing U+0020 (space) mapping for the
// same code, since some fonts map both to the same glyph and the plain
// space is almost always what a reader wants from extracted text.
func (info *ToUnicode) addSingle(code int64, value string) {
	if value == " " {
		for _, s := range info.Singles {
			if s.Code == code && s.Value == " " {
				return
			}
		}
	}
	info.Singles = append(info.Singles, SingleTUEntry{Code: code, Value: value})
	if info.byCode != nil {
		info.byCode[code] = value
	}
}

func (info *ToUnicode) build() {
	if info.byCode != nil {
		return
	}
	info.byCode = make(map[int64]string, len(info.Singles))
	for _, s := range info.Singles {
		info.byCode[s.Code] = s.Value
	}
}

// Lookup returns the Unicode text for a decoded character code.
func (info *ToUnicode) Lookup(code int64) (string, bool) {
	info.build()
	if v, ok := info.byCode[code]; ok {
		return v, true
	}
	for _, r := range info.Ranges {
		if code < r.First || code > r.Last {
			continue
		}
		return utf16BEToString(r.at(code)), true
	}
	return "", false
}

// Decode iterates over the character codes in s, yielding each code's raw
// bytes alongside the Unicode text it maps to (empty if unmapped).
func (info *ToUnicode) Decode(s []byte) func(yield func(raw []byte, text string, ok bool) bool) {
	return func(yield func([]byte, string, bool) bool) {
		info.CS.Codes(s)(func(raw []byte, code int64, valid bool) bool {
			var text string
			var ok bool
			if valid {
				text, ok = info.Lookup(code)
			}
			return yield(raw, text, ok)
		})
	}
}

func utf16BEToString(b []byte) string {
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return string(utf16.Decode(u))
}
