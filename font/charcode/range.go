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

// Package charcode describes the code-space ranges a CMap decodes byte
// strings against: which byte sequences are valid codes, and how long each
// one is.
package charcode

// Range is an inclusive range of byte sequences of a fixed length.  A byte
// sequence s of len(Low) bytes is in the range iff every byte of s lies
// between the corresponding bytes of Low and High.
type Range struct {
	Low, High []byte
}

func (r Range) numCodes() int64 {
	var n int64 = 1
	for i, lo := range r.Low {
		n *= int64(r.High[i]-lo) + 1
	}
	return n
}

// matches reports whether s starts with a code from r.
func (r Range) matches(s []byte) bool {
	if len(s) < len(r.Low) {
		return false
	}
	for i, lo := range r.Low {
		if s[i] < lo || s[i] > r.High[i] {
			return false
		}
	}
	return true
}

// CodeSpaceRange is the (possibly discontiguous, possibly mixed-length) set
// of byte sequences a CMap accepts as character codes, exactly as declared
// by one or more "begincodespacerange" blocks.
type CodeSpaceRange []Range

// Simple is the code space range for 8-bit simple fonts: every byte is a
// one-byte code.
var Simple = CodeSpaceRange{{Low: []byte{0x00}, High: []byte{0xFF}}}

// UCS2 is the code space range used by Identity-H/Identity-V: every pair of
// bytes, big-endian, is a code.
var UCS2 = CodeSpaceRange{{Low: []byte{0x00, 0x00}, High: []byte{0xFF, 0xFF}}}

// Decode decodes the first character code in s against the declared ranges.
// Ranges are tried in declaration order and the first one whose length
// fits s and whose bytes all lie in range wins; a longer match declared
// later is not preferred over an earlier-declared shorter one, which
// suits real-world CMaps whose non-overlapping ranges are partitioned by
// length.
//
// If no range matches, Decode falls back to a lenient single-byte advance
// (the widely-implemented tolerance for malformed or incomplete code-space
// declarations): it returns (-1, 1), or (-1, 0) if s is empty.
func (c CodeSpaceRange) Decode(s []byte) (code int64, length int) {
	var base int64
	for _, r := range c {
		n := r.numCodes()
		if len(s) < len(r.Low) || !r.matches(s) {
			base += n
			continue
		}

		var v int64
		for i, lo := range r.Low {
			k := int64(r.High[i]-lo) + 1
			v = v*k + int64(s[i]-lo)
		}
		return v + base, len(r.Low)
	}

	if len(s) == 0 {
		return -1, 0
	}
	return -1, 1
}

// MatchLen returns the number of leading bytes of s that a declared range
// claims, or 0 if s matches no range at its start.
func (c CodeSpaceRange) MatchLen(s []byte) int {
	for _, r := range c {
		if r.matches(s) {
			return len(r.Low)
		}
	}
	return 0
}

// Codes iterates over the character codes in s, each paired with the raw
// bytes it was decoded from and whether the code space recognised it.  A
// code that falls back to the lenient one-byte advance is reported with
// ok == false but extraction continues rather than aborting, matching the
// skip-with-warning failure semantics used throughout the decoder.
func (c CodeSpaceRange) Codes(s []byte) func(yield func(raw []byte, code int64, ok bool) bool) {
	return func(yield func([]byte, int64, bool) bool) {
		for len(s) > 0 {
			code, n := c.Decode(s)
			if n == 0 {
				return
			}
			if !yield(s[:n], code, code >= 0) {
				return
			}
			s = s[n:]
		}
	}
}
