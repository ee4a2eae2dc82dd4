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

package charcode

import "testing"

func TestDecodeSimple(t *testing.T) {
	code, n := Simple.Decode([]byte("A"))
	if code != 0x41 || n != 1 {
		t.Fatalf("got (%d, %d), want (65, 1)", code, n)
	}
}

func TestDecodeUCS2(t *testing.T) {
	code, n := UCS2.Decode([]byte{0x00, 0x41})
	if code != 0x41 || n != 2 {
		t.Fatalf("got (%d, %d), want (65, 2)", code, n)
	}
}

func TestDecodeLenientFallback(t *testing.T) {
	cs := CodeSpaceRange{{Low: []byte{0x00, 0x00}, High: []byte{0x7F, 0xFF}}}
	code, n := cs.Decode([]byte{0xFF})
	if code != -1 || n != 1 {
		t.Fatalf("got (%d, %d), want (-1, 1) for an unmatched single byte", code, n)
	}

	code, n = cs.Decode(nil)
	if code != -1 || n != 0 {
		t.Fatalf("got (%d, %d), want (-1, 0) for an empty string", code, n)
	}
}

func TestCodesIteratesWholeString(t *testing.T) {
	var codes []int64
	Simple.Codes([]byte("AB"))(func(_ []byte, code int64, ok bool) bool {
		if !ok {
			t.Fatalf("unexpected invalid code")
		}
		codes = append(codes, code)
		return true
	})
	if len(codes) != 2 || codes[0] != 0x41 || codes[1] != 0x42 {
		t.Fatalf("got %v", codes)
	}
}

func TestMultiRangeOffsets(t *testing.T) {
	// Two disjoint one-byte ranges: codes in the second range continue
	// numbering after the first, as required for CID lookups that span
	// several begincodespacerange blocks.
	cs := CodeSpaceRange{
		{Low: []byte{0x00}, High: []byte{0x0F}},
		{Low: []byte{0x20}, High: []byte{0x2F}},
	}
	code, n := cs.Decode([]byte{0x20})
	if code != 16 || n != 1 {
		t.Fatalf("got (%d, %d), want (16, 1)", code, n)
	}
}
