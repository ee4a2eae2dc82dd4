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

import "testing"

func TestRangeTUEntryIncrement(t *testing.T) {
	// <0020><007E> <0020> : codes 0x20..0x7E map to U+0020..U+007E.
	r := RangeTUEntry{First: 0x20, Last: 0x7E, Bytes: []byte{0x00, 0x20}}
	for code := int64(0x20); code <= 0x7E; code++ {
		got := utf16BEToString(r.at(code))
		want := string(rune(code))
		if got != want {
			t.Errorf("code %#x: got %q, want %q", code, got, want)
		}
	}
}

func TestRangeTUEntryPreservesPrefix(t *testing.T) {
	// "A" followed by a surrogate pair: only the trailing bytes increment
	// (here the low surrogate), and the leading U+0041 prefix is kept.
	r := RangeTUEntry{First: 0, Last: 2, Bytes: []byte{0x00, 0x41, 0xD8, 0x00, 0xDC, 0x00}}
	got := utf16BEToString(r.at(1))
	want := utf16BEToString([]byte{0x00, 0x41, 0xD8, 0x00, 0xDC, 0x01})
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

const nbsp = " "

func TestNBSPDoesNotOverrideSpace(t *testing.T) {
	info := &ToUnicode{}
	info.addSingle(32, " ")
	info.addSingle(32, nbsp)

	v, ok := info.Lookup(32)
	if !ok || v != " " {
		t.Fatalf("got (%q, %v), want a plain space", v, ok)
	}
}

func TestNBSPWithoutPriorSpace(t *testing.T) {
	info := &ToUnicode{}
	info.addSingle(32, nbsp)

	v, ok := info.Lookup(32)
	if !ok || v != nbsp {
		t.Fatalf("got (%q, %v)", v, ok)
	}
}
