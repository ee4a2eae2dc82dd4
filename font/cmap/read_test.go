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
	"testing"

	"pdflayout.dev/pdf"
)

func TestExtractPredefinedNames(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Identity-H", "Identity-H"},
		{"Identity-V", "Identity-V"},
		{"UniGB-UCS2-H", "Identity-1 (fallback)"},
	}
	for _, c := range cases {
		info, err := Extract(nullGetter{}, pdf.Name(c.name))
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if info.Name != c.want {
			t.Errorf("%s: got %q, want %q", c.name, info.Name, c.want)
		}
	}
}

func TestExtractInvalidObject(t *testing.T) {
	_, err := Extract(nullGetter{}, pdf.Integer(5))
	if err == nil {
		t.Fatal("expected error for invalid CMap object")
	}
}
