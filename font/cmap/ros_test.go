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

package cmap

import (
	"testing"

	"pdflayout.dev/pdf"
)

type nullGetter struct{}

func (nullGetter) Get(ref pdf.Reference) (pdf.Native, error) { return nil, nil }

func TestExtractCIDSystemInfo(t *testing.T) {
	dict := pdf.Dict{
		"Registry":   pdf.String("Adobe"),
		"Ordering":   pdf.String("Identity"),
		"Supplement": pdf.Integer(0),
	}
	ros, err := ExtractCIDSystemInfo(nullGetter{}, dict)
	if err != nil {
		t.Fatalf("ExtractCIDSystemInfo: %v", err)
	}
	if ros.Registry != "Adobe" || ros.Ordering != "Identity" || ros.Supplement != 0 {
		t.Errorf("got %+v", ros)
	}
	if got, want := ros.String(), "Adobe-Identity-0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
