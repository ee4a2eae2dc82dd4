// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package extract

import (
	"testing"

	"pdflayout.dev/pdf/geom"
	"pdflayout.dev/pdf/layout"
)

func mkchar(x0, y0, x1, y1 float64, text string) *layout.LTChar {
	return &layout.LTChar{Rect: geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, Text: text}
}

func TestExtractWordsJoinsAdjacentChars(t *testing.T) {
	chars := []*layout.LTChar{
		mkchar(0, 0, 6, 10, "H"),
		mkchar(6, 0, 12, 10, "i"),
		// big horizontal gap -> separate word
		mkchar(60, 0, 66, 10, "!"),
	}
	words := ExtractWords(chars, DefaultSettings())
	if len(words) != 2 {
		t.Fatalf("len(words) = %d, want 2", len(words))
	}
	if words[0].Text != "Hi" {
		t.Errorf("words[0].Text = %q, want %q", words[0].Text, "Hi")
	}
	if words[1].Text != "!" {
		t.Errorf("words[1].Text = %q, want %q", words[1].Text, "!")
	}
}

func TestExtractWordsSeparatesDistinctLines(t *testing.T) {
	chars := []*layout.LTChar{
		mkchar(0, 100, 6, 110, "A"),
		mkchar(0, 0, 6, 10, "B"),
	}
	words := ExtractWords(chars, DefaultSettings())
	if len(words) != 2 {
		t.Fatalf("len(words) = %d, want 2", len(words))
	}
	if words[0].Text != "A" || words[1].Text != "B" {
		t.Errorf("expected top line first: got %q then %q", words[0].Text, words[1].Text)
	}
}

func TestExtractWordsExpandsLigatures(t *testing.T) {
	chars := []*layout.LTChar{mkchar(0, 0, 10, 10, "ﬁ")}
	words := ExtractWords(chars, DefaultSettings())
	if len(words) != 1 || words[0].Text != "fi" {
		t.Fatalf("ligature not expanded: %+v", words)
	}
}

func TestExtractTextJoinsLinesWithNewline(t *testing.T) {
	chars := []*layout.LTChar{
		mkchar(0, 100, 6, 110, "A"),
		mkchar(6, 100, 12, 110, "B"),
		mkchar(0, 0, 6, 10, "C"),
	}
	text := ExtractText(chars, DefaultSettings())
	if text != "AB\nC" {
		t.Errorf("ExtractText = %q, want %q", text, "AB\nC")
	}
}
