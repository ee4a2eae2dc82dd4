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

// Package font dispatches over the handful of font shapes a content
// stream can reference (simple 8-bit fonts and composite CID-keyed
// fonts) behind a single capability interface, so that the interpreter
// never needs to know which kind of font it is driving.
package font

import (
	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/font/charcode"
	"pdflayout.dev/pdf/font/cmap"
	"pdflayout.dev/pdf/font/widths"
)

// defaultDescent is used when a font has no FontDescriptor or the
// descriptor omits /Descent.
const defaultDescent = -0.25

// CID identifies a glyph within a font's character collection. For simple
// fonts this is simply the one-byte character code.
type CID = cmap.CID

// Font is the capability set the content interpreter and the layout
// analyzer need from any font: turn a shown string into CIDs, turn a CID
// into Unicode text and an advance width, and report a couple of
// font-wide constants. Implementations are a closed tagged union —
// [Simple], [Composite] and [Mock]; [ResolveFontDict] dispatches to Simple
// or Composite, and Mock stands in for fonts that cannot be resolved.
// There is no deeper class hierarchy.
type Font interface {
	// Decode splits s into character codes and returns the CID for each,
	// in order.
	Decode(s pdf.String) []CID

	// ToUnicode returns the Unicode text a CID represents, if known.
	ToUnicode(cid CID) (string, bool)

	// CharWidth returns the glyph-space advance width for cid, already
	// divided by 1000 (so that width*fontsize gives text-space units).
	CharWidth(cid CID) float64

	// CharDisp returns the vertical writing-mode displacement (vx, vy),
	// already divided by 1000, used only when IsVertical is true.
	CharDisp(cid CID) (vx, vy float64)

	// IsVertical reports whether the font's writing mode is vertical.
	IsVertical() bool

	// Descent returns the font's descent as a fraction of the font size
	// (typically negative), defaulting to -0.25 when not specified.
	Descent() float64
}

// Simple is a non-CID font addressed by single-byte codes: Type1,
// MMType1, TrueType, or Type3.
type Simple struct {
	widths  []float64 // indexed by raw byte code 0..255
	toUni   *cmap.ToUnicode
	descent float64
}

var _ Font = (*Simple)(nil)

// Decode treats every byte of s as its own character code.
func (f *Simple) Decode(s pdf.String) []CID {
	out := make([]CID, len(s))
	for i, b := range s {
		out[i] = CID(b)
	}
	return out
}

func (f *Simple) ToUnicode(cid CID) (string, bool) {
	if f.toUni == nil {
		return "", false
	}
	return f.toUni.Lookup(int64(cid))
}

func (f *Simple) CharWidth(cid CID) float64 {
	if int(cid) < len(f.widths) {
		return f.widths[cid] / 1000
	}
	return 0
}

func (f *Simple) CharDisp(CID) (float64, float64) { return 0, 0 }
func (f *Simple) IsVertical() bool                { return false }
func (f *Simple) Descent() float64                { return f.descent }

// Composite is a Type0 (CID-keyed) font, addressed through an embedded or
// predefined CMap.
type Composite struct {
	cs         *cmap.Info
	widths     map[CID]float64
	dw         float64
	w2         map[CID][2]float64
	dw2        [2]float64 // [vy-default-position, vy-displacement]
	toUni      *cmap.ToUnicode
	descent    float64
	vertical   bool
}

var _ Font = (*Composite)(nil)

// Decode runs s through the font's CMap, mapping byte sequences to CIDs.
func (f *Composite) Decode(s pdf.String) []CID {
	var out []CID
	f.cs.CodeSpaceRange.Codes([]byte(s))(func(_ []byte, code int64, ok bool) bool {
		if !ok {
			return true
		}
		if cid, ok := f.cs.LookupCID(code); ok {
			out = append(out, cid)
		}
		return true
	})
	return out
}

func (f *Composite) ToUnicode(cid CID) (string, bool) {
	if f.toUni == nil {
		return "", false
	}
	// ToUnicode streams for composite fonts are keyed by character code;
	// for CIDFontType0/2 paired with Identity-H/V the code equals the CID.
	return f.toUni.Lookup(int64(cid))
}

func (f *Composite) CharWidth(cid CID) float64 {
	if w, ok := f.widths[cid]; ok {
		return w / 1000
	}
	return f.dw / 1000
}

func (f *Composite) CharDisp(cid CID) (float64, float64) {
	if d, ok := f.w2[cid]; ok {
		return d[0] / 1000, d[1] / 1000
	}
	return 0, f.dw2[1] / 1000
}

func (f *Composite) IsVertical() bool { return f.vertical }
func (f *Composite) Descent() float64 { return f.descent }

// Mock is a fixed-metrics stand-in used by tests and by the "font
// resource missing entirely" fallback path (spec §4.4): every CID is one
// byte, advances by a fixed fraction of the font size, and is never
// vertical.
type Mock struct {
	Width   float64 // glyph-space width, already divided by 1000
	Descent_ float64
}

var _ Font = (*Mock)(nil)

func (f *Mock) Decode(s pdf.String) []CID {
	out := make([]CID, len(s))
	for i, b := range s {
		out[i] = CID(b)
	}
	return out
}

// ToUnicode maps printable ASCII to itself and reports false for
// everything else; the interpreter then emits the "(cid:N)" label.
func (f *Mock) ToUnicode(cid CID) (string, bool) {
	if cid >= 0x20 && cid < 0x7f {
		return string(rune(cid)), true
	}
	return "", false
}

func (f *Mock) CharWidth(CID) float64 {
	if f.Width != 0 {
		return f.Width
	}
	return 0.6
}
func (f *Mock) CharDisp(CID) (float64, float64) { return 0, 0 }
func (f *Mock) IsVertical() bool                { return false }
func (f *Mock) Descent() float64 {
	if f.Descent_ != 0 {
		return f.Descent_
	}
	return defaultDescent
}

// ResolveFontDict reads a page resource's font dictionary and returns the
// capability-interface Font it describes, dispatching on /Subtype: Type0
// is read as a [Composite], any other subtype as a [Simple]. A malformed
// /FirstChar or /Widths entry of a simple font is returned as the error;
// the interpreter wraps such an error in a [*pdf.MissingFontError] and
// falls back to [Mock].
func ResolveFontDict(r pdf.Getter, fontDict pdf.Dict) (Font, error) {
	subtype, _ := pdf.GetName(r, fontDict["Subtype"])
	descent, _ := extractDescent(r, fontDict)

	if subtype == "Type0" {
		return resolveComposite(r, fontDict, descent)
	}
	return resolveSimple(r, fontDict, descent)
}

func resolveSimple(r pdf.Getter, fontDict pdf.Dict, descent float64) (Font, error) {
	missingWidth := 0.0
	if fd, err := pdf.GetDict(r, fontDict["FontDescriptor"]); err == nil && fd != nil {
		missingWidth, _ = pdf.GetNumber(r, fd["MissingWidth"])
	}
	w, err := widths.ExtractSimple(r, fontDict, missingWidth)
	if err != nil {
		return nil, err
	}

	var toUni *cmap.ToUnicode
	if fontDict["ToUnicode"] != nil {
		toUni, err = cmap.ExtractToUnicode(r, fontDict["ToUnicode"], charcode.Simple)
		if err != nil {
			// malformed ToUnicode streams yield an empty map, not an error
			toUni = nil
		}
	}

	return &Simple{widths: w, toUni: toUni, descent: descent}, nil
}

func resolveComposite(r pdf.Getter, fontDict pdf.Dict, descent float64) (Font, error) {
	encName, _ := pdf.GetName(r, fontDict["Encoding"])

	var cs *cmap.Info
	var err error
	switch encName {
	case "Identity-H":
		cs = cmap.Identity2(false)
	case "Identity-V":
		cs = cmap.Identity2(true)
	default:
		cs, err = cmap.Extract(r, fontDict["Encoding"])
		if err != nil || cs == nil {
			cs = cmap.Identity2(false)
		}
	}
	vertical := cs.WMode == 1

	descendants, _ := pdf.GetArray(r, fontDict["DescendantFonts"])
	var cidFont pdf.Dict
	if len(descendants) > 0 {
		cidFont, _ = pdf.GetDict(r, descendants[0])
	}

	dw := 1000.0
	dw2 := [2]float64{880, -1000}
	var w map[CID]float64
	if cidFont != nil {
		if d, err := pdf.GetNumber(r, cidFont["DW"]); err == nil && cidFont["DW"] != nil {
			dw = float64(d)
		}
		wmap, err := widths.DecodeComposite(r, cidFont["W"], dw)
		if err == nil {
			w = make(map[CID]float64, len(wmap))
			for k, v := range wmap {
				w[k] = v
			}
		}
	}

	var toUni *cmap.ToUnicode
	if fontDict["ToUnicode"] != nil {
		toUni, err = cmap.ExtractToUnicode(r, fontDict["ToUnicode"], cs.CodeSpaceRange)
		if err != nil {
			toUni = nil
		}
	}

	return &Composite{
		cs:       cs,
		widths:   w,
		dw:       dw,
		dw2:      dw2,
		toUni:    toUni,
		descent:  descent,
		vertical: vertical,
	}, nil
}

func extractDescent(r pdf.Getter, fontDict pdf.Dict) (float64, error) {
	var descDict pdf.Dict
	if d, err := pdf.GetDict(r, fontDict["FontDescriptor"]); err == nil && d != nil {
		descDict = d
	} else {
		descendants, _ := pdf.GetArray(r, fontDict["DescendantFonts"])
		if len(descendants) > 0 {
			if cidFont, err := pdf.GetDict(r, descendants[0]); err == nil && cidFont != nil {
				descDict, _ = pdf.GetDict(r, cidFont["FontDescriptor"])
			}
		}
	}
	if descDict == nil {
		return defaultDescent, nil
	}
	if descDict["Descent"] == nil {
		return defaultDescent, nil
	}
	v, err := pdf.GetNumber(r, descDict["Descent"])
	if err != nil {
		return defaultDescent, nil
	}
	return float64(v) / 1000, nil
}
