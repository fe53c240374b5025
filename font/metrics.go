// seehuhn.de/go/lineart - trace drawings and text on PDF pages
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

package font

import (
	"unicode"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/glyph"
)

// Metrics is a font described by a table of glyph metrics.
// It is used for fonts without embedded font data, where only the widths
// from the font dictionary are known, and in tests.
//
// Glyph IDs are assigned in the order of the Runes slice, starting at 1.
// Glyph 0 is .notdef.
type Metrics struct {
	FontName string
	WMode    WritingMode
	Style    Flags

	Asc, Desc float64

	Runes  []rune
	Widths []float64 // in text space units, same order as Runes

	// DefaultWidth is used for glyphs not in the table.
	DefaultWidth float64

	// Encoding is used to decode strings.  If nil, WinAnsi is used.
	Encoding Encoding
}

// Name implements the [Font] interface.
func (m *Metrics) Name() string { return m.FontName }

// WritingMode implements the [Font] interface.
func (m *Metrics) WritingMode() WritingMode { return m.WMode }

// Ascender implements the [Font] interface.
func (m *Metrics) Ascender() float64 { return m.Asc }

// Descender implements the [Font] interface.
func (m *Metrics) Descender() float64 { return m.Desc }

// Flags implements the [Font] interface.
func (m *Metrics) Flags() Flags { return m.Style }

// Decode implements the [Font] interface.
func (m *Metrics) Decode(s []byte) []Glyph {
	enc := m.Encoding
	if enc == nil {
		enc = WinAnsi
	}
	gg := enc.Split(s, m.Lookup)
	for i := range gg {
		gg[i].Advance = m.Advance(gg[i].GID)
	}
	return gg
}

// Advance implements the [Font] interface.
func (m *Metrics) Advance(gid glyph.ID) float64 {
	if m.WMode == Vertical {
		return 1
	}
	idx := int(gid) - 1
	if idx < 0 || idx >= len(m.Widths) {
		return m.DefaultWidth
	}
	return m.Widths[idx]
}

// GlyphBBox implements the [Font] interface.
// Without outlines, the box covers the advance and the font's vertical
// extent.  Space characters are blank.
func (m *Metrics) GlyphBBox(gid glyph.ID) rect.Rect {
	if idx := int(gid) - 1; idx >= 0 && idx < len(m.Runes) && unicode.IsSpace(m.Runes[idx]) {
		return rect.Rect{}
	}
	return rect.Rect{LLx: 0, LLy: m.Desc, URx: m.Advance(gid), URy: m.Asc}
}

// Lookup implements the [Font] interface.
func (m *Metrics) Lookup(r rune) (glyph.ID, bool) {
	for i, x := range m.Runes {
		if x == r {
			return glyph.ID(i + 1), true
		}
	}
	return 0, false
}
