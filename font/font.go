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

// Package font describes the fonts used by text spans.
//
// A [Font] turns the bytes of a PDF string into glyphs and reports the
// metrics needed to place them.  All metrics are given in text space
// units, i.e. for a font size of 1.
package font

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/glyph"
)

// WritingMode is the writing direction of a font.
type WritingMode uint8

// Possible values for WritingMode.
const (
	Horizontal WritingMode = 0
	Vertical   WritingMode = 1
)

// Font is a font which can be used in a text span.
type Font interface {
	// Name returns the PostScript name of the font.
	Name() string

	// WritingMode returns the writing direction of the font.
	WritingMode() WritingMode

	// Decode splits a PDF string into glyphs.
	Decode(s []byte) []Glyph

	// Ascender and Descender return the vertical extent of the font.
	// Descender is normally negative.
	Ascender() float64
	Descender() float64

	// Flags returns the style flags of the font.
	Flags() Flags

	// Advance returns the advance of a glyph in the writing direction.
	Advance(gid glyph.ID) float64

	// GlyphBBox returns the ink bounding box of a glyph.  Blank glyphs
	// return the zero rectangle.
	GlyphBBox(gid glyph.ID) rect.Rect

	// Lookup finds the glyph for a character, independently of the
	// encoding used in the content stream.
	Lookup(r rune) (glyph.ID, bool)
}

// Glyph is one decoded character code.
type Glyph struct {
	GID  glyph.ID
	Rune rune // 0 if unknown

	// Advance is the advance in the writing direction, for font size 1.
	Advance float64

	// WordSpace is set for the single-byte code 32, where the word spacing
	// operator applies.
	WordSpace bool
}
