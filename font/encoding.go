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
	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/sfnt/glyph"
)

// Encoding maps character codes of a PDF string to glyphs.
type Encoding interface {
	// Split divides s into character codes and returns the glyph and the
	// character for each code.
	Split(s []byte, lookup func(rune) (glyph.ID, bool)) []Glyph
}

// WinAnsi is the single-byte encoding used for simple fonts.
// Codes are mapped to characters with Windows-1252, and characters to
// glyphs through the font's character map.
var WinAnsi Encoding = winAnsi{}

type winAnsi struct{}

func (winAnsi) Split(s []byte, lookup func(rune) (glyph.ID, bool)) []Glyph {
	res := make([]Glyph, len(s))
	for i, c := range s {
		r := charmap.Windows1252.DecodeByte(c)
		if r == '\ufffd' {
			r = 0
		}
		gid, _ := lookup(r)
		res[i] = Glyph{GID: gid, Rune: r, WordSpace: c == ' '}
	}
	return res
}

// Identity is the two-byte encoding where character codes equal glyph IDs.
// The reverse map gives the character for each glyph, if known.
type Identity struct {
	ToUnicode map[glyph.ID]rune
}

// Split implements the [Encoding] interface.
func (e *Identity) Split(s []byte, _ func(rune) (glyph.ID, bool)) []Glyph {
	res := make([]Glyph, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i += 2 {
		var gid glyph.ID
		if i+1 < len(s) {
			gid = glyph.ID(s[i])<<8 | glyph.ID(s[i+1])
		} else {
			gid = glyph.ID(s[i]) << 8
		}
		res = append(res, Glyph{GID: gid, Rune: e.ToUnicode[gid]})
	}
	return res
}
