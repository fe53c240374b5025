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

// Package sfntfont implements text span fonts for TrueType and OpenType
// font data.
package sfntfont

import (
	"bytes"
	"fmt"
	"sync"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/lineart/font"
)

// Font is a [font.Font] backed by an sfnt font.
type Font struct {
	info  *sfnt.Font
	wmode font.WritingMode
	enc   font.Encoding

	cmap interface{ Lookup(rune) glyph.ID }

	reverseOnce sync.Once
	reverse     map[glyph.ID]rune
}

var _ font.Font = (*Font)(nil)

// New returns a simple font which uses the WinAnsi encoding.
func New(info *sfnt.Font) *Font {
	f := newFont(info, font.Horizontal)
	f.enc = font.WinAnsi
	return f
}

// NewIdentity returns a composite font with two-byte character codes
// equal to glyph IDs.
func NewIdentity(info *sfnt.Font, wmode font.WritingMode) *Font {
	f := newFont(info, wmode)
	f.enc = &font.Identity{ToUnicode: f.toUnicode()}
	return f
}

// Read parses font data and returns a simple font.
func Read(data []byte) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sfntfont: %w", err)
	}
	return New(info), nil
}

func newFont(info *sfnt.Font, wmode font.WritingMode) *Font {
	f := &Font{info: info, wmode: wmode}
	if info.CMapTable != nil {
		if sub, err := info.CMapTable.GetBest(); err == nil {
			f.cmap = sub
		}
	}
	return f
}

// toUnicode builds the reverse character map for the basic multilingual
// plane.  If several characters map to the same glyph, the first one wins.
func (f *Font) toUnicode() map[glyph.ID]rune {
	f.reverseOnce.Do(func() {
		f.reverse = make(map[glyph.ID]rune)
		if f.cmap == nil {
			return
		}
		for r := rune(0x20); r <= 0xFFFF; r++ {
			if r >= 0xD800 && r < 0xE000 {
				continue
			}
			gid := f.cmap.Lookup(r)
			if gid == 0 {
				continue
			}
			if _, seen := f.reverse[gid]; !seen {
				f.reverse[gid] = r
			}
		}
	})
	return f.reverse
}

// Name implements the [font.Font] interface.
func (f *Font) Name() string {
	return f.info.PostScriptName()
}

// WritingMode implements the [font.Font] interface.
func (f *Font) WritingMode() font.WritingMode {
	return f.wmode
}

// Decode implements the [font.Font] interface.
func (f *Font) Decode(s []byte) []font.Glyph {
	gg := f.enc.Split(s, f.Lookup)
	for i := range gg {
		gg[i].Advance = f.Advance(gg[i].GID)
	}
	return gg
}

// Ascender implements the [font.Font] interface.
func (f *Font) Ascender() float64 {
	return f.toText(f.info.Ascent)
}

// Descender implements the [font.Font] interface.
func (f *Font) Descender() float64 {
	return f.toText(f.info.Descent)
}

// Flags implements the [font.Font] interface.
func (f *Font) Flags() font.Flags {
	var flags font.Flags
	if f.info.IsItalic {
		flags |= font.FlagItalic
	}
	if f.info.IsSerif {
		flags |= font.FlagSerif
	}
	if f.info.IsFixedPitch() {
		flags |= font.FlagMono
	}
	if f.info.IsBold {
		flags |= font.FlagBold
	}
	return flags
}

// Advance implements the [font.Font] interface.
// Vertical fonts use the default vertical advance of one em.
func (f *Font) Advance(gid glyph.ID) float64 {
	if f.wmode == font.Vertical {
		return 1
	}
	if int(gid) >= f.info.NumGlyphs() {
		return 0
	}
	return f.info.GlyphWidthPDF(gid) / 1000
}

// GlyphBBox implements the [font.Font] interface.
func (f *Font) GlyphBBox(gid glyph.ID) rect.Rect {
	if int(gid) >= f.info.NumGlyphs() {
		return rect.Rect{}
	}
	b := f.info.GlyphBBox(gid)
	return rect.Rect{
		LLx: f.toTextX(b.LLx),
		LLy: f.toText(b.LLy),
		URx: f.toTextX(b.URx),
		URy: f.toText(b.URy),
	}
}

// Lookup implements the [font.Font] interface.
func (f *Font) Lookup(r rune) (glyph.ID, bool) {
	if f.cmap == nil {
		return 0, false
	}
	gid := f.cmap.Lookup(r)
	return gid, gid != 0
}

func (f *Font) toText(v funit.Int16) float64 {
	return float64(v) * f.info.FontMatrix[3]
}

func (f *Font) toTextX(v funit.Int16) float64 {
	return float64(v) * f.info.FontMatrix[0]
}
