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

package trace

import (
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/font/gofont"
)

// Fonts with an ascender below this are assumed to have broken metrics.
const minAscender = 1e-3

// Replacement metrics for fonts with broken metrics.
const (
	fallbackAscender  = 0.9
	fallbackDescender = -0.1
)

func (t *Tracer) emitSpan(span *device.TextSpan, ctm matrix.Matrix, paint *device.Paint, typ TextType, lineWidth float64) {
	s := makeSpan(span, ctm)
	if s == nil {
		return
	}
	s.Type = typ
	s.LineWidth = lineWidth
	if typ != TextIgnore && paint != nil {
		s.Color = toRGB(paint)
		if paint.Color.Space != nil {
			s.ColorSpace = paint.Color.Space.Channels()
		}
		s.Opacity = paint.Alpha
	} else {
		s.Opacity = 1
	}

	r := t.newRecord(KindText)
	r.Span = s
	r.Rect = s.BBox
	t.emit(r)
}

// makeSpan computes the geometry of a text span in output space.
// The result is nil for spans without glyphs.
func makeSpan(span *device.TextSpan, ctm matrix.Matrix) *Span {
	if span == nil || span.Font == nil || len(span.Glyphs) == 0 {
		return nil
	}
	F := span.Font

	mat := span.TRM.Mul(ctm)
	mat[4], mat[5] = 0, 0
	dir := applyLinear(mat, vec.Vec2{X: 1})
	size := dir.Length()
	dir = unit(dir)

	asc, dsc := F.Ascender(), F.Descender()
	if asc < minAscender {
		asc = fallbackAscender
		dsc = fallbackDescender
	}
	ascSize := asc * size / (asc - dsc)
	dscSize := dsc * size / (asc - dsc)

	// rot turns the horizontal glyph box into the writing direction.
	rot := matrix.Matrix{dir.X, dir.Y, -dir.Y, dir.X, 0, 0}
	if dir.X == -1 {
		rot[3] = 1
	}
	upsideDown := mat[3] > 0 && (dir.X == 1 || dir.X == -1) ||
		mat[1] != 0 && mat[1] == -mat[2]

	s := &Span{
		Dir:       dir,
		Font:      stripSubsetTag(F.Name()),
		WMode:     span.WritingMode(),
		Flags:     F.Flags(),
		Ascender:  asc,
		Descender: dsc,
		Size:      size,
		Chars:     make([]Char, 0, len(span.Glyphs)),
	}

	var box bbox
	var spaceAdv, lastAdv float64
	for _, g := range span.Glyphs {
		adv := F.Advance(g.GID) * size
		lastAdv = adv
		if g.Rune == ' ' {
			spaceAdv = adv
		}

		origin := apply(ctm, vec.Vec2{X: g.X, Y: g.Y})
		var y0, y1 float64
		if upsideDown {
			y0, y1 = dscSize, ascSize
		} else {
			y0, y1 = -ascSize, -dscSize
		}

		// The box is built relative to the origin, then rotated about it.
		var cb bbox
		for _, corner := range [4]vec.Vec2{{X: 0, Y: y0}, {X: adv, Y: y0}, {X: 0, Y: y1}, {X: adv, Y: y1}} {
			cb.add(origin.Add(applyLinear(rot, corner)))
		}
		box.addRect(cb.r)

		s.Chars = append(s.Chars, Char{
			Unicode: g.Rune,
			GID:     g.GID,
			Origin:  origin,
			BBox:    cb.r,
		})
	}

	if spaceAdv == 0 {
		if !F.Flags().IsMono() {
			spaceAdv = fallbackSpace(F) * size
		}
		if spaceAdv == 0 {
			spaceAdv = lastAdv
		}
	}
	s.SpaceWidth = spaceAdv
	s.BBox = box.r

	return s
}

// fallbackSpace returns the advance of a space character for font size 1.
// If the font cannot encode a space, the Go font is used instead.
func fallbackSpace(F font.Font) float64 {
	if gid, ok := F.Lookup(' '); ok {
		return F.Advance(gid)
	}
	fb := gofont.Fallback()
	if fb == nil {
		return 0
	}
	gid, ok := fb.Lookup(' ')
	if !ok {
		return 0
	}
	return fb.Advance(gid)
}

// stripSubsetTag removes a subset prefix like "ABCDEF+" from a font name.
func stripSubsetTag(name string) string {
	tag, rest, found := strings.Cut(name, "+")
	if !found || len(tag) != 6 {
		return name
	}
	for _, c := range tag {
		if c < 'A' || c > 'Z' {
			return name
		}
	}
	return rest
}
