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

package content

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/graphics"
)

func (in *interp) beginText() {
	in.inText = true
	in.tm = matrix.Identity
	in.tlm = matrix.Identity
	in.textClips = nil
}

// endText finishes a text object.  If glyphs were shown with a clipping
// text rendering mode, their union becomes the new clipping path.
func (in *interp) endText() {
	if len(in.textClips) > 0 {
		in.dev.ClipText(in.textClips, in.textClipCTM)
		in.clips++
	}
	in.textClips = nil
	in.inText = false
}

// newLine moves to the start of the next line, offset by (tx, ty) from
// the start of the current line.
func (in *interp) newLine(tx, ty float64) {
	in.tlm = matrix.Translate(tx, ty).Mul(in.tlm)
	in.tm = in.tlm
}

// showText implements the text showing operators.  The array contains
// strings and, for TJ, position adjustments in thousandths of text space
// units.  All glyphs are reported as a single span.
func (in *interp) showText(a Array) error {
	if in.font == nil {
		return errNoFont
	}
	F := in.fonts.use(in.font)
	if F == nil {
		return errNoFont
	}

	fs := in.fontSize
	th := in.hScale
	vertical := F.WritingMode() == font.Vertical
	base := matrix.Matrix{fs * th, 0, 0, fs, 0, in.rise}

	var glyphs []device.GlyphPos
	for _, item := range a {
		switch item := item.(type) {
		case String:
			for _, g := range F.Decode(item) {
				trm := base.Mul(in.tm)
				glyphs = append(glyphs, device.GlyphPos{
					GID:  g.GID,
					Rune: g.Rune,
					X:    trm[4],
					Y:    trm[5],
				})

				spacing := in.charSpace
				if g.WordSpace {
					spacing += in.wordSpace
				}
				if vertical {
					in.tm = matrix.Translate(0, -g.Advance*fs+spacing).Mul(in.tm)
				} else {
					in.tm = matrix.Translate((g.Advance*fs+spacing)*th, 0).Mul(in.tm)
				}
			}
		case Integer, Real:
			x, _ := getNumber(item)
			if vertical {
				in.tm = matrix.Translate(0, -x/1000*fs).Mul(in.tm)
			} else {
				in.tm = matrix.Translate(-x/1000*fs*th, 0).Mul(in.tm)
			}
		}
	}
	if len(glyphs) == 0 {
		return nil
	}

	trm := base.Mul(in.tm)
	trm[4], trm[5] = 0, 0
	span := &device.TextSpan{Font: F, TRM: trm, Glyphs: glyphs}

	mode := in.renderMode
	if mode.Fills() {
		in.dev.FillText(span, in.ctm, in.fillPaint())
	}
	if mode.Strokes() {
		in.dev.StrokeText(span, in.strokeStyle(), in.ctm, in.strokePaint())
	}
	if mode == graphics.TextRenderingModeInvisible {
		in.dev.IgnoreText(span, in.ctm)
	}
	if mode.Clips() {
		if len(in.textClips) == 0 {
			in.textClipCTM = in.ctm
		}
		in.textClips = append(in.textClips, span)
	}
	return nil
}
