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

// Package device defines the callback table through which page content is
// reported.
//
// The content interpreter in package content resolves the graphics state
// and calls one method per drawing primitive.  Paths are given in user
// space, together with the current transformation matrix which maps user
// space to the output space.
package device

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/lineart/color"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/graphics"
)

// Device receives drawing primitives.
//
// Calls to ClipPath, ClipStrokePath and ClipText are matched by calls to
// PopClip.  ClipText receives all clipping spans of one text object.
// Calls to BeginGroup and BeginLayer are matched by EndGroup and EndLayer.
// The area passed to BeginGroup is given in output space.
type Device interface {
	FillPath(p path.Path, evenOdd bool, ctm matrix.Matrix, paint *Paint)
	StrokePath(p path.Path, stroke *graphics.StrokeStyle, ctm matrix.Matrix, paint *Paint)

	ClipPath(p path.Path, evenOdd bool, ctm matrix.Matrix)
	ClipStrokePath(p path.Path, stroke *graphics.StrokeStyle, ctm matrix.Matrix)
	ClipText(spans []*TextSpan, ctm matrix.Matrix)
	PopClip()

	BeginGroup(area rect.Rect, group *Group)
	EndGroup()

	BeginLayer(name string)
	EndLayer()

	FillText(span *TextSpan, ctm matrix.Matrix, paint *Paint)
	StrokeText(span *TextSpan, stroke *graphics.StrokeStyle, ctm matrix.Matrix, paint *Paint)
	IgnoreText(span *TextSpan, ctm matrix.Matrix)
}

// Paint is the colour and opacity used to fill or stroke.
type Paint struct {
	Color color.Color
	Alpha float64
}

// Group describes a transparency group.
type Group struct {
	Isolated  bool
	Knockout  bool
	BlendMode graphics.BlendMode
	Alpha     float64
}

// TextSpan is a run of glyphs shown by a single text showing operator.
type TextSpan struct {
	Font font.Font

	// TRM maps text space (for font size 1) to user space, without the
	// translation part.  It combines font size, horizontal scaling, the
	// text matrix and the writing direction.
	TRM matrix.Matrix

	Glyphs []GlyphPos
}

// GlyphPos is a positioned glyph.
type GlyphPos struct {
	GID  glyph.ID
	Rune rune

	// X and Y give the glyph origin in user space.
	X, Y float64
}

// WritingMode returns the writing mode of the span's font.
func (s *TextSpan) WritingMode() font.WritingMode {
	if s.Font == nil {
		return font.Horizontal
	}
	return s.Font.WritingMode()
}
