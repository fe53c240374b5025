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

	"seehuhn.de/go/lineart/color"
	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/graphics"
)

// state is the part of the graphics state which is saved by q and
// restored by Q.
type state struct {
	ctm matrix.Matrix

	stroke graphics.StrokeStyle

	fillColor   color.Color
	strokeColor color.Color
	fillAlpha   float64
	strokeAlpha float64
	blendMode   graphics.BlendMode
	softMask    bool

	font       *Handle[font.Font]
	fontSize   float64
	charSpace  float64
	wordSpace  float64
	hScale     float64 // 1 means 100%
	leading    float64
	rise       float64
	renderMode graphics.TextRenderingMode

	// clips is the number of clips installed since the state was saved.
	clips int
}

func newState(ctm matrix.Matrix) state {
	return state{
		ctm:         ctm,
		stroke:      *graphics.DefaultStrokeStyle(),
		fillColor:   color.Black,
		strokeColor: color.Black,
		fillAlpha:   1,
		strokeAlpha: 1,
		blendMode:   graphics.BlendNormal,
		hScale:      1,
	}
}

// save returns a copy of s which does not share memory with s.
func (s *state) save() state {
	res := *s
	res.stroke = *s.stroke.Clone()
	return res
}

func (s *state) fillPaint() *device.Paint {
	return &device.Paint{Color: s.fillColor, Alpha: s.fillAlpha}
}

func (s *state) strokePaint() *device.Paint {
	return &device.Paint{Color: s.strokeColor, Alpha: s.strokeAlpha}
}

func (s *state) strokeStyle() *graphics.StrokeStyle {
	return s.stroke.Clone()
}
