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

package graphics

import (
	"fmt"
	"math"
	"strings"
)

// LineCapStyle is the style of the end of a line.
type LineCapStyle uint8

// Possible values for LineCapStyle.
// See section 8.4.3.3 of ISO 32000-2:2020.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the corner of a line.
type LineJoinStyle uint8

// Possible values for LineJoinStyle.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// StrokeStyle collects the graphics state parameters which affect stroking.
//
// Width and the dash lengths are given in user space units.
type StrokeStyle struct {
	Width      float64
	Cap        LineCapStyle
	Join       LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

// DefaultStrokeStyle returns the stroke parameters of a fresh graphics state.
func DefaultStrokeStyle() *StrokeStyle {
	return &StrokeStyle{
		Width:      1,
		MiterLimit: 10,
	}
}

// Clone returns a deep copy of s.
func (s *StrokeStyle) Clone() *StrokeStyle {
	res := *s
	if s.Dash != nil {
		res.Dash = append([]float64(nil), s.Dash...)
	}
	return &res
}

// DashString formats the dash pattern in content stream syntax,
// e.g. "[ 3 2 ] 0".  A solid line gives "[] 0".
func (s *StrokeStyle) DashString() string {
	if len(s.Dash) == 0 {
		return "[] " + formatNum(s.DashPhase)
	}
	b := &strings.Builder{}
	b.WriteString("[ ")
	for _, d := range s.Dash {
		b.WriteString(formatNum(d))
		b.WriteByte(' ')
	}
	b.WriteString("] ")
	b.WriteString(formatNum(s.DashPhase))
	return b.String()
}

func formatNum(x float64) string {
	if x == math.Trunc(x) && math.Abs(x) < 1e15 {
		return fmt.Sprintf("%d", int64(x))
	}
	return fmt.Sprintf("%g", x)
}

// TextRenderingMode is the rendering mode for text.
type TextRenderingMode uint8

// Possible values for TextRenderingMode.
// See section 9.3.6 of ISO 32000-2:2020.
const (
	TextRenderingModeFill TextRenderingMode = iota
	TextRenderingModeStroke
	TextRenderingModeFillStroke
	TextRenderingModeInvisible
	TextRenderingModeFillClip
	TextRenderingModeStrokeClip
	TextRenderingModeFillStrokeClip
	TextRenderingModeClip
)

// Fills reports whether glyphs are filled in this mode.
func (m TextRenderingMode) Fills() bool {
	switch m {
	case TextRenderingModeFill, TextRenderingModeFillStroke,
		TextRenderingModeFillClip, TextRenderingModeFillStrokeClip:
		return true
	}
	return false
}

// Strokes reports whether glyph outlines are stroked in this mode.
func (m TextRenderingMode) Strokes() bool {
	switch m {
	case TextRenderingModeStroke, TextRenderingModeFillStroke,
		TextRenderingModeStrokeClip, TextRenderingModeFillStrokeClip:
		return true
	}
	return false
}

// Clips reports whether glyph outlines are added to the clipping path.
func (m TextRenderingMode) Clips() bool {
	return m >= TextRenderingModeFillClip && m <= TextRenderingModeClip
}
