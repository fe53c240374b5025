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
	"slices"

	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/graphics"
)

// ExtGState is a graphics state parameter dictionary.
//
// Only the parameters which affect the trace are represented.  Set
// records which of the fields are valid.
type ExtGState struct {
	Set graphics.Bits

	LineWidth  float64
	LineCap    graphics.LineCapStyle
	LineJoin   graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64

	Font     *Handle[font.Font]
	FontSize float64

	BlendMode   graphics.BlendMode
	StrokeAlpha float64
	FillAlpha   float64

	// SoftMask is true if the dictionary installs a soft mask, and false
	// if it removes one.
	SoftMask bool
}

// ReadExtGState converts a graphics state parameter dictionary.
// Fonts referenced by a /Font entry are looked up in res.  Malformed
// entries are ignored.
func ReadExtGState(dict Dict, res *Resources) *ExtGState {
	e := &ExtGState{}
	for key, v := range dict {
		switch key {
		case "LW":
			if x, ok := getNumber(v); ok {
				e.LineWidth = x
				e.Set |= graphics.StateLineWidth
			}
		case "LC":
			if x, ok := v.(Integer); ok {
				e.LineCap = graphics.LineCapStyle(min(max(x, 0), 2))
				e.Set |= graphics.StateLineCap
			}
		case "LJ":
			if x, ok := v.(Integer); ok {
				e.LineJoin = graphics.LineJoinStyle(min(max(x, 0), 2))
				e.Set |= graphics.StateLineJoin
			}
		case "ML":
			if x, ok := getNumber(v); ok {
				e.MiterLimit = max(x, 1)
				e.Set |= graphics.StateMiterLimit
			}
		case "D":
			a, ok := v.(Array)
			if !ok || len(a) != 2 {
				break
			}
			pat, ok1 := a[0].(Array)
			dash, ok2 := convertDashPattern(pat)
			phase, ok3 := getNumber(a[1])
			if ok1 && ok2 && ok3 {
				e.Dash = dash
				e.DashPhase = phase
				e.Set |= graphics.StateLineDash
			}
		case "Font":
			a, ok := v.(Array)
			if !ok || len(a) != 2 || res == nil {
				break
			}
			name, ok1 := a[0].(Name)
			size, ok2 := getNumber(a[1])
			F := res.Font[name]
			if ok1 && ok2 && F != nil {
				e.Font = F
				e.FontSize = size
				e.Set |= graphics.StateTextFont
			}
		case "BM":
			var candidates []string
			switch v := v.(type) {
			case Name:
				candidates = append(candidates, string(v))
			case Array:
				for _, x := range v {
					if n, ok := x.(Name); ok {
						candidates = append(candidates, string(n))
					}
				}
			}
			e.BlendMode = graphics.SelectBlendMode(candidates...)
			e.Set |= graphics.StateBlendMode
		case "CA":
			if x, ok := getNumber(v); ok {
				e.StrokeAlpha = clamp01(x)
				e.Set |= graphics.StateStrokeAlpha
			}
		case "ca":
			if x, ok := getNumber(v); ok {
				e.FillAlpha = clamp01(x)
				e.Set |= graphics.StateFillAlpha
			}
		case "SMask":
			e.SoftMask = v != Name("None")
			e.Set |= graphics.StateSoftMask
		}
	}
	return e
}

// applyTo updates the graphics state with the parameters set in e.
func (e *ExtGState) applyTo(s *state) {
	set := e.Set
	if set.Has(graphics.StateLineWidth) {
		s.stroke.Width = e.LineWidth
	}
	if set.Has(graphics.StateLineCap) {
		s.stroke.Cap = e.LineCap
	}
	if set.Has(graphics.StateLineJoin) {
		s.stroke.Join = e.LineJoin
	}
	if set.Has(graphics.StateMiterLimit) {
		s.stroke.MiterLimit = e.MiterLimit
	}
	if set.Has(graphics.StateLineDash) {
		s.stroke.Dash = slices.Clone(e.Dash)
		s.stroke.DashPhase = e.DashPhase
	}
	if set.Has(graphics.StateTextFont) {
		s.font = e.Font
		s.fontSize = e.FontSize
	}
	if set.Has(graphics.StateBlendMode) {
		s.blendMode = e.BlendMode
	}
	if set.Has(graphics.StateStrokeAlpha) {
		s.strokeAlpha = e.StrokeAlpha
	}
	if set.Has(graphics.StateFillAlpha) {
		s.fillAlpha = e.FillAlpha
	}
	if set.Has(graphics.StateSoftMask) {
		s.softMask = e.SoftMask
	}
}

func convertDashPattern(dashPattern Array) (pat []float64, ok bool) {
	if dashPattern == nil {
		return nil, true
	}
	pat = make([]float64, len(dashPattern))
	for i, obj := range dashPattern {
		x, ok := getNumber(obj)
		if !ok || x < 0 {
			return nil, false
		}
		pat[i] = x
	}
	return pat, true
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
