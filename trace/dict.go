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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Dict converts a record into generic containers, using the field names
// of the drawing and text trace dictionaries.
//
// Points are represented as [2]float64, rectangles as [4]float64 in the
// order x0, y0, x1, y1, and tuples as []any.  Colours are [3]float64 or
// nil.
func (r *Record) Dict() map[string]any {
	if r.Kind == KindText && r.Span != nil {
		d := r.Span.Dict()
		d[keySeqNo] = r.SeqNo
		d[keyLayer] = r.Layer
		return d
	}

	d := map[string]any{
		keyType:  string(r.Kind),
		keyRect:  rectValue(r.Rect),
		keySeqNo: r.SeqNo,
		keyLayer: r.Layer,
	}
	if r.HasLevel {
		d[keyLevel] = r.Level
	}

	if r.Kind != KindGroup {
		items := make([]any, len(r.Items))
		for i, it := range r.Items {
			items[i] = it.tuple()
		}
		d[keyItems] = items
		d[keyClosePath] = r.ClosePath
	}

	if f := r.Fill; f != nil {
		d[keyFill] = colorValue(f.Color)
		d[keyFillOpacity] = f.Opacity
		d[keyEvenOdd] = f.EvenOdd
	}
	if s := r.Stroke; s != nil {
		d[keyColor] = colorValue(s.Color)
		d[keyStrokeOpacity] = s.Opacity
		d[keyWidth] = s.Width
		d[keyLineCap] = []any{s.LineCap[0], s.LineCap[1], s.LineCap[2]}
		d[keyLineJoin] = s.LineJoin
		d[keyDashes] = s.Dashes
	}
	if c := r.Clip; c != nil {
		if c.StrokeClip {
			d[keyEvenOdd] = nil
		} else {
			d[keyEvenOdd] = c.EvenOdd
		}
		d[keyScissor] = rectValue(c.Scissor)
	}
	if g := r.Group; g != nil {
		d[keyBlendMode] = g.BlendMode
		d[keyIsolated] = g.Isolated
		d[keyKnockout] = g.Knockout
		d[keyOpacity] = g.Opacity
	}

	return d
}

// Dict converts a text span into generic containers.
func (s *Span) Dict() map[string]any {
	chars := make([]any, len(s.Chars))
	for i, c := range s.Chars {
		chars[i] = []any{int(c.Unicode), int(c.GID), pointValue(c.Origin), rectValue(c.BBox)}
	}

	return map[string]any{
		keyDir:        pointValue(s.Dir),
		keyFont:       s.Font,
		keyWMode:      int(s.WMode),
		keyFlags:      int(s.Flags),
		keyAscender:   s.Ascender,
		keyDescender:  s.Descender,
		keyColorSpace: s.ColorSpace,
		keyColor:      colorValue(s.Color),
		keySize:       s.Size,
		keyOpacity:    s.Opacity,
		keyLineWidth:  s.LineWidth,
		keySpaceWidth: s.SpaceWidth,
		keyType:       int(s.Type),
		keyBBox:       rectValue(s.BBox),
		keyChars:      chars,
	}
}

func (it Item) tuple() []any {
	switch it.Op {
	case OpLine:
		return []any{string(it.Op), pointValue(it.P[0]), pointValue(it.P[1])}
	case OpCurve:
		return []any{string(it.Op),
			pointValue(it.P[0]), pointValue(it.P[1]), pointValue(it.P[2]), pointValue(it.P[3])}
	case OpQuad:
		var quad [4][2]float64
		for i, p := range it.P {
			quad[i] = pointValue(p)
		}
		return []any{string(it.Op), quad}
	case OpRect:
		return []any{string(it.Op), rectValue(it.Rect), it.Orientation}
	default:
		return []any{string(it.Op)}
	}
}

func pointValue(p vec.Vec2) [2]float64 {
	return [2]float64{p.X, p.Y}
}

func rectValue(r rect.Rect) [4]float64 {
	return [4]float64{r.LLx, r.LLy, r.URx, r.URy}
}

func colorValue(c *RGB) any {
	if c == nil {
		return nil
	}
	return [3]float64(*c)
}

