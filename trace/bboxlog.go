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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/graphics"
)

// BBoxType names the operation which produced a [BBoxEntry].
type BBoxType string

// Possible values for BBoxType.
const (
	BBoxFillPath   BBoxType = "fill-path"
	BBoxStrokePath BBoxType = "stroke-path"
	BBoxFillText   BBoxType = "fill-text"
	BBoxStrokeText BBoxType = "stroke-text"
	BBoxIgnoreText BBoxType = "ignore-text"
)

// BBoxEntry is the area covered by one painting operation.
type BBoxEntry struct {
	Type  BBoxType
	Rect  rect.Rect
	Layer string
}

// Tuple returns the entry as (type, rect), or as (type, rect, layer) if
// withLayer is set.
func (e BBoxEntry) Tuple(withLayer bool) []any {
	if withLayer {
		return []any{string(e.Type), rectValue(e.Rect), e.Layer}
	}
	return []any{string(e.Type), rectValue(e.Rect)}
}

// BBoxLog is a device which logs the bounding box of every painting
// operation in output space, in painting order.  Clipping and groups are
// ignored.
type BBoxLog struct {
	device.Discard

	Entries []BBoxEntry

	layer string
	acc   accumulator
}

var _ device.Device = (*BBoxLog)(nil)

func (b *BBoxLog) add(typ BBoxType, r rect.Rect) {
	b.Entries = append(b.Entries, BBoxEntry{Type: typ, Rect: r, Layer: b.layer})
}

// pathBounds returns the output space bounding box of p, or false if the
// path has no segments.
func (b *BBoxLog) pathBounds(p path.Path, ctm matrix.Matrix) (rect.Rect, bool) {
	b.acc.reset()
	b.acc.walk(p, ctm)
	if len(b.acc.items) == 0 {
		return rect.Rect{}, false
	}
	return b.acc.box.r, true
}

// FillPath implements the [device.Device] interface.
func (b *BBoxLog) FillPath(p path.Path, _ bool, ctm matrix.Matrix, _ *device.Paint) {
	if r, ok := b.pathBounds(p, ctm); ok {
		b.add(BBoxFillPath, r)
	}
}

// StrokePath implements the [device.Device] interface.
// The box is enlarged by half the line width on every side.
func (b *BBoxLog) StrokePath(p path.Path, stroke *graphics.StrokeStyle, ctm matrix.Matrix, _ *device.Paint) {
	r, ok := b.pathBounds(p, ctm)
	if !ok {
		return
	}
	if stroke == nil {
		stroke = graphics.DefaultStrokeStyle()
	}
	d := stroke.Width * expansion(ctm) / 2
	r.LLx -= d
	r.LLy -= d
	r.URx += d
	r.URy += d
	b.add(BBoxStrokePath, r)
}

// FillText implements the [device.Device] interface.
func (b *BBoxLog) FillText(span *device.TextSpan, ctm matrix.Matrix, _ *device.Paint) {
	b.text(BBoxFillText, span, ctm)
}

// StrokeText implements the [device.Device] interface.
func (b *BBoxLog) StrokeText(span *device.TextSpan, _ *graphics.StrokeStyle, ctm matrix.Matrix, _ *device.Paint) {
	b.text(BBoxStrokeText, span, ctm)
}

// IgnoreText implements the [device.Device] interface.
func (b *BBoxLog) IgnoreText(span *device.TextSpan, ctm matrix.Matrix) {
	b.text(BBoxIgnoreText, span, ctm)
}

// text logs the union of the glyph ink boxes of a span.
func (b *BBoxLog) text(typ BBoxType, span *device.TextSpan, ctm matrix.Matrix) {
	if span == nil || span.Font == nil {
		return
	}
	mat := span.TRM.Mul(ctm)
	mat[4], mat[5] = 0, 0

	var box bbox
	for _, g := range span.Glyphs {
		origin := apply(ctm, vec.Vec2{X: g.X, Y: g.Y})
		gb := span.Font.GlyphBBox(g.GID)
		if gb == (rect.Rect{}) {
			continue // blank glyph
		}
		for _, c := range [4]vec.Vec2{
			{X: gb.LLx, Y: gb.LLy}, {X: gb.URx, Y: gb.LLy},
			{X: gb.LLx, Y: gb.URy}, {X: gb.URx, Y: gb.URy},
		} {
			box.add(origin.Add(applyLinear(mat, c)))
		}
	}
	if box.valid {
		b.add(typ, box.r)
	}
}

// BeginLayer implements the [device.Device] interface.
func (b *BBoxLog) BeginLayer(name string) { b.layer = name }

// EndLayer implements the [device.Device] interface.
func (b *BBoxLog) EndLayer() { b.layer = "" }
