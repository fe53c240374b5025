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

	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/graphics"
)

// ClipPath implements the [device.Device] interface.
func (t *Tracer) ClipPath(p path.Path, evenOdd bool, ctm matrix.Matrix) {
	defer t.next()
	if !t.extended {
		return
	}
	t.clip(p, ctm, &Clip{EvenOdd: evenOdd})
}

// ClipStrokePath implements the [device.Device] interface.
func (t *Tracer) ClipStrokePath(p path.Path, _ *graphics.StrokeStyle, ctm matrix.Matrix) {
	defer t.next()
	if !t.extended {
		return
	}
	t.clip(p, ctm, &Clip{StrokeClip: true})
}

func (t *Tracer) clip(p path.Path, ctm matrix.Matrix, info *Clip) {
	r := t.pathRecord(KindClip, p, ctm)
	info.Scissor = t.pushScissor(t.pathBounds())
	if r != nil {
		r.Clip = info
		t.emit(r)
	}
}

// ClipText implements the [device.Device] interface.
// Text clips take part in the nesting but produce no record.
func (t *Tracer) ClipText(spans []*device.TextSpan, ctm matrix.Matrix) {
	defer t.next()
	if !t.extended {
		return
	}
	var box bbox
	for _, span := range spans {
		if s := makeSpan(span, ctm); s != nil {
			box.addRect(s.BBox)
		}
	}
	t.pushScissor(box.r)
}

// PopClip implements the [device.Device] interface.
func (t *Tracer) PopClip() {
	if !t.extended || len(t.scissors) == 0 {
		return
	}
	t.scissors = t.scissors[:len(t.scissors)-1]
}

// pushScissor intersects area with the current scissor and pushes the
// result.  The level of records emitted before the push is unaffected.
func (t *Tracer) pushScissor(area rect.Rect) rect.Rect {
	top := t.page
	if n := len(t.scissors); n > 0 {
		top = t.scissors[n-1]
	}
	s := intersect(area, top)
	t.scissors = append(t.scissors, s)
	return s
}

// Scissor returns the current accumulated clip rectangle.
func (t *Tracer) Scissor() rect.Rect {
	if n := len(t.scissors); n > 0 {
		return t.scissors[n-1]
	}
	return t.page
}

// BeginGroup implements the [device.Device] interface.
// The area is given in output space.
func (t *Tracer) BeginGroup(area rect.Rect, group *device.Group) {
	defer t.next()
	if !t.extended {
		return
	}
	r := t.newRecord(KindGroup)
	r.Rect = area
	r.Group = &Group{
		BlendMode: string(graphics.BlendNormal),
		Opacity:   1,
	}
	if group != nil {
		r.Group.Isolated = group.Isolated
		r.Group.Knockout = group.Knockout
		r.Group.Opacity = group.Alpha
		if group.BlendMode != "" {
			r.Group.BlendMode = string(group.BlendMode)
		}
	}
	t.emit(r)
	t.groupDepth++
}

// EndGroup implements the [device.Device] interface.
func (t *Tracer) EndGroup() {
	if !t.extended || t.groupDepth == 0 {
		return
	}
	t.groupDepth--
}
