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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// apply maps a point through m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// applyLinear maps a vector through m, ignoring the translation part.
func applyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	m[4], m[5] = 0, 0
	x, y := m.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

// expansion returns the factor by which m scales areas, as a length.
func expansion(m matrix.Matrix) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// bbox accumulates the bounding box of a set of points.
type bbox struct {
	r     rect.Rect
	valid bool
}

func (b *bbox) add(p vec.Vec2) {
	if !b.valid {
		b.r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
		b.valid = true
		return
	}
	b.r.LLx = min(b.r.LLx, p.X)
	b.r.LLy = min(b.r.LLy, p.Y)
	b.r.URx = max(b.r.URx, p.X)
	b.r.URy = max(b.r.URy, p.Y)
}

func (b *bbox) addRect(r rect.Rect) {
	b.add(vec.Vec2{X: r.LLx, Y: r.LLy})
	b.add(vec.Vec2{X: r.URx, Y: r.URy})
}

// intersect returns the intersection of two rectangles.  Disjoint
// rectangles give the zero rectangle.
func intersect(a, b rect.Rect) rect.Rect {
	res := rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
	if res.LLx > res.URx || res.LLy > res.URy {
		return rect.Rect{}
	}
	return res
}

// normalize returns the rectangle spanned by two corners.
func normalize(a, b vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: min(a.X, b.X),
		LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X),
		URy: max(a.Y, b.Y),
	}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{X: 1}
	}
	return vec.Vec2{X: v.X / l, Y: v.Y / l}
}
