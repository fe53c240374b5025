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

// Op is the operator of a path item.
type Op string

// Possible values for Op.
const (
	OpLine  Op = "l"
	OpCurve Op = "c"
	OpQuad  Op = "qu"
	OpRect  Op = "re"
)

// Item is one element of a drawing record's path.
//
// Items are comparable, so that two paths can be compared with
// slices.Equal.
type Item struct {
	Op Op

	// P holds the points of the item:
	//   - OpLine: start and end point in P[0], P[1]
	//   - OpCurve: start point, two control points and end point
	//   - OpQuad: upper-left, upper-right, lower-left, lower-right corner
	P [4]vec.Vec2

	// Rect and Orientation are used for OpRect.
	Rect        rect.Rect
	Orientation int
}

// Line returns a line item.
func Line(a, b vec.Vec2) Item {
	return Item{Op: OpLine, P: [4]vec.Vec2{a, b}}
}

// Curve returns a cubic Bézier item.
func Curve(p0, p1, p2, p3 vec.Vec2) Item {
	return Item{Op: OpCurve, P: [4]vec.Vec2{p0, p1, p2, p3}}
}

// Quad returns a quadrilateral item.
func Quad(ul, ur, ll, lr vec.Vec2) Item {
	return Item{Op: OpQuad, P: [4]vec.Vec2{ul, ur, ll, lr}}
}

// Rectangle returns an axis-aligned rectangle item.
func Rectangle(r rect.Rect, orientation int) Item {
	return Item{Op: OpRect, Rect: r, Orientation: orientation}
}
