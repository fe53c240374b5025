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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// accumulator turns a path into a list of items in output space.
//
// Runs of straight lines are counted.  Four lines which close into a
// polygon are replaced by a quad item, and three lines which form the
// start of an axis-aligned rectangle are replaced by a rectangle item when
// the path is closed.
type accumulator struct {
	items     []Item
	box       bbox
	first     vec.Vec2 // start of the current subpath
	last      vec.Vec2 // current point
	lineCount int
	closePath bool
}

func (a *accumulator) reset() {
	a.items = a.items[:0]
	a.box = bbox{}
	a.first = vec.Vec2{}
	a.last = vec.Vec2{}
	a.lineCount = 0
	a.closePath = false
}

// walk appends the items of p, mapped through ctm.
func (a *accumulator) walk(p path.Path, ctm matrix.Matrix) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			a.moveTo(apply(ctm, pts[0]))
		case path.CmdLineTo:
			a.lineTo(apply(ctm, pts[0]))
		case path.CmdQuadTo:
			q := apply(ctm, pts[0])
			p3 := apply(ctm, pts[1])
			p0 := a.last
			c1 := p0.Add(q.Sub(p0).Mul(2.0 / 3.0))
			c2 := p3.Add(q.Sub(p3).Mul(2.0 / 3.0))
			a.curveTo(c1, c2, p3)
		case path.CmdCubeTo:
			a.curveTo(apply(ctm, pts[0]), apply(ctm, pts[1]), apply(ctm, pts[2]))
		case path.CmdClose:
			a.close()
		}
	}
}

func (a *accumulator) moveTo(p vec.Vec2) {
	a.box.add(p)
	a.first = p
	a.last = p
	a.lineCount = 0
}

func (a *accumulator) lineTo(p vec.Vec2) {
	a.box.add(p)
	a.items = append(a.items, Line(a.last, p))
	a.last = p
	a.lineCount++
	if a.lineCount == 4 {
		a.checkQuad()
	}
}

func (a *accumulator) curveTo(c1, c2, p vec.Vec2) {
	a.box.add(c1)
	a.box.add(c2)
	a.box.add(p)
	a.items = append(a.items, Curve(a.last, c1, c2, p))
	a.last = p
	a.lineCount = 0
}

func (a *accumulator) close() {
	if a.lineCount == 3 && a.checkRect() {
		a.last = a.first
		return
	}
	a.closePath = true
	a.lineCount = 0
	a.last = a.first
}

// checkQuad replaces the last four lines by a quad item, if they form a
// closed polygon.  The corners are assigned in path order: the first
// vertex is upper-left, then lower-left, lower-right and upper-right.
func (a *accumulator) checkQuad() {
	n := len(a.items)
	l0, l3 := a.items[n-4], a.items[n-1]
	if l3.P[1] != l0.P[0] {
		return
	}
	ul := a.items[n-4].P[0]
	ll := a.items[n-3].P[0]
	lr := a.items[n-2].P[0]
	ur := a.items[n-1].P[0]
	a.items = append(a.items[:n-4], Quad(ul, ur, ll, lr))
	a.lineCount = 0
}

// checkRect replaces the last three lines by a rectangle item, if they
// run horizontal, vertical, horizontal and the implicit closing line is
// vertical.  The orientation is +1 if the third line has the smaller y
// coordinate, i.e. lies above the first line in a y-down output space.
func (a *accumulator) checkRect() bool {
	n := len(a.items)
	ll := a.items[n-3].P[0]
	lr := a.items[n-3].P[1]
	if a.items[n-2].P[0] != lr || a.items[n-1].P[0] != a.items[n-2].P[1] {
		return false
	}
	ur := a.items[n-2].P[1]
	ul := a.items[n-1].P[1]

	if ll.Y != lr.Y || lr.X != ur.X || ur.Y != ul.Y || ul.X != ll.X {
		return false
	}

	var item Item
	if ul.Y < lr.Y {
		item = Rectangle(normalize(ul, lr), 1)
	} else {
		item = Rectangle(normalize(ll, ur), -1)
	}
	a.items = append(a.items[:n-3], item)
	a.lineCount = 0
	return true
}

// pathRecord walks p and returns a new record with the resulting items.
// If the path has no drawable segments, the result is nil.
func (t *Tracer) pathRecord(kind Kind, p path.Path, ctm matrix.Matrix) *Record {
	t.acc.reset()
	t.acc.walk(p, ctm)
	if len(t.acc.items) == 0 {
		return nil
	}
	r := t.newRecord(kind)
	r.Items = slices.Clone(t.acc.items)
	r.Rect = t.acc.box.r
	r.ClosePath = t.acc.closePath
	return r
}

// pathBounds returns the bounding box of the most recently walked path.
func (t *Tracer) pathBounds() rect.Rect {
	if !t.acc.box.valid {
		return rect.Rect{}
	}
	return t.acc.box.r
}
