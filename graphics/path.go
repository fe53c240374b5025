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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path is a path under construction, as built by the path construction
// operators of a content stream.  Coordinates are in user space.
//
// The zero value is an empty path.
type Path struct {
	cmds   []path.Command
	coords []vec.Vec2

	start, current vec.Vec2
	hasCurrent     bool
}

// MoveTo starts a new subpath.
//
// This implements the PDF graphics operator "m".
func (p *Path) MoveTo(x, y float64) {
	pt := vec.Vec2{X: x, Y: y}
	p.cmds = append(p.cmds, path.CmdMoveTo)
	p.coords = append(p.coords, pt)
	p.start, p.current = pt, pt
	p.hasCurrent = true
}

// LineTo appends a straight line segment.
// Without a current point, the segment is ignored.
//
// This implements the PDF graphics operator "l".
func (p *Path) LineTo(x, y float64) {
	if !p.hasCurrent {
		return
	}
	pt := vec.Vec2{X: x, Y: y}
	p.cmds = append(p.cmds, path.CmdLineTo)
	p.coords = append(p.coords, pt)
	p.current = pt
}

// CurveTo appends a cubic Bézier curve.
//
// This implements the PDF graphics operator "c".
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !p.hasCurrent {
		return
	}
	end := vec.Vec2{X: x3, Y: y3}
	p.cmds = append(p.cmds, path.CmdCubeTo)
	p.coords = append(p.coords, vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, end)
	p.current = end
}

// CurveToV appends a cubic Bézier curve whose first control point is the
// current point.
//
// This implements the PDF graphics operator "v".
func (p *Path) CurveToV(x2, y2, x3, y3 float64) {
	p.CurveTo(p.current.X, p.current.Y, x2, y2, x3, y3)
}

// CurveToY appends a cubic Bézier curve whose second control point is the
// end point.
//
// This implements the PDF graphics operator "y".
func (p *Path) CurveToY(x1, y1, x3, y3 float64) {
	p.CurveTo(x1, y1, x3, y3, x3, y3)
}

// QuadTo appends a quadratic Bézier curve.  This is not a PDF operator,
// but is used for glyph outlines.
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	if !p.hasCurrent {
		return
	}
	end := vec.Vec2{X: x2, Y: y2}
	p.cmds = append(p.cmds, path.CmdQuadTo)
	p.coords = append(p.coords, vec.Vec2{X: x1, Y: y1}, end)
	p.current = end
}

// Close closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (p *Path) Close() {
	if !p.hasCurrent {
		return
	}
	p.cmds = append(p.cmds, path.CmdClose)
	p.current = p.start
}

// Rectangle appends a closed rectangle as a new subpath.
//
// This implements the PDF graphics operator "re".
func (p *Path) Rectangle(x, y, width, height float64) {
	p.MoveTo(x, y)
	p.LineTo(x+width, y)
	p.LineTo(x+width, y+height)
	p.LineTo(x, y+height)
	p.Close()
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.cmds) == 0
}

// Reset discards the path.
func (p *Path) Reset() {
	p.cmds = p.cmds[:0]
	p.coords = p.coords[:0]
	p.hasCurrent = false
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	res := *p
	res.cmds = append([]path.Command(nil), p.cmds...)
	res.coords = append([]vec.Vec2(nil), p.coords...)
	return &res
}

// Iter returns an iterator over the segments of the path.
// The point slices passed to yield must not be modified.
func (p *Path) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		k := 0
		for _, cmd := range p.cmds {
			var n int
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, p.coords[k:k+n]) {
				return
			}
			k += n
		}
	}
}
