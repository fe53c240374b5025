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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lineart/color"
	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/font"
)

// Page is a PDF page, with its content stream already decoded.
type Page struct {
	MediaBox rect.Rect

	// CropBox is the visible region of the page.  If this is zero,
	// MediaBox is used.
	CropBox rect.Rect

	// Rotate is the number of degrees by which the page is rotated
	// clockwise when displayed.  It must be a multiple of 90.
	Rotate int

	Contents  []byte
	Resources *Resources
}

// Resources holds the named resources used by a content stream.
type Resources struct {
	Font       map[Name]*Handle[font.Font]
	ExtGState  map[Name]*ExtGState
	ColorSpace map[Name]color.Space
	XObject    map[Name]*Form

	// Properties holds property lists for marked content.
	Properties map[Name]Dict
}

// Form is a form XObject.
type Form struct {
	BBox rect.Rect

	// Matrix maps form space to user space.  The zero value is treated as
	// the identity matrix.
	Matrix matrix.Matrix

	// Group, if set, makes the form a transparency group.
	Group *device.Group

	// Resources is used by the form's content stream.  If this is nil,
	// the resources of the calling content stream are used.
	Resources *Resources

	Contents []byte
}

// Bounds returns the visible region of the page in default user space.
func (p *Page) Bounds() rect.Rect {
	if p.CropBox != (rect.Rect{}) {
		return p.CropBox
	}
	return p.MediaBox
}

// rotation returns Rotate normalised to 0, 90, 180 or 270.
func (p *Page) rotation() int {
	r := p.Rotate % 360
	if r < 0 {
		r += 360
	}
	return r / 90 * 90
}

// PageTransform returns the matrix which maps default user space to the
// output space.  The output space has the origin at the top-left corner of
// the displayed page, with y increasing downwards, and takes the page
// rotation into account.
func PageTransform(p *Page) matrix.Matrix {
	b := p.Bounds()
	x0, y0, x1, y1 := b.LLx, b.LLy, b.URx, b.URy
	switch p.rotation() {
	case 90:
		return matrix.Matrix{0, 1, 1, 0, -y0, -x0}
	case 180:
		return matrix.Matrix{-1, 0, 0, 1, x1, -y0}
	case 270:
		return matrix.Matrix{0, -1, -1, 0, y1, x1}
	default:
		return matrix.Matrix{1, 0, 0, -1, -x0, y1}
	}
}

// OutputBounds returns the page area in output space, as produced by
// PageTransform.
func OutputBounds(p *Page) rect.Rect {
	b := p.Bounds()
	w, h := b.Dx(), b.Dy()
	if r := p.rotation(); r == 90 || r == 270 {
		w, h = h, w
	}
	return rect.Rect{LLx: 0, LLy: 0, URx: w, URy: h}
}
