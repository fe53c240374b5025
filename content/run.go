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
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/graphics"
	"seehuhn.de/go/lineart/internal/logger"
)

// maxFormDepth limits the nesting of form XObjects.
const maxFormDepth = 32

// Run interprets the content stream of a page and reports all drawing
// operations to dev.
//
// The matrix ctm maps default user space to the output space of the
// device; use PageTransform for the conventional y-down page coordinates.
// Cookie may be nil.
//
// Malformed operators are skipped.  The only errors returned are
// ErrNoPage and ErrAborted.  Clips, groups and layers which are still open
// at the end of the content stream are closed before Run returns.
func Run(page *Page, dev device.Device, ctm matrix.Matrix, cookie *Cookie) error {
	if page == nil {
		return ErrNoPage
	}

	in := &interp{
		dev:    dev,
		cookie: cookie,
		state:  newState(ctm),
		res:    page.Resources,
		tm:     matrix.Identity,
		tlm:    matrix.Identity,
	}
	if in.res == nil {
		in.res = &Resources{}
	}
	defer in.fonts.releaseAll()

	err := in.run(page.Contents)
	in.unwindTo(0, 0)
	in.popClips()
	return err
}

type interp struct {
	dev    device.Device
	cookie *Cookie
	fonts  handleSet[font.Font]

	state
	stack []state
	res   *Resources

	path        graphics.Path
	clipPending bool
	clipEvenOdd bool

	inText      bool
	tm, tlm     matrix.Matrix
	textClips   []*device.TextSpan
	textClipCTM matrix.Matrix

	// marked has one entry per open marked-content sequence, which is true
	// if the sequence started an optional content layer.
	marked []bool

	compat    int // nesting level of BX/EX
	formDepth int
}

// run interprets a content stream in the current state.
func (in *interp) run(contents []byte) error {
	s := NewScanner()
	return s.Scan(contents)(func(op string, args []Object) error {
		if in.cookie.Aborted() {
			return ErrAborted
		}
		in.cookie.step()

		err := in.do(op, args)
		if err == nil || errors.Is(err, ErrAborted) {
			return err
		}
		if in.compat > 0 && errors.Is(err, errUnknownOperator) {
			return nil
		}
		logger.Get().Debug("content: skipping operator",
			"err", &MalformedContentError{Op: op, Line: s.Line(), Err: err})
		return nil
	})
}

// pushState implements the q operator.
func (in *interp) pushState() {
	in.stack = append(in.stack, in.state.save())
	in.clips = 0
}

// popState implements the Q operator.  Clips installed since the matching
// q are removed.
func (in *interp) popState() {
	if len(in.stack) == 0 {
		return
	}
	in.popClips()
	in.state = in.stack[len(in.stack)-1]
	in.stack = in.stack[:len(in.stack)-1]
}

func (in *interp) popClips() {
	for range in.clips {
		in.dev.PopClip()
	}
	in.clips = 0
}

// unwindTo restores the graphics state stack and the marked-content stack
// to the given depths.
func (in *interp) unwindTo(depth, marked int) {
	in.inText = false
	in.textClips = nil
	for len(in.stack) > depth {
		in.popState()
	}
	for len(in.marked) > marked {
		in.endMarkedContent()
	}
}

// paint implements the path painting operators.  The path is closed first
// if close is set.  Paths painted with a blend mode other than Normal, or
// through a soft mask, are wrapped in a transparency group.  A pending
// clip is installed after painting.
func (in *interp) paint(close, fill, evenOdd, stroke bool) {
	if close {
		in.path.Close()
	}

	if !in.path.IsEmpty() && (fill || stroke) {
		p := in.path.Iter()
		grouped := in.blendMode != graphics.BlendNormal || in.softMask
		if grouped {
			in.dev.BeginGroup(in.pathArea(), &device.Group{
				BlendMode: in.blendMode,
				Isolated:  in.softMask,
				Alpha:     1,
			})
		}
		if fill {
			in.dev.FillPath(p, evenOdd, in.ctm, in.fillPaint())
		}
		if stroke {
			in.dev.StrokePath(p, in.strokeStyle(), in.ctm, in.strokePaint())
		}
		if grouped {
			in.dev.EndGroup()
		}
	}

	if in.clipPending {
		in.dev.ClipPath(in.path.Iter(), in.clipEvenOdd, in.ctm)
		in.clips++
		in.clipPending = false
	}
	in.path.Reset()
}

// pathArea returns the bounding box of the current path in output space.
func (in *interp) pathArea() rect.Rect {
	var pts []vec.Vec2
	for _, seg := range in.path.Iter() {
		pts = append(pts, seg...)
	}
	return boundingBox(in.ctm, pts...)
}

// doForm draws a form XObject.
func (in *interp) doForm(form *Form) error {
	if in.formDepth >= maxFormDepth {
		logger.Get().Warn("content: form XObjects nested too deeply",
			"limit", maxFormDepth)
		return nil
	}

	in.pushState()
	depth, marked := len(in.stack), len(in.marked)
	savedRes := in.res

	m := form.Matrix
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	in.ctm = m.Mul(in.ctm)

	bbox := form.BBox
	if form.Group != nil {
		group := *form.Group
		group.BlendMode = in.blendMode
		group.Alpha = in.fillAlpha
		in.dev.BeginGroup(transformRect(in.ctm, bbox), &group)
		in.blendMode = graphics.BlendNormal
		in.fillAlpha = 1
		in.strokeAlpha = 1
	}

	var clip graphics.Path
	clip.Rectangle(bbox.LLx, bbox.LLy, bbox.Dx(), bbox.Dy())
	in.dev.ClipPath(clip.Iter(), false, in.ctm)
	in.clips++

	if form.Resources != nil {
		in.res = form.Resources
	}
	in.formDepth++
	err := in.run(form.Contents)
	in.formDepth--
	in.res = savedRes

	in.unwindTo(depth, marked)
	in.path.Reset()
	in.clipPending = false
	in.popClips()
	if form.Group != nil {
		in.dev.EndGroup()
	}
	in.popState()
	return err
}

// beginMarkedContent implements BMC and BDC.  Optional content property
// lists start a layer.
func (in *interp) beginMarkedContent(tag Name, props Dict) {
	name, isLayer := "", false
	if tag == "OC" && props != nil {
		if s, ok := props["Name"].(String); ok {
			name, isLayer = AsTextString(s), true
		} else if ocgs, ok := props["OCGs"].(Dict); ok {
			// an optional content membership dictionary with a single group
			if s, ok := ocgs["Name"].(String); ok {
				name, isLayer = AsTextString(s), true
			}
		}
	}
	if isLayer {
		in.dev.BeginLayer(name)
	}
	in.marked = append(in.marked, isLayer)
}

// endMarkedContent implements EMC.
func (in *interp) endMarkedContent() {
	n := len(in.marked)
	if n == 0 {
		return
	}
	if in.marked[n-1] {
		in.dev.EndLayer()
	}
	in.marked = in.marked[:n-1]
}

func boundingBox(m matrix.Matrix, pts ...vec.Vec2) rect.Rect {
	var res rect.Rect
	for i, p := range pts {
		x, y := m.Apply(p.X, p.Y)
		if i == 0 {
			res = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			continue
		}
		res.LLx = min(res.LLx, x)
		res.LLy = min(res.LLy, y)
		res.URx = max(res.URx, x)
		res.URy = max(res.URy, y)
	}
	return res
}

// transformRect returns the bounding box of the image of r under m.
func transformRect(m matrix.Matrix, r rect.Rect) rect.Rect {
	return boundingBox(m,
		vec.Vec2{X: r.LLx, Y: r.LLy}, vec.Vec2{X: r.URx, Y: r.LLy},
		vec.Vec2{X: r.LLx, Y: r.URy}, vec.Vec2{X: r.URx, Y: r.URy})
}
