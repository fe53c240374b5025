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

// Package trace records the drawing primitives of a page.
//
// A [Tracer] implements [device.Device].  Depending on its mode, it
// collects either the paths painted on a page ("drawings") or the text
// spans shown on it ("text trace").  Records are either buffered, or
// passed to a [Sink] one at a time.
package trace

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/graphics"
)

// Mode selects what a Tracer records.
type Mode int

// Possible values for Mode.
const (
	Drawings Mode = iota
	TextTrace
)

// Sink receives the records of a trace as they are produced.
type Sink interface {
	Put(r *Record) error
}

// SinkFunc adapts a function to the [Sink] interface.
type SinkFunc func(r *Record) error

// Put implements the [Sink] interface.
func (f SinkFunc) Put(r *Record) error {
	return f(r)
}

// Options control the behaviour of a Tracer.
type Options struct {
	Mode Mode

	// Extended enables clip and group records and the nesting level
	// of all records.  It only affects the Drawings mode.
	Extended bool

	// Sink, if set, receives every record as soon as it is complete.
	// Records are then neither buffered nor merged.
	Sink Sink
}

// Tracer is a device which records drawing primitives.
// A Tracer must only be used for a single page.
type Tracer struct {
	mode     Mode
	extended bool
	sink     Sink
	page     rect.Rect

	records []*Record
	seqNo   int

	// scissors holds one accumulated clip rectangle per active clip.
	scissors   []rect.Rect
	groupDepth int
	layer      string

	acc accumulator
}

var _ device.Device = (*Tracer)(nil)

// New returns a tracer for a page with the given bounds in output space.
// If opt is nil, default options are used.
func New(page rect.Rect, opt *Options) *Tracer {
	if opt == nil {
		opt = &Options{}
	}
	return &Tracer{
		mode:     opt.Mode,
		extended: opt.Extended && opt.Mode == Drawings,
		sink:     opt.Sink,
		page:     page,
	}
}

// Records returns the buffered records.
// If a sink was configured, the result is nil.
func (t *Tracer) Records() []*Record {
	return t.records
}

// Depth returns the current clip and group nesting depth.
func (t *Tracer) Depth() int {
	return len(t.scissors) + t.groupDepth
}

// FillPath implements the [device.Device] interface.
func (t *Tracer) FillPath(p path.Path, evenOdd bool, ctm matrix.Matrix, paint *device.Paint) {
	defer t.next()
	if t.mode != Drawings {
		return
	}
	r := t.pathRecord(KindFill, p, ctm)
	if r == nil {
		return
	}
	r.Fill = &Fill{
		Color:   toRGB(paint),
		Opacity: alphaOf(paint),
		EvenOdd: evenOdd,
	}
	t.emit(r)
}

// StrokePath implements the [device.Device] interface.
func (t *Tracer) StrokePath(p path.Path, stroke *graphics.StrokeStyle, ctm matrix.Matrix, paint *device.Paint) {
	defer t.next()
	if t.mode != Drawings {
		return
	}
	r := t.pathRecord(KindStroke, p, ctm)
	if r == nil {
		return
	}
	r.Stroke = makeStroke(stroke, ctm, paint)
	t.emit(r)
}

// BeginLayer implements the [device.Device] interface.
// Layers do not nest; the name of an inner layer replaces the outer one.
func (t *Tracer) BeginLayer(name string) {
	t.layer = name
}

// EndLayer implements the [device.Device] interface.
func (t *Tracer) EndLayer() {
	t.layer = ""
}

// FillText implements the [device.Device] interface.
func (t *Tracer) FillText(span *device.TextSpan, ctm matrix.Matrix, paint *device.Paint) {
	defer t.next()
	if t.mode != TextTrace {
		return
	}
	t.emitSpan(span, ctm, paint, TextFill, 0)
}

// StrokeText implements the [device.Device] interface.
func (t *Tracer) StrokeText(span *device.TextSpan, stroke *graphics.StrokeStyle, ctm matrix.Matrix, paint *device.Paint) {
	defer t.next()
	if t.mode != TextTrace {
		return
	}
	width := 0.0
	if stroke != nil {
		width = stroke.Width * expansion(ctm)
	}
	t.emitSpan(span, ctm, paint, TextStroke, width)
}

// IgnoreText implements the [device.Device] interface.
func (t *Tracer) IgnoreText(span *device.TextSpan, ctm matrix.Matrix) {
	defer t.next()
	if t.mode != TextTrace {
		return
	}
	t.emitSpan(span, ctm, nil, TextIgnore, 0)
}

// next advances the sequence number.  Every primitive consumes one
// number, whether or not it produces a record.
func (t *Tracer) next() {
	t.seqNo++
}

// newRecord allocates a record with the bookkeeping fields filled in.
func (t *Tracer) newRecord(kind Kind) *Record {
	r := &Record{
		Kind:  kind,
		SeqNo: t.seqNo,
		Layer: t.layer,
	}
	if t.extended {
		r.Level = t.Depth()
		r.HasLevel = true
	}
	return r
}

func toRGB(paint *device.Paint) *RGB {
	if paint == nil {
		return nil
	}
	r, g, b, ok := paint.Color.RGB()
	if !ok {
		return nil
	}
	return &RGB{r, g, b}
}

func alphaOf(paint *device.Paint) float64 {
	if paint == nil {
		return 1
	}
	return paint.Alpha
}

func makeStroke(stroke *graphics.StrokeStyle, ctm matrix.Matrix, paint *device.Paint) *Stroke {
	if stroke == nil {
		stroke = graphics.DefaultStrokeStyle()
	}
	lineCap := int(stroke.Cap)
	return &Stroke{
		Color:    toRGB(paint),
		Opacity:  alphaOf(paint),
		Width:    stroke.Width * expansion(ctm),
		LineCap:  [3]int{lineCap, lineCap, lineCap},
		LineJoin: int(stroke.Join),
		Dashes:   stroke.DashString(),
	}
}
