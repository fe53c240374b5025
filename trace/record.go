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
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/lineart/font"
)

// Kind identifies the type of a drawing record.
type Kind string

// Possible values for Kind.  The first five values are used as the "type"
// entry of drawing records.
const (
	KindFill       Kind = "f"
	KindStroke     Kind = "s"
	KindFillStroke Kind = "fs"
	KindClip       Kind = "clip"
	KindGroup      Kind = "group"
	KindText       Kind = "text"
)

// Record is one entry of a trace.
//
// Which of the optional fields are set depends on Kind:
//   - KindFill: Fill
//   - KindStroke: Stroke
//   - KindFillStroke: Fill and Stroke
//   - KindClip: Clip
//   - KindGroup: Group
//   - KindText: Span
type Record struct {
	Kind  Kind
	SeqNo int

	// Items is the path of the primitive, in output space.
	Items []Item

	// Rect is the bounding box of all path points, including curve control
	// points.  For groups, this is the group's bounding box.
	Rect rect.Rect

	ClosePath bool

	Fill   *Fill
	Stroke *Stroke
	Clip   *Clip
	Group  *Group
	Span   *Span

	// Level is the clip and group nesting depth.  It is only recorded in
	// extended mode, as indicated by HasLevel.
	Level    int
	HasLevel bool

	// Layer is the name of the enclosing optional content layer, or "".
	Layer string
}

// RGB is a colour with components in the range [0, 1].
type RGB [3]float64

// Fill describes how a path is filled.
type Fill struct {
	Color   *RGB // nil for colours without an RGB representation
	Opacity float64
	EvenOdd bool
}

// Stroke describes how a path is stroked.
type Stroke struct {
	Color   *RGB
	Opacity float64

	// Width is the line width in output space units.
	Width float64

	// LineCap gives the start, dash and end cap styles.
	LineCap  [3]int
	LineJoin int

	// Dashes is the dash pattern in content stream syntax, e.g. "[ 3 2 ] 0".
	Dashes string
}

// Clip describes a clipping operation.
type Clip struct {
	// EvenOdd is the fill rule of the clip path.  It is not meaningful
	// for stroke clips, which are marked by StrokeClip.
	EvenOdd    bool
	StrokeClip bool

	// Scissor is the accumulated clip rectangle after this clip was applied.
	Scissor rect.Rect
}

// Group describes a transparency group.
type Group struct {
	BlendMode string
	Isolated  bool
	Knockout  bool
	Opacity   float64
}

// TextType tells how a text span is painted.
type TextType int

// Possible values for TextType.
const (
	TextFill   TextType = 0
	TextStroke TextType = 1
	TextIgnore TextType = 3
)

// Span is a text span with reconstructed glyph geometry.
type Span struct {
	// Dir is the unit writing direction in output space.
	Dir vec.Vec2

	Font  string
	WMode font.WritingMode
	Flags font.Flags

	// Ascender and Descender are the font's vertical extent, for font size 1.
	Ascender  float64
	Descender float64

	// ColorSpace is the number of components of the original colour space,
	// or 0 for ignored text.
	ColorSpace int
	Color      *RGB

	Size       float64
	Opacity    float64
	LineWidth  float64
	SpaceWidth float64
	Type       TextType

	BBox  rect.Rect
	Chars []Char
}

// Char is one glyph of a span.
type Char struct {
	Unicode rune
	GID     glyph.ID
	Origin  vec.Vec2
	BBox    rect.Rect
}
