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
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/graphics"
)

// recorder logs all device calls in a compact text form.
type recorder struct {
	calls  []string
	spans  []*device.TextSpan
	paints []*device.Paint
	ctms   []matrix.Matrix
}

func pathString(p path.Path) string {
	var parts []string
	for cmd, pts := range p {
		s := map[path.Command]string{
			path.CmdMoveTo: "M", path.CmdLineTo: "L", path.CmdQuadTo: "Q",
			path.CmdCubeTo: "C", path.CmdClose: "Z",
		}[cmd]
		for _, pt := range pts {
			s += fmt.Sprintf("%g,%g", pt.X, pt.Y)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) FillPath(p path.Path, evenOdd bool, ctm matrix.Matrix, paint *device.Paint) {
	r.log("fill %s eo=%t", pathString(p), evenOdd)
	r.paints = append(r.paints, paint)
	r.ctms = append(r.ctms, ctm)
}

func (r *recorder) StrokePath(p path.Path, stroke *graphics.StrokeStyle, ctm matrix.Matrix, paint *device.Paint) {
	r.log("stroke %s w=%g", pathString(p), stroke.Width)
	r.paints = append(r.paints, paint)
	r.ctms = append(r.ctms, ctm)
}

func (r *recorder) ClipPath(p path.Path, evenOdd bool, ctm matrix.Matrix) {
	r.log("clip %s eo=%t", pathString(p), evenOdd)
	r.ctms = append(r.ctms, ctm)
}

func (r *recorder) ClipStrokePath(p path.Path, _ *graphics.StrokeStyle, ctm matrix.Matrix) {
	r.log("clipstroke %s", pathString(p))
}

func (r *recorder) ClipText(spans []*device.TextSpan, ctm matrix.Matrix) {
	r.log("cliptext %d", len(spans))
}

func (r *recorder) PopClip() { r.log("popclip") }

func (r *recorder) BeginGroup(area rect.Rect, g *device.Group) {
	r.log("group %g,%g,%g,%g %s %g", area.LLx, area.LLy, area.URx, area.URy, g.BlendMode, g.Alpha)
}

func (r *recorder) EndGroup()              { r.log("endgroup") }
func (r *recorder) BeginLayer(name string) { r.log("layer %s", name) }
func (r *recorder) EndLayer()              { r.log("endlayer") }

func (r *recorder) FillText(span *device.TextSpan, ctm matrix.Matrix, paint *device.Paint) {
	r.log("filltext %d", len(span.Glyphs))
	r.spans = append(r.spans, span)
	r.paints = append(r.paints, paint)
}

func (r *recorder) StrokeText(span *device.TextSpan, stroke *graphics.StrokeStyle, ctm matrix.Matrix, paint *device.Paint) {
	r.log("stroketext %d", len(span.Glyphs))
	r.spans = append(r.spans, span)
}

func (r *recorder) IgnoreText(span *device.TextSpan, ctm matrix.Matrix) {
	r.log("ignoretext %d", len(span.Glyphs))
	r.spans = append(r.spans, span)
}

var testFont = &font.Metrics{
	FontName: "Test",
	Asc:      0.8,
	Desc:     -0.2,
	Runes:    []rune{'a', 'b', ' '},
	Widths:   []float64{0.5, 0.6, 0.25},
}

func run(t *testing.T, contents string, res *Resources) *recorder {
	t.Helper()
	page := &Page{
		MediaBox:  rect.Rect{URx: 200, URy: 100},
		Contents:  []byte(contents),
		Resources: res,
	}
	rec := &recorder{}
	err := Run(page, rec, matrix.Identity, nil)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestPaths(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"10 20 m 30 40 l S", []string{"stroke M10,20 L30,40 w=1"}},
		{"2 w 0 0 m 1 0 l 1 1 l s", []string{"stroke M0,0 L1,0 L1,1 Z w=2"}},
		{"0 0 5 5 re f", []string{"fill M0,0 L5,0 L5,5 L0,5 Z eo=false"}},
		{"0 0 m 1 2 3 4 5 6 c f*", []string{"fill M0,0 C1,23,45,6 eo=true"}},
		{"1 1 m 2 2 3 3 v 4 4 5 5 y h B", []string{
			"fill M1,1 C1,12,23,3 C4,45,55,5 Z eo=false",
			"stroke M1,1 C1,12,23,3 C4,45,55,5 Z w=1",
		}},
		{"0 0 m 1 1 l b*", []string{
			"fill M0,0 L1,1 Z eo=true",
			"stroke M0,0 L1,1 Z w=1",
		}},
		{"0 0 m 1 1 l n", nil},
		{"1 1 l S", nil}, // no current point
		{"0 0 m 1 1 l 0 0 4 4 re W* n", []string{
			"clip M0,0 L1,1 M0,0 L4,0 L4,4 L0,4 Z eo=true",
			"popclip",
		}},
		{"0 0 3 3 re W f", []string{
			"fill M0,0 L3,0 L3,3 L0,3 Z eo=false",
			"clip M0,0 L3,0 L3,3 L0,3 Z eo=false",
			"popclip",
		}},
		{"0 0 m 1 1 l bogus S 1 foo", []string{"stroke M0,0 L1,1 w=1"}},
		{"m S", nil},
	}
	for i, c := range cases {
		rec := run(t, c.in, nil)
		if d := cmp.Diff(c.want, rec.calls); d != "" {
			t.Errorf("%d: %q (-want +got):\n%s", i, c.in, d)
		}
	}
}

func TestClipNesting(t *testing.T) {
	in := `0 0 100 100 re W n
q 10 10 10 10 re W n 20 20 10 10 re W n
q 1 1 1 1 re W n Q
Q
q 5 5 5 5 re W n`
	rec := run(t, in, nil)

	depth := 0
	var trace []int
	for _, c := range rec.calls {
		switch {
		case strings.HasPrefix(c, "clip"):
			depth++
		case c == "popclip":
			depth--
		}
		trace = append(trace, depth)
	}
	want := []int{1, 2, 3, 4, 3, 2, 1, 2, 1, 0}
	if d := cmp.Diff(want, trace); d != "" {
		t.Errorf("clip depth (-want +got):\n%s", d)
	}
}

func TestTransform(t *testing.T) {
	rec := run(t, "q 2 0 0 3 10 20 cm 0 0 m 1 1 l S Q 0 0 m 1 1 l S", nil)
	want := []matrix.Matrix{{2, 0, 0, 3, 10, 20}, matrix.Identity}
	if d := cmp.Diff(want, rec.ctms); d != "" {
		t.Errorf("ctm (-want +got):\n%s", d)
	}
}

func TestColor(t *testing.T) {
	res := &Resources{
		ExtGState: map[Name]*ExtGState{
			"GS1": ReadExtGState(Dict{"ca": Real(0.5), "CA": Real(0.25), "LW": Integer(3)}, nil),
		},
	}
	in := `1 0 0 rg 0 0 1 RG 0 0 1 1 re B
0.5 g 1 G /GS1 gs 0 0 1 1 re B
0 0 0 1 k /DeviceRGB CS 0 1 0 SC 0 0 1 1 re B
/Pattern cs /P1 scn 0 0 1 1 re f`
	rec := run(t, in, res)

	var got []string
	for _, p := range rec.paints {
		got = append(got, fmt.Sprintf("%s@%g", p.Color, p.Alpha))
	}
	want := []string{
		"DeviceRGB[1 0 0]@1", "DeviceRGB[0 0 1]@1",
		"DeviceGray[0.5]@0.5", "DeviceGray[1]@0.25",
		"DeviceCMYK[0 0 0 1]@0.5", "DeviceRGB[0 1 0]@0.25",
		"Pattern[]@0.5",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("paints (-want +got):\n%s", d)
	}
	if !strings.HasSuffix(rec.calls[3], "w=3") {
		t.Errorf("line width from ExtGState not applied: %s", rec.calls[3])
	}
}

func TestBlendGroup(t *testing.T) {
	res := &Resources{
		ExtGState: map[Name]*ExtGState{
			"M": ReadExtGState(Dict{"BM": Array{Name("Foo"), Name("Multiply")}}, nil),
		},
	}
	rec := run(t, "/M gs 10 20 30 40 re f", res)
	want := []string{
		"group 10,20,40,60 Multiply 1",
		"fill M10,20 L40,20 L40,60 L10,60 Z eo=false",
		"endgroup",
	}
	if d := cmp.Diff(want, rec.calls); d != "" {
		t.Errorf("calls (-want +got):\n%s", d)
	}
}

func TestSoftMaskGroup(t *testing.T) {
	res := &Resources{
		ExtGState: map[Name]*ExtGState{
			"S": ReadExtGState(Dict{"SMask": Dict{"S": Name("Luminosity")}}, nil),
			"N": ReadExtGState(Dict{"SMask": Name("None")}, nil),
		},
	}
	rec := run(t, "/S gs 10 20 30 40 re f /N gs 0 0 1 1 re f", res)
	want := []string{
		"group 10,20,40,60 Normal 1",
		"fill M10,20 L40,20 L40,60 L10,60 Z eo=false",
		"endgroup",
		"fill M0,0 L1,0 L1,1 L0,1 Z eo=false",
	}
	if d := cmp.Diff(want, rec.calls); d != "" {
		t.Errorf("calls (-want +got):\n%s", d)
	}
}

func textResources() *Resources {
	return &Resources{
		Font: map[Name]*Handle[font.Font]{"F1": NewHandle[font.Font](testFont, nil)},
	}
}

func TestText(t *testing.T) {
	rec := run(t, "BT /F1 10 Tf 100 50 Td (ab) Tj [(a) -1000 (b)] TJ ET", textResources())
	if d := cmp.Diff([]string{"filltext 2", "filltext 2"}, rec.calls); d != "" {
		t.Fatalf("calls (-want +got):\n%s", d)
	}

	type pos struct{ X, Y float64 }
	var got []pos
	for _, span := range rec.spans {
		for _, g := range span.Glyphs {
			got = append(got, pos{g.X, g.Y})
		}
	}
	want := []pos{{100, 50}, {105, 50}, {111, 50}, {126, 50}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("glyph positions (-want +got):\n%s", d)
	}
	if rec.spans[0].TRM != (matrix.Matrix{10, 0, 0, 10, 0, 0}) {
		t.Errorf("TRM %v", rec.spans[0].TRM)
	}
}

func TestTextState(t *testing.T) {
	in := `BT /F1 10 Tf 50 Tz 2 Tc 5 Tw 3 Ts 14 TL 0 100 Td (a b) Tj T* (a) Tj
1 2 (b) " ET`
	rec := run(t, in, textResources())

	type pos struct{ X, Y float64 }
	var got []pos
	for _, span := range rec.spans {
		for _, g := range span.Glyphs {
			got = append(got, pos{g.X, g.Y})
		}
	}
	// advance of "a" is (5 + 2) * 0.5, of " " is (2.5 + 2 + 5) * 0.5
	want := []pos{{0, 103}, {3.5, 103}, {8.25, 103}, {0, 89}, {0, 75}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("glyph positions (-want +got):\n%s", d)
	}
	if rec.spans[0].TRM != (matrix.Matrix{5, 0, 0, 10, 0, 0}) {
		t.Errorf("TRM %v", rec.spans[0].TRM)
	}
}

func TestTextRenderingModes(t *testing.T) {
	cases := []struct {
		mode int
		want []string
	}{
		{0, []string{"filltext 1"}},
		{1, []string{"stroketext 1"}},
		{2, []string{"filltext 1", "stroketext 1"}},
		{3, []string{"ignoretext 1"}},
		{4, []string{"filltext 1", "filltext 1", "cliptext 2", "popclip"}},
		{7, []string{"cliptext 2", "popclip"}},
	}
	for _, c := range cases {
		in := fmt.Sprintf("BT /F1 12 Tf %d Tr (a) Tj", c.mode)
		if c.mode >= 4 {
			in += " (b) Tj"
		}
		in += " ET"
		rec := run(t, in, textResources())
		if d := cmp.Diff(c.want, rec.calls); d != "" {
			t.Errorf("mode %d (-want +got):\n%s", c.mode, d)
		}
	}
}

func TestTextWithoutFont(t *testing.T) {
	rec := run(t, "BT (a) Tj /F9 12 Tf (b) Tj ET", textResources())
	if len(rec.calls) != 0 {
		t.Errorf("unexpected calls %v", rec.calls)
	}
}

func TestFontHandles(t *testing.T) {
	freed := 0
	h := NewHandle[font.Font](testFont, func(font.Font) { freed++ })
	res := &Resources{Font: map[Name]*Handle[font.Font]{"F1": h}}

	var during int
	dev := &refCounter{h: h, refs: &during}
	page := &Page{
		Contents:  []byte("BT /F1 12 Tf (a) Tj (b) Tj ET"),
		Resources: res,
	}
	if err := Run(page, dev, matrix.Identity, nil); err != nil {
		t.Fatal(err)
	}
	if during != 2 {
		t.Errorf("%d references during the run, want 2", during)
	}
	if h.Refs() != 1 {
		t.Errorf("%d references after the run, want 1", h.Refs())
	}
	h.Release()
	if freed != 1 {
		t.Errorf("free called %d times, want 1", freed)
	}
}

type refCounter struct {
	device.Discard
	h    *Handle[font.Font]
	refs *int
}

func (p *refCounter) FillText(*device.TextSpan, matrix.Matrix, *device.Paint) {
	*p.refs = p.h.Refs()
}

func TestForm(t *testing.T) {
	form := &Form{
		BBox:     rect.Rect{URx: 10, URy: 10},
		Matrix:   matrix.Matrix{2, 0, 0, 2, 100, 0},
		Group:    &device.Group{Isolated: true},
		Contents: []byte("0 0 1 1 re W n 0 0 m 1 1 l S q"),
	}
	res := &Resources{
		XObject: map[Name]*Form{"X1": form},
		ExtGState: map[Name]*ExtGState{
			"A": ReadExtGState(Dict{"ca": Real(0.5)}, nil),
		},
	}
	rec := run(t, "/A gs /X1 Do 0 0 m 1 1 l S", res)
	want := []string{
		"group 100,0,120,20 Normal 0.5",
		"clip M0,0 L10,0 L10,10 L0,10 Z eo=false",
		"clip M0,0 L1,0 L1,1 L0,1 Z eo=false",
		"stroke M0,0 L1,1 w=1",
		"popclip",
		"popclip",
		"endgroup",
		"stroke M0,0 L1,1 w=1",
	}
	if d := cmp.Diff(want, rec.calls); d != "" {
		t.Errorf("calls (-want +got):\n%s", d)
	}
	if rec.ctms[2] != (matrix.Matrix{2, 0, 0, 2, 100, 0}) {
		t.Errorf("form ctm %v", rec.ctms[2])
	}
	if rec.ctms[3] != matrix.Identity {
		t.Errorf("ctm not restored: %v", rec.ctms[3])
	}
}

func TestFormRecursion(t *testing.T) {
	form := &Form{
		BBox:     rect.Rect{URx: 1, URy: 1},
		Contents: []byte("0 0 m 1 1 l S /X Do"),
	}
	res := &Resources{XObject: map[Name]*Form{"X": form}}
	rec := run(t, "/X Do", res)

	strokes, clips, pops := 0, 0, 0
	for _, c := range rec.calls {
		switch {
		case strings.HasPrefix(c, "stroke"):
			strokes++
		case strings.HasPrefix(c, "clip"):
			clips++
		case c == "popclip":
			pops++
		}
	}
	if strokes != maxFormDepth || clips != maxFormDepth || pops != maxFormDepth {
		t.Errorf("strokes %d, clips %d, pops %d; want %d each",
			strokes, clips, pops, maxFormDepth)
	}
}

func TestLayers(t *testing.T) {
	res := &Resources{
		Properties: map[Name]Dict{
			"oc1": {"Type": Name("OCG"), "Name": String("Layer 1")},
		},
	}
	in := `/OC /oc1 BDC 0 0 m 1 1 l S EMC
/Span <</ActualText (x)>> BDC EMC
/OC <</Name <FEFF004C00E4>>> BDC /P BMC`
	rec := run(t, in, res)
	want := []string{
		"layer Layer 1",
		"stroke M0,0 L1,1 w=1",
		"endlayer",
		"layer Lä",
		"endlayer",
	}
	if d := cmp.Diff(want, rec.calls); d != "" {
		t.Errorf("calls (-want +got):\n%s", d)
	}
}

func TestCompatibility(t *testing.T) {
	rec := run(t, "BX 1 2 foo EX 0 0 m 1 1 l S", nil)
	if len(rec.calls) != 1 {
		t.Errorf("unexpected calls %v", rec.calls)
	}
}

func TestNoPage(t *testing.T) {
	if err := Run(nil, device.Discard{}, matrix.Identity, nil); err != ErrNoPage {
		t.Errorf("got %v, want %v", err, ErrNoPage)
	}
}

func TestCookie(t *testing.T) {
	cookie := &Cookie{}
	abortAfter := &abortingDevice{cookie: cookie}
	page := &Page{Contents: []byte("0 0 m 1 1 l S 0 0 m 2 2 l S 0 0 m 3 3 l S")}
	err := Run(page, abortAfter, matrix.Identity, cookie)
	if err != ErrAborted {
		t.Errorf("got %v, want %v", err, ErrAborted)
	}
	if abortAfter.strokes != 1 {
		t.Errorf("%d strokes, want 1", abortAfter.strokes)
	}
	if n := cookie.Progress(); n != 3 {
		t.Errorf("progress %d, want 3", n)
	}
}

type abortingDevice struct {
	device.Discard
	cookie  *Cookie
	strokes int
}

func (d *abortingDevice) StrokePath(path.Path, *graphics.StrokeStyle, matrix.Matrix, *device.Paint) {
	d.strokes++
	d.cookie.Abort()
}

func TestPageTransform(t *testing.T) {
	box := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 220}
	corner := func(m matrix.Matrix, x, y float64) [2]float64 {
		x, y = m.Apply(x, y)
		return [2]float64{x, y}
	}
	cases := []struct {
		rotate  int
		topLeft [2]float64 // image of the top-left corner of the displayed page
		bounds  rect.Rect
	}{
		{0, corner(PageTransform(&Page{MediaBox: box}), 10, 220), rect.Rect{URx: 100, URy: 200}},
		{90, corner(PageTransform(&Page{MediaBox: box, Rotate: 90}), 10, 20), rect.Rect{URx: 200, URy: 100}},
		{180, corner(PageTransform(&Page{MediaBox: box, Rotate: 180}), 110, 20), rect.Rect{URx: 100, URy: 200}},
		{-90, corner(PageTransform(&Page{MediaBox: box, Rotate: -90}), 110, 220), rect.Rect{URx: 200, URy: 100}},
	}
	for _, c := range cases {
		if c.topLeft != [2]float64{0, 0} {
			t.Errorf("rotate %d: top-left corner maps to %v", c.rotate, c.topLeft)
		}
		b := OutputBounds(&Page{MediaBox: box, Rotate: c.rotate})
		if b != c.bounds {
			t.Errorf("rotate %d: bounds %v, want %v", c.rotate, b, c.bounds)
		}
	}

	crop := &Page{MediaBox: box, CropBox: rect.Rect{LLx: 20, LLy: 30, URx: 60, URy: 90}}
	if got := corner(PageTransform(crop), 20, 90); got != [2]float64{0, 0} {
		t.Errorf("crop box: top-left corner maps to %v", got)
	}
}
