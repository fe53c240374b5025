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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart/device"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/graphics"
)

func testFont() *font.Metrics {
	return &font.Metrics{
		FontName: "ABCDEF+Test-Regular",
		Asc:      0.8,
		Desc:     -0.2,
		Runes:    []rune{'a', ' ', 'b'},
		Widths:   []float64{0.5, 0.25, 0.6},
	}
}

func textSpan(F font.Font, size float64, x, y float64, text string) *device.TextSpan {
	span := &device.TextSpan{
		Font: F,
		TRM:  matrix.Matrix{size, 0, 0, size, 0, 0},
	}
	for _, g := range F.Decode([]byte(text)) {
		span.Glyphs = append(span.Glyphs, device.GlyphPos{GID: g.GID, Rune: g.Rune, X: x, Y: y})
		x += g.Advance * size
	}
	return span
}

func traceText(t *testing.T, span *device.TextSpan, ctm matrix.Matrix) *Span {
	t.Helper()
	tr := New(testPage, &Options{Mode: TextTrace})
	tr.FillText(span, ctm, black)
	rr := tr.Records()
	if len(rr) != 1 || rr[0].Span == nil {
		t.Fatalf("got %d records, want one text record", len(rr))
	}
	return rr[0].Span
}

func TestSpanBasics(t *testing.T) {
	s := traceText(t, textSpan(testFont(), 10, 100, 200, "ab"), flipY)

	if s.Font != "Test-Regular" {
		t.Errorf("font %q", s.Font)
	}
	if s.Size != 10 {
		t.Errorf("size %g, want 10", s.Size)
	}
	if s.Dir != (vec.Vec2{X: 1}) {
		t.Errorf("dir %v", s.Dir)
	}
	if s.Type != TextFill || s.Opacity != 1 || s.ColorSpace != 1 {
		t.Errorf("type %d, opacity %g, colorspace %d", s.Type, s.Opacity, s.ColorSpace)
	}
	if d := cmp.Diff(&RGB{0, 0, 0}, s.Color); d != "" {
		t.Errorf("color (-want +got):\n%s", d)
	}

	// In a y-down output space the glyph box extends above the baseline.
	want := []Char{
		{Unicode: 'a', GID: 1, Origin: vec.Vec2{X: 100, Y: 600},
			BBox: rect.Rect{LLx: 100, LLy: 592, URx: 105, URy: 602}},
		{Unicode: 'b', GID: 3, Origin: vec.Vec2{X: 105, Y: 600},
			BBox: rect.Rect{LLx: 105, LLy: 592, URx: 111, URy: 602}},
	}
	if d := cmp.Diff(want, s.Chars); d != "" {
		t.Errorf("chars (-want +got):\n%s", d)
	}
	wantBox := rect.Rect{LLx: 100, LLy: 592, URx: 111, URy: 602}
	if s.BBox != wantBox {
		t.Errorf("bbox %v, want %v", s.BBox, wantBox)
	}
}

func TestSpanUpsideDown(t *testing.T) {
	// Without the flip the output space is y-up, and the box is mirrored
	// so that it still covers the glyphs.
	s := traceText(t, textSpan(testFont(), 10, 100, 200, "a"), matrix.Identity)
	want := rect.Rect{LLx: 100, LLy: 198, URx: 105, URy: 208}
	if s.BBox != want {
		t.Errorf("bbox %v, want %v", s.BBox, want)
	}
}

func TestAscenderFallback(t *testing.T) {
	F := testFont()
	F.Asc = 0
	F.Desc = 0
	s := traceText(t, textSpan(F, 10, 0, 400, "a"), flipY)
	if s.Ascender != 0.9 || s.Descender != -0.1 {
		t.Errorf("ascender %g, descender %g; want 0.9, -0.1", s.Ascender, s.Descender)
	}
	want := rect.Rect{LLx: 0, LLy: 391, URx: 5, URy: 401}
	if s.BBox != want {
		t.Errorf("bbox %v, want %v", s.BBox, want)
	}
}

func TestSpaceWidth(t *testing.T) {
	mono := testFont()
	mono.Style = font.FlagMono
	noSpace := testFont()
	noSpace.Runes = []rune{'a', 'x', 'b'}

	cases := []struct {
		name string
		F    font.Font
		text string
		want float64
	}{
		{"space in span", testFont(), "a b", 2.5},
		{"space from font", testFont(), "ab", 2.5},
		{"monospaced", mono, "ba", 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := traceText(t, textSpan(c.F, 10, 0, 0, c.text), flipY)
			if s.SpaceWidth != c.want {
				t.Errorf("space width %g, want %g", s.SpaceWidth, c.want)
			}
		})
	}

	s := traceText(t, textSpan(noSpace, 10, 0, 0, "ab"), flipY)
	if s.SpaceWidth <= 0 || s.SpaceWidth == 6 {
		t.Errorf("space width %g was not taken from the fallback font", s.SpaceWidth)
	}
}

func TestIgnoreText(t *testing.T) {
	tr := New(testPage, &Options{Mode: TextTrace})
	tr.IgnoreText(textSpan(testFont(), 12, 0, 0, "a"), flipY)
	s := tr.Records()[0].Span
	if s.Type != TextIgnore || s.Color != nil || s.Opacity != 1 || s.ColorSpace != 0 {
		t.Errorf("unexpected ignored span %+v", s)
	}
	d := tr.Records()[0].Dict()
	if d["color"] != nil {
		t.Errorf("color %v, want nil", d["color"])
	}
}

func TestStrokeTextWidth(t *testing.T) {
	tr := New(testPage, &Options{Mode: TextTrace})
	ctm := matrix.Matrix{2, 0, 0, -2, 0, 800}
	tr.StrokeText(textSpan(testFont(), 12, 0, 0, "a"), &graphics.StrokeStyle{Width: 3}, ctm, black)
	s := tr.Records()[0].Span
	if s.Type != TextStroke || s.LineWidth != 6 {
		t.Errorf("type %d, line width %g", s.Type, s.LineWidth)
	}
}

func TestDrawingsModeIgnoresText(t *testing.T) {
	tr := New(testPage, nil)
	tr.FillText(textSpan(testFont(), 12, 0, 0, "a"), flipY, black)
	if len(tr.Records()) != 0 {
		t.Error("text recorded in drawings mode")
	}
}

func TestStripSubsetTag(t *testing.T) {
	cases := []struct{ in, out string }{
		{"ABCDEF+Times-Roman", "Times-Roman"},
		{"Times-Roman", "Times-Roman"},
		{"ABCDE+Times", "ABCDE+Times"},
		{"abcdef+Times", "abcdef+Times"},
		{"", ""},
	}
	for _, c := range cases {
		if got := stripSubsetTag(c.in); got != c.out {
			t.Errorf("stripSubsetTag(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestTextDict(t *testing.T) {
	tr := New(testPage, &Options{Mode: TextTrace})
	tr.BeginLayer("notes")
	tr.FillText(textSpan(testFont(), 10, 100, 200, "a"), flipY, black)
	d := tr.Records()[0].Dict()

	for _, key := range []string{"dir", "font", "wmode", "flags", "ascender",
		"descender", "colorspace", "color", "size", "opacity", "linewidth",
		"spacewidth", "type", "bbox", "chars", "seqno", "layer"} {
		if _, ok := d[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if d["layer"] != "notes" {
		t.Errorf("layer %v", d["layer"])
	}
	chars := d["chars"].([]any)
	want := []any{int('a'), 1, [2]float64{100, 600}, [4]float64{100, 592, 105, 602}}
	if diff := cmp.Diff(want, chars[0]); diff != "" {
		t.Errorf("char tuple (-want +got):\n%s", diff)
	}
}
