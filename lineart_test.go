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

package lineart

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart/content"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/trace"
)

func testPage(contents string) *content.Page {
	return &content.Page{
		MediaBox: rect.Rect{URx: 600, URy: 800},
		Contents: []byte(contents),
		Resources: &content.Resources{
			Font: map[content.Name]*content.Handle[font.Font]{
				"F1": content.NewHandle[font.Font](&font.Metrics{
					FontName: "XYZABC+Serif",
					Style:    font.FlagSerif,
					Runes:    []rune{'H', 'i'},
					Widths:   []float64{0.7, 0.3},
				}, nil),
			},
		},
	}
}

func TestRectangle(t *testing.T) {
	rr, err := GetDrawings(testPage("10 20 100 50 re f"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rr) != 1 {
		t.Fatalf("got %d records, want 1", len(rr))
	}
	want := []trace.Item{trace.Rectangle(rect.Rect{LLx: 10, LLy: 730, URx: 110, URy: 780}, 1)}
	if d := cmp.Diff(want, rr[0].Items); d != "" {
		t.Errorf("items (-want +got):\n%s", d)
	}
}

func TestQuad(t *testing.T) {
	rr, err := GetDrawings(testPage("0 0 m 10 1 l 11 11 l 1 10 l 0 0 l f"), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []trace.Item{trace.Quad(
		vec.Vec2{X: 0, Y: 800}, vec.Vec2{X: 1, Y: 790},
		vec.Vec2{X: 10, Y: 799}, vec.Vec2{X: 11, Y: 789},
	)}
	if d := cmp.Diff(want, rr[0].Items); d != "" {
		t.Errorf("items (-want +got):\n%s", d)
	}
}

func TestFillStroke(t *testing.T) {
	rr, err := GetDrawings(testPage("1 0 0 rg 0 0 1 RG 10 20 100 50 re B 0 0 m 5 5 l f 0 0 m 6 6 l S"), nil)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []trace.Kind
	for _, r := range rr {
		kinds = append(kinds, r.Kind)
	}
	want := []trace.Kind{trace.KindFillStroke, trace.KindFill, trace.KindStroke}
	if d := cmp.Diff(want, kinds); d != "" {
		t.Fatalf("kinds (-want +got):\n%s", d)
	}
	if *rr[0].Fill.Color != (trace.RGB{1, 0, 0}) || *rr[0].Stroke.Color != (trace.RGB{0, 0, 1}) {
		t.Errorf("colors %v, %v", *rr[0].Fill.Color, *rr[0].Stroke.Color)
	}
}

func TestExtended(t *testing.T) {
	in := "q 0 0 100 100 re W n q 50 50 150 150 re W n 0 0 m 1 1 l S Q Q 0 0 m 2 2 l S"

	plain, err := GetDrawings(testPage(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range plain {
		if _, has := r.Dict()["level"]; has {
			t.Errorf("level present without extended mode: %v", r.Dict())
		}
	}
	if len(plain) != 2 {
		t.Errorf("got %d records without extended mode, want 2", len(plain))
	}

	ext, err := GetDrawings(testPage(in), &Options{Extended: true})
	if err != nil {
		t.Fatal(err)
	}
	type summary struct {
		Kind  trace.Kind
		Level int
	}
	var got []summary
	for _, r := range ext {
		got = append(got, summary{r.Kind, r.Level})
	}
	want := []summary{
		{trace.KindClip, 0},
		{trace.KindClip, 1},
		{trace.KindStroke, 2},
		{trace.KindStroke, 0},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("records (-want +got):\n%s", d)
	}
	wantScissor := rect.Rect{LLx: 50, LLy: 700, URx: 100, URy: 750}
	if ext[1].Clip.Scissor != wantScissor {
		t.Errorf("scissor %v, want %v", ext[1].Clip.Scissor, wantScissor)
	}
}

func TestTextTrace(t *testing.T) {
	rr, err := GetTextTrace(testPage("BT /F1 20 Tf 100 700 Td (Hi) Tj ET 0 0 m 1 1 l S"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rr) != 1 || rr[0].Span == nil {
		t.Fatalf("got %d records, want one span", len(rr))
	}
	s := rr[0].Span
	if s.Font != "Serif" || s.Size != 20 || s.Ascender != 0.9 || s.Descender != -0.1 {
		t.Errorf("font %q, size %g, ascender %g, descender %g",
			s.Font, s.Size, s.Ascender, s.Descender)
	}
	var origins []vec.Vec2
	for _, c := range s.Chars {
		origins = append(origins, c.Origin)
	}
	want := []vec.Vec2{{X: 100, Y: 100}, {X: 114, Y: 100}}
	if d := cmp.Diff(want, origins); d != "" {
		t.Errorf("origins (-want +got):\n%s", d)
	}
}

func TestCallback(t *testing.T) {
	var seqNos []int
	opt := &Options{
		Callback: func(r *trace.Record) error {
			seqNos = append(seqNos, r.SeqNo)
			return errors.New("ignored")
		},
	}
	rr, err := GetDrawings(testPage("0 0 5 5 re B"), opt)
	if err != nil {
		t.Fatal(err)
	}
	if rr != nil {
		t.Errorf("records returned despite callback")
	}
	if d := cmp.Diff([]int{0, 1}, seqNos); d != "" {
		t.Errorf("seqno (-want +got):\n%s", d)
	}
}

func TestErrors(t *testing.T) {
	if _, err := GetDrawings(nil, nil); err != ErrNoPage {
		t.Errorf("nil page: got %v, want %v", err, ErrNoPage)
	}

	opt := &Options{
		Callback: func(*trace.Record) error { return nil },
		Sink:     trace.SinkFunc(func(*trace.Record) error { return nil }),
	}
	if _, err := GetTextTrace(testPage(""), opt); err != ErrConflictingSinks {
		t.Errorf("two sinks: got %v, want %v", err, ErrConflictingSinks)
	}

	cookie := &content.Cookie{}
	cookie.Abort()
	_, err := GetDrawings(testPage("0 0 5 5 re f"), &Options{Cookie: cookie})
	if !errors.Is(err, content.ErrAborted) {
		t.Errorf("aborted: got %v", err)
	}
}

func TestDictsJSON(t *testing.T) {
	rr, err := GetDrawings(testPage("0.5 g 0 0 m 10 0 l 5 5 l h f [3 1] 0 d 0 0 m 1 2 3 4 5 6 c S"), &Options{Extended: true})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(Dicts(rr))
	if err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d records", len(decoded))
	}
	if decoded[0]["type"] != "f" || decoded[0]["closePath"] != true {
		t.Errorf("unexpected fill record %v", decoded[0])
	}
	if decoded[1]["dashes"] != "[ 3 1 ] 0" || decoded[1]["level"] != 0.0 {
		t.Errorf("unexpected stroke record %v", decoded[1])
	}
}

func TestBBoxLog(t *testing.T) {
	in := "/OC << /Name (Ink) >> BDC 2 w 10 20 100 50 re S EMC BT /F1 10 Tf 100 700 Td 3 Tr (Hi) Tj ET"
	entries, err := GetBBoxLog(testPage(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	want := trace.BBoxEntry{
		Type:  trace.BBoxStrokePath,
		Rect:  rect.Rect{LLx: 9, LLy: 729, URx: 111, URy: 781},
		Layer: "Ink",
	}
	if d := cmp.Diff(want, entries[0]); d != "" {
		t.Errorf("stroke entry (-want +got):\n%s", d)
	}

	text := entries[1]
	if text.Type != trace.BBoxIgnoreText || text.Layer != "" {
		t.Errorf("unexpected text entry %v", text)
	}
	if text.Rect.LLx != 100 || text.Rect.URx != 110 {
		t.Errorf("text box %v, want x range [100, 110]", text.Rect)
	}
}
