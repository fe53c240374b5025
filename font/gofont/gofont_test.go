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

package gofont

import (
	"testing"

	"seehuhn.de/go/lineart/font"
)

func TestLoad(t *testing.T) {
	for f := range ttf {
		F, err := f.Load()
		if err != nil {
			t.Fatal(err)
		}
		if F.Name() == "" {
			t.Errorf("font %d has no name", f)
		}
		if F.Ascender() <= 0 || F.Descender() >= 0 {
			t.Errorf("%s: ascender %g, descender %g", F.Name(), F.Ascender(), F.Descender())
		}
		if _, ok := F.Lookup('A'); !ok {
			t.Errorf("%s: no glyph for 'A'", F.Name())
		}
	}
}

func TestShared(t *testing.T) {
	a, _ := Regular.Load()
	b, _ := Regular.Load()
	if a != b {
		t.Error("font loaded twice")
	}
}

func TestUnknown(t *testing.T) {
	if _, err := Font(99).Load(); err == nil {
		t.Error("unknown font loaded")
	}
}

func TestMonoFlags(t *testing.T) {
	F, err := Mono.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !F.Flags().IsMono() {
		t.Error("Go Mono is not reported as monospaced")
	}

	space, ok := F.Lookup(' ')
	if !ok {
		t.Fatal("no space glyph")
	}
	m, _ := F.Lookup('m')
	if F.Advance(space) != F.Advance(m) {
		t.Errorf("space %g, m %g", F.Advance(space), F.Advance(m))
	}
}

func TestDecode(t *testing.T) {
	F := Fallback()
	gg := F.Decode([]byte("a b"))
	if len(gg) != 3 {
		t.Fatalf("got %d glyphs", len(gg))
	}
	if !gg[1].WordSpace || gg[1].Rune != ' ' {
		t.Errorf("unexpected space glyph %v", gg[1])
	}
	for _, g := range gg {
		if g.Advance <= 0 || g.Advance > 1 {
			t.Errorf("advance %g", g.Advance)
		}
	}
	var _ font.Font = F
}
