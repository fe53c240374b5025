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

// Package gofont provides the Go font family as text span fonts.
//
// These fonts serve as the fallback when a font cannot encode a
// character itself.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/lineart/font/sfntfont"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular    Font = iota // Go Regular
	Bold                   // Go Semi Bold
	BoldItalic             // Go Semi Bold Italic
	Italic                 // Go Italic
	Mono                   // Go Mono Regular
	MonoBold               // Go Mono Semi Bold
)

var ttf = map[Font][]byte{
	Regular:    goregular.TTF,
	Bold:       gobold.TTF,
	BoldItalic: gobolditalic.TTF,
	Italic:     goitalic.TTF,
	Mono:       gomono.TTF,
	MonoBold:   gomonobold.TTF,
}

type loaded struct {
	once sync.Once
	font *sfntfont.Font
	err  error
}

var cache = map[Font]*loaded{}

func init() {
	for f := range ttf {
		cache[f] = &loaded{}
	}
}

// Load returns the font.  Fonts are parsed once and shared.
func (f Font) Load() (*sfntfont.Font, error) {
	l, ok := cache[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}
	l.once.Do(func() {
		l.font, l.err = sfntfont.Read(ttf[f])
		if l.err != nil {
			l.err = fmt.Errorf("gofont: %w", l.err)
		}
	})
	return l.font, l.err
}

// Fallback returns Go Regular, or nil if the font cannot be loaded.
func Fallback() *sfntfont.Font {
	F, _ := Regular.Load()
	return F
}
