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

// Pdf-lineart traces the drawings or the text of a decoded PDF content
// stream and writes the records as JSON.
//
// Usage:
//
//	pdf-lineart [options] contents.txt
//
// Fonts used by the content stream must be declared using -font options,
// for example "-font F1=goregular" or "-font F2=/path/to/font.ttf".
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/term"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/content"
	"seehuhn.de/go/lineart/font"
	"seehuhn.de/go/lineart/font/gofont"
	"seehuhn.de/go/lineart/font/sfntfont"
	"seehuhn.de/go/lineart/trace"
)

var builtin = map[string]gofont.Font{
	"goregular":    gofont.Regular,
	"gobold":       gofont.Bold,
	"gobolditalic": gofont.BoldItalic,
	"goitalic":     gofont.Italic,
	"gomono":       gofont.Mono,
	"gomonobold":   gofont.MonoBold,
}

type fontFlags map[string]string

func (f fontFlags) String() string {
	var parts []string
	for _, name := range sortedKeys(f) {
		parts = append(parts, name+"="+f[name])
	}
	return strings.Join(parts, ",")
}

func (f fontFlags) Set(s string) error {
	name, src, ok := strings.Cut(s, "=")
	if !ok || name == "" || src == "" {
		return fmt.Errorf("invalid font %q, expected NAME=SOURCE", s)
	}
	f[name] = src
	return nil
}

func main() {
	fonts := fontFlags{}
	mediaBox := flag.String("mediabox", "0 0 612 792", "page size as \"llx lly urx ury\"")
	rotate := flag.Int("rotate", 0, "page rotation in degrees")
	extended := flag.Bool("extended", false, "include clip and group records")
	text := flag.Bool("text", false, "trace text instead of drawings")
	bbox := flag.Bool("bbox", false, "list the bounding boxes of all painting operations")
	verbose := flag.Bool("v", false, "log skipped operators to stderr")
	flag.Var(fonts, "font", "font resource as NAME=SOURCE, where SOURCE is a Go font name or a TrueType file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] contents.txt\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		lineart.SetLogger(slog.New(h))
	}

	box, err := parseRect(*mediaBox)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -mediabox: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading content stream: %v\n", err)
		os.Exit(1)
	}

	res, err := loadFonts(fonts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fonts: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		for _, h := range res.Font {
			h.Release()
		}
	}()

	page := &content.Page{
		MediaBox:  box,
		Rotate:    *rotate,
		Contents:  data,
		Resources: res,
	}
	opt := &lineart.Options{Extended: *extended}

	var out any
	switch {
	case *bbox:
		var entries []trace.BBoxEntry
		entries, err = lineart.GetBBoxLog(page, opt)
		tuples := make([][]any, len(entries))
		for i, e := range entries {
			tuples[i] = e.Tuple(true)
		}
		out = tuples
	case *text:
		var records []*trace.Record
		records, err = lineart.GetTextTrace(page, opt)
		out = lineart.Dicts(records)
	default:
		var records []*trace.Record
		records, err = lineart.GetDrawings(page, opt)
		out = lineart.Dicts(records)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error tracing page: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		enc.SetIndent("", "  ")
	}
	err = enc.Encode(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func loadFonts(fonts fontFlags) (*content.Resources, error) {
	res := &content.Resources{
		Font: make(map[content.Name]*content.Handle[font.Font]),
	}
	for _, name := range sortedKeys(fonts) {
		F, err := loadFont(fonts[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		res.Font[content.Name(name)] = content.NewHandle[font.Font](F, nil)
	}
	return res, nil
}

func loadFont(src string) (font.Font, error) {
	if g, ok := builtin[src]; ok {
		return g.Load()
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	return sfntfont.Read(data)
}

func parseRect(s string) (rect.Rect, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return rect.Rect{}, errors.New("need four numbers")
	}
	var x [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return rect.Rect{}, err
		}
		x[i] = v
	}
	return rect.Rect{LLx: x[0], LLy: x[1], URx: x[2], URy: x[3]}, nil
}

func sortedKeys(m fontFlags) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
