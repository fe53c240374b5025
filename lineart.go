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
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/lineart/content"
	"seehuhn.de/go/lineart/internal/logger"
	"seehuhn.de/go/lineart/trace"
)

var (
	// ErrNoPage is returned when no page is given.
	ErrNoPage = content.ErrNoPage

	// ErrConflictingSinks is returned when both Options.Callback and
	// Options.Sink are set.
	ErrConflictingSinks = errors.New("lineart: both Callback and Sink are set")
)

// Options control how a page is traced.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Extended enables clip and group records, and adds the nesting level
	// to every drawing record.  It has no effect on text traces.
	Extended bool

	// Callback, if set, is called for every record as soon as it is
	// complete.  Errors returned by the callback are logged, and the trace
	// continues.
	Callback func(*trace.Record) error

	// Sink is an alternative to Callback.  At most one of the two may be
	// set.
	Sink trace.Sink

	// Cookie, if set, can be used to abort a trace from another goroutine.
	Cookie *content.Cookie
}

// GetDrawings returns the vector graphics on a page.
//
// If a callback or sink is configured, records are passed on immediately
// and the returned slice is nil.  If the trace is aborted through the
// cookie, the records collected so far are returned together with an
// error wrapping [content.ErrAborted].
func GetDrawings(page *content.Page, opt *Options) ([]*trace.Record, error) {
	return get(page, trace.Drawings, opt)
}

// GetTextTrace returns the text spans on a page.
//
// The options are used in the same way as for [GetDrawings].
func GetTextTrace(page *content.Page, opt *Options) ([]*trace.Record, error) {
	return get(page, trace.TextTrace, opt)
}

func get(page *content.Page, mode trace.Mode, opt *Options) ([]*trace.Record, error) {
	if opt == nil {
		opt = &Options{}
	}
	if page == nil {
		return nil, ErrNoPage
	}

	sink := opt.Sink
	if opt.Callback != nil {
		if sink != nil {
			return nil, ErrConflictingSinks
		}
		sink = trace.SinkFunc(opt.Callback)
	}

	t := trace.New(content.OutputBounds(page), &trace.Options{
		Mode:     mode,
		Extended: opt.Extended,
		Sink:     sink,
	})
	err := content.Run(page, t, content.PageTransform(page), opt.Cookie)
	if err != nil {
		return t.Records(), fmt.Errorf("lineart: %w", err)
	}
	return t.Records(), nil
}

// GetBBoxLog returns the type and bounding box of every painting
// operation on the page, in painting order.  Only the Cookie field of opt
// is used.
func GetBBoxLog(page *content.Page, opt *Options) ([]trace.BBoxEntry, error) {
	if page == nil {
		return nil, ErrNoPage
	}
	var cookie *content.Cookie
	if opt != nil {
		cookie = opt.Cookie
	}

	log := &trace.BBoxLog{}
	err := content.Run(page, log, content.PageTransform(page), cookie)
	if err != nil {
		return log.Entries, fmt.Errorf("lineart: %w", err)
	}
	return log.Entries, nil
}

// Dicts converts records into generic maps, using [trace.Record.Dict].
func Dicts(records []*trace.Record) []map[string]any {
	res := make([]map[string]any, len(records))
	for i, r := range records {
		res[i] = r.Dict()
	}
	return res
}

// SetLogger configures the logger for lineart and all its sub-packages.
// By default, no log output is produced.  Pass nil to restore the silent
// default.
//
// Log levels used:
//   - [slog.LevelDebug]: skipped content stream operators
//   - [slog.LevelWarn]: records which could not be delivered to a sink,
//     and form XObjects nested too deeply
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}
