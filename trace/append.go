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
	"slices"

	"seehuhn.de/go/lineart/internal/logger"
)

// emit adds a completed record to the trace.
//
// Without a sink, a stroke record which directly follows a fill record
// with the same items, layer and nesting level is merged into the fill
// record.  With a sink, every
// record is delivered immediately; delivery errors are logged and
// otherwise ignored.
func (t *Tracer) emit(r *Record) {
	if t.sink != nil {
		err := t.sink.Put(r)
		if err != nil {
			logger.Get().Warn("trace: cannot deliver record",
				"type", string(r.Kind), "seqno", r.SeqNo, "err", err)
		}
		return
	}

	if r.Kind == KindStroke && len(t.records) > 0 {
		prev := t.records[len(t.records)-1]
		if prev.Kind == KindFill && prev.Layer == r.Layer && prev.Level == r.Level &&
			slices.Equal(prev.Items, r.Items) {
			prev.mergeStroke(r)
			return
		}
	}
	t.records = append(t.records, r)
}

// mergeStroke turns a fill record into a fill-and-stroke record.  All
// fields set by the stroke record take precedence.
func (r *Record) mergeStroke(s *Record) {
	r.Kind = KindFillStroke
	r.Stroke = s.Stroke
	r.SeqNo = s.SeqNo
	r.Rect = s.Rect
	r.ClosePath = s.ClosePath
}
