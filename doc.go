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

// Package lineart extracts vector graphics and text spans from PDF pages.
//
// [GetDrawings] replays the content stream of a page and returns one
// [trace.Record] per fill, stroke, clip or transparency group.  Runs of
// straight lines are simplified: four lines which close into a polygon
// become a single quad item, and axis-aligned rectangles become a single
// rectangle item.  A stroke which directly follows a fill of the same
// path is merged into a combined "fs" record.
//
// [GetTextTrace] returns one record per text span, with the position and
// bounding box of every glyph.  [GetBBoxLog] lists only the type and
// bounding box of every painting operation.
//
// Coordinates are given in a y-down output space, with the origin at the
// top-left corner of the visible page area (see [content.PageTransform]).
//
// Records can be converted to generic maps using [trace.Record.Dict], for
// example to serialise them as JSON:
//
//	records, err := lineart.GetDrawings(page, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	json.NewEncoder(os.Stdout).Encode(lineart.Dicts(records))
//
// The package is silent by default.  Use [SetLogger] to see diagnostic
// messages about malformed content.
package lineart
