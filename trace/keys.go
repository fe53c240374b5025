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

// Keys of the map representation of records.
const (
	keyType          = "type"
	keyItems         = "items"
	keyRect          = "rect"
	keySeqNo         = "seqno"
	keyLevel         = "level"
	keyLayer         = "layer"
	keyClosePath     = "closePath"
	keyEvenOdd       = "even_odd"
	keyFill          = "fill"
	keyFillOpacity   = "fill_opacity"
	keyColor         = "color"
	keyStrokeOpacity = "stroke_opacity"
	keyWidth         = "width"
	keyLineCap       = "lineCap"
	keyLineJoin      = "lineJoin"
	keyDashes        = "dashes"
	keyScissor       = "scissor"
	keyBlendMode     = "blendmode"
	keyIsolated      = "isolated"
	keyKnockout      = "knockout"
	keyOpacity       = "opacity"

	keyDir        = "dir"
	keyFont       = "font"
	keyWMode      = "wmode"
	keyFlags      = "flags"
	keyAscender   = "ascender"
	keyDescender  = "descender"
	keyColorSpace = "colorspace"
	keySize       = "size"
	keyLineWidth  = "linewidth"
	keySpaceWidth = "spacewidth"
	keyBBox       = "bbox"
	keyChars      = "chars"
)
