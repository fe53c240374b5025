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

package device

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lineart/graphics"
)

// Discard is a device which ignores all calls.
// It can be embedded to implement only some of the methods.
type Discard struct{}

var _ Device = Discard{}

func (Discard) FillPath(path.Path, bool, matrix.Matrix, *Paint) {}
func (Discard) StrokePath(path.Path, *graphics.StrokeStyle, matrix.Matrix, *Paint) {}
func (Discard) ClipPath(path.Path, bool, matrix.Matrix) {}
func (Discard) ClipStrokePath(path.Path, *graphics.StrokeStyle, matrix.Matrix) {}
func (Discard) ClipText([]*TextSpan, matrix.Matrix) {}
func (Discard) PopClip() {}
func (Discard) BeginGroup(rect.Rect, *Group) {}
func (Discard) EndGroup() {}
func (Discard) BeginLayer(string) {}
func (Discard) EndLayer() {}
func (Discard) FillText(*TextSpan, matrix.Matrix, *Paint) {}
func (Discard) StrokeText(*TextSpan, *graphics.StrokeStyle, matrix.Matrix, *Paint) {}
func (Discard) IgnoreText(*TextSpan, matrix.Matrix) {}
