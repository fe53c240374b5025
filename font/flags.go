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

package font

import "strings"

// Flags describes the style of a font.  The bit values are those used for
// the "flags" entry of a text trace.
type Flags uint8

// Possible values for Flags.
const (
	FlagItalic Flags = 1 << 1
	FlagSerif  Flags = 1 << 2
	FlagMono   Flags = 1 << 3
	FlagBold   Flags = 1 << 4
)

// IsMono reports whether all glyphs have the same width.
func (f Flags) IsMono() bool {
	return f&FlagMono != 0
}

func (f Flags) String() string {
	var parts []string
	if f&FlagItalic != 0 {
		parts = append(parts, "italic")
	}
	if f&FlagSerif != 0 {
		parts = append(parts, "serif")
	}
	if f&FlagMono != 0 {
		parts = append(parts, "mono")
	}
	if f&FlagBold != 0 {
		parts = append(parts, "bold")
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}
