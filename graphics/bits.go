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

package graphics

import (
	"fmt"
	"strings"
)

// Bits records which graphics state parameters are set by a graphics
// state parameter dictionary.
type Bits uint16

// Possible values for Bits.  The comments give the corresponding key of
// the ExtGState dictionary.
const (
	StateLineWidth   Bits = 1 << iota // LW
	StateLineCap                      // LC
	StateLineJoin                     // LJ
	StateMiterLimit                   // ML
	StateLineDash                     // D, pattern and phase
	StateTextFont                     // Font, includes size
	StateBlendMode                    // BM
	StateStrokeAlpha                  // CA
	StateFillAlpha                    // ca
	StateSoftMask                     // SMask

	numBits = iota
	AllBits Bits = 1<<numBits - 1
)

var dictKeys = [numBits]string{"LW", "LC", "LJ", "ML", "D", "Font", "BM", "CA", "ca", "SMask"}

// Has reports whether all bits of x are set in b.
func (b Bits) Has(x Bits) bool {
	return b&x == x
}

// Names lists the dictionary keys of the set bits, separated by "|".
// Unknown bits are shown in hexadecimal.
func (b Bits) Names() string {
	var parts []string
	for i, key := range dictKeys {
		if b&(1<<i) != 0 {
			parts = append(parts, key)
		}
	}
	if rest := b &^ AllBits; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
