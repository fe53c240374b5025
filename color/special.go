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

package color

import (
	"errors"
)

// SpaceIndexed represents an indexed colour space.
type SpaceIndexed struct {
	Base   Space
	HiVal  int
	Lookup []byte
}

// Indexed returns a new indexed colour space.
// The lookup table must contain (hiVal+1)*base.Channels() bytes.
func Indexed(base Space, hiVal int, lookup []byte) (*SpaceIndexed, error) {
	if base == nil {
		return nil, errors.New("Indexed: missing base space")
	}
	if hiVal < 0 || hiVal > 255 {
		return nil, errors.New("Indexed: invalid hival")
	}
	if len(lookup) < (hiVal+1)*base.Channels() {
		return nil, errors.New("Indexed: lookup table too short")
	}
	return &SpaceIndexed{Base: base, HiVal: hiVal, Lookup: lookup}, nil
}

// Family implements the [Space] interface.
func (s *SpaceIndexed) Family() string { return "Indexed" }

// Channels implements the [Space] interface.
func (s *SpaceIndexed) Channels() int { return 1 }

// Default implements the [Space] interface.
func (s *SpaceIndexed) Default() []float64 { return []float64{0} }

// ToRGB implements the [Space] interface.
func (s *SpaceIndexed) ToRGB(values []float64) (r, g, b float64, ok bool) {
	if len(values) < 1 {
		return 0, 0, 0, false
	}
	idx := min(max(int(values[0]+0.5), 0), s.HiVal)
	n := s.Base.Channels()
	base := make([]float64, n)
	for i := range base {
		base[i] = float64(s.Lookup[idx*n+i]) / 255
	}
	if lab, isLab := s.Base.(*SpaceLab); isLab {
		// Lab lookup entries are scaled to the component ranges.
		base[0] *= 100
		base[1] = lab.Ranges[0] + base[1]*(lab.Ranges[1]-lab.Ranges[0])
		base[2] = lab.Ranges[2] + base[2]*(lab.Ranges[3]-lab.Ranges[2])
	}
	return s.Base.ToRGB(base)
}

// SpacePattern represents a pattern colour space.
// Pattern colours have no RGB representation.
type SpacePattern struct {
	// Base is the underlying space for uncoloured patterns, or nil.
	Base Space
}

// Family implements the [Space] interface.
func (s *SpacePattern) Family() string { return "Pattern" }

// Channels implements the [Space] interface.
func (s *SpacePattern) Channels() int {
	if s.Base == nil {
		return 0
	}
	return s.Base.Channels()
}

// Default implements the [Space] interface.
func (s *SpacePattern) Default() []float64 { return nil }

// ToRGB implements the [Space] interface.
func (s *SpacePattern) ToRGB([]float64) (r, g, b float64, ok bool) {
	return 0, 0, 0, false
}
