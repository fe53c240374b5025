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

// WhitePointD50 is the CIE D50 white point.
var WhitePointD50 = [3]float64{0.9642, 1.0, 0.8249}

// SpaceLab represents a CIE 1976 L*a*b* colour space.
type SpaceLab struct {
	WhitePoint [3]float64

	// Ranges gives the valid ranges for a* and b*, as amin, amax, bmin, bmax.
	Ranges [4]float64
}

// Lab returns a new Lab colour space.
// If ranges is nil, the default range [-100, 100] is used for a* and b*.
func Lab(whitePoint, ranges []float64) (*SpaceLab, error) {
	if len(whitePoint) != 3 || whitePoint[0] <= 0 || whitePoint[1] != 1 || whitePoint[2] <= 0 {
		return nil, errors.New("Lab: invalid white point")
	}
	s := &SpaceLab{Ranges: [4]float64{-100, 100, -100, 100}}
	copy(s.WhitePoint[:], whitePoint)
	if ranges != nil {
		if len(ranges) != 4 || ranges[0] > ranges[1] || ranges[2] > ranges[3] {
			return nil, errors.New("Lab: invalid ranges")
		}
		copy(s.Ranges[:], ranges)
	}
	return s, nil
}

// Family implements the [Space] interface.
func (s *SpaceLab) Family() string { return "Lab" }

// Channels implements the [Space] interface.
func (s *SpaceLab) Channels() int { return 3 }

// Default implements the [Space] interface.
func (s *SpaceLab) Default() []float64 {
	a := min(max(0, s.Ranges[0]), s.Ranges[1])
	b := min(max(0, s.Ranges[2]), s.Ranges[3])
	return []float64{0, a, b}
}

// ToRGB implements the [Space] interface.
func (s *SpaceLab) ToRGB(values []float64) (r, g, b float64, ok bool) {
	if len(values) < 3 {
		return 0, 0, 0, false
	}
	l := min(max(values[0], 0), 100)
	a := min(max(values[1], s.Ranges[0]), s.Ranges[1])
	bb := min(max(values[2], s.Ranges[2]), s.Ranges[3])

	// The D50 white point is used for the conversion to sRGB, scaled to
	// the white point of the space.
	X, Y, Z := labToXYZ(l, a, bb, s.WhitePoint)
	X *= WhitePointD50[0] / s.WhitePoint[0]
	Z *= WhitePointD50[2] / s.WhitePoint[2]
	r, g, b = xyzToSRGB(X, Y, Z)
	return r, g, b, true
}
