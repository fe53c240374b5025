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
	"fmt"

	"seehuhn.de/go/icc"
)

// SpaceICCBased represents an ICC-based colour space.
//
// Colour conversion uses the alternate space; the profile is only decoded
// to find the number of components and the colour space family.
type SpaceICCBased struct {
	N         int
	Alternate Space
}

// ICCBased returns a new ICC-based colour space.
// If alt is nil, a device space with the profile's number of components
// (or a D50 Lab space for Lab profiles) is used.
func ICCBased(profile []byte, alt Space) (*SpaceICCBased, error) {
	if len(profile) == 0 {
		return nil, errors.New("ICCBased: missing profile")
	}

	p, err := icc.Decode(profile)
	if err != nil {
		return nil, err
	}

	n := p.ColorSpace.NumComponents()
	if alt == nil {
		switch p.ColorSpace {
		case icc.GraySpace, icc.RGBSpace, icc.CMYKSpace:
			alt, err = SpaceForChannels(n)
			if err != nil {
				return nil, fmt.Errorf("ICCBased: %w", err)
			}
		case icc.CIELabSpace:
			alt = &SpaceLab{
				WhitePoint: WhitePointD50,
				Ranges:     [4]float64{-128, 127, -128, 127},
			}
		default:
			return nil, fmt.Errorf("ICCBased: unsupported color space %v", p.ColorSpace)
		}
	}
	if alt.Channels() != n {
		return nil, fmt.Errorf("ICCBased: alternate space has %d components, profile has %d",
			alt.Channels(), n)
	}

	return &SpaceICCBased{N: n, Alternate: alt}, nil
}

// Family implements the [Space] interface.
func (s *SpaceICCBased) Family() string { return "ICCBased" }

// Channels implements the [Space] interface.
func (s *SpaceICCBased) Channels() int { return s.N }

// Default implements the [Space] interface.
func (s *SpaceICCBased) Default() []float64 {
	return s.Alternate.Default()
}

// ToRGB implements the [Space] interface.
func (s *SpaceICCBased) ToRGB(values []float64) (r, g, b float64, ok bool) {
	return s.Alternate.ToRGB(values)
}
