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

// Package color implements the PDF colour spaces needed to report fill and
// stroke colours as RGB triples.
package color

import "fmt"

// Space is a PDF colour space.
type Space interface {
	// Family returns the colour space family name, e.g. "DeviceRGB".
	Family() string

	// Channels returns the number of colour components.
	Channels() int

	// Default returns the initial colour component values.
	Default() []float64

	// ToRGB converts colour components to sRGB values in [0, 1].
	// The result is false if the space has no meaningful RGB representation.
	ToRGB(values []float64) (r, g, b float64, ok bool)
}

// Color is a colour value together with its colour space.
type Color struct {
	Space  Space
	Values []float64
}

// New returns the initial colour of the given space.
func New(s Space) Color {
	return Color{Space: s, Values: s.Default()}
}

// RGB converts c to sRGB.
func (c Color) RGB() (r, g, b float64, ok bool) {
	if c.Space == nil {
		return 0, 0, 0, false
	}
	return c.Space.ToRGB(c.Values)
}

// String returns a human-readable description of c.
func (c Color) String() string {
	if c.Space == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%v", c.Space.Family(), c.Values)
}

// Black is the initial colour of a graphics state.
var Black = Color{Space: DeviceGray, Values: []float64{0}}

// SpaceForChannels returns the device colour space with n components.
// This is used for ICC profiles and images where only the number of
// components is known.
func SpaceForChannels(n int) (Space, error) {
	switch n {
	case 1:
		return DeviceGray, nil
	case 3:
		return DeviceRGB, nil
	case 4:
		return DeviceCMYK, nil
	default:
		return nil, fmt.Errorf("color: invalid number of components %d", n)
	}
}

// component returns values[i] clamped to [0, 1], or 0 if missing.
func component(values []float64, i int) float64 {
	if i >= len(values) {
		return 0
	}
	return clamp01(values[i])
}
