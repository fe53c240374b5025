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

// The device colour spaces.
var (
	DeviceGray Space = spaceDeviceGray{}
	DeviceRGB  Space = spaceDeviceRGB{}
	DeviceCMYK Space = spaceDeviceCMYK{}
)

type spaceDeviceGray struct{}

func (spaceDeviceGray) Family() string     { return "DeviceGray" }
func (spaceDeviceGray) Channels() int      { return 1 }
func (spaceDeviceGray) Default() []float64 { return []float64{0} }

func (spaceDeviceGray) ToRGB(values []float64) (r, g, b float64, ok bool) {
	v := component(values, 0)
	return v, v, v, true
}

type spaceDeviceRGB struct{}

func (spaceDeviceRGB) Family() string     { return "DeviceRGB" }
func (spaceDeviceRGB) Channels() int      { return 3 }
func (spaceDeviceRGB) Default() []float64 { return []float64{0, 0, 0} }

func (spaceDeviceRGB) ToRGB(values []float64) (r, g, b float64, ok bool) {
	return component(values, 0), component(values, 1), component(values, 2), true
}

type spaceDeviceCMYK struct{}

func (spaceDeviceCMYK) Family() string     { return "DeviceCMYK" }
func (spaceDeviceCMYK) Channels() int      { return 4 }
func (spaceDeviceCMYK) Default() []float64 { return []float64{0, 0, 0, 1} }

// ToRGB uses the naive conversion from section 10.4.2.4 of ISO 32000-2:2020.
func (spaceDeviceCMYK) ToRGB(values []float64) (r, g, b float64, ok bool) {
	k := component(values, 3)
	r = 1 - min(1, component(values, 0)+k)
	g = 1 - min(1, component(values, 1)+k)
	b = 1 - min(1, component(values, 2)+k)
	return r, g, b, true
}
