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

// BlendMode is the name of a PDF blend mode.
// See section 11.3.5 of ISO 32000-2:2020.
type BlendMode string

// The standard blend modes.
const (
	BlendNormal     BlendMode = "Normal"
	BlendCompatible BlendMode = "Compatible" // deprecated in PDF 2.0
	BlendMultiply   BlendMode = "Multiply"
	BlendScreen     BlendMode = "Screen"
	BlendOverlay    BlendMode = "Overlay"
	BlendDarken     BlendMode = "Darken"
	BlendLighten    BlendMode = "Lighten"
	BlendColorDodge BlendMode = "ColorDodge"
	BlendColorBurn  BlendMode = "ColorBurn"
	BlendHardLight  BlendMode = "HardLight"
	BlendSoftLight  BlendMode = "SoftLight"
	BlendDifference BlendMode = "Difference"
	BlendExclusion  BlendMode = "Exclusion"
	BlendHue        BlendMode = "Hue"
	BlendSaturation BlendMode = "Saturation"
	BlendColor      BlendMode = "Color"
	BlendLuminosity BlendMode = "Luminosity"
)

var knownBlendModes = map[BlendMode]bool{
	BlendNormal: true, BlendCompatible: true, BlendMultiply: true,
	BlendScreen: true, BlendOverlay: true, BlendDarken: true,
	BlendLighten: true, BlendColorDodge: true, BlendColorBurn: true,
	BlendHardLight: true, BlendSoftLight: true, BlendDifference: true,
	BlendExclusion: true, BlendHue: true, BlendSaturation: true,
	BlendColor: true, BlendLuminosity: true,
}

// SelectBlendMode picks the first known mode from a list of candidates.
// PDF 1.x allowed an array of modes, to be tried in order; an empty or
// unknown list gives BlendNormal.
func SelectBlendMode(candidates ...string) BlendMode {
	for _, c := range candidates {
		if m := BlendMode(c); knownBlendModes[m] {
			if m == BlendCompatible {
				return BlendNormal
			}
			return m
		}
	}
	return BlendNormal
}
