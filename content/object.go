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

package content

import (
	"bytes"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Object is an operand in a content stream.  The concrete types are
// Boolean, Integer, Real, String, Name, Array, Dict, and nil for the null
// object.
type Object any

// Boolean represents a PDF boolean value.
type Boolean bool

// Integer represents a PDF integer.
type Integer int64

// Real represents a PDF real number.
type Real float64

// String represents a PDF string, as raw bytes.
type String []byte

// Name represents a PDF name, without the leading slash.
type Name string

// Array represents a PDF array.
type Array []Object

// Dict represents a PDF dictionary.
type Dict map[Name]Object

// operator is a content stream operator, or one of the delimiters
// "<<", ">>", "[", "]" during scanning.
type operator string

// getNumber converts an Integer or Real to float64.
func getNumber(x Object) (float64, bool) {
	switch x := x.(type) {
	case Real:
		return float64(x), true
	case Integer:
		return float64(x), true
	default:
		return 0, false
	}
}

// AsTextString decodes a PDF text string.  Strings with a UTF-16 or
// UTF-8 byte order mark are decoded accordingly, all other strings are
// treated as single-byte encoded.
func AsTextString(s String) string {
	switch {
	case bytes.HasPrefix(s, []byte{0xFE, 0xFF}):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(s)
		if err == nil {
			return string(out)
		}
		return decodeUTF16Lenient(s[2:])
	case bytes.HasPrefix(s, []byte{0xEF, 0xBB, 0xBF}):
		return string(s[3:])
	}

	// PDFDocEncoding agrees with Windows-1252 for all printable characters
	// used in practice.
	out, err := charmap.Windows1252.NewDecoder().Bytes(s)
	if err != nil {
		return string(s)
	}
	return string(out)
}

func decodeUTF16Lenient(s []byte) string {
	u := make([]uint16, len(s)/2)
	for i := range u {
		u[i] = uint16(s[2*i])<<8 | uint16(s[2*i+1])
	}
	return string(utf16.Decode(u))
}
