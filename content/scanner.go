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
	"math"
	"strconv"
)

// A Scanner breaks a content stream into operators and their operands.
//
// Parse errors are ignored as much as possible: malformed tokens are
// dropped, and unbalanced array or dictionary delimiters are skipped.
type Scanner struct {
	data []byte
	pos  int

	line int // 0-based

	stack []*scanStackFrame
	args  []Object
}

type scanStackFrame struct {
	data   []Object
	isDict bool
}

// NewScanner returns a new scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Line returns the 0-based line number of the current position.
func (s *Scanner) Line() int {
	return s.line
}

// Scan returns an iterator over all operators in the content stream.
//
// The args slice passed to the yield function is owned by the scanner and
// is only valid until yield returns.  If yield returns an error, the
// iteration stops and the error is returned.
//
// Inline images are reported as a single "BI" operator, with the image
// dictionary as the only operand.  The image data is skipped.
func (s *Scanner) Scan(data []byte) func(yield func(op string, args []Object) error) error {
	return func(yield func(string, []Object) error) error {
		s.data = data
		s.pos = 0
		s.line = 0
		s.stack = s.stack[:0]
		s.args = s.args[:0]

	tokenLoop:
		for {
			obj, ok := s.nextToken()
			if !ok {
				break
			}

			switch obj {
			case operator("<<"):
				s.stack = append(s.stack, &scanStackFrame{isDict: true})
				continue tokenLoop
			case operator(">>"):
				if len(s.stack) == 0 || !s.stack[len(s.stack)-1].isDict {
					continue tokenLoop
				}
				entry := s.stack[len(s.stack)-1]
				s.stack = s.stack[:len(s.stack)-1]
				obj = makeDict(entry.data)
			case operator("["):
				s.stack = append(s.stack, &scanStackFrame{})
				continue tokenLoop
			case operator("]"):
				if len(s.stack) == 0 || s.stack[len(s.stack)-1].isDict {
					continue tokenLoop
				}
				obj = Array(s.stack[len(s.stack)-1].data)
				s.stack = s.stack[:len(s.stack)-1]
			}

			if len(s.stack) > 0 {
				top := s.stack[len(s.stack)-1]
				top.data = append(top.data, obj)
				continue
			}

			op, isOp := obj.(operator)
			if !isOp {
				s.args = append(s.args, obj)
				continue
			}
			if op == "BI" {
				s.args = append(s.args[:0], s.readInlineImage())
			}
			err := yield(string(op), s.args)
			if err != nil {
				return err
			}
			s.args = s.args[:0]
		}
		return nil
	}
}

func makeDict(data []Object) Dict {
	dict := Dict{}
	for i := 0; i+1 < len(data); i += 2 {
		key, ok := data[i].(Name)
		if !ok || data[i+1] == nil {
			continue
		}
		dict[key] = data[i+1]
	}
	return dict
}

// readInlineImage reads the dictionary of an inline image, up to and
// including the ID operator, and then skips the image data up to and
// including the EI operator.
func (s *Scanner) readInlineImage() Dict {
	var data []Object
	for {
		obj, ok := s.nextToken()
		if !ok {
			return makeDict(data)
		}
		if obj == operator("ID") {
			break
		}
		data = append(data, obj)
	}

	// a single white-space character separates ID from the data
	if s.pos < len(s.data) {
		s.pos++
	}
	for s.pos < len(s.data) {
		idx := bytes.Index(s.data[s.pos:], []byte("EI"))
		if idx < 0 {
			s.pos = len(s.data)
			break
		}
		start := s.pos + idx
		end := start + 2
		s.pos = end
		before := start == 0 || class[s.data[start-1]] == space
		after := end == len(s.data) || class[s.data[end]] != regular
		if before && after {
			break
		}
	}
	return makeDict(data)
}

// nextToken returns the next object, operator or delimiter from the input.
// The second return value is false at the end of input.
func (s *Scanner) nextToken() (Object, bool) {
	for {
		s.skipWhiteSpace()
		if s.pos >= len(s.data) {
			return nil, false
		}

		b := s.data[s.pos]
		switch b {
		case '(':
			s.pos++
			return s.readString(), true
		case '<':
			if s.peekIs("<<") {
				s.pos += 2
				return operator("<<"), true
			}
			s.pos++
			return s.readHexString(), true
		case '>':
			if s.peekIs(">>") {
				s.pos += 2
				return operator(">>"), true
			}
			s.pos++ // unexpected '>'
			continue
		case '[', ']':
			s.pos++
			return operator([]byte{b}), true
		case '/':
			s.pos++
			return s.readName(), true
		case ')', '{', '}':
			s.pos++
			continue
		}

		start := s.pos
		for s.pos < len(s.data) && class[s.data[s.pos]] == regular {
			s.pos++
		}
		if s.pos == start {
			s.pos++ // stray delimiter
			continue
		}
		tok := s.data[start:s.pos]

		if x, ok := parseNumber(tok); ok {
			return x, true
		}
		switch string(tok) {
		case "true":
			return Boolean(true), true
		case "false":
			return Boolean(false), true
		case "null":
			return nil, true
		}
		return operator(tok), true
	}
}

func (s *Scanner) peekIs(prefix string) bool {
	return bytes.HasPrefix(s.data[s.pos:], []byte(prefix))
}

func (s *Scanner) readString() String {
	var res []byte
	bracketLevel := 1
	for s.pos < len(s.data) {
		b := s.data[s.pos]
		s.pos++
		switch b {
		case '(':
			bracketLevel++
			res = append(res, b)
		case ')':
			bracketLevel--
			if bracketLevel == 0 {
				return String(res)
			}
			res = append(res, b)
		case '\\':
			if s.pos >= len(s.data) {
				return String(res)
			}
			b = s.data[s.pos]
			s.pos++
			switch b {
			case 'n':
				res = append(res, '\n')
			case 'r':
				res = append(res, '\r')
			case 't':
				res = append(res, '\t')
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case '\n': // line continuation
			case '\r':
				if s.pos < len(s.data) && s.data[s.pos] == '\n' {
					s.pos++
				}
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := b - '0'
				for i := 0; i < 2 && s.pos < len(s.data); i++ {
					c := s.data[s.pos]
					if c < '0' || c > '7' {
						break
					}
					s.pos++
					oct = oct*8 + (c - '0')
				}
				res = append(res, oct)
			default:
				res = append(res, b)
			}
		case '\r':
			// end-of-line markers inside strings are normalised to '\n'
			if s.pos < len(s.data) && s.data[s.pos] == '\n' {
				s.pos++
			}
			s.line++
			res = append(res, '\n')
		case '\n':
			s.line++
			res = append(res, b)
		default:
			res = append(res, b)
		}
	}
	return String(res)
}

func (s *Scanner) readHexString() String {
	var res []byte
	first := true
	var hi byte
	for s.pos < len(s.data) {
		b := s.data[s.pos]
		s.pos++
		if b == '>' {
			break
		}
		d, ok := hexDigit(b)
		if !ok {
			continue
		}
		if first {
			hi = d << 4
		} else {
			res = append(res, hi|d)
		}
		first = !first
	}
	if !first {
		res = append(res, hi)
	}
	return String(res)
}

// readName reads a name object, after the leading slash.
func (s *Scanner) readName() Name {
	var name []byte
	for s.pos < len(s.data) {
		b := s.data[s.pos]
		if class[b] != regular {
			break
		}
		s.pos++
		if b == '#' && s.pos+1 < len(s.data) {
			hi, ok1 := hexDigit(s.data[s.pos])
			lo, ok2 := hexDigit(s.data[s.pos+1])
			if ok1 && ok2 {
				s.pos += 2
				b = hi<<4 | lo
			}
		}
		name = append(name, b)
	}
	return Name(name)
}

// skipWhiteSpace skips all white space and comments.
func (s *Scanner) skipWhiteSpace() {
	for s.pos < len(s.data) {
		b := s.data[s.pos]
		switch {
		case b == '%':
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		case class[b] == space:
			if b == '\n' || b == '\r' && !(s.pos+1 < len(s.data) && s.data[s.pos+1] == '\n') {
				s.line++
			}
			s.pos++
		default:
			return
		}
	}
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

func parseNumber(s []byte) (Object, bool) {
	x, err := strconv.ParseInt(string(s), 10, 64)
	if err == nil {
		return Integer(x), true
	}

	hasDigit := false
	for i, c := range s {
		switch {
		case (c == '+' || c == '-') && i == 0:
		case c == '.':
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			return nil, false
		}
	}
	if !hasDigit {
		return nil, false
	}

	y, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsInf(y, 0) || math.IsNaN(y) {
		// some producers write numbers like "1.2.3" or "--5"
		return Real(0), true
	}
	return Real(y), true
}

type characterClass byte

const (
	regular characterClass = iota
	space
	delimiter
)

var class [256]characterClass

func init() {
	for _, c := range []byte{0, '\t', '\n', '\f', '\r', ' '} {
		class[c] = space
	}
	for _, c := range []byte("()<>[]{}/%") {
		class[c] = delimiter
	}
}
