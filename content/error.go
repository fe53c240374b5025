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
	"errors"
	"strconv"
)

var (
	// ErrNoPage is returned when Run is called without a page.
	ErrNoPage = errors.New("content: no page")

	// ErrAborted is returned when a run is cancelled through its Cookie.
	ErrAborted = errors.New("content: aborted")
)

// MalformedContentError indicates that an operator in a content stream
// could not be interpreted.  Such operators are skipped.
type MalformedContentError struct {
	Op   string
	Line int
	Err  error
}

func (err *MalformedContentError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "malformed operator " + strconv.Quote(err.Op) + middle +
		" (line " + strconv.Itoa(err.Line+1) + ")"
}

func (err *MalformedContentError) Unwrap() error {
	return err.Err
}

var (
	errMissingOperand  = errors.New("missing or invalid operand")
	errNoFont          = errors.New("no font selected")
	errUnknownName     = errors.New("unknown resource name")
	errUnknownOperator = errors.New("unknown operator")
)
