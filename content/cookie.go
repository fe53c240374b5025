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

import "sync/atomic"

// Cookie allows to monitor and cancel a running interpretation of page
// content from another goroutine.
//
// The zero value is ready to use.
type Cookie struct {
	abort    atomic.Bool
	progress atomic.Int64
}

// Abort asks the interpreter to stop at the next operator.
func (c *Cookie) Abort() {
	c.abort.Store(true)
}

// Aborted reports whether Abort has been called.
func (c *Cookie) Aborted() bool {
	return c != nil && c.abort.Load()
}

// Progress returns the number of operators processed so far, including
// the operators inside form XObjects.
func (c *Cookie) Progress() int64 {
	return c.progress.Load()
}

func (c *Cookie) step() {
	if c != nil {
		c.progress.Add(1)
	}
}
