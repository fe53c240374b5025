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
	"sync/atomic"

	"seehuhn.de/go/lineart/internal/logger"
)

// Handle is a reference counted shared value.
//
// A new handle holds one reference, owned by the caller of NewHandle.
// Every Acquire must be matched by a Release.  When the last reference is
// released, the free function passed to NewHandle is called.
type Handle[T any] struct {
	value T
	refs  atomic.Int32
	free  func(T)
}

// NewHandle returns a handle holding one reference to value.
// The function free may be nil.
func NewHandle[T any](value T, free func(T)) *Handle[T] {
	h := &Handle[T]{value: value, free: free}
	h.refs.Store(1)
	return h
}

// Value returns the value held by the handle.
func (h *Handle[T]) Value() T {
	return h.value
}

// Acquire adds a reference and returns h.
func (h *Handle[T]) Acquire() *Handle[T] {
	if h.refs.Add(1) <= 1 {
		logger.Get().Error("content: acquire on released handle")
	}
	return h
}

// Release drops a reference.
func (h *Handle[T]) Release() {
	n := h.refs.Add(-1)
	switch {
	case n == 0:
		if h.free != nil {
			h.free(h.value)
		}
	case n < 0:
		logger.Get().Error("content: handle released too often")
	}
}

// Refs returns the current number of references.
func (h *Handle[T]) Refs() int {
	return int(h.refs.Load())
}

// handleSet keeps track of the handles acquired during a run, so that
// every handle is acquired exactly once and released exactly once.
type handleSet[T any] struct {
	held map[*Handle[T]]struct{}
}

// use acquires h, unless it is already held by the set.
func (s *handleSet[T]) use(h *Handle[T]) T {
	if _, ok := s.held[h]; !ok {
		if s.held == nil {
			s.held = make(map[*Handle[T]]struct{})
		}
		s.held[h] = struct{}{}
		h.Acquire()
	}
	return h.value
}

// releaseAll releases all handles in the set.
func (s *handleSet[T]) releaseAll() {
	for h := range s.held {
		h.Release()
	}
	s.held = nil
}
