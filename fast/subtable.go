// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"github.com/pkg/errors"

	"github.com/javolution/javolution-go/order"
)

// SubTable is a positional view over a parent range sharing its storage.
// Structural changes through the view shift the parent; the view keeps
// its own length. Overlapping views of the same parent must not be
// mutated independently.
type SubTable[E any] struct {
	parent *Table[E]
	from   int
	size   int
}

func (s *SubTable[E]) checkIndex(i, bound int) {
	if i < 0 || i >= bound {
		panic(errors.Wrapf(ErrIndexOutOfRange, "index %d, bound %d", i, bound))
	}
}

// Size returns the view length.
func (s *SubTable[E]) Size() int { return s.size }

// IsEmpty reports whether the view is empty.
func (s *SubTable[E]) IsEmpty() bool { return s.size == 0 }

// Get returns the element at view index i.
func (s *SubTable[E]) Get(i int) E {
	s.checkIndex(i, s.size)
	return s.parent.Get(s.from + i)
}

// Set replaces the element at view index i and returns the previous one.
func (s *SubTable[E]) Set(i int, e E) E {
	s.checkIndex(i, s.size)
	return s.parent.Set(s.from+i, e)
}

// Add appends e at the end of the range.
func (s *SubTable[E]) Add(e E) bool {
	s.AddAt(s.size, e)
	return true
}

// AddAt inserts e at view index i, growing both the view and the parent.
func (s *SubTable[E]) AddAt(i int, e E) {
	s.checkIndex(i, s.size+1)
	s.parent.AddAt(s.from+i, e)
	s.size++
}

// RemoveAt deletes and returns the element at view index i.
func (s *SubTable[E]) RemoveAt(i int) E {
	s.checkIndex(i, s.size)
	removed := s.parent.RemoveAt(s.from + i)
	s.size--
	return removed
}

// Clear removes every element of the range from the parent.
func (s *SubTable[E]) Clear() {
	for i := s.size - 1; i >= 0; i-- {
		s.parent.RemoveAt(s.from + i)
	}
	s.size = 0
}

// IndexOf returns the lowest view index holding an element equal to e,
// or -1.
func (s *SubTable[E]) IndexOf(e E) int {
	for i := 0; i < s.size; i++ {
		if s.parent.eq.AreEqual(s.Get(i), e) {
			return i
		}
	}
	return -1
}

// Contains reports whether an element equal to e is in the range.
func (s *SubTable[E]) Contains(e E) bool { return s.IndexOf(e) >= 0 }

// Remove deletes the first element of the range equal to e.
func (s *SubTable[E]) Remove(e E) bool {
	i := s.IndexOf(e)
	if i < 0 {
		return false
	}
	s.RemoveAt(i)
	return true
}

// RemoveIf deletes every element of the range matching p.
func (s *SubTable[E]) RemoveIf(p Predicate[E]) bool {
	any := false
	for i := s.size - 1; i >= 0; i-- {
		if p(s.Get(i)) {
			s.RemoveAt(i)
			any = true
		}
	}
	return any
}

// Iterator returns an iterator over the range in positional order.
func (s *SubTable[E]) Iterator() Iterator[E] {
	i := 0
	return newIterator(func() (E, bool) {
		if i >= s.size {
			var zero E
			return zero, false
		}
		e := s.Get(i)
		i++
		return e, true
	})
}

// DescendingIterator returns an iterator over the range in reverse order.
func (s *SubTable[E]) DescendingIterator() Iterator[E] {
	i := s.size - 1
	return newIterator(func() (E, bool) {
		if i < 0 {
			var zero E
			return zero, false
		}
		e := s.Get(i)
		i--
		return e, true
	})
}

// Equality returns the parent equality.
func (s *SubTable[E]) Equality() order.Equality[E] { return s.parent.eq }

// TrySplit partitions the range into up to n read-only index ranges.
func (s *SubTable[E]) TrySplit(n int) []Collection[E] {
	return splitByIndex[E](s, s.size, n, func(i int) E { return s.Get(i) }, s.parent.eq)
}

// Clone returns a standalone table holding a copy of the range.
func (s *SubTable[E]) Clone() Collection[E] {
	c := NewTableWith(s.parent.eq)
	for i := 0; i < s.size; i++ {
		c.AddLast(s.Get(i))
	}
	return c
}
