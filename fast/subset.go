// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// SubSet returns a live view over the elements in [from, to), following
// the set order. Adding an element outside the range panics.
func (s *Set[E]) SubSet(from, to E) Collection[E] {
	return &subSet[E]{
		s:  s,
		lo: s.ord.IndexOf(from),
		hi: s.ord.IndexOf(to),
		inRange: func(e E) bool {
			return s.ord.Compare(e, from) >= 0 && s.ord.Compare(e, to) < 0
		},
	}
}

// HeadSet returns a live view over the elements sorting before to.
func (s *Set[E]) HeadSet(to E) Collection[E] {
	return &subSet[E]{
		s:  s,
		lo: 0,
		hi: s.ord.IndexOf(to),
		inRange: func(e E) bool {
			return s.ord.Compare(e, to) < 0
		},
	}
}

// TailSet returns a live view over the elements not sorting before from.
func (s *Set[E]) TailSet(from E) Collection[E] {
	return &subSet[E]{
		s:  s,
		lo: s.ord.IndexOf(from),
		hi: ^uint64(0),
		inRange: func(e E) bool {
			return s.ord.Compare(e, from) >= 0
		},
	}
}

// SubSetOf returns a live view over the occurrences equal to e; its Size
// is the multiplicity of e in a multiset.
func (s *Set[E]) SubSetOf(e E) Collection[E] {
	idx := s.ord.IndexOf(e)
	return &subSet[E]{
		s:  s,
		lo: idx,
		hi: idx,
		inRange: func(x E) bool {
			return s.ord.AreEqual(x, e)
		},
	}
}

// subSet restricts a set to the placement range [lo, hi] narrowed by an
// element-level predicate for the boundary buckets.
type subSet[E any] struct {
	s       *Set[E]
	lo, hi  uint64
	inRange Predicate[E]
}

func (v *subSet[E]) Size() int {
	n := 0
	drain(v.Iterator(), func(E) { n++ })
	return n
}

func (v *subSet[E]) IsEmpty() bool { return !v.Iterator().HasNext() }

func (v *subSet[E]) Clear() {
	v.s.RemoveIf(v.inRange)
}

func (v *subSet[E]) Add(e E) bool {
	if !v.inRange(e) {
		panic(ErrOutsideRange)
	}
	return v.s.Add(e)
}

func (v *subSet[E]) Remove(e E) bool {
	return v.inRange(e) && v.s.Remove(e)
}

func (v *subSet[E]) Contains(e E) bool {
	return v.inRange(e) && v.s.Contains(e)
}

func (v *subSet[E]) RemoveIf(p Predicate[E]) bool {
	return v.s.RemoveIf(func(e E) bool { return v.inRange(e) && p(e) })
}

func (v *subSet[E]) Iterator() Iterator[E] {
	return filterIterator[E](v.s.newSetIterator(v.lo, v.hi, false), v.inRange)
}

func (v *subSet[E]) DescendingIterator() Iterator[E] {
	return filterIterator[E](v.s.newSetIterator(v.lo, v.hi, true), v.inRange)
}

func (v *subSet[E]) Equality() order.Equality[E] { return v.s.ord }

func (v *subSet[E]) TrySplit(n int) []Collection[E] {
	return splitIndexRange(v.s, v.lo, v.hi, n, v.inRange)
}

func (v *subSet[E]) Clone() Collection[E] {
	c := NewSet(v.s.ord)
	drain(v.Iterator(), func(e E) { c.AddMulti(e) })
	return c
}

// idxRange is a read-only partition over a placement index range,
// produced by TrySplit.
type idxRange[E any] struct {
	s       *Set[E]
	lo, hi  uint64
	inRange Predicate[E] // optional extra narrowing
}

func (v *idxRange[E]) match(e E) bool {
	return v.inRange == nil || v.inRange(e)
}

func (v *idxRange[E]) Size() int {
	n := 0
	drain(v.Iterator(), func(E) { n++ })
	return n
}

func (v *idxRange[E]) IsEmpty() bool { return !v.Iterator().HasNext() }

func (v *idxRange[E]) Clear()                     { panic(ErrReadOnly) }
func (v *idxRange[E]) Add(E) bool                 { panic(ErrReadOnly) }
func (v *idxRange[E]) Remove(E) bool              { panic(ErrReadOnly) }
func (v *idxRange[E]) RemoveIf(Predicate[E]) bool { panic(ErrReadOnly) }

func (v *idxRange[E]) Contains(e E) bool {
	idx := v.s.ord.IndexOf(e)
	if idx < v.lo || idx > v.hi {
		return false
	}
	found, ok := v.s.GetAny(e)
	return ok && v.match(found)
}

func (v *idxRange[E]) Iterator() Iterator[E] {
	it := v.s.newSetIterator(v.lo, v.hi, false)
	if v.inRange == nil {
		return it
	}
	return filterIterator[E](it, v.inRange)
}

func (v *idxRange[E]) DescendingIterator() Iterator[E] {
	it := v.s.newSetIterator(v.lo, v.hi, true)
	if v.inRange == nil {
		return it
	}
	return filterIterator[E](it, v.inRange)
}

func (v *idxRange[E]) Equality() order.Equality[E] { return v.s.ord }

func (v *idxRange[E]) TrySplit(n int) []Collection[E] {
	return splitIndexRange(v.s, v.lo, v.hi, n, v.inRange)
}

func (v *idxRange[E]) Clone() Collection[E] {
	c := NewSet(v.s.ord)
	drain(v.Iterator(), func(e E) { c.AddMulti(e) })
	return c
}

// splitIndexRange cuts [lo, hi] into up to n read-only index ranges.
func splitIndexRange[E any](s *Set[E], lo, hi uint64, n int, inRange Predicate[E]) []Collection[E] {
	if n < 1 {
		n = 1
	}
	span := hi - lo
	if uint64(n-1) > span { // More parts than indices.
		n = int(span) + 1
	}
	step := span/uint64(n) + 1
	parts := make([]Collection[E], 0, n)
	for k := 0; k < n; k++ {
		plo := lo + uint64(k)*step
		phi := plo + step - 1
		if phi > hi || phi < plo { // Clamp, including overflow.
			phi = hi
		}
		parts = append(parts, &idxRange[E]{s: s, lo: plo, hi: phi, inRange: inRange})
		if phi == hi {
			break
		}
	}
	return parts
}
