// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"github.com/javolution/javolution-go/d"
	"github.com/javolution/javolution-go/fractal"
	"github.com/javolution/javolution-go/order"
)

// Set is an ordered set placed into a sparse array by its order's
// placement index; elements sharing an index go to a sorted collision
// chain. Iteration follows the order. Standard adds reject duplicates;
// AddMulti (or the Multi view) turns the set into a multiset where equal
// elements keep their insertion order. A Set is not safe for concurrent
// use; wrap it with Shared or Atomic.
type Set[E any] struct {
	ord  order.Order[E]
	data *fractal.Sparse[bucket[E]]
	size int
}

// NewSet returns an empty set ordered by ord.
func NewSet[E any](ord order.Order[E]) *Set[E] {
	return &Set[E]{ord: ord, data: fractal.NewSparse[bucket[E]]()}
}

// NewSetOf returns a set ordered by ord holding elems.
func NewSetOf[E any](ord order.Order[E], elems ...E) *Set[E] {
	s := NewSet(ord)
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Size returns the number of elements, duplicates counted.
func (s *Set[E]) Size() int { return s.size }

// IsEmpty reports whether the set holds no element.
func (s *Set[E]) IsEmpty() bool { return s.size == 0 }

// Clear removes all elements.
func (s *Set[E]) Clear() {
	s.data = fractal.NewSparse[bucket[E]]()
	s.size = 0
}

// Order returns the placement order.
func (s *Set[E]) Order() order.Order[E] { return s.ord }

// Equality returns the placement order, which defines membership.
func (s *Set[E]) Equality() order.Equality[E] { return s.ord }

// Add inserts e unless an equal element is present.
func (s *Set[E]) Add(e E) bool { return s.add(e, false) }

// AddMulti inserts e even when equal elements are present; equal elements
// iterate in insertion order.
func (s *Set[E]) AddMulti(e E) { s.add(e, true) }

func (s *Set[E]) add(e E, allowDup bool) bool {
	idx := s.ord.IndexOf(e)
	b, ok := s.data.Get(idx)
	if !ok {
		s.data.Set(idx, singleBucket(e))
		s.size++
		return true
	}
	nb, added := b.add(e, s.ord, allowDup)
	if added {
		s.data.Set(idx, nb)
		s.size++
	}
	return added
}

// GetAny returns an element equal to e, if any. With duplicates it
// returns the earliest inserted one.
func (s *Set[E]) GetAny(e E) (E, bool) {
	if b, ok := s.data.Get(s.ord.IndexOf(e)); ok {
		if found, _, hit := b.find(e, s.ord); hit {
			return found, true
		}
	}
	var zero E
	return zero, false
}

// Contains reports whether an element equal to e is present.
func (s *Set[E]) Contains(e E) bool {
	_, ok := s.GetAny(e)
	return ok
}

// Remove deletes one occurrence equal to e.
func (s *Set[E]) Remove(e E) bool {
	_, ok := s.RemoveAny(e)
	return ok
}

// RemoveAny deletes and returns one occurrence equal to e.
func (s *Set[E]) RemoveAny(e E) (E, bool) {
	idx := s.ord.IndexOf(e)
	var zero E
	b, ok := s.data.Get(idx)
	if !ok {
		return zero, false
	}
	nb, removed, found, empty := b.remove(e, s.ord)
	if !found {
		return zero, false
	}
	if empty {
		s.data.Clear(idx)
	} else {
		s.data.Set(idx, nb)
	}
	s.size--
	return removed, true
}

// replaceAny substitutes e for the first present element equal to it,
// keeping its position among duplicates, and returns the element
// replaced.
func (s *Set[E]) replaceAny(e E) (E, bool) {
	idx := s.ord.IndexOf(e)
	var zero E
	b, ok := s.data.Get(idx)
	if !ok {
		return zero, false
	}
	nb, old, found := b.replace(e, s.ord)
	if !found {
		return zero, false
	}
	s.data.Set(idx, nb)
	return old, true
}

// RemoveIf deletes every element matching p.
func (s *Set[E]) RemoveIf(p Predicate[E]) bool {
	changed := false
	for idx := uint64(0); ; {
		i, b, ok := s.data.Ceiling(idx)
		if !ok {
			break
		}
		if nb, removed, empty := b.removeIf(p); removed > 0 {
			if empty {
				s.data.Clear(i)
			} else {
				s.data.Set(i, nb)
			}
			s.size -= removed
			changed = true
		}
		if i == ^uint64(0) {
			break
		}
		idx = i + 1
	}
	return changed
}

// First returns the lowest element.
func (s *Set[E]) First() (E, bool) {
	if _, b, ok := s.data.Ceiling(0); ok {
		return b.elems()[0], true
	}
	var zero E
	return zero, false
}

// Last returns the highest element.
func (s *Set[E]) Last() (E, bool) {
	if _, b, ok := s.data.Floor(^uint64(0)); ok {
		chain := b.elems()
		return chain[len(chain)-1], true
	}
	var zero E
	return zero, false
}

// PollFirst deletes and returns the lowest element.
func (s *Set[E]) PollFirst() (E, bool) {
	e, ok := s.First()
	if ok {
		s.Remove(e)
	}
	return e, ok
}

// PollLast deletes and returns the highest element.
func (s *Set[E]) PollLast() (E, bool) {
	e, ok := s.Last()
	if ok {
		s.Remove(e)
	}
	return e, ok
}

// Ceiling returns the lowest element not sorting before e.
func (s *Set[E]) Ceiling(e E) (E, bool) { return s.searchUp(e, false) }

// Higher returns the lowest element sorting strictly after e.
func (s *Set[E]) Higher(e E) (E, bool) { return s.searchUp(e, true) }

// Floor returns the highest element not sorting after e.
func (s *Set[E]) Floor(e E) (E, bool) { return s.searchDown(e, false) }

// Lower returns the highest element sorting strictly before e.
func (s *Set[E]) Lower(e E) (E, bool) { return s.searchDown(e, true) }

func (s *Set[E]) searchUp(e E, strict bool) (E, bool) {
	var zero E
	idx := s.ord.IndexOf(e)
	i, b, ok := s.data.Ceiling(idx)
	if !ok {
		return zero, false
	}
	if i == idx {
		chain := b.elems()
		var pos int
		if strict {
			pos = lastIndex(chain, e, s.ord)
		} else {
			pos = firstIndex(chain, e, s.ord)
		}
		if pos < len(chain) {
			return chain[pos], true
		}
		if i == ^uint64(0) {
			return zero, false
		}
		if i, b, ok = s.data.Ceiling(i + 1); !ok {
			return zero, false
		}
	}
	return b.elems()[0], true
}

func (s *Set[E]) searchDown(e E, strict bool) (E, bool) {
	var zero E
	idx := s.ord.IndexOf(e)
	i, b, ok := s.data.Floor(idx)
	if !ok {
		return zero, false
	}
	if i == idx {
		chain := b.elems()
		var pos int
		if strict {
			pos = firstIndex(chain, e, s.ord) - 1
		} else {
			pos = lastIndex(chain, e, s.ord) - 1
		}
		if pos >= 0 {
			return chain[pos], true
		}
		if i == 0 {
			return zero, false
		}
		if i, b, ok = s.data.Floor(i - 1); !ok {
			return zero, false
		}
	}
	chain := b.elems()
	return chain[len(chain)-1], true
}

// Iterator returns a mutable iterator in set order.
func (s *Set[E]) Iterator() Iterator[E] {
	return s.newSetIterator(0, ^uint64(0), false)
}

// DescendingIterator returns a mutable iterator in reverse set order.
func (s *Set[E]) DescendingIterator() Iterator[E] {
	return s.newSetIterator(0, ^uint64(0), true)
}

// cursor iterates the buckets whose placement index lies in [lo, hi].
// Bucket chains are immutable snapshots, so removal through the set while
// the cursor is inside a bucket stays safe.
func (s *Set[E]) cursor(lo, hi uint64, desc bool) func() (E, bool) {
	var chain []E
	var pos int
	next, more := lo, lo <= hi
	if desc {
		next = hi
	}
	return func() (E, bool) {
		for {
			if !desc && pos < len(chain) {
				e := chain[pos]
				pos++
				return e, true
			}
			if desc && pos >= 0 && len(chain) > 0 {
				e := chain[pos]
				pos--
				return e, true
			}
			chain = nil
			if !more {
				var zero E
				return zero, false
			}
			if desc {
				i, b, ok := s.data.Floor(next)
				if !ok || i < lo {
					more = false
					continue
				}
				chain = b.elems()
				pos = len(chain) - 1
				if i == lo {
					more = false
				} else {
					next = i - 1
				}
			} else {
				i, b, ok := s.data.Ceiling(next)
				if !ok || i > hi {
					more = false
					continue
				}
				chain = b.elems()
				pos = 0
				if i == hi {
					more = false
				} else {
					next = i + 1
				}
			}
		}
	}
}

type setIterator[E any] struct {
	funcIterator[E]
	s      *Set[E]
	last   E
	lastOk bool
}

func (s *Set[E]) newSetIterator(lo, hi uint64, desc bool) *setIterator[E] {
	it := &setIterator[E]{s: s}
	it.fetch = s.cursor(lo, hi, desc)
	return it
}

func (it *setIterator[E]) Next() E {
	e := it.funcIterator.Next()
	it.last, it.lastOk = e, true
	return e
}

// Remove deletes one occurrence equal to the element last returned.
func (it *setIterator[E]) Remove() {
	d.PanicIfFalse(it.lastOk, "no element to remove")
	it.s.Remove(it.last)
	it.lastOk = false
}

// TrySplit partitions the placement index space into up to n read-only
// ranges; elements never move between partitions.
func (s *Set[E]) TrySplit(n int) []Collection[E] {
	if n <= 1 || s.size < 2 {
		return []Collection[E]{Unmodifiable[E](s)}
	}
	if n > s.size {
		n = s.size
	}
	step := ^uint64(0)/uint64(n) + 1
	parts := make([]Collection[E], 0, n)
	lo := uint64(0)
	for k := 0; k < n; k++ {
		hi := lo + step - 1
		if k == n-1 {
			hi = ^uint64(0)
		}
		parts = append(parts, &idxRange[E]{s: s, lo: lo, hi: hi})
		lo = hi + 1
	}
	return parts
}

// Clone returns a copy sharing storage copy-on-write with the receiver.
func (s *Set[E]) Clone() Collection[E] { return s.clone() }

func (s *Set[E]) clone() *Set[E] {
	return &Set[E]{ord: s.ord, data: s.data.Clone(), size: s.size}
}

// Freeze returns an immutable snapshot; the receiver stays mutable.
func (s *Set[E]) Freeze() *ConstSet[E] {
	return &ConstSet[E]{
		inner: Set[E]{ord: s.ord, data: s.data.Clone().Freeze(), size: s.size},
	}
}

// Multi returns a view whose Add always inserts, making the underlying
// set a multiset.
func (s *Set[E]) Multi() Collection[E] { return &multiView[E]{s} }

type multiView[E any] struct {
	s *Set[E]
}

func (v *multiView[E]) Size() int     { return v.s.Size() }
func (v *multiView[E]) IsEmpty() bool { return v.s.IsEmpty() }
func (v *multiView[E]) Clear()        { v.s.Clear() }
func (v *multiView[E]) Add(e E) bool  { v.s.AddMulti(e); return true }
func (v *multiView[E]) Remove(e E) bool {
	return v.s.Remove(e)
}
func (v *multiView[E]) Contains(e E) bool            { return v.s.Contains(e) }
func (v *multiView[E]) RemoveIf(p Predicate[E]) bool { return v.s.RemoveIf(p) }
func (v *multiView[E]) Iterator() Iterator[E]        { return v.s.Iterator() }
func (v *multiView[E]) DescendingIterator() Iterator[E] {
	return v.s.DescendingIterator()
}
func (v *multiView[E]) Equality() order.Equality[E] { return v.s.Equality() }
func (v *multiView[E]) TrySplit(n int) []Collection[E] {
	return v.s.TrySplit(n)
}
func (v *multiView[E]) Clone() Collection[E] {
	return &multiView[E]{v.s.clone()}
}
