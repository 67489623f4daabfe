// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// Distinct returns a live view hiding duplicates: iteration yields the
// first occurrence of each equality class, Add rejects elements already
// present and Remove deletes every occurrence.
func Distinct[E any](c Collection[E]) Collection[E] {
	return &distinct[E]{inner: c}
}

type distinct[E any] struct {
	inner Collection[E]
}

// seenTracker remembers iterated elements; it uses an order-placed set
// when the underlying equality is a full order, a linear scan otherwise.
func (v *distinct[E]) seenTracker() func(E) bool {
	if ord, ok := v.inner.Equality().(order.Order[E]); ok {
		seen := NewSet(ord)
		return func(e E) bool { return !seen.Add(e) }
	}
	eq := v.inner.Equality()
	var seen []E
	return func(e E) bool {
		for _, x := range seen {
			if eq.AreEqual(x, e) {
				return true
			}
		}
		seen = append(seen, e)
		return false
	}
}

func (v *distinct[E]) Size() int {
	n := 0
	drain(v.Iterator(), func(E) { n++ })
	return n
}

func (v *distinct[E]) IsEmpty() bool { return v.inner.IsEmpty() }

func (v *distinct[E]) Clear() { v.inner.Clear() }

func (v *distinct[E]) Add(e E) bool {
	return !v.inner.Contains(e) && v.inner.Add(e)
}

// Remove deletes every occurrence equal to e.
func (v *distinct[E]) Remove(e E) bool {
	eq := v.inner.Equality()
	return v.inner.RemoveIf(func(x E) bool { return eq.AreEqual(x, e) })
}

func (v *distinct[E]) Contains(e E) bool { return v.inner.Contains(e) }

func (v *distinct[E]) RemoveIf(p Predicate[E]) bool { return v.inner.RemoveIf(p) }

func (v *distinct[E]) Iterator() Iterator[E] {
	seen := v.seenTracker()
	return filterIterator[E](v.inner.Iterator(), func(e E) bool { return !seen(e) })
}

func (v *distinct[E]) DescendingIterator() Iterator[E] {
	seen := v.seenTracker()
	return filterIterator[E](v.inner.DescendingIterator(), func(e E) bool { return !seen(e) })
}

func (v *distinct[E]) Equality() order.Equality[E] { return v.inner.Equality() }

// TrySplit does not partition: duplicates may straddle any boundary.
func (v *distinct[E]) TrySplit(int) []Collection[E] {
	return []Collection[E]{Unmodifiable[E](v)}
}

func (v *distinct[E]) Clone() Collection[E] {
	return Distinct(v.inner.Clone())
}
