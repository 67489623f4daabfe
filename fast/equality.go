// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// WithEquality returns a view using eq for membership: Contains and
// Remove resolve through iteration with eq instead of the underlying
// equality. Adds still place elements with the underlying strategy.
func WithEquality[E any](c Collection[E], eq order.Equality[E]) Collection[E] {
	return &withEquality[E]{inner: c, eq: eq}
}

type withEquality[E any] struct {
	inner Collection[E]
	eq    order.Equality[E]
}

func (v *withEquality[E]) Size() int     { return v.inner.Size() }
func (v *withEquality[E]) IsEmpty() bool { return v.inner.IsEmpty() }
func (v *withEquality[E]) Clear()        { v.inner.Clear() }
func (v *withEquality[E]) Add(e E) bool  { return v.inner.Add(e) }

func (v *withEquality[E]) Remove(e E) bool {
	done := false
	return v.inner.RemoveIf(func(x E) bool {
		if done || !v.eq.AreEqual(x, e) {
			return false
		}
		done = true
		return true
	})
}

func (v *withEquality[E]) Contains(e E) bool {
	return v.Iterator().HasNextMatching(func(x E) bool { return v.eq.AreEqual(x, e) })
}

func (v *withEquality[E]) RemoveIf(p Predicate[E]) bool {
	return v.inner.RemoveIf(p)
}

func (v *withEquality[E]) Iterator() Iterator[E] {
	return v.inner.Iterator()
}

func (v *withEquality[E]) DescendingIterator() Iterator[E] {
	return v.inner.DescendingIterator()
}

func (v *withEquality[E]) Equality() order.Equality[E] { return v.eq }

func (v *withEquality[E]) TrySplit(n int) []Collection[E] {
	parts := v.inner.TrySplit(n)
	for i, p := range parts {
		parts[i] = WithEquality(p, v.eq)
	}
	return parts
}

func (v *withEquality[E]) Clone() Collection[E] {
	return WithEquality(v.inner.Clone(), v.eq)
}
