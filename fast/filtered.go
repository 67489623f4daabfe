// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// Filtered returns a live view over the elements matching p. Elements not
// matching p cannot be added through the view.
func Filtered[E any](c Collection[E], p Predicate[E]) Collection[E] {
	return &filtered[E]{inner: c, p: p}
}

type filtered[E any] struct {
	inner Collection[E]
	p     Predicate[E]
}

func (v *filtered[E]) Size() int {
	n := 0
	drain(v.Iterator(), func(E) { n++ })
	return n
}

func (v *filtered[E]) IsEmpty() bool { return !v.Iterator().HasNext() }

func (v *filtered[E]) Clear() {
	v.inner.RemoveIf(v.p)
}

func (v *filtered[E]) Add(e E) bool {
	return v.p(e) && v.inner.Add(e)
}

func (v *filtered[E]) Remove(e E) bool {
	return v.p(e) && v.inner.Remove(e)
}

func (v *filtered[E]) Contains(e E) bool {
	return v.p(e) && v.inner.Contains(e)
}

func (v *filtered[E]) RemoveIf(p Predicate[E]) bool {
	return v.inner.RemoveIf(func(e E) bool { return v.p(e) && p(e) })
}

func (v *filtered[E]) Iterator() Iterator[E] {
	return filterIterator[E](v.inner.Iterator(), v.p)
}

func (v *filtered[E]) DescendingIterator() Iterator[E] {
	return filterIterator[E](v.inner.DescendingIterator(), v.p)
}

func (v *filtered[E]) Equality() order.Equality[E] { return v.inner.Equality() }

func (v *filtered[E]) TrySplit(n int) []Collection[E] {
	parts := v.inner.TrySplit(n)
	for i, p := range parts {
		parts[i] = Filtered(p, v.p)
	}
	return parts
}

func (v *filtered[E]) Clone() Collection[E] {
	return Filtered(v.inner.Clone(), v.p)
}
