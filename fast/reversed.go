// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// Reversed returns a live view iterating in the opposite order.
func Reversed[E any](c Collection[E]) Collection[E] {
	if v, ok := c.(*reversed[E]); ok {
		return v.inner
	}
	return &reversed[E]{inner: c}
}

type reversed[E any] struct {
	inner Collection[E]
}

func (v *reversed[E]) Size() int          { return v.inner.Size() }
func (v *reversed[E]) IsEmpty() bool      { return v.inner.IsEmpty() }
func (v *reversed[E]) Clear()             { v.inner.Clear() }
func (v *reversed[E]) Add(e E) bool       { return v.inner.Add(e) }
func (v *reversed[E]) Remove(e E) bool    { return v.inner.Remove(e) }
func (v *reversed[E]) Contains(e E) bool  { return v.inner.Contains(e) }

func (v *reversed[E]) RemoveIf(p Predicate[E]) bool { return v.inner.RemoveIf(p) }

func (v *reversed[E]) Iterator() Iterator[E] {
	return v.inner.DescendingIterator()
}

func (v *reversed[E]) DescendingIterator() Iterator[E] {
	return v.inner.Iterator()
}

func (v *reversed[E]) Equality() order.Equality[E] { return v.inner.Equality() }

func (v *reversed[E]) TrySplit(n int) []Collection[E] {
	parts := v.inner.TrySplit(n)
	for i, p := range parts {
		parts[i] = Reversed(p)
	}
	return parts
}

func (v *reversed[E]) Clone() Collection[E] {
	return Reversed(v.inner.Clone())
}
