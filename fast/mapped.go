// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// Mapped returns a view applying f to every element. The transform is not
// invertible, so Add and Remove panic; RemoveIf stays live and removes
// the source elements whose image matches. Membership uses dynamic-type
// equality unless the view is wrapped with WithEquality.
//
// Mapped is a function rather than a method because the image type R is
// independent of the element type.
func Mapped[E, R any](c Collection[E], f func(E) R) Collection[R] {
	return &mapped[E, R]{inner: c, f: f}
}

type mapped[E, R any] struct {
	inner Collection[E]
	f     func(E) R
}

func (v *mapped[E, R]) Size() int     { return v.inner.Size() }
func (v *mapped[E, R]) IsEmpty() bool { return v.inner.IsEmpty() }
func (v *mapped[E, R]) Clear()        { v.inner.Clear() }

func (v *mapped[E, R]) Add(R) bool    { panic(ErrReadOnly) }
func (v *mapped[E, R]) Remove(R) bool { panic(ErrReadOnly) }

func (v *mapped[E, R]) Contains(r R) bool {
	eq := v.Equality()
	return v.Iterator().HasNextMatching(func(x R) bool { return eq.AreEqual(x, r) })
}

func (v *mapped[E, R]) RemoveIf(p Predicate[R]) bool {
	return v.inner.RemoveIf(func(e E) bool { return p(v.f(e)) })
}

func (v *mapped[E, R]) Iterator() Iterator[R] {
	return mapIterator(v.inner.Iterator(), v.f)
}

func (v *mapped[E, R]) DescendingIterator() Iterator[R] {
	return mapIterator(v.inner.DescendingIterator(), v.f)
}

func (v *mapped[E, R]) Equality() order.Equality[R] { return order.Any[R]() }

func (v *mapped[E, R]) TrySplit(n int) []Collection[R] {
	parts := v.inner.TrySplit(n)
	images := make([]Collection[R], len(parts))
	for i, p := range parts {
		images[i] = Mapped(p, v.f)
	}
	return images
}

func (v *mapped[E, R]) Clone() Collection[R] {
	return Mapped(v.inner.Clone(), v.f)
}

func mapIterator[E, R any](it Iterator[E], f func(E) R) Iterator[R] {
	return newIterator(func() (R, bool) {
		if !it.HasNext() {
			var zero R
			return zero, false
		}
		return f(it.Next()), true
	})
}
