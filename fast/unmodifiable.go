// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// Unmodifiable returns a read-only view: mutators panic with ErrReadOnly.
// The view reflects later changes of the underlying collection.
func Unmodifiable[E any](c Collection[E]) Collection[E] {
	return &unmodifiable[E]{inner: c}
}

type unmodifiable[E any] struct {
	inner Collection[E]
}

func (v *unmodifiable[E]) Size() int          { return v.inner.Size() }
func (v *unmodifiable[E]) IsEmpty() bool      { return v.inner.IsEmpty() }
func (v *unmodifiable[E]) Contains(e E) bool  { return v.inner.Contains(e) }

func (v *unmodifiable[E]) Clear()                     { panic(ErrReadOnly) }
func (v *unmodifiable[E]) Add(E) bool                 { panic(ErrReadOnly) }
func (v *unmodifiable[E]) Remove(E) bool              { panic(ErrReadOnly) }
func (v *unmodifiable[E]) RemoveIf(Predicate[E]) bool { panic(ErrReadOnly) }

func (v *unmodifiable[E]) Iterator() Iterator[E] {
	return readOnly(v.inner.Iterator())
}

func (v *unmodifiable[E]) DescendingIterator() Iterator[E] {
	return readOnly(v.inner.DescendingIterator())
}

func (v *unmodifiable[E]) Equality() order.Equality[E] { return v.inner.Equality() }

func (v *unmodifiable[E]) TrySplit(n int) []Collection[E] {
	parts := v.inner.TrySplit(n)
	for i, p := range parts {
		parts[i] = Unmodifiable(p)
	}
	return parts
}

func (v *unmodifiable[E]) Clone() Collection[E] {
	return Unmodifiable(v.inner.Clone())
}

// readOnly strips a possible Remove method off an iterator.
func readOnly[E any](it Iterator[E]) Iterator[E] {
	if _, mutable := it.(MutableIterator[E]); !mutable {
		return it
	}
	return newIterator(func() (E, bool) {
		if !it.HasNext() {
			var zero E
			return zero, false
		}
		return it.Next(), true
	})
}
