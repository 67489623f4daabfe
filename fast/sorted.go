// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"sort"

	"github.com/javolution/javolution-go/order"
)

// Sorted returns a view iterating in the order defined by cmp; the sort
// happens at iteration time over a snapshot, the elements are not moved.
func Sorted[E any](c Collection[E], cmp func(a, b E) int) Collection[E] {
	return &sorted[E]{inner: c, cmp: cmp}
}

type sorted[E any] struct {
	inner Collection[E]
	cmp   func(a, b E) int
}

func (v *sorted[E]) snapshot() []E {
	elems := ToSlice(v.inner)
	sort.SliceStable(elems, func(i, j int) bool { return v.cmp(elems[i], elems[j]) < 0 })
	return elems
}

func (v *sorted[E]) Size() int         { return v.inner.Size() }
func (v *sorted[E]) IsEmpty() bool     { return v.inner.IsEmpty() }
func (v *sorted[E]) Clear()            { v.inner.Clear() }
func (v *sorted[E]) Add(e E) bool      { return v.inner.Add(e) }
func (v *sorted[E]) Remove(e E) bool   { return v.inner.Remove(e) }
func (v *sorted[E]) Contains(e E) bool { return v.inner.Contains(e) }

func (v *sorted[E]) RemoveIf(p Predicate[E]) bool { return v.inner.RemoveIf(p) }

func (v *sorted[E]) Iterator() Iterator[E] {
	return sliceIterator(v.snapshot())
}

func (v *sorted[E]) DescendingIterator() Iterator[E] {
	elems := v.snapshot()
	for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}
	return sliceIterator(elems)
}

func (v *sorted[E]) Equality() order.Equality[E] { return v.inner.Equality() }

// TrySplit does not partition: the sorted order spans all elements.
func (v *sorted[E]) TrySplit(int) []Collection[E] {
	return []Collection[E]{Unmodifiable[E](v)}
}

func (v *sorted[E]) Clone() Collection[E] {
	return Sorted(v.inner.Clone(), v.cmp)
}
