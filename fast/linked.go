// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// Linked returns a view iterating in insertion order, backed by a side
// table recording arrivals. Elements already present are recorded in the
// underlying iteration order. Mutations must go through the view to keep
// the side table in step.
func Linked[E any](c Collection[E]) Collection[E] {
	seq := NewTableWith(c.Equality())
	drain(c.Iterator(), func(e E) { seq.AddLast(e) })
	return &linked[E]{inner: c, seq: seq}
}

type linked[E any] struct {
	inner Collection[E]
	seq   *Table[E]
}

func (v *linked[E]) Size() int     { return v.inner.Size() }
func (v *linked[E]) IsEmpty() bool { return v.inner.IsEmpty() }

func (v *linked[E]) Clear() {
	v.inner.Clear()
	v.seq.Clear()
}

func (v *linked[E]) Add(e E) bool {
	if !v.inner.Add(e) {
		return false
	}
	v.seq.AddLast(e)
	return true
}

func (v *linked[E]) Remove(e E) bool {
	if !v.inner.Remove(e) {
		return false
	}
	v.seq.Remove(e)
	return true
}

func (v *linked[E]) Contains(e E) bool { return v.inner.Contains(e) }

func (v *linked[E]) RemoveIf(p Predicate[E]) bool {
	changed := v.inner.RemoveIf(p)
	if changed {
		v.seq.RemoveIf(p)
	}
	return changed
}

func (v *linked[E]) Iterator() Iterator[E] {
	return readOnly(v.seq.Iterator())
}

func (v *linked[E]) DescendingIterator() Iterator[E] {
	return readOnly(v.seq.DescendingIterator())
}

func (v *linked[E]) Equality() order.Equality[E] { return v.inner.Equality() }

// TrySplit partitions the insertion sequence.
func (v *linked[E]) TrySplit(n int) []Collection[E] {
	return v.seq.TrySplit(n)
}

func (v *linked[E]) Clone() Collection[E] {
	return &linked[E]{inner: v.inner.Clone(), seq: v.seq.clone()}
}
