// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"github.com/javolution/javolution-go/concurrent"
	"github.com/javolution/javolution-go/order"
)

// Bulk operations are package functions so they can honor an outermost
// Parallel view: when the collection is parallel and splits, the work is
// dispatched over the partitions, the calling goroutine included.

// parallelParts returns the partitions and executor of an outermost
// parallel view, or ok=false for sequential collections.
func parallelParts[E any](c Collection[E]) ([]Collection[E], concurrent.Executor, bool) {
	v, isParallel := c.(*parallelView[E])
	if !isParallel {
		return nil, nil, false
	}
	parts := v.partitions()
	if parts == nil {
		return nil, nil, false
	}
	return parts, v.exec, true
}

func invoke(exec concurrent.Executor, tasks []func()) {
	if err := exec.Invoke(tasks...); err != nil {
		panic(err)
	}
}

// ForEach applies f to every element. Over a parallel view f runs
// concurrently and must be safe for concurrent use.
func ForEach[E any](c Collection[E], f Consumer[E]) {
	parts, exec, ok := parallelParts(c)
	if !ok {
		drain(c.Iterator(), f)
		return
	}
	tasks := make([]func(), len(parts))
	for i := range parts {
		part := parts[i]
		tasks[i] = func() { drain(part.Iterator(), f) }
	}
	invoke(exec, tasks)
}

// AnyMatch reports whether some element matches p.
func AnyMatch[E any](c Collection[E], p Predicate[E]) bool {
	parts, exec, ok := parallelParts(c)
	if !ok {
		return c.Iterator().HasNextMatching(p)
	}
	found := make([]bool, len(parts))
	tasks := make([]func(), len(parts))
	for i := range parts {
		i, part := i, parts[i]
		tasks[i] = func() { found[i] = part.Iterator().HasNextMatching(p) }
	}
	invoke(exec, tasks)
	for _, f := range found {
		if f {
			return true
		}
	}
	return false
}

// AllMatch reports whether every element matches p.
func AllMatch[E any](c Collection[E], p Predicate[E]) bool {
	return !AnyMatch(c, func(e E) bool { return !p(e) })
}

// NoneMatch reports whether no element matches p.
func NoneMatch[E any](c Collection[E], p Predicate[E]) bool {
	return !AnyMatch(c, p)
}

// FindAny returns an element matching p. Over a parallel view any
// partition may supply it.
func FindAny[E any](c Collection[E], p Predicate[E]) (E, bool) {
	parts, exec, ok := parallelParts(c)
	if !ok {
		it := c.Iterator()
		if it.HasNextMatching(p) {
			return it.Next(), true
		}
		var zero E
		return zero, false
	}
	hits := make([]*E, len(parts))
	tasks := make([]func(), len(parts))
	for i := range parts {
		i, part := i, parts[i]
		tasks[i] = func() {
			it := part.Iterator()
			if it.HasNextMatching(p) {
				e := it.Next()
				hits[i] = &e
			}
		}
	}
	invoke(exec, tasks)
	for _, h := range hits {
		if h != nil {
			return *h, true
		}
	}
	var zero E
	return zero, false
}

// Reduce combines the elements with op, which must be associative when
// the collection is parallel.
func Reduce[E any](c Collection[E], op BinaryOperator[E]) (E, bool) {
	parts, exec, ok := parallelParts(c)
	if !ok {
		return reduceSeq(c.Iterator(), op)
	}
	partial := make([]*E, len(parts))
	tasks := make([]func(), len(parts))
	for i := range parts {
		i, part := i, parts[i]
		tasks[i] = func() {
			if acc, ok := reduceSeq(part.Iterator(), op); ok {
				partial[i] = &acc
			}
		}
	}
	invoke(exec, tasks)
	var acc E
	got := false
	for _, p := range partial {
		switch {
		case p == nil:
		case !got:
			acc, got = *p, true
		default:
			acc = op(acc, *p)
		}
	}
	return acc, got
}

func reduceSeq[E any](it Iterator[E], op BinaryOperator[E]) (E, bool) {
	if !it.HasNext() {
		var zero E
		return zero, false
	}
	acc := it.Next()
	for it.HasNext() {
		acc = op(acc, it.Next())
	}
	return acc, true
}

// Min returns the smallest element under cmp.
func Min[E any](c Collection[E], cmp func(a, b E) int) (E, bool) {
	return Reduce(c, func(a, b E) E {
		if cmp(b, a) < 0 {
			return b
		}
		return a
	})
}

// Max returns the largest element under cmp.
func Max[E any](c Collection[E], cmp func(a, b E) int) (E, bool) {
	return Reduce(c, func(a, b E) E {
		if cmp(b, a) > 0 {
			return b
		}
		return a
	})
}

// Collect gathers the elements into the collection returned by supplier.
// Over a parallel view each partition collects into its own instance and
// the results are merged sequentially.
func Collect[E any](c Collection[E], supplier func() Collection[E]) Collection[E] {
	parts, exec, ok := parallelParts(c)
	if !ok {
		out := supplier()
		drain(c.Iterator(), func(e E) { out.Add(e) })
		return out
	}
	partial := make([]Collection[E], len(parts))
	tasks := make([]func(), len(parts))
	for i := range parts {
		i, part := i, parts[i]
		tasks[i] = func() {
			out := supplier()
			drain(part.Iterator(), func(e E) { out.Add(e) })
			partial[i] = out
		}
	}
	invoke(exec, tasks)
	out := partial[0]
	for _, p := range partial[1:] {
		drain(p.Iterator(), func(e E) { out.Add(e) })
	}
	return out
}

// ToSlice returns the elements in iteration order.
func ToSlice[E any](c Collection[E]) []E {
	out := make([]E, 0, c.Size())
	drain(c.Iterator(), func(e E) { out = append(out, e) })
	return out
}

// AddAll adds every element of src to dst in src iteration order.
func AddAll[E any](dst Collection[E], src Collection[E]) bool {
	changed := false
	drain(src.Iterator(), func(e E) {
		if dst.Add(e) {
			changed = true
		}
	})
	return changed
}

// AddValues adds the specified elements to dst in order.
func AddValues[E any](dst Collection[E], elems ...E) bool {
	changed := false
	for _, e := range elems {
		if dst.Add(e) {
			changed = true
		}
	}
	return changed
}

// RemoveAll removes from dst every element contained in other.
func RemoveAll[E any](dst Collection[E], other Collection[E]) bool {
	return dst.RemoveIf(func(e E) bool { return other.Contains(e) })
}

// RetainAll removes from dst every element not contained in other.
func RetainAll[E any](dst Collection[E], other Collection[E]) bool {
	return dst.RemoveIf(func(e E) bool { return !other.Contains(e) })
}

// ContainsAll reports whether c contains every element of other.
func ContainsAll[E any](c Collection[E], other Collection[E]) bool {
	it := other.Iterator()
	for it.HasNext() {
		if !c.Contains(it.Next()) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same elements with the same
// multiplicities under a's equality, in any order. O(n^2).
func Equal[E any](a, b Collection[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := a.Equality()
	it := a.Iterator()
	for it.HasNext() {
		e := it.Next()
		if countMatching(a, e, eq) != countMatching(b, e, eq) {
			return false
		}
	}
	return true
}

func countMatching[E any](c Collection[E], e E, eq order.Equality[E]) int {
	n := 0
	drain(c.Iterator(), func(x E) {
		if eq.AreEqual(x, e) {
			n++
		}
	})
	return n
}

// splitByIndex cuts a positional range [0, size) into up to n read-only
// partitions over the shared get accessor.
func splitByIndex[E any](src Collection[E], size, n int, get func(int) E, eq order.Equality[E]) []Collection[E] {
	if n <= 1 || size < 2 {
		return []Collection[E]{Unmodifiable(src)}
	}
	if n > size {
		n = size
	}
	chunk := (size + n - 1) / n
	parts := make([]Collection[E], 0, n)
	for from := 0; from < size; from += chunk {
		to := from + chunk
		if to > size {
			to = size
		}
		parts = append(parts, &idxSlice[E]{get: get, from: from, to: to, eq: eq})
	}
	return parts
}

// idxSlice is a read-only positional partition produced by splitByIndex.
type idxSlice[E any] struct {
	get      func(int) E
	from, to int // [from, to)
	eq       order.Equality[E]
}

func (v *idxSlice[E]) Size() int     { return v.to - v.from }
func (v *idxSlice[E]) IsEmpty() bool { return v.to == v.from }

func (v *idxSlice[E]) Clear()                     { panic(ErrReadOnly) }
func (v *idxSlice[E]) Add(E) bool                 { panic(ErrReadOnly) }
func (v *idxSlice[E]) Remove(E) bool              { panic(ErrReadOnly) }
func (v *idxSlice[E]) RemoveIf(Predicate[E]) bool { panic(ErrReadOnly) }

func (v *idxSlice[E]) Contains(e E) bool {
	for i := v.from; i < v.to; i++ {
		if v.eq.AreEqual(v.get(i), e) {
			return true
		}
	}
	return false
}

func (v *idxSlice[E]) Iterator() Iterator[E] {
	i := v.from
	return newIterator(func() (E, bool) {
		if i >= v.to {
			var zero E
			return zero, false
		}
		e := v.get(i)
		i++
		return e, true
	})
}

func (v *idxSlice[E]) DescendingIterator() Iterator[E] {
	i := v.to - 1
	return newIterator(func() (E, bool) {
		if i < v.from {
			var zero E
			return zero, false
		}
		e := v.get(i)
		i--
		return e, true
	})
}

func (v *idxSlice[E]) Equality() order.Equality[E] { return v.eq }

func (v *idxSlice[E]) TrySplit(n int) []Collection[E] {
	size := v.to - v.from
	if n <= 1 || size < 2 {
		return []Collection[E]{v}
	}
	if n > size {
		n = size
	}
	chunk := (size + n - 1) / n
	parts := make([]Collection[E], 0, n)
	for from := v.from; from < v.to; from += chunk {
		to := from + chunk
		if to > v.to {
			to = v.to
		}
		parts = append(parts, &idxSlice[E]{get: v.get, from: from, to: to, eq: v.eq})
	}
	return parts
}

func (v *idxSlice[E]) Clone() Collection[E] {
	c := NewTableWith(v.eq)
	for i := v.from; i < v.to; i++ {
		c.AddLast(v.get(i))
	}
	return c
}
