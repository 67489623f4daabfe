// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"github.com/pkg/errors"

	"github.com/javolution/javolution-go/d"
	"github.com/javolution/javolution-go/fractal"
	"github.com/javolution/javolution-go/order"
)

// Table is a positional list and deque over a fractal array: random access
// is O(1) and insertion or deletion anywhere stays close to O(1) at any
// size, with both ends exactly O(1). A Table is not safe for concurrent
// use; wrap it with Shared or Atomic.
type Table[E any] struct {
	elems *fractal.Array[E]
	size  int
	eq    order.Equality[E]
}

// NewTable returns an empty table using the == equality.
func NewTable[E comparable]() *Table[E] {
	return NewTableWith(order.Standard[E]())
}

// NewTableWith returns an empty table using the specified equality.
func NewTableWith[E any](eq order.Equality[E]) *Table[E] {
	return &Table[E]{elems: fractal.NewArray[E](), eq: eq}
}

// NewTableOf returns a table holding elems in order.
func NewTableOf[E comparable](elems ...E) *Table[E] {
	t := NewTable[E]()
	for _, e := range elems {
		t.AddLast(e)
	}
	return t
}

func (t *Table[E]) checkIndex(i, bound int) {
	if i < 0 || i >= bound {
		panic(errors.Wrapf(ErrIndexOutOfRange, "index %d, bound %d", i, bound))
	}
}

// Size returns the number of elements.
func (t *Table[E]) Size() int { return t.size }

// IsEmpty reports whether the table holds no element.
func (t *Table[E]) IsEmpty() bool { return t.size == 0 }

// Clear removes all elements.
func (t *Table[E]) Clear() {
	t.elems = fractal.NewArray[E]()
	t.size = 0
}

// Get returns the element at index i. O(1).
func (t *Table[E]) Get(i int) E {
	t.checkIndex(i, t.size)
	e, _ := t.elems.Get(uint64(i))
	return e
}

// Set replaces the element at index i and returns the previous one.
func (t *Table[E]) Set(i int, e E) E {
	t.checkIndex(i, t.size)
	prev, _ := t.elems.Get(uint64(i))
	t.elems.Set(uint64(i), e)
	return prev
}

// Add appends e; it always reports true.
func (t *Table[E]) Add(e E) bool {
	t.AddLast(e)
	return true
}

// AddAt inserts e at index i, shifting later elements up. Insertion in
// the lower half rotates the structure instead of moving elements.
func (t *Table[E]) AddAt(i int, e E) {
	t.checkIndex(i, t.size+1)
	t.elems.Insert(uint64(i), e)
	t.size++
}

// RemoveAt deletes and returns the element at index i.
func (t *Table[E]) RemoveAt(i int) E {
	t.checkIndex(i, t.size)
	removed, _ := t.elems.Get(uint64(i))
	t.elems.Delete(uint64(i))
	t.size--
	return removed
}

// AddFirst prepends e. O(1).
func (t *Table[E]) AddFirst(e E) {
	t.elems.Insert(0, e)
	t.size++
}

// AddLast appends e. O(1).
func (t *Table[E]) AddLast(e E) {
	t.elems.Set(uint64(t.size), e)
	t.size++
}

// PeekFirst returns the first element without removing it.
func (t *Table[E]) PeekFirst() (E, bool) {
	if t.size == 0 {
		var zero E
		return zero, false
	}
	return t.Get(0), true
}

// PeekLast returns the last element without removing it.
func (t *Table[E]) PeekLast() (E, bool) {
	if t.size == 0 {
		var zero E
		return zero, false
	}
	return t.Get(t.size - 1), true
}

// GetFirst returns the first element; it panics on an empty table.
func (t *Table[E]) GetFirst() E {
	d.PanicIfTrue(t.size == 0, "empty table")
	return t.Get(0)
}

// GetLast returns the last element; it panics on an empty table.
func (t *Table[E]) GetLast() E {
	d.PanicIfTrue(t.size == 0, "empty table")
	return t.Get(t.size - 1)
}

// RemoveFirst deletes and returns the first element. O(1).
func (t *Table[E]) RemoveFirst() (E, bool) {
	if t.size == 0 {
		var zero E
		return zero, false
	}
	return t.RemoveAt(0), true
}

// RemoveLast deletes and returns the last element. O(1).
func (t *Table[E]) RemoveLast() (E, bool) {
	if t.size == 0 {
		var zero E
		return zero, false
	}
	return t.RemoveAt(t.size - 1), true
}

// IndexOf returns the lowest index holding an element equal to e, or -1.
func (t *Table[E]) IndexOf(e E) int {
	for i := 0; i < t.size; i++ {
		if t.eq.AreEqual(t.Get(i), e) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the highest index holding an element equal to e,
// or -1.
func (t *Table[E]) LastIndexOf(e E) int {
	for i := t.size - 1; i >= 0; i-- {
		if t.eq.AreEqual(t.Get(i), e) {
			return i
		}
	}
	return -1
}

// Contains reports whether an element equal to e is present.
func (t *Table[E]) Contains(e E) bool { return t.IndexOf(e) >= 0 }

// Remove deletes the first element equal to e.
func (t *Table[E]) Remove(e E) bool {
	i := t.IndexOf(e)
	if i < 0 {
		return false
	}
	t.RemoveAt(i)
	return true
}

// RemoveIf deletes every element matching p.
func (t *Table[E]) RemoveIf(p Predicate[E]) bool {
	any := false
	for i := t.size - 1; i >= 0; i-- {
		if p(t.Get(i)) {
			t.RemoveAt(i)
			any = true
		}
	}
	return any
}

// Swap exchanges the elements at indices i and j.
func (t *Table[E]) Swap(i, j int) {
	ei, ej := t.Get(i), t.Get(j)
	t.Set(i, ej)
	t.Set(j, ei)
}

// Reverse reverses the element order in place.
func (t *Table[E]) Reverse() {
	for i, j := 0, t.size-1; i < j; i, j = i+1, j-1 {
		t.Swap(i, j)
	}
}

// Sort sorts the table in place with an iterative middle-pivot quicksort.
// The sort is not stable.
func (t *Table[E]) Sort(cmp func(a, b E) int) {
	if t.size > 1 {
		t.quicksort(0, t.size-1, cmp)
	}
}

func (t *Table[E]) quicksort(first, last int, cmp func(a, b E) int) {
	for first < last {
		pivot := t.Get(first + (last-first)/2)
		i, j := first, last
		for i <= j {
			for cmp(t.Get(i), pivot) < 0 {
				i++
			}
			for cmp(t.Get(j), pivot) > 0 {
				j--
			}
			if i <= j {
				t.Swap(i, j)
				i++
				j--
			}
		}
		// Recurse into the smaller half, iterate on the larger one.
		if j-first < last-i {
			t.quicksort(first, j, cmp)
			first = i
		} else {
			t.quicksort(i, last, cmp)
			last = j
		}
	}
}

// Iterator returns a mutable iterator in positional order.
func (t *Table[E]) Iterator() Iterator[E] {
	return &tableIterator[E]{t: t, next: 0, step: 1, last: -1}
}

// DescendingIterator returns a mutable iterator in reverse order.
func (t *Table[E]) DescendingIterator() Iterator[E] {
	return &tableIterator[E]{t: t, next: t.size - 1, step: -1, last: -1}
}

// Equality returns the element equality.
func (t *Table[E]) Equality() order.Equality[E] { return t.eq }

// TrySplit partitions the index space into up to n read-only ranges.
func (t *Table[E]) TrySplit(n int) []Collection[E] {
	return splitByIndex[E](t, t.size, n, func(i int) E { return t.Get(i) }, t.eq)
}

// Clone returns a copy sharing storage copy-on-write with the receiver.
func (t *Table[E]) Clone() Collection[E] { return t.clone() }

func (t *Table[E]) clone() *Table[E] {
	return &Table[E]{elems: t.elems.Clone(), size: t.size, eq: t.eq}
}

// Freeze returns an immutable snapshot; the receiver stays mutable.
func (t *Table[E]) Freeze() *ConstTable[E] {
	return &ConstTable[E]{
		inner: Table[E]{elems: t.elems.Clone().Freeze(), size: t.size, eq: t.eq},
	}
}

// SubTable returns a view over positions [from, to) sharing storage with
// the receiver; structural changes through the view shift the receiver.
func (t *Table[E]) SubTable(from, to int) *SubTable[E] {
	d.PanicIfFalse(0 <= from && from <= to && to <= t.size,
		"sub-table [%d, %d) outside [0, %d)", from, to, t.size)
	return &SubTable[E]{parent: t, from: from, size: to - from}
}

type tableIterator[E any] struct {
	t    *Table[E]
	next int
	step int
	last int // index last returned, -1 when none or consumed by Remove
}

func (it *tableIterator[E]) HasNext() bool {
	return it.next >= 0 && it.next < it.t.size
}

func (it *tableIterator[E]) Next() E {
	d.PanicIfFalse(it.HasNext(), "iterator exhausted")
	it.last = it.next
	e := it.t.Get(it.next)
	it.next += it.step
	return e
}

func (it *tableIterator[E]) HasNextMatching(p Predicate[E]) bool {
	for it.HasNext() {
		if p(it.t.Get(it.next)) {
			return true
		}
		it.next += it.step
	}
	return false
}

// Remove deletes the element last returned by Next.
func (it *tableIterator[E]) Remove() {
	d.PanicIfTrue(it.last < 0, "no element to remove")
	it.t.RemoveAt(it.last)
	if it.step > 0 {
		it.next--
	}
	it.last = -1
}
