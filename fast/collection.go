// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package fast provides high-performance ordered collections backed by the
// fractal array engines: positional tables, order-placed sets and maps,
// and a framework of composable views which decorate a collection without
// copying its elements.
//
// Views are plain Collection values wrapping another collection, so the
// order of composition is part of the semantics: Parallel(Filtered(c, p))
// evaluates the filter inside parallel partitions, while
// Filtered(Parallel(c), p) is a sequential filtered view over c.
package fast

import "github.com/javolution/javolution-go/order"

// Predicate tests an element.
type Predicate[E any] func(E) bool

// Consumer accepts an element for its side effects.
type Consumer[E any] func(E)

// BinaryOperator combines two elements into one.
type BinaryOperator[E any] func(E, E) E

// Iterator traverses a collection. Iterators are single-use and are not
// safe for concurrent access.
type Iterator[E any] interface {
	// HasNext reports whether a call to Next will succeed.
	HasNext() bool

	// Next returns the next element. It panics when the iterator is
	// exhausted.
	Next() E

	// HasNextMatching discards elements until the next one matches p and
	// reports whether such an element exists; a following Next returns it.
	HasNextMatching(p Predicate[E]) bool
}

// MutableIterator is implemented by iterators over mutable sources; Remove
// deletes the element last returned by Next from the source.
type MutableIterator[E any] interface {
	Iterator[E]
	Remove()
}

// Collection is the base contract shared by the shapes and every view.
type Collection[E any] interface {
	// Size returns the number of elements, duplicates counted.
	Size() int

	// IsEmpty reports whether the collection holds no element.
	IsEmpty() bool

	// Clear removes all elements.
	Clear()

	// Add inserts e and reports whether the collection changed.
	Add(e E) bool

	// Remove deletes one occurrence equal to e and reports success.
	Remove(e E) bool

	// Contains reports whether an element equal to e is present.
	Contains(e E) bool

	// RemoveIf deletes every element matching p and reports whether any
	// element was removed.
	RemoveIf(p Predicate[E]) bool

	// Iterator returns an iterator over the elements in collection order.
	Iterator() Iterator[E]

	// DescendingIterator returns an iterator in reverse collection order.
	DescendingIterator() Iterator[E]

	// Equality returns the relation defining element membership.
	Equality() order.Equality[E]

	// TrySplit returns up to n disjoint read-only partitions covering the
	// collection, or a single partition when the collection cannot split.
	TrySplit(n int) []Collection[E]

	// Clone returns a copy; updates of the copy do not affect the
	// receiver.
	Clone() Collection[E]
}
