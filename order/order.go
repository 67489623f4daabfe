// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package order defines the ordering, equality and indexing strategies used
// to place elements into the indexed array engines.
//
// An Order is a total ordering paired with a numeric placement function.
// Implementations must keep AreEqual, Compare and IndexOf consistent: if
// AreEqual(x, y) then Compare(x, y) == 0 and IndexOf(x) == IndexOf(y), and
// if Compare(x, y) < 0 then IndexOf(x) <= IndexOf(y) (unsigned). There is no
// requirement that Compare(x, y) == 0 implies AreEqual(x, y); ties on the
// placement index are resolved by Compare.
package order

// Equality is an equivalence relation between values of type T.
type Equality[T any] interface {
	AreEqual(a, b T) bool
}

// Indexer maps a value to an unsigned placement index consistent with some
// ordering of the values.
type Indexer[T any] interface {
	IndexOf(v T) uint64
}

// Order is a total ordering over T which doubles as a placement function.
type Order[T any] interface {
	Equality[T]
	Indexer[T]

	// Compare returns a negative value if a sorts before b, zero if they
	// sort together and a positive value otherwise.
	Compare(a, b T) int
}

// New returns an order from explicit compare and indexOf functions.
// Equality is derived from compare (Compare == 0).
func New[T any](cmp func(a, b T) int, indexOf func(T) uint64) Order[T] {
	return funcOrder[T]{cmp: cmp, idx: indexOf, eq: func(a, b T) bool { return cmp(a, b) == 0 }}
}

// NewWithEquality returns an order with a distinct equality relation
// (finer than Compare == 0).
func NewWithEquality[T any](cmp func(a, b T) int, indexOf func(T) uint64, eq func(a, b T) bool) Order[T] {
	return funcOrder[T]{cmp: cmp, idx: indexOf, eq: eq}
}

// ByIndexer returns the order fully determined by the specified indexer:
// values compare by their unsigned placement index and are equal through ==.
func ByIndexer[T comparable](indexOf func(T) uint64) Order[T] {
	return funcOrder[T]{
		cmp: func(a, b T) int {
			ia, ib := indexOf(a), indexOf(b)
			switch {
			case ia == ib:
				return 0
			case ia < ib:
				return -1
			default:
				return 1
			}
		},
		idx: indexOf,
		eq:  func(a, b T) bool { return a == b },
	}
}

type funcOrder[T any] struct {
	cmp func(a, b T) int
	idx func(T) uint64
	eq  func(a, b T) bool
}

func (o funcOrder[T]) Compare(a, b T) int   { return o.cmp(a, b) }
func (o funcOrder[T]) IndexOf(v T) uint64   { return o.idx(v) }
func (o funcOrder[T]) AreEqual(a, b T) bool { return o.eq(a, b) }
