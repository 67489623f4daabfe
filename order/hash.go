// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package order

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// HashString returns a hash order for strings: placement by xxhash with
// lexical comparison resolving hash ties. Iteration order is arbitrary but
// stable for a given set of elements.
func HashString() Order[string] {
	return hashStringOrder{}
}

type hashStringOrder struct{}

func (hashStringOrder) IndexOf(v string) uint64 { return xxhash.Sum64String(v) }

func (o hashStringOrder) Compare(a, b string) int {
	ia, ib := o.IndexOf(a), o.IndexOf(b)
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	}
	return bytes.Compare([]byte(a), []byte(b)) // Hash collision.
}

func (hashStringOrder) AreEqual(a, b string) bool { return a == b }

// Hash returns a hash order for any comparable type given a byte projection
// of its identity. Two values projecting to the same bytes must be equal.
func Hash[T comparable](key func(T) []byte) Order[T] {
	return hashOrder[T]{key: key}
}

type hashOrder[T comparable] struct {
	key func(T) []byte
}

func (o hashOrder[T]) IndexOf(v T) uint64 { return xxhash.Sum64(o.key(v)) }

func (o hashOrder[T]) Compare(a, b T) int {
	ia, ib := o.IndexOf(a), o.IndexOf(b)
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	}
	return bytes.Compare(o.key(a), o.key(b))
}

func (o hashOrder[T]) AreEqual(a, b T) bool { return a == b }
