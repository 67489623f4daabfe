// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// Entry is an immutable key/value pair held by a Map. Values change only
// through the map, which replaces the entry.
type Entry[K, V any] struct {
	key   K
	value V
}

// NewEntry returns an entry pairing k with v.
func NewEntry[K, V any](k K, v V) *Entry[K, V] {
	return &Entry[K, V]{key: k, value: v}
}

// Key returns the entry key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry value.
func (e *Entry[K, V]) Value() V { return e.value }

// entryOrder places entries by their key order; entry equality is key
// equality, which gives the entry set its map semantics.
type entryOrder[K, V any] struct {
	keys order.Order[K]
}

func (o entryOrder[K, V]) Compare(a, b *Entry[K, V]) int {
	return o.keys.Compare(a.key, b.key)
}

func (o entryOrder[K, V]) IndexOf(e *Entry[K, V]) uint64 {
	return o.keys.IndexOf(e.key)
}

func (o entryOrder[K, V]) AreEqual(a, b *Entry[K, V]) bool {
	return o.keys.AreEqual(a.key, b.key)
}
