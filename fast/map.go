// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/order"

// Map is an ordered map implemented as a set of entries placed by key
// order; iteration follows the key order. PutMulti turns it into a
// multimap where entries sharing a key keep their insertion order. A Map
// is not safe for concurrent use.
type Map[K, V any] struct {
	entries *Set[*Entry[K, V]]
	keys    order.Order[K]
	vals    order.Equality[V]
}

// NewMap returns an empty map ordered by keyOrder; values compare through
// their dynamic types.
func NewMap[K, V any](keyOrder order.Order[K]) *Map[K, V] {
	return NewMapWith[K, V](keyOrder, order.Any[V]())
}

// NewMapWith returns an empty map ordered by keyOrder with an explicit
// value equality (used by ContainsValue and ReplaceIf).
func NewMapWith[K, V any](keyOrder order.Order[K], valEq order.Equality[V]) *Map[K, V] {
	return &Map[K, V]{
		entries: NewSet[*Entry[K, V]](entryOrder[K, V]{keys: keyOrder}),
		keys:    keyOrder,
		vals:    valEq,
	}
}

func (m *Map[K, V]) probe(k K) *Entry[K, V] {
	return &Entry[K, V]{key: k}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.entries.Size() }

// IsEmpty reports whether the map holds no entry.
func (m *Map[K, V]) IsEmpty() bool { return m.entries.IsEmpty() }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.entries.Clear() }

// KeyOrder returns the key placement order.
func (m *Map[K, V]) KeyOrder() order.Order[K] { return m.keys }

// ValueEquality returns the value equality.
func (m *Map[K, V]) ValueEquality() order.Equality[V] { return m.vals }

// GetEntry returns the entry for k. With duplicate keys it returns the
// earliest inserted one.
func (m *Map[K, V]) GetEntry(k K) (*Entry[K, V], bool) {
	return m.entries.GetAny(m.probe(k))
}

// Get returns the value mapped to k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if e, ok := m.GetEntry(k); ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Put maps k to v and returns the value it replaces. With duplicate keys
// the earliest inserted entry is replaced in place, keeping its position.
func (m *Map[K, V]) Put(k K, v V) (V, bool) {
	e := NewEntry(k, v)
	if old, ok := m.entries.replaceAny(e); ok {
		return old.value, true
	}
	m.entries.Add(e)
	var zero V
	return zero, false
}

// PutIfAbsent maps k to v unless k is present; it returns the value in
// place after the call and whether k was already present.
func (m *Map[K, V]) PutIfAbsent(k K, v V) (V, bool) {
	if e, ok := m.GetEntry(k); ok {
		return e.value, true
	}
	m.entries.Add(NewEntry(k, v))
	return v, false
}

// PutMulti adds an entry for k even when the key is present; entries
// sharing a key iterate in insertion order.
func (m *Map[K, V]) PutMulti(k K, v V) {
	m.entries.AddMulti(NewEntry(k, v))
}

// PutEntry adds an entry, keeping duplicate keys (multimap insertion).
func (m *Map[K, V]) PutEntry(e *Entry[K, V]) {
	m.entries.AddMulti(e)
}

// Remove deletes the entry for k and returns its value.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	if e, ok := m.RemoveEntry(k); ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// RemoveEntry deletes and returns the entry for k. With duplicate keys it
// removes the earliest inserted one.
func (m *Map[K, V]) RemoveEntry(k K) (*Entry[K, V], bool) {
	return m.entries.RemoveAny(m.probe(k))
}

// ContainsKey reports whether k is mapped.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.GetEntry(k)
	return ok
}

// ContainsValue reports whether any entry holds a value equal to v.
// O(n).
func (m *Map[K, V]) ContainsValue(v V) bool {
	it := m.entries.Iterator()
	return it.HasNextMatching(func(e *Entry[K, V]) bool {
		return m.vals.AreEqual(e.value, v)
	})
}

// Replace maps k to v only when k is present and returns the previous
// value.
func (m *Map[K, V]) Replace(k K, v V) (V, bool) {
	if !m.ContainsKey(k) {
		var zero V
		return zero, false
	}
	return m.Put(k, v)
}

// ReplaceIf maps k to v only when k currently maps to a value equal to
// old.
func (m *Map[K, V]) ReplaceIf(k K, old, v V) bool {
	e, ok := m.GetEntry(k)
	if !ok || !m.vals.AreEqual(e.value, old) {
		return false
	}
	m.Put(k, v)
	return true
}

// FirstEntry returns the entry with the lowest key.
func (m *Map[K, V]) FirstEntry() (*Entry[K, V], bool) { return m.entries.First() }

// LastEntry returns the entry with the highest key.
func (m *Map[K, V]) LastEntry() (*Entry[K, V], bool) { return m.entries.Last() }

// PollFirstEntry deletes and returns the entry with the lowest key.
func (m *Map[K, V]) PollFirstEntry() (*Entry[K, V], bool) { return m.entries.PollFirst() }

// PollLastEntry deletes and returns the entry with the highest key.
func (m *Map[K, V]) PollLastEntry() (*Entry[K, V], bool) { return m.entries.PollLast() }

// CeilingEntry returns the entry with the lowest key not below k.
func (m *Map[K, V]) CeilingEntry(k K) (*Entry[K, V], bool) { return m.entries.Ceiling(m.probe(k)) }

// FloorEntry returns the entry with the highest key not above k.
func (m *Map[K, V]) FloorEntry(k K) (*Entry[K, V], bool) { return m.entries.Floor(m.probe(k)) }

// HigherEntry returns the entry with the lowest key strictly above k.
func (m *Map[K, V]) HigherEntry(k K) (*Entry[K, V], bool) { return m.entries.Higher(m.probe(k)) }

// LowerEntry returns the entry with the highest key strictly below k.
func (m *Map[K, V]) LowerEntry(k K) (*Entry[K, V], bool) { return m.entries.Lower(m.probe(k)) }

// Entries returns the live entry set in key order. Adding through it
// keeps duplicate keys (multimap semantics).
func (m *Map[K, V]) Entries() Collection[*Entry[K, V]] { return m.entries }

// SubMap returns a live view over the entries with key in [from, to).
func (m *Map[K, V]) SubMap(from, to K) Collection[*Entry[K, V]] {
	return m.entries.SubSet(m.probe(from), m.probe(to))
}

// HeadMap returns a live view over the entries with key below to.
func (m *Map[K, V]) HeadMap(to K) Collection[*Entry[K, V]] {
	return m.entries.HeadSet(m.probe(to))
}

// TailMap returns a live view over the entries with key at or above from.
func (m *Map[K, V]) TailMap(from K) Collection[*Entry[K, V]] {
	return m.entries.TailSet(m.probe(from))
}

// KeySet returns a live view over the keys in key order. Removing a key
// removes its entry; adding panics.
func (m *Map[K, V]) KeySet() Collection[K] { return &keySet[K, V]{m} }

// Values returns a read-only view over the values in key order.
func (m *Map[K, V]) Values() Collection[V] {
	return WithEquality(Mapped(m.entries, (*Entry[K, V]).Value), m.vals)
}

// Clone returns a copy sharing storage copy-on-write with the receiver.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{entries: m.entries.clone(), keys: m.keys, vals: m.vals}
}

// Freeze returns an immutable snapshot; the receiver stays mutable.
func (m *Map[K, V]) Freeze() *ConstMap[K, V] {
	return &ConstMap[K, V]{
		inner: Map[K, V]{
			entries: &Set[*Entry[K, V]]{
				ord:  m.entries.ord,
				data: m.entries.data.Clone().Freeze(),
				size: m.entries.size,
			},
			keys: m.keys,
			vals: m.vals,
		},
	}
}

// keySet projects the entry set onto its keys.
type keySet[K, V any] struct {
	m *Map[K, V]
}

func (v *keySet[K, V]) Size() int     { return v.m.Size() }
func (v *keySet[K, V]) IsEmpty() bool { return v.m.IsEmpty() }
func (v *keySet[K, V]) Clear()        { v.m.Clear() }

func (v *keySet[K, V]) Add(K) bool { panic(ErrReadOnly) }

func (v *keySet[K, V]) Remove(k K) bool {
	_, ok := v.m.RemoveEntry(k)
	return ok
}

func (v *keySet[K, V]) Contains(k K) bool { return v.m.ContainsKey(k) }

func (v *keySet[K, V]) RemoveIf(p Predicate[K]) bool {
	return v.m.entries.RemoveIf(func(e *Entry[K, V]) bool { return p(e.key) })
}

func (v *keySet[K, V]) Iterator() Iterator[K] {
	it := v.m.entries.Iterator()
	return newIterator(func() (K, bool) {
		if !it.HasNext() {
			var zero K
			return zero, false
		}
		return it.Next().key, true
	})
}

func (v *keySet[K, V]) DescendingIterator() Iterator[K] {
	it := v.m.entries.DescendingIterator()
	return newIterator(func() (K, bool) {
		if !it.HasNext() {
			var zero K
			return zero, false
		}
		return it.Next().key, true
	})
}

func (v *keySet[K, V]) Equality() order.Equality[K] { return v.m.keys }

func (v *keySet[K, V]) TrySplit(n int) []Collection[K] {
	parts := v.m.entries.TrySplit(n)
	keys := make([]Collection[K], len(parts))
	for i, p := range parts {
		keys[i] = WithEquality(Mapped(p, (*Entry[K, V]).Key), order.Equality[K](v.m.keys))
	}
	return keys
}

func (v *keySet[K, V]) Clone() Collection[K] {
	return &keySet[K, V]{v.m.Clone()}
}
