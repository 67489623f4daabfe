// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"github.com/javolution/javolution-go/order"
)

// ConstTable is the frozen form of Table: structurally shared with the
// source in O(1), safe to publish without synchronization. Mutators
// panic with ErrReadOnly.
type ConstTable[E any] struct {
	inner Table[E]
}

func (t *ConstTable[E]) Size() int     { return t.inner.Size() }
func (t *ConstTable[E]) IsEmpty() bool { return t.inner.IsEmpty() }

func (t *ConstTable[E]) Get(i int) E          { return t.inner.Get(i) }
func (t *ConstTable[E]) GetFirst() E          { return t.inner.GetFirst() }
func (t *ConstTable[E]) GetLast() E           { return t.inner.GetLast() }
func (t *ConstTable[E]) PeekFirst() (E, bool) { return t.inner.PeekFirst() }
func (t *ConstTable[E]) PeekLast() (E, bool)  { return t.inner.PeekLast() }

func (t *ConstTable[E]) IndexOf(e E) int     { return t.inner.IndexOf(e) }
func (t *ConstTable[E]) LastIndexOf(e E) int { return t.inner.LastIndexOf(e) }
func (t *ConstTable[E]) Contains(e E) bool   { return t.inner.Contains(e) }

func (t *ConstTable[E]) Clear()                     { panic(ErrReadOnly) }
func (t *ConstTable[E]) Add(E) bool                 { panic(ErrReadOnly) }
func (t *ConstTable[E]) Remove(E) bool              { panic(ErrReadOnly) }
func (t *ConstTable[E]) RemoveIf(Predicate[E]) bool { panic(ErrReadOnly) }

func (t *ConstTable[E]) Iterator() Iterator[E] {
	return readOnly(t.inner.Iterator())
}

func (t *ConstTable[E]) DescendingIterator() Iterator[E] {
	return readOnly(t.inner.DescendingIterator())
}

func (t *ConstTable[E]) Equality() order.Equality[E] { return t.inner.Equality() }

func (t *ConstTable[E]) TrySplit(n int) []Collection[E] {
	return splitByIndex[E](t, t.inner.size, n, t.inner.Get, t.inner.eq)
}

// Clone returns the receiver: frozen state cannot diverge.
func (t *ConstTable[E]) Clone() Collection[E] { return t }

// Freeze returns the receiver.
func (t *ConstTable[E]) Freeze() *ConstTable[E] { return t }

// Thaw returns a mutable copy sharing storage copy-on-write.
func (t *ConstTable[E]) Thaw() *Table[E] { return t.inner.clone() }

// ConstSet is the frozen form of Set.
type ConstSet[E any] struct {
	inner Set[E]
}

func (s *ConstSet[E]) Size() int     { return s.inner.Size() }
func (s *ConstSet[E]) IsEmpty() bool { return s.inner.IsEmpty() }

func (s *ConstSet[E]) Order() order.Order[E]       { return s.inner.Order() }
func (s *ConstSet[E]) Equality() order.Equality[E] { return s.inner.Equality() }

func (s *ConstSet[E]) Contains(e E) bool     { return s.inner.Contains(e) }
func (s *ConstSet[E]) GetAny(e E) (E, bool)  { return s.inner.GetAny(e) }
func (s *ConstSet[E]) First() (E, bool)      { return s.inner.First() }
func (s *ConstSet[E]) Last() (E, bool)       { return s.inner.Last() }
func (s *ConstSet[E]) Ceiling(e E) (E, bool) { return s.inner.Ceiling(e) }
func (s *ConstSet[E]) Higher(e E) (E, bool)  { return s.inner.Higher(e) }
func (s *ConstSet[E]) Floor(e E) (E, bool)   { return s.inner.Floor(e) }
func (s *ConstSet[E]) Lower(e E) (E, bool)   { return s.inner.Lower(e) }

func (s *ConstSet[E]) Clear()                     { panic(ErrReadOnly) }
func (s *ConstSet[E]) Add(E) bool                 { panic(ErrReadOnly) }
func (s *ConstSet[E]) Remove(E) bool              { panic(ErrReadOnly) }
func (s *ConstSet[E]) RemoveIf(Predicate[E]) bool { panic(ErrReadOnly) }

func (s *ConstSet[E]) Iterator() Iterator[E] {
	return readOnly(s.inner.Iterator())
}

func (s *ConstSet[E]) DescendingIterator() Iterator[E] {
	return readOnly(s.inner.DescendingIterator())
}

func (s *ConstSet[E]) TrySplit(n int) []Collection[E] {
	return s.inner.TrySplit(n)
}

// Clone returns the receiver: frozen state cannot diverge.
func (s *ConstSet[E]) Clone() Collection[E] { return s }

// Freeze returns the receiver.
func (s *ConstSet[E]) Freeze() *ConstSet[E] { return s }

// Thaw returns a mutable copy sharing storage copy-on-write.
func (s *ConstSet[E]) Thaw() *Set[E] { return s.inner.clone() }

// ConstMap is the frozen form of Map. Entries are shared with the
// source, which is safe because entries are immutable.
type ConstMap[K, V any] struct {
	inner Map[K, V]
}

func (m *ConstMap[K, V]) Size() int     { return m.inner.Size() }
func (m *ConstMap[K, V]) IsEmpty() bool { return m.inner.IsEmpty() }

func (m *ConstMap[K, V]) KeyOrder() order.Order[K]         { return m.inner.KeyOrder() }
func (m *ConstMap[K, V]) ValueEquality() order.Equality[V] { return m.inner.ValueEquality() }

func (m *ConstMap[K, V]) Get(k K) (V, bool)                 { return m.inner.Get(k) }
func (m *ConstMap[K, V]) GetEntry(k K) (*Entry[K, V], bool) { return m.inner.GetEntry(k) }
func (m *ConstMap[K, V]) ContainsKey(k K) bool              { return m.inner.ContainsKey(k) }
func (m *ConstMap[K, V]) ContainsValue(v V) bool            { return m.inner.ContainsValue(v) }

func (m *ConstMap[K, V]) FirstEntry() (*Entry[K, V], bool) { return m.inner.FirstEntry() }
func (m *ConstMap[K, V]) LastEntry() (*Entry[K, V], bool)  { return m.inner.LastEntry() }

func (m *ConstMap[K, V]) CeilingEntry(k K) (*Entry[K, V], bool) { return m.inner.CeilingEntry(k) }
func (m *ConstMap[K, V]) FloorEntry(k K) (*Entry[K, V], bool)   { return m.inner.FloorEntry(k) }
func (m *ConstMap[K, V]) HigherEntry(k K) (*Entry[K, V], bool)  { return m.inner.HigherEntry(k) }
func (m *ConstMap[K, V]) LowerEntry(k K) (*Entry[K, V], bool)   { return m.inner.LowerEntry(k) }

func (m *ConstMap[K, V]) Entries() Collection[*Entry[K, V]] {
	return Unmodifiable(m.inner.Entries())
}

func (m *ConstMap[K, V]) KeySet() Collection[K] {
	return Unmodifiable(m.inner.KeySet())
}

func (m *ConstMap[K, V]) Values() Collection[V] {
	return m.inner.Values() // already read-only
}

// Freeze returns the receiver.
func (m *ConstMap[K, V]) Freeze() *ConstMap[K, V] { return m }

// Thaw returns a mutable copy sharing storage copy-on-write.
func (m *ConstMap[K, V]) Thaw() *Map[K, V] { return m.inner.Clone() }
