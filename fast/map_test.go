// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javolution/javolution-go/order"
)

func TestMapPutGetRemove(t *testing.T) {
	m := NewMap[string, int](order.Lexical())
	assert.True(t, m.IsEmpty())

	_, had := m.Put("a", 1)
	assert.False(t, had)
	_, had = m.Put("b", 2)
	assert.False(t, had)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = m.Get("z")
	assert.False(t, ok)

	prev, had := m.Put("a", 10)
	assert.True(t, had)
	assert.Equal(t, 1, prev)
	v, _ = m.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, m.Size())

	v, ok = m.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = m.Remove("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Size())
}

func TestMapPutIfAbsentReplace(t *testing.T) {
	m := NewMap[string, int](order.Lexical())

	v, present := m.PutIfAbsent("k", 1)
	assert.False(t, present)
	assert.Equal(t, 1, v)
	v, present = m.PutIfAbsent("k", 2)
	assert.True(t, present)
	assert.Equal(t, 1, v, "existing value wins")

	prev, ok := m.Replace("k", 5)
	require.True(t, ok)
	assert.Equal(t, 1, prev)
	_, ok = m.Replace("missing", 5)
	assert.False(t, ok)

	assert.False(t, m.ReplaceIf("k", 1, 9), "stale expectation")
	assert.True(t, m.ReplaceIf("k", 5, 9))
	v, _ = m.Get("k")
	assert.Equal(t, 9, v)
}

func TestMapContains(t *testing.T) {
	m := NewMap[string, int](order.Lexical())
	m.Put("x", 7)
	assert.True(t, m.ContainsKey("x"))
	assert.False(t, m.ContainsKey("y"))
	assert.True(t, m.ContainsValue(7))
	assert.False(t, m.ContainsValue(8))
}

func TestMapOrderedIteration(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	m := NewMap[int, int](order.Int[int]())
	oracle := map[int]int{}
	for i := 0; i < 2000; i++ {
		k := rng.Intn(5000) - 2500
		m.Put(k, i)
		oracle[k] = i
	}
	require.Equal(t, len(oracle), m.Size())

	keys := make([]int, 0, len(oracle))
	for k := range oracle {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	assert.Equal(t, keys, ToSlice[int](m.KeySet()))
	i := 0
	drain(m.Entries().Iterator(), func(e *Entry[int, int]) {
		require.Equal(t, keys[i], e.Key())
		require.Equal(t, oracle[e.Key()], e.Value())
		i++
	})
}

func TestMapNavigation(t *testing.T) {
	m := NewMap[int, string](order.Int[int]())
	m.Put(10, "ten")
	m.Put(20, "twenty")
	m.Put(30, "thirty")

	e, ok := m.FirstEntry()
	require.True(t, ok)
	assert.Equal(t, 10, e.Key())
	e, ok = m.LastEntry()
	require.True(t, ok)
	assert.Equal(t, 30, e.Key())

	e, ok = m.CeilingEntry(15)
	require.True(t, ok)
	assert.Equal(t, 20, e.Key())
	e, ok = m.FloorEntry(15)
	require.True(t, ok)
	assert.Equal(t, 10, e.Key())
	e, ok = m.HigherEntry(20)
	require.True(t, ok)
	assert.Equal(t, 30, e.Key())
	e, ok = m.LowerEntry(20)
	require.True(t, ok)
	assert.Equal(t, 10, e.Key())
	_, ok = m.HigherEntry(30)
	assert.False(t, ok)

	e, ok = m.PollFirstEntry()
	require.True(t, ok)
	assert.Equal(t, 10, e.Key())
	assert.Equal(t, 2, m.Size())
	e, ok = m.PollLastEntry()
	require.True(t, ok)
	assert.Equal(t, 30, e.Key())
}

func TestMapKeySetValues(t *testing.T) {
	m := NewMap[string, int](order.Lexical())
	m.Put("b", 2)
	m.Put("a", 1)
	m.Put("c", 3)

	ks := m.KeySet()
	assert.Equal(t, []string{"a", "b", "c"}, ToSlice[string](ks))
	assert.True(t, ks.Contains("b"))
	assert.Panics(t, func() { ks.Add("d") })

	// Removing through the key set removes the entry.
	assert.True(t, ks.Remove("b"))
	assert.False(t, m.ContainsKey("b"))

	vs := m.Values()
	assert.ElementsMatch(t, []int{1, 3}, ToSlice[int](vs))
	assert.True(t, vs.Contains(3))
	assert.False(t, vs.Contains(2))
	assert.Panics(t, func() { vs.Add(9) })
}

func TestMapSubMaps(t *testing.T) {
	m := NewMap[int, int](order.Int[int]())
	for i := 0; i < 10; i++ {
		m.Put(i, i*i)
	}

	var keys []int
	drain(m.SubMap(3, 7).Iterator(), func(e *Entry[int, int]) { keys = append(keys, e.Key()) })
	assert.Equal(t, []int{3, 4, 5, 6}, keys)

	keys = nil
	drain(m.HeadMap(3).Iterator(), func(e *Entry[int, int]) { keys = append(keys, e.Key()) })
	assert.Equal(t, []int{0, 1, 2}, keys)

	keys = nil
	drain(m.TailMap(7).Iterator(), func(e *Entry[int, int]) { keys = append(keys, e.Key()) })
	assert.Equal(t, []int{7, 8, 9}, keys)
}

func TestMapMulti(t *testing.T) {
	m := NewMap[string, int](order.Lexical())
	m.PutMulti("k", 1)
	m.PutMulti("k", 2)
	m.PutMulti("k", 3)
	m.PutMulti("other", 9)
	assert.Equal(t, 4, m.Size())

	// Values of a duplicated key iterate in insertion order.
	var vals []int
	drain(m.Entries().Iterator(), func(e *Entry[string, int]) {
		if e.Key() == "k" {
			vals = append(vals, e.Value())
		}
	})
	assert.Equal(t, []int{1, 2, 3}, vals)

	// Remove deletes one binding at a time.
	_, ok := m.Remove("k")
	assert.True(t, ok)
	assert.Equal(t, 3, m.Size())
	assert.True(t, m.ContainsKey("k"))
}

func TestMapMultiPutReplacesInPlace(t *testing.T) {
	m := NewMap[string, int](order.Lexical())
	m.PutMulti("a", 1)
	m.PutMulti("a", 2)
	m.PutMulti("b", 9)

	prev, had := m.Put("a", 3)
	assert.True(t, had)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 3, m.Size())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	// The earliest binding is replaced in place; later duplicates keep
	// their values and positions.
	assert.Equal(t, []int{3, 2, 9}, ToSlice[int](m.Values()))
}

func TestMapMultiParallelRemoveIf(t *testing.T) {
	m := NewMap[string, int](order.Lexical())
	m.PutMulti("a", 1)
	m.PutMulti("a", 2)
	m.PutMulti("b", 9)

	// The predicate is finer than the entry equality (which compares keys
	// only); exactly the matching binding goes.
	entries := Parallel(m.Entries())
	assert.True(t, entries.RemoveIf(func(e *Entry[string, int]) bool { return e.Value() == 2 }))
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, []int{1, 9}, ToSlice[int](m.Values()))

	assert.False(t, entries.RemoveIf(func(e *Entry[string, int]) bool { return e.Value() == 2 }))
}

func TestMapCloneIndependence(t *testing.T) {
	m := NewMap[int, int](order.Int[int]())
	for i := 0; i < 500; i++ {
		m.Put(i, i)
	}
	cp := m.Clone()
	m.Put(0, -1)
	cp.Remove(1)

	v, _ := cp.Get(0)
	assert.Equal(t, 0, v)
	assert.True(t, m.ContainsKey(1))
	assert.Equal(t, 500, m.Size())
	assert.Equal(t, 499, cp.Size())
}

func TestConstMap(t *testing.T) {
	m := NewMap[string, int](order.Lexical())
	m.Put("a", 1)
	m.Put("b", 2)
	cm := m.Freeze()

	m.Put("c", 3)
	assert.Equal(t, 2, cm.Size(), "snapshot does not follow the source")

	v, ok := cm.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, cm.ContainsKey("b"))
	assert.False(t, cm.ContainsKey("c"))
	assert.True(t, cm.ContainsValue(2))

	e, ok := cm.FirstEntry()
	require.True(t, ok)
	assert.Equal(t, "a", e.Key())

	assert.Panics(t, func() { cm.Entries().Add(NewEntry("z", 9)) })
	assert.Panics(t, func() { cm.KeySet().Remove("a") })

	thawed := cm.Thaw()
	thawed.Put("z", 26)
	assert.Equal(t, 2, cm.Size())
	assert.Equal(t, 3, thawed.Size())
}
