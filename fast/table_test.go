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
)

func TestTableAddGet(t *testing.T) {
	tbl := NewTable[int]()
	assert.True(t, tbl.IsEmpty())
	for i := 0; i < 3000; i++ {
		tbl.AddLast(i)
	}
	assert.Equal(t, 3000, tbl.Size())
	for i := 0; i < 3000; i++ {
		require.Equal(t, i, tbl.Get(i))
	}

	old := tbl.Set(100, -1)
	assert.Equal(t, 100, old)
	assert.Equal(t, -1, tbl.Get(100))
}

func TestTableIndexPanics(t *testing.T) {
	tbl := NewTableOf(1, 2, 3)
	assert.Panics(t, func() { tbl.Get(3) })
	assert.Panics(t, func() { tbl.Get(-1) })
	assert.Panics(t, func() { tbl.RemoveAt(3) })
	assert.NotPanics(t, func() { tbl.AddAt(3, 4) }) // One past the end is insertion.
}

func TestTableDeque(t *testing.T) {
	tbl := NewTable[string]()

	_, ok := tbl.PeekFirst()
	assert.False(t, ok)
	_, ok = tbl.RemoveLast()
	assert.False(t, ok)

	tbl.AddLast("b")
	tbl.AddFirst("a")
	tbl.AddLast("c")
	assert.Equal(t, []string{"a", "b", "c"}, ToSlice[string](tbl))

	v, ok := tbl.PeekFirst()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = tbl.PeekLast()
	require.True(t, ok)
	assert.Equal(t, "c", v)

	v, _ = tbl.RemoveFirst()
	assert.Equal(t, "a", v)
	v, _ = tbl.RemoveLast()
	assert.Equal(t, "c", v)
	assert.Equal(t, 1, tbl.Size())
}

func TestTableDequeRotation(t *testing.T) {
	// Heavy alternating head and tail churn; a ring-buffer style workload.
	tbl := NewTable[int]()
	var oracle []int
	rng := rand.New(rand.NewSource(11))
	for op := 0; op < 6000; op++ {
		switch rng.Intn(4) {
		case 0:
			tbl.AddFirst(op)
			oracle = append([]int{op}, oracle...)
		case 1:
			tbl.AddLast(op)
			oracle = append(oracle, op)
		case 2:
			if len(oracle) > 0 {
				v, ok := tbl.RemoveFirst()
				require.True(t, ok)
				require.Equal(t, oracle[0], v)
				oracle = oracle[1:]
			}
		default:
			if len(oracle) > 0 {
				v, ok := tbl.RemoveLast()
				require.True(t, ok)
				require.Equal(t, oracle[len(oracle)-1], v)
				oracle = oracle[:len(oracle)-1]
			}
		}
	}
	require.Equal(t, len(oracle), tbl.Size())
	for i, want := range oracle {
		require.Equal(t, want, tbl.Get(i), "index %d", i)
	}
}

func TestTableAddAtRemoveAt(t *testing.T) {
	tbl := NewTableOf(0, 1, 2, 3, 4)
	tbl.AddAt(2, 99)
	assert.Equal(t, []int{0, 1, 99, 2, 3, 4}, ToSlice[int](tbl))

	removed := tbl.RemoveAt(2)
	assert.Equal(t, 99, removed)
	removed = tbl.RemoveAt(0)
	assert.Equal(t, 0, removed)
	assert.Equal(t, []int{1, 2, 3, 4}, ToSlice[int](tbl))
}

func TestTableIndexOf(t *testing.T) {
	tbl := NewTableOf("a", "b", "a", "c")
	assert.Equal(t, 0, tbl.IndexOf("a"))
	assert.Equal(t, 2, tbl.LastIndexOf("a"))
	assert.Equal(t, -1, tbl.IndexOf("z"))
	assert.True(t, tbl.Contains("c"))
	assert.False(t, tbl.Contains("z"))

	assert.True(t, tbl.Remove("a"))
	assert.Equal(t, []string{"b", "a", "c"}, ToSlice[string](tbl))
	assert.False(t, tbl.Remove("z"))
}

func TestTableRemoveIf(t *testing.T) {
	tbl := NewTable[int]()
	for i := 0; i < 100; i++ {
		tbl.AddLast(i)
	}
	changed := tbl.RemoveIf(func(e int) bool { return e%3 == 0 })
	assert.True(t, changed)
	assert.Equal(t, 66, tbl.Size())
	drain(tbl.Iterator(), func(e int) {
		assert.NotZero(t, e%3)
	})
	assert.False(t, tbl.RemoveIf(func(int) bool { return false }))
}

func TestTableSortReverse(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	tbl := NewTable[int]()
	var oracle []int
	for i := 0; i < 1500; i++ {
		v := rng.Intn(500)
		tbl.AddLast(v)
		oracle = append(oracle, v)
	}
	cmp := func(a, b int) int { return a - b }
	tbl.Sort(cmp)
	sort.Ints(oracle)
	assert.Equal(t, oracle, ToSlice[int](tbl))

	tbl.Reverse()
	for i, j := 0, len(oracle)-1; i < j; i, j = i+1, j-1 {
		oracle[i], oracle[j] = oracle[j], oracle[i]
	}
	assert.Equal(t, oracle, ToSlice[int](tbl))
}

func TestTableIteratorRemove(t *testing.T) {
	tbl := NewTableOf(0, 1, 2, 3, 4, 5)
	it := tbl.Iterator().(MutableIterator[int])
	for it.HasNext() {
		if it.Next()%2 == 0 {
			it.Remove()
		}
	}
	assert.Equal(t, []int{1, 3, 5}, ToSlice[int](tbl))

	// Descending iterators remove too.
	dit := tbl.DescendingIterator().(MutableIterator[int])
	require.True(t, dit.HasNext())
	assert.Equal(t, 5, dit.Next())
	dit.Remove()
	assert.Equal(t, []int{1, 3}, ToSlice[int](tbl))
}

func TestTableSubTable(t *testing.T) {
	tbl := NewTableOf(0, 1, 2, 3, 4, 5, 6, 7)
	sub := tbl.SubTable(2, 6) // {2, 3, 4, 5}
	assert.Equal(t, 4, sub.Size())
	assert.Equal(t, 2, sub.Get(0))
	assert.Equal(t, 5, sub.Get(3))

	// Structural changes through the view shift the parent.
	sub.RemoveAt(0)
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6, 7}, ToSlice[int](tbl))
	assert.Equal(t, 3, sub.Size())

	sub.Set(0, 99)
	assert.Equal(t, 99, tbl.Get(2))
}

func TestTableTrySplit(t *testing.T) {
	tbl := NewTable[int]()
	for i := 0; i < 100; i++ {
		tbl.AddLast(i)
	}
	parts := tbl.TrySplit(4)
	require.Len(t, parts, 4)

	var all []int
	total := 0
	for _, p := range parts {
		total += p.Size()
		all = append(all, ToSlice[int](p)...)
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, ToSlice[int](tbl), all)

	assert.Panics(t, func() { parts[0].Add(1) })

	// Unsplittable sizes collapse to a single partition.
	small := NewTableOf(1)
	assert.Len(t, small.TrySplit(4), 1)
}

func TestTableCloneIndependence(t *testing.T) {
	tbl := NewTable[int]()
	for i := 0; i < 1000; i++ {
		tbl.AddLast(i)
	}
	cp := tbl.Clone().(*Table[int])
	cp.Set(0, -1)
	tbl.RemoveAt(500)

	assert.Equal(t, 0, tbl.Get(0))
	assert.Equal(t, 1000, cp.Size())
	assert.Equal(t, 999, tbl.Size())
	assert.Equal(t, 500, cp.Get(500))
}

func TestConstTable(t *testing.T) {
	tbl := NewTableOf(1, 2, 3)
	ct := tbl.Freeze()

	// The source stays mutable and the snapshot does not follow it.
	tbl.AddLast(4)
	assert.Equal(t, 3, ct.Size())
	assert.Equal(t, []int{1, 2, 3}, ToSlice[int](ct))
	assert.Equal(t, 1, ct.GetFirst())
	assert.Equal(t, 3, ct.GetLast())
	assert.Equal(t, 1, ct.IndexOf(2))
	assert.True(t, ct.Contains(3))

	assert.Panics(t, func() { ct.Add(9) })
	assert.Panics(t, func() { ct.Remove(1) })
	assert.Panics(t, func() { ct.Clear() })
	assert.Panics(t, func() { ct.RemoveIf(func(int) bool { return true }) })

	assert.Same(t, ct, ct.Freeze())

	thawed := ct.Thaw()
	thawed.AddLast(9)
	assert.Equal(t, 3, ct.Size(), "thawed copy diverges without touching the snapshot")
	assert.Equal(t, 4, thawed.Size())

	parts := ct.TrySplit(2)
	var all []int
	for _, p := range parts {
		all = append(all, ToSlice[int](p)...)
	}
	assert.Equal(t, []int{1, 2, 3}, all)
}
