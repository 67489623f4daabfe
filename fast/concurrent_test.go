// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javolution/javolution-go/concurrent"
	"github.com/javolution/javolution-go/order"
)

func TestSharedConcurrentUse(t *testing.T) {
	v := Shared[int](NewSet(order.Int[int]()))

	const workers = 8
	const perWorker = 200
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				v.Add(w*perWorker + i)
			}
		}(w)
	}
	// Concurrent readers while writers run.
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = v.Size()
				drain(v.Iterator(), func(int) {})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, v.Size())
	for w := 0; w < workers; w++ {
		assert.True(t, v.Contains(w*perWorker))
	}
}

func TestSharedIteratorSnapshot(t *testing.T) {
	v := Shared[int](NewTableOf(1, 2, 3))
	it := v.Iterator()
	v.Add(4)
	var got []int
	drain(it, func(e int) { got = append(got, e) })
	assert.Equal(t, []int{1, 2, 3}, got, "iterator pinned to its snapshot")
	assert.Equal(t, 4, v.Size())
}

func TestAtomicView(t *testing.T) {
	v := Atomic[int](NewSet(order.Int[int]()))

	assert.True(t, v.Add(1))
	assert.False(t, v.Add(1))
	assert.True(t, v.Contains(1))
	assert.Equal(t, 1, v.Size())

	it := v.Iterator()
	v.Add(2)
	var got []int
	drain(it, func(e int) { got = append(got, e) })
	assert.Equal(t, []int{1}, got, "iterator pinned to its snapshot")
	assert.Equal(t, []int{1, 2}, ToSlice[int](v))

	v.Remove(1)
	assert.Equal(t, []int{2}, ToSlice[int](v))
}

func TestAtomicConcurrentReaders(t *testing.T) {
	v := Atomic[int](NewSet(order.Int[int]()))
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			v.Add(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			prev := -1
			drain(v.Iterator(), func(e int) {
				// Each snapshot iterates in order.
				assert.Greater(t, e, prev)
				prev = e
			})
		}
	}()
	wg.Wait()
	assert.Equal(t, 500, v.Size())
}

func TestParallelForEach(t *testing.T) {
	s := NewSet(order.Int[int]())
	for i := 0; i < 2000; i++ {
		s.Add(i)
	}
	p := ParallelWith[int](s, concurrent.NewExecutor(4))

	var sum atomic.Int64
	ForEach[int](p, func(e int) { sum.Add(int64(e)) })
	assert.Equal(t, int64(2000*1999/2), sum.Load())
}

func TestParallelMatchesSequential(t *testing.T) {
	s := NewSet(order.Int[int]())
	for i := 0; i < 1000; i++ {
		s.Add(i * 3)
	}
	p := ParallelWith[int](s, concurrent.NewExecutor(4))

	assert.Equal(t, AnyMatch[int](s, func(e int) bool { return e == 999 }),
		AnyMatch[int](p, func(e int) bool { return e == 999 }))
	assert.True(t, AllMatch[int](p, func(e int) bool { return e%3 == 0 }))

	e, ok := FindAny[int](p, func(e int) bool { return e > 2000 })
	require.True(t, ok)
	assert.Greater(t, e, 2000)

	seq, _ := Reduce[int](s, func(a, b int) int { return a + b })
	par, ok := Reduce[int](p, func(a, b int) int { return a + b })
	require.True(t, ok)
	assert.Equal(t, seq, par)
}

func TestParallelRemoveIf(t *testing.T) {
	s := NewSet(order.Int[int]())
	for i := 0; i < 1000; i++ {
		s.Add(i)
	}
	p := ParallelWith[int](s, concurrent.NewExecutor(4))

	assert.True(t, p.RemoveIf(func(e int) bool { return e%2 == 0 }))
	assert.Equal(t, 500, s.Size())
	assert.False(t, s.Contains(0))
	assert.True(t, s.Contains(1))
	assert.False(t, p.RemoveIf(func(int) bool { return false }))
}

func TestParallelCollect(t *testing.T) {
	s := NewSet(order.Int[int]())
	for i := 0; i < 500; i++ {
		s.Add(i)
	}
	p := ParallelWith[int](s, concurrent.NewExecutor(4))
	out := Collect[int](p, func() Collection[int] { return NewSet(order.Int[int]()) })
	assert.Equal(t, 500, out.Size())
	assert.Equal(t, ToSlice[int](s), ToSlice[int](Sorted[int](out, func(a, b int) int { return a - b })))
}

func TestSequentialUnwraps(t *testing.T) {
	s := NewSet(order.Int[int]())
	p := Parallel[int](s)
	assert.Equal(t, Collection[int](s), Sequential[int](p))
	assert.Equal(t, Collection[int](s), Sequential[int](Collection[int](s)), "no-op on sequential collections")
}

func TestParallelOutermostOnly(t *testing.T) {
	s := NewSetOf(order.Int[int](), 1, 2, 3, 4, 5, 6)
	// A view stacked on top of Parallel is sequential again; results
	// still agree, only the dispatch differs.
	v := Filtered[int](Parallel[int](s), func(e int) bool { return e%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, ToSlice[int](v))

	sum := 0
	ForEach[int](v, func(e int) { sum += e }) // No data race: sequential.
	assert.Equal(t, 12, sum)
}
