// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"github.com/javolution/javolution-go/concurrent"
	"github.com/javolution/javolution-go/order"
)

// Parallel returns a view whose bulk operations (ForEach, AnyMatch,
// FindAny, Reduce, Collect, RemoveIf) run over TrySplit partitions
// dispatched through the default executor. Only the outermost view
// counts: Filtered(Parallel(c), p) is sequential again.
func Parallel[E any](c Collection[E]) Collection[E] {
	return ParallelWith(c, concurrent.DefaultExecutor())
}

// ParallelWith returns a parallel view dispatching through exec.
func ParallelWith[E any](c Collection[E], exec concurrent.Executor) Collection[E] {
	return &parallelView[E]{inner: c, exec: exec}
}

// Sequential unwraps a parallel view; other collections are returned
// unchanged.
func Sequential[E any](c Collection[E]) Collection[E] {
	if v, ok := c.(*parallelView[E]); ok {
		return v.inner
	}
	return c
}

type parallelView[E any] struct {
	inner Collection[E]
	exec  concurrent.Executor
}

// partitions returns the splits to dispatch, or nil when the underlying
// collection cannot usefully split.
func (v *parallelView[E]) partitions() []Collection[E] {
	parts := v.inner.TrySplit(v.exec.Concurrency())
	if len(parts) < 2 {
		return nil
	}
	return parts
}

func (v *parallelView[E]) invoke(tasks []func()) {
	if err := v.exec.Invoke(tasks...); err != nil {
		panic(err)
	}
}

func (v *parallelView[E]) Size() int         { return v.inner.Size() }
func (v *parallelView[E]) IsEmpty() bool     { return v.inner.IsEmpty() }
func (v *parallelView[E]) Clear()            { v.inner.Clear() }
func (v *parallelView[E]) Add(e E) bool      { return v.inner.Add(e) }
func (v *parallelView[E]) Remove(e E) bool   { return v.inner.Remove(e) }
func (v *parallelView[E]) Contains(e E) bool { return v.inner.Contains(e) }

// RemoveIf evaluates p over the partitions in parallel; when a partition
// holds a match, removal runs as a sequential pass re-applying p, so
// exactly the matching elements go, never a duplicate that merely
// compares equal to a match. There is no rollback: a panic in p during
// the parallel phase leaves the collection untouched.
func (v *parallelView[E]) RemoveIf(p Predicate[E]) bool {
	parts := v.partitions()
	if parts == nil {
		return v.inner.RemoveIf(p)
	}
	matched := make([]bool, len(parts))
	tasks := make([]func(), len(parts))
	for i := range parts {
		i, part := i, parts[i]
		tasks[i] = func() {
			matched[i] = part.Iterator().HasNextMatching(p)
		}
	}
	v.invoke(tasks)
	for _, hit := range matched {
		if hit {
			return v.inner.RemoveIf(p)
		}
	}
	return false
}

func (v *parallelView[E]) Iterator() Iterator[E] { return v.inner.Iterator() }

func (v *parallelView[E]) DescendingIterator() Iterator[E] {
	return v.inner.DescendingIterator()
}

func (v *parallelView[E]) Equality() order.Equality[E] { return v.inner.Equality() }

func (v *parallelView[E]) TrySplit(n int) []Collection[E] {
	return v.inner.TrySplit(n)
}

func (v *parallelView[E]) Clone() Collection[E] {
	return ParallelWith(v.inner.Clone(), v.exec)
}
