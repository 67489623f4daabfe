// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"sync"

	"github.com/javolution/javolution-go/order"
)

// Shared returns a thread-safe view guarded by a readers-writer lock;
// a waiting writer blocks new readers. Iterators run over an O(1)
// snapshot, so they never observe a partial mutation and never block
// writers.
func Shared[E any](c Collection[E]) Collection[E] {
	return &shared[E]{inner: c}
}

type shared[E any] struct {
	mu    sync.RWMutex
	inner Collection[E]
}

func (v *shared[E]) Size() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.inner.Size()
}

func (v *shared[E]) IsEmpty() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.inner.IsEmpty()
}

func (v *shared[E]) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.inner.Clear()
}

func (v *shared[E]) Add(e E) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inner.Add(e)
}

func (v *shared[E]) Remove(e E) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inner.Remove(e)
}

func (v *shared[E]) Contains(e E) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.inner.Contains(e)
}

func (v *shared[E]) RemoveIf(p Predicate[E]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inner.RemoveIf(p)
}

// snapshot returns a clone taken under the read lock.
func (v *shared[E]) snapshot() Collection[E] {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.inner.Clone()
}

func (v *shared[E]) Iterator() Iterator[E] {
	return readOnly(v.snapshot().Iterator())
}

func (v *shared[E]) DescendingIterator() Iterator[E] {
	return readOnly(v.snapshot().DescendingIterator())
}

func (v *shared[E]) Equality() order.Equality[E] { return v.inner.Equality() }

// TrySplit partitions a snapshot: partitions stay consistent with each
// other even while the shared collection keeps changing.
func (v *shared[E]) TrySplit(n int) []Collection[E] {
	return v.snapshot().TrySplit(n)
}

func (v *shared[E]) Clone() Collection[E] {
	return Shared(v.snapshot())
}
