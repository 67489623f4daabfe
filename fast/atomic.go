// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"sync"
	"sync/atomic"

	"github.com/javolution/javolution-go/order"
)

// Atomic returns a thread-safe view where reads never block: mutators
// update a master copy under a short exclusive lock and publish an O(1)
// snapshot; readers load the latest published snapshot. Iterators and
// bulk reads observe a consistent, possibly slightly stale state.
func Atomic[E any](c Collection[E]) Collection[E] {
	v := &atomicView[E]{master: c}
	v.snap.Store(c.Clone())
	return v
}

type atomicView[E any] struct {
	mu     sync.Mutex
	master Collection[E] // guarded by mu
	snap   atomic.Value  // last published Collection[E] snapshot
}

func (v *atomicView[E]) load() Collection[E] {
	return v.snap.Load().(Collection[E])
}

func (v *atomicView[E]) publish() {
	v.snap.Store(v.master.Clone())
}

func (v *atomicView[E]) Size() int         { return v.load().Size() }
func (v *atomicView[E]) IsEmpty() bool     { return v.load().IsEmpty() }
func (v *atomicView[E]) Contains(e E) bool { return v.load().Contains(e) }

func (v *atomicView[E]) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.master.Clear()
	v.publish()
}

func (v *atomicView[E]) Add(e E) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.master.Add(e)
	if changed {
		v.publish()
	}
	return changed
}

func (v *atomicView[E]) Remove(e E) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.master.Remove(e)
	if changed {
		v.publish()
	}
	return changed
}

func (v *atomicView[E]) RemoveIf(p Predicate[E]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.master.RemoveIf(p)
	if changed {
		v.publish()
	}
	return changed
}

func (v *atomicView[E]) Iterator() Iterator[E] {
	return readOnly(v.load().Iterator())
}

func (v *atomicView[E]) DescendingIterator() Iterator[E] {
	return readOnly(v.load().DescendingIterator())
}

func (v *atomicView[E]) Equality() order.Equality[E] { return v.master.Equality() }

func (v *atomicView[E]) TrySplit(n int) []Collection[E] {
	return v.load().TrySplit(n)
}

func (v *atomicView[E]) Clone() Collection[E] {
	return Atomic(v.load().Clone())
}
