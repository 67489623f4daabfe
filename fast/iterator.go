// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import "github.com/javolution/javolution-go/d"

// funcIterator adapts a fetch closure into an Iterator. The closure
// returns the next element until exhausted.
type funcIterator[E any] struct {
	fetch func() (E, bool)
	cur   E
	ok    bool
}

func newIterator[E any](fetch func() (E, bool)) *funcIterator[E] {
	return &funcIterator[E]{fetch: fetch}
}

// sliceIterator iterates over elems in order.
func sliceIterator[E any](elems []E) Iterator[E] {
	i := 0
	return newIterator(func() (E, bool) {
		if i >= len(elems) {
			var zero E
			return zero, false
		}
		e := elems[i]
		i++
		return e, true
	})
}

func (it *funcIterator[E]) HasNext() bool {
	if !it.ok {
		it.cur, it.ok = it.fetch()
	}
	return it.ok
}

func (it *funcIterator[E]) Next() E {
	d.PanicIfFalse(it.HasNext(), "iterator exhausted")
	it.ok = false
	return it.cur
}

func (it *funcIterator[E]) HasNextMatching(p Predicate[E]) bool {
	for it.HasNext() {
		if p(it.cur) {
			return true
		}
		it.ok = false
	}
	return false
}

// filterIterator narrows an iterator to the elements matching p.
func filterIterator[E any](it Iterator[E], p Predicate[E]) Iterator[E] {
	return newIterator(func() (E, bool) {
		if it.HasNextMatching(p) {
			return it.Next(), true
		}
		var zero E
		return zero, false
	})
}

// drain feeds every remaining element of it to f.
func drain[E any](it Iterator[E], f Consumer[E]) {
	for it.HasNext() {
		f(it.Next())
	}
}
