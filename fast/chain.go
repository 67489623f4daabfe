// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"sort"

	"github.com/javolution/javolution-go/order"
)

// bucket holds the elements sharing one placement index. A single element
// lives inline; colliding elements are kept in a chain sorted by the set
// order, equal elements in insertion order. Chains are never mutated in
// place so engine snapshots stay valid.
type bucket[E any] struct {
	single E
	chain  []E // nil for single-element buckets
}

func singleBucket[E any](e E) bucket[E] {
	return bucket[E]{single: e}
}

func (b bucket[E]) size() int {
	if b.chain == nil {
		return 1
	}
	return len(b.chain)
}

// elems returns the bucket content in chain order. The result must not be
// mutated.
func (b bucket[E]) elems() []E {
	if b.chain == nil {
		return []E{b.single}
	}
	return b.chain
}

// firstIndex returns the lowest chain position whose element does not sort
// before e.
func firstIndex[E any](chain []E, e E, ord order.Order[E]) int {
	return sort.Search(len(chain), func(i int) bool {
		return ord.Compare(chain[i], e) >= 0
	})
}

// lastIndex returns the lowest chain position whose element sorts after e.
func lastIndex[E any](chain []E, e E, ord order.Order[E]) int {
	return sort.Search(len(chain), func(i int) bool {
		return ord.Compare(chain[i], e) > 0
	})
}

// find returns the first element equal to e and its chain position.
func (b bucket[E]) find(e E, ord order.Order[E]) (E, int, bool) {
	if b.chain == nil {
		if ord.AreEqual(b.single, e) {
			return b.single, 0, true
		}
		var zero E
		return zero, -1, false
	}
	hi := lastIndex(b.chain, e, ord)
	for i := firstIndex(b.chain, e, ord); i < hi; i++ {
		if ord.AreEqual(b.chain[i], e) {
			return b.chain[i], i, true
		}
	}
	var zero E
	return zero, -1, false
}

// add inserts e keeping the chain sorted; equal elements are inserted
// after their peers so they iterate in insertion order. Duplicates are
// rejected unless allowDup.
func (b bucket[E]) add(e E, ord order.Order[E], allowDup bool) (bucket[E], bool) {
	if !allowDup {
		if _, _, found := b.find(e, ord); found {
			return b, false
		}
	}
	old := b.elems()
	at := lastIndex(old, e, ord)
	chain := make([]E, 0, len(old)+1)
	chain = append(chain, old[:at]...)
	chain = append(chain, e)
	chain = append(chain, old[at:]...)
	return bucket[E]{chain: chain}, true
}

// remove deletes the first element equal to e. A chain shrinking to one
// element is promoted back to the inline form.
func (b bucket[E]) remove(e E, ord order.Order[E]) (bucket[E], E, bool, bool) {
	removed, at, found := b.find(e, ord)
	var zero E
	if !found {
		return b, zero, false, false
	}
	if b.chain == nil {
		return bucket[E]{}, removed, true, true // Bucket now empty.
	}
	if len(b.chain) == 2 {
		return singleBucket(b.chain[1-at]), removed, true, false
	}
	chain := make([]E, 0, len(b.chain)-1)
	chain = append(chain, b.chain[:at]...)
	chain = append(chain, b.chain[at+1:]...)
	return bucket[E]{chain: chain}, removed, true, false
}

// replace substitutes e for the first element equal to it, keeping its
// chain position.
func (b bucket[E]) replace(e E, ord order.Order[E]) (bucket[E], E, bool) {
	old, at, found := b.find(e, ord)
	var zero E
	if !found {
		return b, zero, false
	}
	if b.chain == nil {
		return singleBucket(e), old, true
	}
	chain := append([]E(nil), b.chain...)
	chain[at] = e
	return bucket[E]{chain: chain}, old, true
}

// removeIf deletes every chain element matching p and reports the
// survivors plus the number removed.
func (b bucket[E]) removeIf(p Predicate[E]) (bucket[E], int, bool) {
	old := b.elems()
	var kept []E
	for _, e := range old {
		if !p(e) {
			kept = append(kept, e)
		}
	}
	removed := len(old) - len(kept)
	switch {
	case removed == 0:
		return b, 0, false
	case len(kept) == 0:
		return bucket[E]{}, removed, true
	case len(kept) == 1:
		return singleBucket(kept[0]), removed, false
	default:
		return bucket[E]{chain: kept}, removed, false
	}
}
