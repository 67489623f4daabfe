// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fractal

import "math/bits"

// Sparse is an unbounded array keyed by unsigned 64-bit indices. It is a
// 16-way trie compressed by common prefix: absent regions allocate
// nothing, a single entry is held inline and a node subdivides only when
// two entries disagree below its prefix.
//
// The zero value is an empty sparse array. Mutators panic with
// ErrUnsupportedMutation once frozen. A Sparse is not safe for concurrent
// use.
type Sparse[E any] struct {
	unaryIdx uint64
	unaryVal E
	unaryOk  bool
	root     *trie[E]
	count    uint64
	frozen   bool
}

// NewSparse returns an empty sparse array.
func NewSparse[E any]() *Sparse[E] {
	return &Sparse[E]{}
}

const (
	trieShift = 4
	trieSize  = 1 << trieShift
	trieMask  = trieSize - 1
)

// trie is a 16-cell node covering the indices sharing prefix above
// shift+trieShift. A cell is empty, an inline leaf, or a sub-trie.
type trie[E any] struct {
	shift   uint64
	prefix  uint64
	count   int // occupied cells
	shared  bool
	sub     [trieSize]*trie[E]
	leafIdx [trieSize]uint64
	leafVal [trieSize]E
	leafOk  [trieSize]bool
}

// leaf is the collapsed form reported by remove when one entry remains.
type leaf[E any] struct {
	index uint64
	value E
}

// commonShift returns the smallest multiple of four such that the two
// indices agree on all bits above shift+trieShift.
func commonShift(i, j uint64) uint64 {
	return uint64(bits.Len64(i^j)-1) / trieShift * trieShift
}

func newTrie[E any](xi uint64, x E, yi uint64, y E) *trie[E] {
	t := &trie[E]{}
	t.shift = commonShift(xi, yi)
	t.prefix = xi >> t.shift >> trieShift
	t.putLeaf(xi, x)
	t.putLeaf(yi, y)
	t.count = 2
	return t
}

// joinTrie wraps sub and a new leaf under their common prefix.
func joinTrie[E any](sub *trie[E], index uint64, e E) *trie[E] {
	subIdx := sub.prefix << trieShift << sub.shift
	t := &trie[E]{}
	t.shift = commonShift(subIdx, index)
	t.prefix = subIdx >> t.shift >> trieShift
	t.sub[(subIdx>>t.shift)&trieMask] = sub
	t.putLeaf(index, e)
	t.count = 2
	return t
}

func (t *trie[E]) putLeaf(index uint64, e E) {
	i := (index >> t.shift) & trieMask
	t.leafIdx[i] = index
	t.leafVal[i] = e
	t.leafOk[i] = true
}

func (t *trie[E]) outOfRange(index uint64) bool {
	return index>>t.shift>>trieShift != t.prefix
}

func (t *trie[E]) mutable() *trie[E] {
	if !t.shared {
		return t
	}
	c := *t
	c.shared = false
	for _, s := range c.sub {
		if s != nil {
			s.shared = true
		}
	}
	return &c
}

// subMutable returns the i-th sub-trie ready for mutation.
func (t *trie[E]) subMutable(i uint64) *trie[E] {
	s := t.sub[i]
	if s.shared {
		s = s.mutable()
		t.sub[i] = s
	}
	return s
}

func (t *trie[E]) get(index uint64) (E, bool) {
	var zero E
	if t.outOfRange(index) {
		return zero, false
	}
	i := (index >> t.shift) & trieMask
	if s := t.sub[i]; s != nil {
		return s.get(index)
	}
	if t.leafOk[i] && t.leafIdx[i] == index {
		return t.leafVal[i], true
	}
	return zero, false
}

// set stores e at index; t must be mutable. The returned node replaces t
// (a new parent when index lies outside the prefix range).
func (t *trie[E]) set(index uint64, e E) *trie[E] {
	if t.outOfRange(index) {
		return joinTrie(t, index, e)
	}
	i := (index >> t.shift) & trieMask
	switch {
	case t.sub[i] != nil:
		t.sub[i] = t.subMutable(i).set(index, e)
	case !t.leafOk[i]:
		t.putLeaf(index, e)
		t.count++
	case t.leafIdx[i] == index:
		t.leafVal[i] = e
	default: // Collision below this cell: subdivide.
		t.sub[i] = newTrie(t.leafIdx[i], t.leafVal[i], index, e)
		t.leafOk[i] = false
		var zero E
		t.leafVal[i] = zero
	}
	return t
}

// remove clears index; t must be mutable. It returns the node replacing t,
// or a collapsed single leaf when only one entry remains.
func (t *trie[E]) remove(index uint64) (*trie[E], *leaf[E]) {
	if t.outOfRange(index) {
		return t, nil
	}
	i := (index >> t.shift) & trieMask
	if t.sub[i] != nil {
		nt, lf := t.subMutable(i).remove(index)
		if lf != nil { // Inline the surviving leaf into the cell.
			t.sub[i] = nil
			t.leafIdx[i] = lf.index
			t.leafVal[i] = lf.value
			t.leafOk[i] = true
		} else {
			t.sub[i] = nt
		}
		return t, nil
	}
	if !t.leafOk[i] || t.leafIdx[i] != index {
		return t, nil
	}
	t.leafOk[i] = false
	var zero E
	t.leafVal[i] = zero
	if t.count--; t.count > 1 {
		return t, nil
	}
	for j := 0; j < trieSize; j++ { // Collapse around the survivor.
		if t.sub[j] != nil {
			return t.sub[j], nil
		}
		if t.leafOk[j] {
			return nil, &leaf[E]{index: t.leafIdx[j], value: t.leafVal[j]}
		}
	}
	return t, nil
}

// ceiling returns the lowest entry with index >= from.
func (t *trie[E]) ceiling(from uint64) (uint64, E, bool) {
	start := uint64(0)
	if t.outOfRange(from) {
		if t.prefix < from>>t.shift>>trieShift {
			var zero E
			return 0, zero, false // Everything is below from.
		}
	} else {
		start = (from >> t.shift) & trieMask
	}
	for i := start; i < trieSize; i++ {
		if s := t.sub[i]; s != nil {
			if idx, e, ok := s.ceiling(from); ok {
				return idx, e, ok
			}
		} else if t.leafOk[i] && t.leafIdx[i] >= from {
			return t.leafIdx[i], t.leafVal[i], true
		}
	}
	var zero E
	return 0, zero, false
}

// floor returns the highest entry with index <= from.
func (t *trie[E]) floor(from uint64) (uint64, E, bool) {
	start := uint64(trieMask)
	if t.outOfRange(from) {
		if from>>t.shift>>trieShift < t.prefix {
			var zero E
			return 0, zero, false // Everything is above from.
		}
	} else {
		start = (from >> t.shift) & trieMask
	}
	for i := int(start); i >= 0; i-- {
		if s := t.sub[i]; s != nil {
			if idx, e, ok := s.floor(from); ok {
				return idx, e, ok
			}
		} else if t.leafOk[i] && t.leafIdx[i] <= from {
			return t.leafIdx[i], t.leafVal[i], true
		}
	}
	var zero E
	return 0, zero, false
}

func (s *Sparse[E]) checkMutable() {
	if s.frozen {
		panic(ErrUnsupportedMutation)
	}
}

// Get returns the element at index and whether it is present. O(log n).
func (s *Sparse[E]) Get(index uint64) (E, bool) {
	if s.unaryOk {
		if s.unaryIdx == index {
			return s.unaryVal, true
		}
		var zero E
		return zero, false
	}
	if s.root != nil {
		return s.root.get(index)
	}
	var zero E
	return zero, false
}

// Set stores e at index and returns the receiver.
func (s *Sparse[E]) Set(index uint64, e E) *Sparse[E] {
	s.checkMutable()
	switch {
	case s.root != nil:
		if _, present := s.root.get(index); !present {
			s.count++
		}
		s.root = s.root.mutable().set(index, e)
	case s.unaryOk && s.unaryIdx == index:
		s.unaryVal = e
	case s.unaryOk:
		s.root = newTrie(s.unaryIdx, s.unaryVal, index, e)
		s.unaryOk = false
		var zero E
		s.unaryVal = zero
		s.count++
	default:
		s.unaryIdx = index
		s.unaryVal = e
		s.unaryOk = true
		s.count++
	}
	return s
}

// Clear removes the element at index and returns the receiver.
func (s *Sparse[E]) Clear(index uint64) *Sparse[E] {
	s.checkMutable()
	switch {
	case s.root != nil:
		if _, present := s.root.get(index); !present {
			return s
		}
		nt, lf := s.root.mutable().remove(index)
		if lf != nil {
			s.root = nil
			s.unaryIdx = lf.index
			s.unaryVal = lf.value
			s.unaryOk = true
		} else {
			s.root = nt
		}
		s.count--
	case s.unaryOk && s.unaryIdx == index:
		s.unaryOk = false
		var zero E
		s.unaryVal = zero
		s.count--
	}
	return s
}

// Ceiling returns the lowest present index >= from and its element.
func (s *Sparse[E]) Ceiling(from uint64) (uint64, E, bool) {
	if s.unaryOk {
		if s.unaryIdx >= from {
			return s.unaryIdx, s.unaryVal, true
		}
	} else if s.root != nil {
		return s.root.ceiling(from)
	}
	var zero E
	return 0, zero, false
}

// Floor returns the highest present index <= from and its element.
func (s *Sparse[E]) Floor(from uint64) (uint64, E, bool) {
	if s.unaryOk {
		if s.unaryIdx <= from {
			return s.unaryIdx, s.unaryVal, true
		}
	} else if s.root != nil {
		return s.root.floor(from)
	}
	var zero E
	return 0, zero, false
}

// IsEmpty reports whether no element is present.
func (s *Sparse[E]) IsEmpty() bool { return s.count == 0 }

// Count returns the number of present elements.
func (s *Sparse[E]) Count() uint64 { return s.count }

// First returns the lowest present index and its element.
func (s *Sparse[E]) First() (uint64, E, bool) { return s.Ceiling(0) }

// Last returns the highest present index and its element.
func (s *Sparse[E]) Last() (uint64, E, bool) { return s.Floor(^uint64(0)) }

// Clone returns an O(1) mutable snapshot sharing structure with the
// receiver; shared nodes are copied lazily on first mutation of either
// side. Cloning a frozen array yields a mutable copy.
func (s *Sparse[E]) Clone() *Sparse[E] {
	if s.root != nil {
		s.root.shared = true
	}
	c := *s
	c.frozen = false
	return &c
}

// Freeze makes the sparse array permanently immutable and returns it.
func (s *Sparse[E]) Freeze() *Sparse[E] {
	s.frozen = true
	if s.root != nil {
		s.root.shared = true
	}
	return s
}

// Frozen reports whether the array has been frozen.
func (s *Sparse[E]) Frozen() bool { return s.frozen }
