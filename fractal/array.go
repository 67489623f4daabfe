// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package fractal provides the unbounded indexed array engines backing the
// fast collections: Array, a 64-bit positional array with near-constant
// shifting at any scale, and Sparse, a 32-bit keyed trie which allocates
// nothing for absent regions. Both support O(1) freezing and copy-on-write
// cloning.
package fractal

// Array is an unbounded positional array with a self-similar block
// structure: leaf blocks of up to 256 slots under inner blocks of up to 256
// children, each level carrying its own rotation offset. Rotating an offset
// renumbers a whole level in constant time, which keeps insertion and
// deletion almost constant regardless of the number of elements held.
//
// The zero value is an empty array. Mutators return the receiver for
// chaining and panic with ErrUnsupportedMutation once the array is frozen.
// An Array is not safe for concurrent use.
type Array[E any] struct {
	root   *block[E]
	count  uint64
	frozen bool
}

// NewArray returns an empty array.
func NewArray[E any]() *Array[E] {
	return &Array[E]{}
}

const (
	blockShift  = 8
	blockMax    = 1 << blockShift // widest block, leaf or inner
	leafMin     = 16              // initial root capacity
	emptyResult = ^uint64(0)
)

// slot pairs an element with its occupancy; unoccupied slots read as the
// zero slot.
type slot[E any] struct {
	v  E
	ok bool
}

// block is one level of the fractal structure. Leaves (shift == 0) store
// slots; inner blocks store children covering 1<<shift indices each.
// Only the root may be narrower than blockMax entries.
type block[E any] struct {
	shift  uint
	offset uint64 // index of logical zero, modulo the block span
	shared bool   // copy before mutating
	slots  []slot[E]
	kids   []*block[E]
}

func newLeaf[E any](width int) *block[E] {
	return &block[E]{slots: make([]slot[E], width)}
}

func newInner[E any](shift uint, width int) *block[E] {
	return &block[E]{shift: shift, kids: make([]*block[E], width)}
}

func (b *block[E]) width() int {
	if b.shift == 0 {
		return len(b.slots)
	}
	return len(b.kids)
}

// mask returns span-1 where span = width << shift. The span of a maximal
// structure overflows uint64 to zero, which still yields the all-ones mask.
func (b *block[E]) mask() uint64 {
	return uint64(b.width())<<b.shift - 1
}

// mutable returns a block safe to mutate: the receiver when exclusively
// owned, otherwise a copy whose children become shared with the original.
func (b *block[E]) mutable() *block[E] {
	if !b.shared {
		return b
	}
	c := &block[E]{shift: b.shift, offset: b.offset}
	if b.shift == 0 {
		c.slots = append([]slot[E](nil), b.slots...)
		return c
	}
	c.kids = append([]*block[E](nil), b.kids...)
	for _, k := range c.kids {
		if k != nil {
			k.shared = true
		}
	}
	return c
}

// child returns the i-th child ready for mutation, allocating it on first
// access. Non-root blocks are always full width.
func (b *block[E]) child(i uint64) *block[E] {
	k := b.kids[i]
	if k == nil {
		if b.shift == blockShift {
			k = newLeaf[E](blockMax)
		} else {
			k = newInner[E](b.shift-blockShift, blockMax)
		}
		b.kids[i] = k
		return k
	}
	if k.shared {
		k = k.mutable()
		b.kids[i] = k
	}
	return k
}

// peek reads through the i-th child without allocating it.
func (b *block[E]) peek(i uint64, index uint64) slot[E] {
	if k := b.kids[i]; k != nil {
		return k.get(index)
	}
	return slot[E]{}
}

func (b *block[E]) get(index uint64) slot[E] {
	if b.shift == 0 {
		return b.slots[(index+b.offset)&uint64(len(b.slots)-1)]
	}
	i := ((index + b.offset) >> b.shift) & uint64(len(b.kids)-1)
	if k := b.kids[i]; k != nil {
		return k.get(index + b.offset)
	}
	return slot[E]{}
}

func (b *block[E]) set(index uint64, s slot[E]) {
	if b.shift == 0 {
		b.slots[(index+b.offset)&uint64(len(b.slots)-1)] = s
		return
	}
	i := ((index + b.offset) >> b.shift) & uint64(len(b.kids)-1)
	b.child(i).set(index+b.offset, s)
}

// shiftRight moves [first, first+length) one position toward higher
// indices (modulo the block span) and stores inserted at first. The slot
// at first+length is overwritten.
func (b *block[E]) shiftRight(inserted slot[E], first, length uint64) {
	mask := b.mask()
	head := (first + b.offset) & mask
	tail := (first + b.offset + length) & mask
	if b.shift == 0 {
		n := tail - head
		if head > tail { // Wrapping.
			copy(b.slots[1:tail+1], b.slots[0:tail])
			b.slots[0] = b.slots[mask]
			n = mask - head
		}
		copy(b.slots[head+1:head+1+n], b.slots[head:head+n])
		b.slots[head] = inserted
	} else if head <= tail && head>>b.shift == tail>>b.shift {
		b.child(head >> b.shift).shiftRight(inserted, head, length) // No wrapping.
	} else {
		width := uint64(len(b.kids))
		high := tail >> b.shift
		low := width - 1
		if high != 0 {
			low = high - 1
		}
		b.child(high).shiftRight(b.peek(low, emptyResult), 0, tail)
		for low != head>>b.shift {
			high = low
			low = width - 1
			if high != 0 {
				low = high - 1
			}
			k := b.child(high)
			k.offset-- // Full shift right.
			k.set(0, b.peek(low, emptyResult))
		}
		b.child(low).shiftRight(inserted, head, mask-head)
	}
}

// shiftLeft moves (last-length, last] one position toward lower indices
// (modulo the block span) and stores inserted at last. The slot at
// last-length is overwritten.
func (b *block[E]) shiftLeft(inserted slot[E], last, length uint64) {
	mask := b.mask()
	tail := (last + b.offset) & mask
	head := (last + b.offset - length) & mask
	if b.shift == 0 {
		n := tail - head
		if head > tail { // Wrapping.
			copy(b.slots[head:head+(mask-head)], b.slots[head+1:mask+1])
			b.slots[mask] = b.slots[0]
			n = tail
		}
		copy(b.slots[tail-n:tail], b.slots[tail-n+1:tail+1])
		b.slots[tail] = inserted
	} else if head <= tail && head>>b.shift == tail>>b.shift {
		b.child(head >> b.shift).shiftLeft(inserted, tail, length) // No wrapping.
	} else {
		width := uint64(len(b.kids))
		low := head >> b.shift
		high := uint64(0)
		if low != width-1 {
			high = low + 1
		}
		b.child(low).shiftLeft(b.peek(high, 0), emptyResult, mask-head)
		for high != tail>>b.shift {
			low = high
			high = 0
			if low != width-1 {
				high = low + 1
			}
			k := b.child(low)
			k.offset++ // Full shift left.
			k.set(emptyResult, b.peek(high, 0))
		}
		b.child(high).shiftLeft(inserted, tail, tail)
	}
}

// upsize returns a structure of the next capacity holding the same
// elements: a widened root, or a new outer level once the root is full.
func (b *block[E]) upsize() *block[E] {
	if b.width() >= blockMax { // Creates an outer level.
		outer := newInner[E](b.shift+blockShift, 2)
		b.copyTo(outer.child(0))
		return outer
	}
	var wider *block[E]
	if b.shift == 0 {
		wider = newLeaf[E](b.width() << 1)
	} else {
		wider = newInner[E](b.shift, b.width()<<1)
	}
	b.copyTo(wider)
	return wider
}

func (b *block[E]) copyTo(dst *block[E]) {
	n := b.width()
	if w := dst.width(); w < n {
		n = w
	}
	b.offset &= b.mask()
	o := int(b.offset >> b.shift)
	if o+n > b.width() { // Wrapping.
		w := o + n - b.width()
		n -= w
		if b.shift == 0 {
			copy(dst.slots[n:n+w], b.slots[0:w])
		} else {
			copy(dst.kids[n:n+w], b.kids[0:w])
		}
	}
	if b.shift == 0 {
		copy(dst.slots[0:n], b.slots[o:o+n])
	} else {
		copy(dst.kids[0:n], b.kids[o:o+n])
	}
	dst.offset = b.offset - uint64(o)<<b.shift
}

// next returns the lowest occupied index >= from within the block span.
func (b *block[E]) next(from uint64) (uint64, E, bool) {
	mask := b.mask()
	if b.shift == 0 {
		for j := from; j <= mask; j++ {
			if s := b.slots[(j+b.offset)&mask]; s.ok {
				return j, s.v, true
			}
		}
	} else {
		childSpan := uint64(1) << b.shift
		for j := from; j <= mask; {
			i := ((j + b.offset) >> b.shift) & uint64(len(b.kids)-1)
			local := (j + b.offset) & (childSpan - 1)
			if k := b.kids[i]; k != nil {
				if jl, e, ok := k.next(local); ok {
					return j + (jl - local), e, true
				}
			}
			step := childSpan - local
			if j > mask-step {
				break
			}
			j += step
		}
	}
	var zero E
	return 0, zero, false
}

// prev returns the highest occupied index <= from within the block span.
func (b *block[E]) prev(from uint64) (uint64, E, bool) {
	if b.shift == 0 {
		mask := b.mask()
		for j := from; ; j-- {
			if s := b.slots[(j+b.offset)&mask]; s.ok {
				return j, s.v, true
			}
			if j == 0 {
				break
			}
		}
	} else {
		childSpan := uint64(1) << b.shift
		for j := from; ; {
			i := ((j + b.offset) >> b.shift) & uint64(len(b.kids)-1)
			local := (j + b.offset) & (childSpan - 1)
			if k := b.kids[i]; k != nil {
				if jl, e, ok := k.prev(local); ok && jl+j >= local {
					return j - (local - jl), e, true
				}
			}
			if j <= local {
				break
			}
			j -= local + 1
		}
	}
	var zero E
	return 0, zero, false
}

// capacity reports one child block less than the physical span so that the
// head and the tail of a rotated structure never share a block.
func (a *Array[E]) capacity() uint64 {
	if a.root == nil {
		return 0
	}
	return uint64(a.root.width()-1) << a.root.shift
}

func (a *Array[E]) checkMutable() {
	if a.frozen {
		panic(ErrUnsupportedMutation)
	}
}

// reach grows the structure until index fits, unsharing the root.
func (a *Array[E]) reach(index uint64) {
	if a.root == nil {
		a.root = newLeaf[E](leafMin)
	}
	a.root = a.root.mutable()
	for a.capacity() <= index {
		a.root = a.root.upsize()
	}
}

// Get returns the element at index and whether the slot is occupied. O(1).
func (a *Array[E]) Get(index uint64) (E, bool) {
	if a.root == nil || index >= a.capacity() {
		var zero E
		return zero, false
	}
	s := a.root.get(index)
	return s.v, s.ok
}

// Set stores e at index and returns the receiver.
func (a *Array[E]) Set(index uint64, e E) *Array[E] {
	a.checkMutable()
	a.reach(index)
	if prev := a.root.get(index); !prev.ok {
		a.count++
	}
	a.root.set(index, slot[E]{v: e, ok: true})
	return a
}

// Clear empties the slot at index and returns the receiver.
func (a *Array[E]) Clear(index uint64) *Array[E] {
	a.checkMutable()
	if a.root == nil || index >= a.capacity() {
		return a
	}
	a.root = a.root.mutable()
	if prev := a.root.get(index); prev.ok {
		a.count--
		a.root.set(index, slot[E]{})
	}
	return a
}

// Shift moves every element strictly between from and to one position
// toward to, discards the element at to and stores (e, present) at from.
// from <= to shifts toward higher indices, from > to toward lower ones.
func (a *Array[E]) Shift(from, to uint64, e E, present bool) *Array[E] {
	a.checkMutable()
	far := from
	if to > far {
		far = to
	}
	if a.root == nil && !present {
		return a
	}
	a.reach(far)
	if discarded := a.root.get(to); discarded.ok {
		a.count--
	}
	if present {
		a.count++
	}
	ins := slot[E]{v: e, ok: present}
	if from <= to {
		a.root.shiftRight(ins, from, to-from)
	} else {
		a.root.shiftLeft(ins, from, from-to)
	}
	return a
}

// Insert stores e at index after shifting [index, Last()] one position up.
// Insertions in the lower half rotate the root offset instead of moving
// the lower elements, making head insertion O(1).
func (a *Array[E]) Insert(index uint64, e E) *Array[E] {
	a.checkMutable()
	size := a.extent()
	if index > size {
		size = index
	}
	a.reach(size) // One past the new last element.
	a.count++
	ins := slot[E]{v: e, ok: true}
	if index >= size>>1 {
		a.root.shiftRight(ins, index, size-index)
	} else {
		a.root.shiftLeft(ins, index-1, index)
		a.root.offset--
	}
	return a
}

// Delete removes the element at index, shifting (index, Last()] one
// position down. Deletions in the lower half rotate the root offset.
func (a *Array[E]) Delete(index uint64) *Array[E] {
	a.checkMutable()
	size := a.extent()
	if index >= size {
		return a
	}
	a.root = a.root.mutable()
	if removed := a.root.get(index); removed.ok {
		a.count--
	}
	if index >= size>>1 {
		a.root.shiftLeft(slot[E]{}, size-1, size-1-index)
	} else {
		a.root.shiftRight(slot[E]{}, 0, index)
		a.root.offset++
	}
	return a
}

// extent is one past the highest occupied index, zero when empty.
func (a *Array[E]) extent() uint64 {
	if last, ok := a.Last(); ok {
		return last + 1
	}
	return 0
}

// Ceiling returns the lowest occupied index in [from, to] whose element
// matches p, scanning upward and skipping unallocated regions. A nil
// predicate matches everything.
func (a *Array[E]) Ceiling(from, to uint64, p func(uint64, E) bool) (uint64, bool) {
	if a.root == nil || from > to {
		return 0, false
	}
	limit := to
	if c := a.capacity(); limit >= c {
		limit = c - 1
	}
	for i := from; i <= limit; {
		j, e, ok := a.root.next(i)
		if !ok || j > limit {
			return 0, false
		}
		if p == nil || p(j, e) {
			return j, true
		}
		if j == limit {
			return 0, false
		}
		i = j + 1
	}
	return 0, false
}

// Floor returns the highest occupied index in [to, from] whose element
// matches p, scanning downward. A nil predicate matches everything.
func (a *Array[E]) Floor(from, to uint64, p func(uint64, E) bool) (uint64, bool) {
	if a.root == nil || from < to {
		return 0, false
	}
	start := from
	if c := a.capacity(); start >= c {
		start = c - 1
	}
	for i := start; ; {
		j, e, ok := a.root.prev(i)
		if !ok || j < to {
			return 0, false
		}
		if p == nil || p(j, e) {
			return j, true
		}
		if j == to || j == 0 {
			return 0, false
		}
		i = j - 1
	}
}

// IsEmpty reports whether no slot is occupied.
func (a *Array[E]) IsEmpty() bool { return a.count == 0 }

// Count returns the number of occupied slots.
func (a *Array[E]) Count() uint64 { return a.count }

// Last returns the highest occupied index.
func (a *Array[E]) Last() (uint64, bool) {
	if a.count == 0 {
		return 0, false
	}
	j, _, ok := a.root.prev(a.capacity() - 1)
	return j, ok
}

// Clone returns an O(1) mutable snapshot sharing structure with the
// receiver; either side copies shared blocks lazily on its first
// mutation. Cloning a frozen array yields a mutable copy.
func (a *Array[E]) Clone() *Array[E] {
	if a.root != nil {
		a.root.shared = true
	}
	return &Array[E]{root: a.root, count: a.count}
}

// Freeze makes the array permanently immutable and returns it. Further
// mutator calls panic with ErrUnsupportedMutation.
func (a *Array[E]) Freeze() *Array[E] {
	a.frozen = true
	if a.root != nil {
		a.root.shared = true
	}
	return a
}

// Frozen reports whether the array has been frozen.
func (a *Array[E]) Frozen() bool { return a.frozen }
