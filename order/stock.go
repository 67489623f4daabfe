// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package order

import (
	"bytes"
	"math"
	"strings"
)

// Signed is the constraint for the built-in signed integer orders.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for the built-in unsigned integer orders.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int returns the natural order for signed integers. The placement index is
// the value biased so that the unsigned index order matches the signed order.
func Int[T Signed]() Order[T] {
	return intOrder[T]{}
}

type intOrder[T Signed] struct{}

func (intOrder[T]) Compare(a, b T) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

func (intOrder[T]) IndexOf(v T) uint64   { return uint64(int64(v)) ^ (1 << 63) }
func (intOrder[T]) AreEqual(a, b T) bool { return a == b }

// Uint returns the natural order for unsigned integers.
func Uint[T Unsigned]() Order[T] {
	return uintOrder[T]{}
}

type uintOrder[T Unsigned] struct{}

func (uintOrder[T]) Compare(a, b T) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

func (uintOrder[T]) IndexOf(v T) uint64   { return uint64(v) }
func (uintOrder[T]) AreEqual(a, b T) bool { return a == b }

// Float64 returns the natural order for float64 values. NaN sorts after
// +Inf; -0 and +0 share the same placement index but remain equal.
func Float64() Order[float64] {
	return float64Order{}
}

type float64Order struct{}

func (float64Order) Compare(a, b float64) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

func (float64Order) IndexOf(v float64) uint64 {
	bits := math.Float64bits(v)
	if bits&(1<<63) != 0 {
		return ^bits // Negative: flip all bits.
	}
	return bits | (1 << 63) // Positive: flip the sign bit.
}

func (float64Order) AreEqual(a, b float64) bool { return a == b }

// Lexical returns the lexical order for strings. The placement index is
// derived from the first eight bytes, big-endian, so index order follows
// lexical order; longer shared prefixes collide and are resolved by Compare.
func Lexical() Order[string] {
	return lexicalOrder{}
}

type lexicalOrder struct{}

func (lexicalOrder) Compare(a, b string) int { return strings.Compare(a, b) }

func (lexicalOrder) IndexOf(v string) uint64 {
	var index uint64
	for i := 0; i < 8; i++ {
		index <<= 8
		if i < len(v) {
			index |= uint64(v[i])
		}
	}
	return index
}

func (lexicalOrder) AreEqual(a, b string) bool { return a == b }

// Bytes returns the lexical order for byte slices.
func Bytes() Order[[]byte] {
	return bytesOrder{}
}

type bytesOrder struct{}

func (bytesOrder) Compare(a, b []byte) int { return bytes.Compare(a, b) }

func (bytesOrder) IndexOf(v []byte) uint64 {
	var index uint64
	for i := 0; i < 8; i++ {
		index <<= 8
		if i < len(v) {
			index |= uint64(v[i])
		}
	}
	return index
}

func (bytesOrder) AreEqual(a, b []byte) bool { return bytes.Equal(a, b) }
