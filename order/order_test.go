// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package order

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkConsistent asserts the Order contract on a sample: AreEqual implies
// Compare == 0 and equal indices, and Compare < 0 implies IndexOf <=
// (unsigned).
func checkConsistent[T any](t *testing.T, o Order[T], sample []T) {
	t.Helper()
	for _, a := range sample {
		for _, b := range sample {
			if o.AreEqual(a, b) {
				require.Zero(t, o.Compare(a, b), "%v / %v", a, b)
				require.Equal(t, o.IndexOf(a), o.IndexOf(b), "%v / %v", a, b)
			}
			if o.Compare(a, b) < 0 {
				require.LessOrEqual(t, o.IndexOf(a), o.IndexOf(b), "%v / %v", a, b)
			}
		}
	}
}

func TestIntOrder(t *testing.T) {
	o := Int[int]()
	sample := []int{math.MinInt64, -1000, -1, 0, 1, 42, 1000, math.MaxInt64}
	checkConsistent(t, o, sample)

	assert.Negative(t, o.Compare(-5, 3))
	assert.Positive(t, o.Compare(3, -5))
	assert.Zero(t, o.Compare(7, 7))
	assert.Less(t, o.IndexOf(-5), o.IndexOf(3))
	assert.Less(t, o.IndexOf(math.MinInt64), o.IndexOf(0))
}

func TestUintOrder(t *testing.T) {
	o := Uint[uint64]()
	checkConsistent(t, o, []uint64{0, 1, 1 << 32, ^uint64(0)})
	assert.Equal(t, uint64(7), o.IndexOf(7))
}

func TestFloat64Order(t *testing.T) {
	o := Float64()
	sample := []float64{math.Inf(-1), -1e300, -1.5, -0.0, 0.0, 1.5, 1e300, math.Inf(1)}
	checkConsistent(t, o, sample)

	assert.Less(t, o.IndexOf(-1.5), o.IndexOf(-0.5))
	assert.Less(t, o.IndexOf(-0.5), o.IndexOf(0.5))
	assert.Less(t, o.IndexOf(math.Inf(1)), o.IndexOf(math.NaN()), "NaN sorts after +Inf")

	// -0 and +0 are equal and must share a placement index.
	assert.True(t, o.AreEqual(math.Copysign(0, -1), 0))
	assert.Equal(t, o.IndexOf(math.Copysign(0, -1)), o.IndexOf(0))
}

func TestLexicalOrder(t *testing.T) {
	o := Lexical()
	sample := []string{"", "a", "aa", "ab", "b", "longer than eight bytes", "z"}
	checkConsistent(t, o, sample)

	// Strings sharing an eight-byte prefix collide on the index and are
	// resolved by Compare.
	a, b := "prefix--x", "prefix--y"
	assert.Equal(t, o.IndexOf(a), o.IndexOf(b))
	assert.Negative(t, o.Compare(a, b))
}

func TestBytesOrder(t *testing.T) {
	o := Bytes()
	a, b := []byte{1, 2}, []byte{1, 2, 3}
	assert.Negative(t, o.Compare(a, b))
	assert.True(t, o.AreEqual([]byte("x"), []byte("x")))
	assert.LessOrEqual(t, o.IndexOf(a), o.IndexOf(b))
}

func TestHashStringOrder(t *testing.T) {
	o := HashString()
	rng := rand.New(rand.NewSource(3))
	sample := make([]string, 64)
	for i := range sample {
		buf := make([]byte, rng.Intn(12))
		rng.Read(buf)
		sample[i] = string(buf)
	}
	checkConsistent(t, o, sample)
	assert.True(t, o.AreEqual("abc", "abc"))
	assert.False(t, o.AreEqual("abc", "abd"))
}

func TestHashOrder(t *testing.T) {
	type point struct{ x, y int8 }
	o := Hash(func(p point) []byte { return []byte{byte(p.x), byte(p.y)} })
	a, b := point{1, 2}, point{2, 1}
	assert.True(t, o.AreEqual(a, a))
	assert.False(t, o.AreEqual(a, b))
	assert.Zero(t, o.Compare(a, a))
	if o.Compare(a, b) < 0 {
		assert.LessOrEqual(t, o.IndexOf(a), o.IndexOf(b))
	} else {
		assert.GreaterOrEqual(t, o.IndexOf(a), o.IndexOf(b))
	}
}

func TestByIndexer(t *testing.T) {
	// Order words by length only; distinct words of the same length tie on
	// Compare but stay distinct under AreEqual.
	o := ByIndexer(func(s string) uint64 { return uint64(len(s)) })
	assert.Zero(t, o.Compare("abc", "xyz"))
	assert.False(t, o.AreEqual("abc", "xyz"))
	assert.True(t, o.AreEqual("abc", "abc"))
	assert.Negative(t, o.Compare("ab", "abc"))
}

func TestNewWithEquality(t *testing.T) {
	// Case-insensitive compare with case-sensitive equality.
	o := NewWithEquality(
		func(a, b string) int {
			la, lb := len(a), len(b)
			switch {
			case la == lb:
				return 0
			case la < lb:
				return -1
			default:
				return 1
			}
		},
		func(s string) uint64 { return uint64(len(s)) },
		func(a, b string) bool { return a == b },
	)
	assert.Zero(t, o.Compare("ab", "cd"))
	assert.False(t, o.AreEqual("ab", "cd"))
}

func TestStandardEquality(t *testing.T) {
	eq := Standard[int]()
	assert.True(t, eq.AreEqual(3, 3))
	assert.False(t, eq.AreEqual(3, 4))
}

func TestAnyEquality(t *testing.T) {
	eq := Any[string]()
	assert.True(t, eq.AreEqual("a", "a"))
	assert.False(t, eq.AreEqual("a", "b"))
}
