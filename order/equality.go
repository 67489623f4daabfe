// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package order

// Standard returns the default equality for comparable types (==).
func Standard[T comparable]() Equality[T] {
	return funcEquality[T]{eq: func(a, b T) bool { return a == b }}
}

// Any returns an equality comparing values through their dynamic types,
// the way interface comparison does. It panics at runtime when both
// operands have the same non-comparable dynamic type.
func Any[T any]() Equality[T] {
	return funcEquality[T]{eq: func(a, b T) bool { return any(a) == any(b) }}
}

// EqualityFunc adapts a plain function to an Equality.
func EqualityFunc[T any](eq func(a, b T) bool) Equality[T] {
	return funcEquality[T]{eq: eq}
}

type funcEquality[T any] struct {
	eq func(a, b T) bool
}

func (e funcEquality[T]) AreEqual(a, b T) bool { return e.eq(a, b) }
