// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package d

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

var (
	// Chk panics if an assertion fails. It is used for internal invariants
	// which indicate a programming error, never for user input.
	Chk = assert.New(&panicker{})
	// Exp provides the same API as Chk, but the resulting panics can be
	// caught by Try().
	Exp = assert.New(&recoverablePanicker{})
)

type panicker struct {
}

func (s panicker) Errorf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

type recoverablePanicker struct {
}

func (s recoverablePanicker) Errorf(format string, args ...interface{}) {
	panic(wrappedError{fmt.Errorf(format, args...)})
}

// PanicIfFalse panics with the formatted message unless b is true.
func PanicIfFalse(b bool, format string, args ...interface{}) {
	if !b {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfTrue panics with the formatted message if b is true.
func PanicIfTrue(b bool, format string, args ...interface{}) {
	if b {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfError panics with err if err is not nil.
func PanicIfError(err error) {
	if err != nil {
		panic(wrappedError{err})
	}
}
