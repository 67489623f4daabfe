// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package d

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryCatchesExp(t *testing.T) {
	err := Try(func() {
		Exp.True(false, "expected failure: %d", 42)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected failure: 42")
}

func TestTryCatchesPanicIfError(t *testing.T) {
	cause := errors.New("root cause")
	err := Try(func() {
		PanicIfError(errors.Wrap(cause, "context"))
	})
	require.Error(t, err)
	assert.Equal(t, cause, Unwrap(err))
}

func TestTryPassesThroughOtherPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = Try(func() { panic("not wrapped") })
	})
	assert.Panics(t, func() {
		_ = Try(func() { Chk.True(false, "chk is not recoverable") })
	})
}

func TestTryNoError(t *testing.T) {
	assert.NoError(t, Try(func() {}))
}

func TestPanicHelpers(t *testing.T) {
	assert.NotPanics(t, func() { PanicIfFalse(true, "fine") })
	assert.Panics(t, func() { PanicIfFalse(false, "value %d", 7) })
	assert.NotPanics(t, func() { PanicIfTrue(false, "fine") })
	assert.Panics(t, func() { PanicIfTrue(true, "bad") })
	assert.NotPanics(t, func() { PanicIfError(nil) })
}
