// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package concurrent

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorRunsAllTasks(t *testing.T) {
	e := NewExecutor(4)
	assert.Equal(t, 4, e.Concurrency())

	var ran atomic.Int32
	tasks := make([]func(), 16)
	for i := range tasks {
		tasks[i] = func() { ran.Add(1) }
	}
	require.NoError(t, e.Invoke(tasks...))
	assert.Equal(t, int32(16), ran.Load())
}

func TestExecutorEmptyAndSingle(t *testing.T) {
	e := NewExecutor(2)
	require.NoError(t, e.Invoke())

	ran := false
	require.NoError(t, e.Invoke(func() { ran = true }))
	assert.True(t, ran)
}

func TestExecutorCapturesPanic(t *testing.T) {
	e := NewExecutor(2)

	var ran atomic.Int32
	err := e.Invoke(
		func() { ran.Add(1) },
		func() { panic("boom") },
		func() { ran.Add(1) },
	)
	require.Error(t, err)
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "boom", f.Value)
	assert.NotEmpty(t, f.Stack)
	assert.Contains(t, err.Error(), "boom")

	// The remaining tasks still ran; there is no cancellation.
	assert.Equal(t, int32(2), ran.Load())
}

func TestExecutorMinimumConcurrency(t *testing.T) {
	e := NewExecutor(0)
	assert.Equal(t, 1, e.Concurrency())

	d := DefaultExecutor()
	assert.GreaterOrEqual(t, d.Concurrency(), 1)
}
