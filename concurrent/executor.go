// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package concurrent provides the task execution collaborator used by the
// parallel collection views. Concurrency is an explicit handle passed to
// the view, never ambient state.
package concurrent

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/javolution/javolution-go/util/verbose"
)

// Executor runs batches of tasks and joins them.
type Executor interface {
	// Concurrency returns the parallelism the executor is sized for.
	Concurrency() int

	// Invoke runs the tasks, one of them on the calling goroutine, waits
	// for all of them and returns the first captured failure. Tasks keep
	// running after a failure; there is no cancellation or rollback.
	Invoke(tasks ...func()) error
}

// Failure wraps a panic captured in a task.
type Failure struct {
	Value any
	Stack []byte
}

func (f *Failure) Error() string {
	return fmt.Sprintf("concurrent: task panic: %v", f.Value)
}

// DefaultExecutor returns an executor sized to GOMAXPROCS.
func DefaultExecutor() Executor {
	return NewExecutor(runtime.GOMAXPROCS(0))
}

// NewExecutor returns an executor dispatching to at most n goroutines.
func NewExecutor(n int) Executor {
	if n < 1 {
		n = 1
	}
	return &groupExecutor{n: n}
}

type groupExecutor struct {
	n int
}

func (e *groupExecutor) Concurrency() int { return e.n }

func (e *groupExecutor) Invoke(tasks ...func()) error {
	switch len(tasks) {
	case 0:
		return nil
	case 1:
		return protect(tasks[0])()
	}
	if verbose.Verbose() {
		verbose.Logger().Debug("dispatching tasks",
			zap.Int("tasks", len(tasks)), zap.Int("concurrency", e.n))
	}
	var g errgroup.Group
	g.SetLimit(e.n)
	for _, task := range tasks[1:] {
		g.Go(protect(task))
	}
	err := protect(tasks[0])() // The caller works too.
	if joinErr := g.Wait(); err == nil {
		err = joinErr
	}
	if verbose.Verbose() {
		verbose.Logger().Debug("joined tasks", zap.Error(err))
	}
	return err
}

// protect turns a task panic into a *Failure instead of unwinding the
// worker goroutine.
func protect(task func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &Failure{Value: r, Stack: debug.Stack()}
			}
		}()
		task()
		return nil
	}
}
