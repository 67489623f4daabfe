// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fast

import (
	"github.com/pkg/errors"

	"github.com/javolution/javolution-go/fractal"
)

var (
	// ErrIndexOutOfRange is the panic value raised by positional accesses
	// outside [0, size).
	ErrIndexOutOfRange = errors.New("fast: index out of range")

	// ErrReadOnly is the panic value raised by mutators of read-only views
	// and frozen collections.
	ErrReadOnly = errors.New("fast: read-only collection")

	// ErrOutsideRange is the panic value raised when an element added
	// through a range view falls outside the view's range.
	ErrOutsideRange = errors.New("fast: element outside view range")

	// ErrUnsupportedMutation is raised by the engine when frozen state is
	// mutated through a stale reference.
	ErrUnsupportedMutation = fractal.ErrUnsupportedMutation
)
