// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package fractal

import "github.com/pkg/errors"

// ErrUnsupportedMutation is the panic value raised when a mutator is called
// on a frozen array.
var ErrUnsupportedMutation = errors.New("fractal: mutation of frozen array")
