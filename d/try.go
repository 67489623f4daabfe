// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package d

import "github.com/pkg/errors"

type wrappedError struct {
	err error
}

func (we wrappedError) Error() string {
	return we.err.Error()
}

func (we wrappedError) Unwrap() error {
	return we.err
}

// Try runs f, recovering panics raised through Exp or PanicIfError into the
// returned error. Panics from other sources are not caught.
func Try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			we, ok := r.(wrappedError)
			if !ok {
				panic(r)
			}
			err = we.err
		}
	}()
	f()
	return
}

// Unwrap returns the root cause of err.
func Unwrap(err error) error {
	return errors.Cause(err)
}
