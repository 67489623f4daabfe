// Copyright 2026 The javolution-go Authors. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package verbose provides opt-in debug logging. Logging is off by
// default so hot paths pay only an atomic load.
package verbose

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	logger  *zap.Logger = zap.NewNop()
	enabled bool
)

// SetVerbose turns debug logging on or off.
func SetVerbose(on bool) {
	mu.Lock()
	defer mu.Unlock()
	if on == enabled {
		return
	}
	enabled = on
	if !on {
		logger = zap.NewNop()
		return
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l
}

// Verbose reports whether debug logging is on.
func Verbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Logger returns the current logger; a nop logger when verbose is off.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
