// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package logx holds the process-wide logger shared by the generator packages.
package logx

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once   sync.Once
	logger *log.Logger
)

// Logger returns the shared logger, creating it on first use.
// It writes to stderr at warn level until SetLevel is called.
func Logger() *log.Logger {
	once.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "matgen",
			Level:           log.WarnLevel,
		})
	})
	return logger
}

// SetLevel changes the level of the shared logger.
func SetLevel(level log.Level) {
	Logger().SetLevel(level)
}

// With returns a sub-logger tagged with the given component name.
// The sub-logger copies the current level, so callers fetch it where they log.
func With(component string) *log.Logger {
	return Logger().With("component", component)
}
