/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for LSP/MCP integrations.
package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu sync.RWMutex

	// Default logs to stderr. Set to io.Discard for silent mode (LSP, MCP).
	output  io.Writer = os.Stderr
	logger            = log.New(output, "", 0)
	verbose bool
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = log.New(output, "", 0)
}

// SetVerbose enables Debug messages.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Verbose reports whether Debug messages are written.
func Verbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

func current() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Printf(format, args...)
}

// Debug logs a debug message when verbose output is enabled.
func Debug(format string, args ...any) {
	if !Verbose() {
		return
	}
	current().Printf("debug: "+format, args...)
}
