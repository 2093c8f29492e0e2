package logger

import (
	"sync"

	"github.com/avensko/ringlog/core"
	"github.com/avensko/ringlog/sink"
)

var (
	defaultLogger *Logger[*sink.Stdout]
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger: async to stdout at InfoLevel.
	defaultLogger, _ = New(sink.NewStdout(), Config{
		MinLevel: core.InfoLevel,
	})
}

// Default returns the default logger
func Default() *Logger[*sink.Stdout] {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger[*sink.Stdout]) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	Default().Tracef(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	Default().Errorf(format, args...)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...any) {
	Default().Criticalf(format, args...)
}

// Flush flushes the default logger's queue and sink
func Flush() {
	Default().Flush()
}
