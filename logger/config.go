package logger

import (
	"time"

	"github.com/avensko/ringlog/core"
)

// DropPolicy defines how a log call behaves when the ring is full.
type DropPolicy int

const (
	// Wait retries the enqueue under the backoff discipline until the
	// ring accepts the record. No record is ever dropped.
	Wait DropPolicy = iota
	// DropNewest discards the record that found the ring full.
	DropNewest
)

// String returns the string representation of the policy
func (p DropPolicy) String() string {
	switch p {
	case Wait:
		return "Wait"
	case DropNewest:
		return "DropNewest"
	default:
		return "Unknown"
	}
}

// Config holds logger configuration
type Config struct {
	// Sync disables the worker and the queue; records are written to
	// the sink on the calling goroutine (default: false = async).
	Sync bool
	// MinLevel is the record filter floor (default: TraceLevel).
	MinLevel core.Level
	// QueueCapacity is the slot count of the ring buffer; it must be
	// a power of two (default: 65536).
	QueueCapacity int
	// WakeInterval bounds how long the worker sleeps between wake
	// signals. It caps sink latency under a trickle workload where a
	// wake signal may be missed (default: 100µs).
	WakeInterval time.Duration
	// DropPolicy selects the full-queue behavior (default: Wait).
	DropPolicy DropPolicy
	// CoarseClock timestamps records from a 500µs-resolution cached
	// clock instead of reading the clock on every call.
	CoarseClock bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = core.DefaultQueueCapacity
	}
	if cfg.WakeInterval <= 0 {
		cfg.WakeInterval = 100 * time.Microsecond
	}
}
