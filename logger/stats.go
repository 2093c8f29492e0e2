package logger

import "sync/atomic"

// Stats tracks transport statistics. All counters are atomic; the
// zero value is ready to use.
type Stats struct {
	// Published counts records accepted by the ring.
	Published atomic.Uint64
	// Consumed counts records the worker handed to the sink.
	Consumed atomic.Uint64
	// Dropped counts records discarded under DropNewest.
	Dropped atomic.Uint64
	// Truncated counts records longer than a slot payload.
	Truncated atomic.Uint64
}

// Snapshot is a point-in-time copy of the transport statistics,
// including the queue-side observations.
type Snapshot struct {
	Published uint64
	Consumed  uint64
	Dropped   uint64
	Truncated uint64
	// QueueFull counts enqueue attempts that observed a full ring.
	QueueFull uint64
	// QueueDepth is the number of unconsumed slots at snapshot time.
	QueueDepth int
	// QueueCapacity is the slot count of the ring (0 in sync mode).
	QueueCapacity int
}

// Reset resets all counters to zero.
func (s *Stats) Reset() {
	s.Published.Store(0)
	s.Consumed.Store(0)
	s.Dropped.Store(0)
	s.Truncated.Store(0)
}
