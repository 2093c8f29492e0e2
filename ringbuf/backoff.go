package ringbuf

import (
	"runtime"
	"time"
)

const (
	// backoffCap bounds the exponential yield phase; beyond it the
	// producer falls back to fixed sleeps.
	backoffCap = 4
	// backoffSleep is the fixed sleep once yielding is exhausted.
	backoffSleep = 100 * time.Nanosecond
)

// Backoff implements the full-queue wait discipline for producers:
// on attempt k it yields the scheduler 2^k times for k = 0..3, then
// sleeps a fixed 100ns per further attempt. The zero value is ready to
// use.
type Backoff struct {
	attempt int
}

// Wait blocks the caller for the current attempt's duration and
// advances the attempt counter.
func (b *Backoff) Wait() {
	if b.attempt < backoffCap {
		for i := 0; i < 1<<b.attempt; i++ {
			runtime.Gosched()
		}
		b.attempt++
		return
	}
	time.Sleep(backoffSleep)
}

// Reset rewinds the discipline to the first attempt. Call it after a
// successful enqueue so the next full-queue episode starts cheap.
func (b *Backoff) Reset() {
	b.attempt = 0
}
