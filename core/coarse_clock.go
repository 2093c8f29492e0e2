package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Int64
)

// StartCoarseClock starts the background goroutine that caches the
// monotonic timestamp every 500µs. It is safe to call multiple times;
// the goroutine is started exactly once. The goroutine runs for the
// lifetime of the process; this is intentional because logging
// typically spans the entire application lifecycle.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		coarseNow.Store(Now())
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				coarseNow.Store(Now())
			}
		}()
	})
}

// CoarseNow returns the most recently cached monotonic timestamp.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() int64 {
	return coarseNow.Load()
}
