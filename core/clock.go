package core

import "time"

// processStart anchors the monotonic clock. Timestamps are nanoseconds
// since this instant, which keeps them monotonic across wall-clock
// adjustments.
var processStart = time.Now()

// Now returns the current monotonic timestamp in nanoseconds since an
// arbitrary per-process epoch.
func Now() int64 {
	return int64(time.Since(processStart))
}
