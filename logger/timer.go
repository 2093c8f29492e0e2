package logger

import "time"

// newStoppedTimer returns a timer that is stopped and drained, ready
// for Reset. Reusing one timer across worker sleeps avoids a timer
// allocation per empty-queue episode.
func newStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}

// drainTimer makes a fired-or-stopped timer safe to Reset again.
func drainTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
