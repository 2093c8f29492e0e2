package logger

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/avensko/ringlog/core"
	"github.com/avensko/ringlog/ringbuf"
	"github.com/avensko/ringlog/sink"
)

// Logger is the logging facade. The sink is a type parameter so the
// worker's write loop dispatches statically; construct it with a
// concrete sink type, not the interface.
//
// All methods are safe for concurrent use. The direct leveled methods
// enqueue one record at a time; goroutines logging in tight loops
// should use a Producer for batched publication.
type Logger[S sink.Sink] struct {
	sink  S
	queue *ringbuf.Ring // nil in sync mode
	cfg   Config
	stats Stats

	// wake carries at most one pending signal to the worker. Together
	// with the worker's timed wait it plays the role of a condition
	// variable: a lost signal costs at most one WakeInterval.
	wake    chan struct{}
	running atomic.Bool
	wg      sync.WaitGroup

	// mu serializes every sink write (the callers' in sync mode, the
	// worker's in async mode) with the sink flush.
	mu sync.Mutex

	closeOnce sync.Once

	scratch sync.Pool // *[]byte render buffers for the direct path
}

// New creates a logger over the given sink. The sink is owned by the
// logger from this point on: in async mode only the worker writes to
// it, in sync mode only logging callers do, and Flush and Close flush
// it under the same mutex that serializes those writes.
func New[S sink.Sink](s S, cfg Config) (*Logger[S], error) {
	applyDefaults(&cfg)

	l := &Logger[S]{
		sink: s,
		cfg:  cfg,
		wake: make(chan struct{}, 1),
	}
	l.scratch.New = func() interface{} {
		b := make([]byte, 0, core.SlotSize)
		return &b
	}

	if cfg.CoarseClock {
		core.StartCoarseClock()
	}

	if !cfg.Sync {
		q, err := ringbuf.New(cfg.QueueCapacity)
		if err != nil {
			return nil, err
		}
		l.queue = q
		l.running.Store(true)
		l.wg.Add(1)
		go l.worker()
	}

	return l, nil
}

// now returns the record timestamp from the configured clock source.
func (l *Logger[S]) now() int64 {
	if l.cfg.CoarseClock {
		return core.CoarseNow()
	}
	return core.Now()
}

// Logf logs a message at the specified level
func (l *Logger[S]) Logf(level core.Level, format string, args ...any) {
	// Level check before any rendering work
	if level < l.cfg.MinLevel {
		return
	}
	l.logf(level, format, args)
}

// logf renders the record into a pooled scratch buffer and emits it.
func (l *Logger[S]) logf(level core.Level, format string, args []any) {
	bp := l.scratch.Get().(*[]byte)
	rec := core.AppendRecord((*bp)[:0], l.now(), level, format, args...)
	*bp = rec

	if len(rec) > core.MaxPayload {
		l.stats.Truncated.Add(1)
		rec = rec[:core.MaxPayload]
	}

	if l.queue == nil {
		l.mu.Lock()
		l.sink.Write(rec)
		l.mu.Unlock()
	} else {
		l.enqueue(rec)
	}

	l.scratch.Put(bp)
}

// enqueue publishes one record into the ring, applying the drop policy
// and the backoff discipline on a full queue, then wakes the worker.
func (l *Logger[S]) enqueue(rec []byte) {
	if !l.queue.TryEnqueue(rec) {
		if l.cfg.DropPolicy == DropNewest {
			l.stats.Dropped.Add(1)
			return
		}
		var bo ringbuf.Backoff
		for {
			bo.Wait()
			if l.queue.TryEnqueue(rec) {
				break
			}
		}
	}
	l.stats.Published.Add(1)
	l.signal()
}

// signal posts a non-blocking wake to the worker.
func (l *Logger[S]) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// worker drains the ring into the sink until shutdown, then performs
// the final drain so that every accepted record reaches the sink.
func (l *Logger[S]) worker() {
	defer l.wg.Done()

	var slot [core.MaxPayload]byte
	timer := newStoppedTimer()
	defer timer.Stop()

	for l.running.Load() {
		if n, ok := l.queue.TryDequeue(slot[:]); ok {
			l.mu.Lock()
			l.sink.Write(slot[:n])
			l.mu.Unlock()
			l.stats.Consumed.Add(1)
			continue
		}
		// Empty: sleep until a producer signals, or until the wake
		// interval elapses. The timeout covers lost signals and
		// bounds worst-case sink latency under a trickle workload.
		timer.Reset(l.cfg.WakeInterval)
		select {
		case <-l.wake:
			drainTimer(timer)
		case <-timer.C:
		}
	}

	// Final drain: deliver everything published before (or racing
	// with) shutdown.
	for {
		n, ok := l.queue.TryDequeue(slot[:])
		if !ok {
			return
		}
		l.mu.Lock()
		l.sink.Write(slot[:n])
		l.mu.Unlock()
		l.stats.Consumed.Add(1)
	}
}

// Producer returns a batched logging handle owned by the calling
// goroutine. The handle stages records locally and publishes them in
// bulk; it must not be shared, and Close (or Flush) must be called
// before the goroutine abandons it, or staged records are lost.
func (l *Logger[S]) Producer() *Producer[S] {
	return &Producer[S]{
		l:       l,
		scratch: make([]byte, 0, core.SlotSize),
	}
}

// Flush waits until every record that was in the queue at the moment
// of the call has been handed to the sink, then flushes the sink. It
// does not flush Producer batches; that is the owning goroutine's job.
// Flush may be called in any state before Close.
func (l *Logger[S]) Flush() {
	if l.queue != nil {
		// The ring empties before the worker writes the last dequeued
		// record, so also wait for the consumed count to catch up.
		target := l.stats.Published.Load()
		for !l.queue.Empty() || l.stats.Consumed.Load() < target {
			l.signal()
			runtime.Gosched()
		}
	}
	l.mu.Lock()
	l.sink.Flush()
	l.mu.Unlock()
}

// Close shuts the logger down: it stops the worker, waits for the
// final drain, and flushes the sink. Records enqueued after the final
// drain has finished are not delivered; callers must quiesce their
// producers first. Close is idempotent.
func (l *Logger[S]) Close() {
	l.closeOnce.Do(func() {
		if l.queue != nil {
			l.running.Store(false)
			l.signal()
			l.wg.Wait()
		}
		l.mu.Lock()
		l.sink.Flush()
		l.mu.Unlock()
	})
}

// Stats returns a snapshot of the transport statistics.
func (l *Logger[S]) Stats() Snapshot {
	snap := Snapshot{
		Published: l.stats.Published.Load(),
		Consumed:  l.stats.Consumed.Load(),
		Dropped:   l.stats.Dropped.Load(),
		Truncated: l.stats.Truncated.Load(),
	}
	if l.queue != nil {
		snap.QueueFull = l.queue.FullCount()
		snap.QueueDepth = l.queue.Size()
		snap.QueueCapacity = l.queue.Capacity()
	}
	return snap
}

// MinLevel returns the logger's level floor.
func (l *Logger[S]) MinLevel() core.Level {
	return l.cfg.MinLevel
}

// Tracef logs a trace message
func (l *Logger[S]) Tracef(format string, args ...any) {
	if core.TraceLevel < l.cfg.MinLevel {
		return
	}
	l.logf(core.TraceLevel, format, args)
}

// Debugf logs a debug message
func (l *Logger[S]) Debugf(format string, args ...any) {
	if core.DebugLevel < l.cfg.MinLevel {
		return
	}
	l.logf(core.DebugLevel, format, args)
}

// Infof logs an info message
func (l *Logger[S]) Infof(format string, args ...any) {
	if core.InfoLevel < l.cfg.MinLevel {
		return
	}
	l.logf(core.InfoLevel, format, args)
}

// Warnf logs a warning message
func (l *Logger[S]) Warnf(format string, args ...any) {
	if core.WarnLevel < l.cfg.MinLevel {
		return
	}
	l.logf(core.WarnLevel, format, args)
}

// Errorf logs an error message
func (l *Logger[S]) Errorf(format string, args ...any) {
	if core.ErrorLevel < l.cfg.MinLevel {
		return
	}
	l.logf(core.ErrorLevel, format, args)
}

// Criticalf logs a critical message
func (l *Logger[S]) Criticalf(format string, args ...any) {
	l.logf(core.CriticalLevel, format, args)
}
