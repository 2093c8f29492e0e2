package logger

import (
	"github.com/avensko/ringlog/core"
	"github.com/avensko/ringlog/ringbuf"
	"github.com/avensko/ringlog/sink"
)

// Producer is a batched logging handle owned by one goroutine. It
// stages up to 32 rendered records in a local batch and publishes them
// into the ring back-to-back, amortizing CAS contention on the tail
// cursor. Within a producer, records reach the sink in emission order.
//
// A Producer holds no lock and must not be shared between goroutines.
// Close it before the owning goroutine exits; records still staged in
// the batch are otherwise never published.
type Producer[S sink.Sink] struct {
	l       *Logger[S]
	batch   ringbuf.Batch
	scratch []byte
}

// Logf stages a message at the specified level
func (p *Producer[S]) Logf(level core.Level, format string, args ...any) {
	if level < p.l.cfg.MinLevel {
		return
	}
	p.logf(level, format, args)
}

// logf renders into the producer's scratch buffer and stages the
// record, publishing the batch first when it is full. In sync mode the
// batch is bypassed and the record goes straight to the sink.
func (p *Producer[S]) logf(level core.Level, format string, args []any) {
	p.scratch = core.AppendRecord(p.scratch[:0], p.l.now(), level, format, args...)

	if len(p.scratch) > core.MaxPayload {
		p.l.stats.Truncated.Add(1)
	}

	if p.l.queue == nil {
		rec := p.scratch
		if len(rec) > core.MaxPayload {
			rec = rec[:core.MaxPayload]
		}
		p.l.mu.Lock()
		p.l.sink.Write(rec)
		p.l.mu.Unlock()
		return
	}

	if !p.batch.TryAdd(p.scratch) {
		p.publish()
		p.batch.TryAdd(p.scratch)
	}
}

// publish flushes the staged batch into the ring and wakes the worker.
// The wake is issued whenever the batch was non-empty, so the worker
// cannot sleep through a full publication.
func (p *Producer[S]) publish() {
	staged := p.batch.Len()
	if staged == 0 {
		return
	}
	dropped := p.batch.FlushInto(p.l.queue, p.l.cfg.DropPolicy == DropNewest)
	p.l.stats.Published.Add(uint64(staged - dropped))
	if dropped > 0 {
		p.l.stats.Dropped.Add(uint64(dropped))
	}
	p.l.signal()
}

// Len returns the number of records currently staged.
func (p *Producer[S]) Len() int {
	return p.batch.Len()
}

// Flush publishes the staged batch, waits until the queue has been
// drained to the sink, and flushes the sink.
func (p *Producer[S]) Flush() {
	if p.l.queue != nil {
		p.publish()
	}
	p.l.Flush()
}

// Close publishes any staged records and releases the handle. It does
// not wait for the worker; call Flush first if delivery must be
// observed. The producer must not be used after Close.
func (p *Producer[S]) Close() {
	if p.l.queue != nil {
		p.publish()
	}
}

// Tracef stages a trace message
func (p *Producer[S]) Tracef(format string, args ...any) {
	if core.TraceLevel < p.l.cfg.MinLevel {
		return
	}
	p.logf(core.TraceLevel, format, args)
}

// Debugf stages a debug message
func (p *Producer[S]) Debugf(format string, args ...any) {
	if core.DebugLevel < p.l.cfg.MinLevel {
		return
	}
	p.logf(core.DebugLevel, format, args)
}

// Infof stages an info message
func (p *Producer[S]) Infof(format string, args ...any) {
	if core.InfoLevel < p.l.cfg.MinLevel {
		return
	}
	p.logf(core.InfoLevel, format, args)
}

// Warnf stages a warning message
func (p *Producer[S]) Warnf(format string, args ...any) {
	if core.WarnLevel < p.l.cfg.MinLevel {
		return
	}
	p.logf(core.WarnLevel, format, args)
}

// Errorf stages an error message
func (p *Producer[S]) Errorf(format string, args ...any) {
	if core.ErrorLevel < p.l.cfg.MinLevel {
		return
	}
	p.logf(core.ErrorLevel, format, args)
}

// Criticalf stages a critical message
func (p *Producer[S]) Criticalf(format string, args ...any) {
	p.logf(core.CriticalLevel, format, args)
}
