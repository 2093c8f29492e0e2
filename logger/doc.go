// Package logger is the public API of ringlog. Most users only need
// to import this package.
//
// A Logger ties together the level filter, the record encoder, the
// bounded MPSC ring buffer, and the background worker that drains the
// ring into a sink. The sink is a type parameter, so the worker's write
// loop is statically dispatched; no interface call happens per record.
//
// In asynchronous mode (the default) log calls render the record into
// a scratch buffer, enqueue it, and return; a dedicated worker
// goroutine hands records to the sink. In synchronous mode there is no
// worker and no queue: records are written to the sink on the calling
// goroutine, serialized by an internal mutex.
//
// Goroutines that log in tight loops should obtain a Producer, which
// stages up to 32 records in a local batch before publishing them into
// the ring in one run. A Producer belongs to the goroutine that created
// it and must be flushed (Close) before the goroutine abandons it.
//
// The package initializes a default Logger (async, InfoLevel, stdout)
// in init(). The package-level functions Infof, Errorf, etc. delegate
// to this default instance, so simple programs can log without setup:
//
//	logger.Infof("ready on port %d", 8080)
//
// For custom configuration, construct a logger over a concrete sink:
//
//	log, err := logger.New(sink.NewStdout(), logger.Config{
//	    MinLevel: core.DebugLevel,
//	})
//
// Level checks happen before any rendering, so filtered-out messages
// cost only a single integer comparison.
package logger
