// Package sink defines the byte-run writer contract consumed by the
// logging worker, along with the built-in implementations.
//
// A Sink exposes exactly two operations: Write appends a rendered
// record and Flush makes previously written bytes durable to the next
// layer. The contract has no error channel; a sink that can fail must
// handle its failures internally (retry, drop, or abort).
//
// Sinks are not required to be internally synchronized. In async mode
// only the worker goroutine writes to the sink; in sync mode only the
// logging caller does. The logger serializes every Write with Flush.
//
// Built-in sinks:
//
//   - Null discards input; used for benchmarking the transport.
//   - Stdout writes buffered records to standard output.
//   - File writes buffered records to a file (no rotation).
//   - WriterSink adapts any io.Writer.
//   - Multi fans a record out to a list of child sinks.
package sink
