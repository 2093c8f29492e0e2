package sink

import "io"

// Sink is the byte-run writer contract between the logging transport
// and its output. Write appends one rendered record; Flush pushes
// buffered bytes to the sink's next layer.
type Sink interface {
	Write(p []byte)
	Flush()
}

// WriterSink adapts an io.Writer to the Sink contract. Write errors
// are swallowed: the sink contract defines no failure channel, and a
// writer that must not lose records should wrap its own recovery.
type WriterSink struct {
	W io.Writer
}

// NewWriterSink creates a sink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{W: w}
}

// Write appends p to the underlying writer.
func (s *WriterSink) Write(p []byte) {
	s.W.Write(p)
}

// Flush is a no-op; the underlying writer is assumed unbuffered. Use
// File or Stdout for buffered outputs.
func (s *WriterSink) Flush() {}
