package sink

import (
	"bufio"
	"os"
)

// Stdout writes records to standard output through a bufio layer.
// Flush drains the buffer to the file descriptor.
type Stdout struct {
	w *bufio.Writer
}

// NewStdout creates a stdout sink.
func NewStdout() *Stdout {
	return &Stdout{w: bufio.NewWriterSize(os.Stdout, 64*1024)}
}

// Write appends p to the output buffer.
func (s *Stdout) Write(p []byte) {
	s.w.Write(p)
}

// Flush drains buffered records to standard output.
func (s *Stdout) Flush() {
	s.w.Flush()
}
