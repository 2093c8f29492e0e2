package sink

import (
	"bufio"
	"os"
)

// File writes records to a single file through a bufio layer. The file
// is created if missing and appended to if present. Rotation is out of
// scope; pair the logger with an external rotator if the target must
// be bounded.
type File struct {
	f *os.File
	w *bufio.Writer
}

// NewFile opens or creates path for appending.
func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &File{f: f, w: bufio.NewWriterSize(f, 256*1024)}, nil
}

// Write appends p to the file buffer.
func (s *File) Write(p []byte) {
	s.w.Write(p)
}

// Flush drains the buffer and syncs the file to the OS.
func (s *File) Flush() {
	s.w.Flush()
	s.f.Sync()
}

// Close flushes and closes the underlying file.
func (s *File) Close() error {
	s.w.Flush()
	return s.f.Close()
}
