package sink

// Multi fans each record out to a list of child sinks. It is the one
// concrete sink to instantiate the logger with when output must reach
// several destinations: the worker calls the children through the
// interface, keeping dynamic dispatch off the enqueue path entirely.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a fanout sink over the given children.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Write forwards p to every child sink.
func (m *Multi) Write(p []byte) {
	for _, s := range m.sinks {
		s.Write(p)
	}
}

// Flush flushes every child sink.
func (m *Multi) Flush() {
	for _, s := range m.sinks {
		s.Flush()
	}
}
