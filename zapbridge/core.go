package zapbridge

import (
	"go.uber.org/zap/zapcore"

	"github.com/avensko/ringlog/core"
)

// Transport is the slice of the logger API the bridge needs. Every
// logger.Logger instantiation satisfies it.
type Transport interface {
	Logf(level core.Level, format string, args ...any)
	MinLevel() core.Level
	Flush()
}

// Core implements zapcore.Core on top of a ringlog transport.
type Core struct {
	transport Transport
	enc       zapcore.Encoder
}

// NewCore creates a zapcore.Core adapter over the given transport.
func NewCore(t Transport) *Core {
	cfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		NameKey:        "logger",
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
	}
	return &Core{
		transport: t,
		enc:       zapcore.NewConsoleEncoder(cfg),
	}
}

// Enabled reports whether the core handles entries at the given level.
func (c *Core) Enabled(level zapcore.Level) bool {
	return zapLevel(level) >= c.transport.MinLevel()
}

// With returns a new Core with the fields encoded into its state.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := &Core{
		transport: c.transport,
		enc:       c.enc.Clone(),
	}
	for _, f := range fields {
		f.AddTo(clone.enc)
	}
	return clone
}

// Check determines whether the entry should be logged.
func (c *Core) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

// Write renders the entry through the encoder and forwards the line
// through the transport.
func (c *Core) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(entry, fields)
	if err != nil {
		return err
	}
	line := buf.Bytes()
	// EncodeEntry appends a line terminator; the transport adds its own.
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	c.transport.Logf(zapLevel(entry.Level), string(line))
	buf.Free()
	return nil
}

// Sync flushes the transport.
func (c *Core) Sync() error {
	c.transport.Flush()
	return nil
}

// zapLevel maps a zapcore.Level onto the ringlog level scale.
func zapLevel(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.CriticalLevel
	case level == zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
