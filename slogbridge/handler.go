package slogbridge

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/avensko/ringlog/core"
)

// Transport is the slice of the logger API the bridge needs. Every
// logger.Logger instantiation satisfies it.
type Transport interface {
	Logf(level core.Level, format string, args ...any)
	MinLevel() core.Level
}

// Handler implements slog.Handler on top of a ringlog transport.
type Handler struct {
	transport Transport
	attrs     []byte // prerendered " key=value" runs from WithAttrs
	group     string
}

// NewHandler creates a slog.Handler adapter over the given transport.
func NewHandler(t Transport) *Handler {
	return &Handler{transport: t}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevel(level) >= h.transport.MinLevel()
}

// Handle renders the record message and attributes into a payload and
// forwards it through the transport.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	payload := make([]byte, 0, 128)
	payload = append(payload, record.Message...)
	payload = append(payload, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		payload = appendAttr(payload, h.group, a)
		return true
	})
	h.transport.Logf(slogLevel(record.Level), string(payload))
	return nil
}

// WithAttrs returns a new Handler with the attributes prerendered.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := make([]byte, len(h.attrs), len(h.attrs)+32*len(attrs))
	copy(rendered, h.attrs)
	for _, a := range attrs {
		rendered = appendAttr(rendered, h.group, a)
	}
	return &Handler{
		transport: h.transport,
		attrs:     rendered,
		group:     h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{
		transport: h.transport,
		attrs:     h.attrs,
		group:     group,
	}
}

// slogLevel maps a slog.Level onto the ringlog level scale.
func slogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr renders one attribute as " key=value", prepending the
// group prefix to the key. Group attributes flatten recursively with a
// dotted prefix.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}

	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')

	switch a.Value.Kind() {
	case slog.KindString:
		dst = append(dst, a.Value.String()...)
	case slog.KindInt64:
		dst = strconv.AppendInt(dst, a.Value.Int64(), 10)
	case slog.KindUint64:
		dst = strconv.AppendUint(dst, a.Value.Uint64(), 10)
	case slog.KindFloat64:
		dst = strconv.AppendFloat(dst, a.Value.Float64(), 'f', -1, 64)
	case slog.KindBool:
		dst = strconv.AppendBool(dst, a.Value.Bool())
	case slog.KindTime:
		dst = a.Value.Time().AppendFormat(dst, time.RFC3339)
	case slog.KindDuration:
		dst = append(dst, a.Value.Duration().String()...)
	default:
		dst = append(dst, a.Value.String()...)
	}
	return dst
}
