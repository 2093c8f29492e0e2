// Package slogbridge adapts a ringlog logger to log/slog.Handler,
// allowing ringlog to serve as a drop-in backend for the standard
// library's structured logger.
//
// Attributes are rendered into the record payload as key=value text;
// group names become dotted key prefixes. Attributes attached via
// WithAttrs are rendered once, when the handler is derived, not on
// every log call.
package slogbridge
