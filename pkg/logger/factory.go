package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a logger writing to stdout in the configured format and level.
// When cfg.SentryDSN is set, warnings and errors are also sent to Sentry.
// Context extractors are applied to every destination.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg, extractors...)
}

// NewWithWriter is like New but writes local output to w.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	local := newHandler(w, cfg)

	handler := local
	if sentry, ok := newSentryHandler(cfg, local); ok {
		handler = newMultiHandler(local, sentry)
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	// unknown level names fall back to info
	level, _ := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
