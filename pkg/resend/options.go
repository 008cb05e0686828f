package resend

import (
	"log/slog"

	"github.com/dmitrymomot/mailtransport/pkg/logger"
)

// Option configures the Resend transport.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: logger.NewNope()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger sets the logger. Logging is disabled by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
