package mailgun

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mailtransport/pkg/logger"
)

// Option configures the Mailgun transport and HTTP client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

func newOptions(opts []Option) options {
	o := options{
		httpClient: http.DefaultClient,
		logger:     logger.NewNope(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithHTTPClient sets a custom HTTP client for API requests.
// Useful for httptest servers or custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger sets the logger. Logging is disabled by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBaseURL overrides Config.BaseURL, e.g. with EUBaseURL.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}
