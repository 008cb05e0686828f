package mailgun

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/mailtransport/pkg/mailer"
)

// Name is the provider identifier.
const Name = "mailgun"

// Transport implements mailer.Transport on top of a Mailgun Client.
type Transport struct {
	client Client
	logger *slog.Logger
}

// New creates a transport backed by the Mailgun HTTP API.
// Returns an error if the API key or domain is missing.
func New(cfg Config, opts ...Option) (*Transport, error) {
	client, err := NewHTTPClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithClient(client, opts...), nil
}

// NewWithClient creates a transport around an existing client.
func NewWithClient(client Client, opts ...Option) *Transport {
	o := newOptions(opts)
	return &Transport{
		client: client,
		logger: o.logger.With(slog.String("provider", Name)),
	}
}

// Name returns the provider identifier.
func (t *Transport) Name() string {
	return Name
}

// Client returns the underlying client handle.
func (t *Transport) Client() Client {
	return t.client
}

// Send implements mailer.Transport.
// It makes exactly one client call; client errors are returned unchanged.
func (t *Transport) Send(ctx context.Context, env mailer.Envelope) (*mailer.Result, error) {
	payload := MapFields(env.Data)
	t.logger.DebugContext(ctx, "payload prepared", slog.Any("fields", payload.Keys()))

	resp, err := t.client.Send(ctx, payload)
	if err != nil {
		t.logger.WarnContext(ctx, "send failed", slog.String("error", err.Error()))
		return nil, err
	}
	if resp == nil {
		return nil, ErrEmptyResponse
	}

	t.logger.InfoContext(ctx, "message queued", slog.String("message_id", resp.ID))
	return &mailer.Result{MessageID: resp.ID}, nil
}
