package mailgun

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailtransport/pkg/logger"
)

// LogClient logs payloads instead of sending them.
// Useful for development and testing.
type LogClient struct {
	logger *slog.Logger
	domain string
}

// NewLogClient creates a dry-run client. Generated message IDs use domain.
func NewLogClient(domain string, l *slog.Logger) *LogClient {
	if l == nil {
		l = logger.NewNope()
	}
	return &LogClient{logger: l, domain: domain}
}

// Send implements Client. It never fails.
func (c *LogClient) Send(ctx context.Context, payload *Payload) (*Response, error) {
	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), c.domain)

	attrs := []slog.Attr{
		slog.String("message_id", id),
		slog.Any("fields", payload.Keys()),
		slog.Int("attachments", len(payload.Attachments())),
	}
	for _, key := range []string{FieldFrom, FieldTo, FieldCc, FieldBcc, FieldSubject, FieldText} {
		if v, ok := payload.Get(key); ok {
			attrs = append(attrs, slog.Any(key, v))
		}
	}

	c.logger.LogAttrs(ctx, slog.LevelInfo, "mailgun: dry run, email not sent", attrs...)

	return &Response{ID: id, Message: "Queued. Thank you."}, nil
}
