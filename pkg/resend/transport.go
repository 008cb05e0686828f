package resend

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailtransport/pkg/address"
	"github.com/dmitrymomot/mailtransport/pkg/mailer"
)

// Name is the provider identifier.
const Name = "resend"

const (
	headerPrefix = "h:"
	tagPrefix    = "v:"
)

// EmailSender is the part of the Resend SDK the transport uses.
// resend.Client.Emails satisfies it.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Transport implements mailer.Transport using the Resend API.
type Transport struct {
	emails EmailSender
	logger *slog.Logger
	config Config
}

// New creates a Resend transport. Returns ErrMissingAPIKey if cfg.APIKey is empty.
func New(cfg Config, opts ...Option) (*Transport, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewWithSender(resend.NewClient(cfg.APIKey).Emails, cfg, opts...), nil
}

// NewWithSender creates a transport around an existing SDK handle.
func NewWithSender(emails EmailSender, cfg Config, opts ...Option) *Transport {
	o := newOptions(opts)
	return &Transport{
		emails: emails,
		config: cfg,
		logger: o.logger.With(slog.String("provider", Name)),
	}
}

// Name returns the provider identifier.
func (t *Transport) Name() string {
	return Name
}

// Send implements mailer.Transport. SDK errors are returned unchanged.
func (t *Transport) Send(ctx context.Context, env mailer.Envelope) (*mailer.Result, error) {
	req := t.request(env.Data)
	t.logger.DebugContext(ctx, "request prepared",
		slog.Int("recipients", len(req.To)+len(req.Cc)+len(req.Bcc)),
		slog.Int("attachments", len(req.Attachments)))

	resp, err := t.emails.SendWithContext(ctx, req)
	if err != nil {
		t.logger.WarnContext(ctx, "send failed", slog.String("error", err.Error()))
		return nil, err
	}
	if resp == nil {
		return nil, ErrEmptyResponse
	}

	t.logger.InfoContext(ctx, "message queued", slog.String("message_id", resp.Id))
	return &mailer.Result{MessageID: resp.Id}, nil
}

func (t *Transport) request(msg mailer.Message) *resend.SendEmailRequest {
	from := address.Normalize(msg.From)
	if from == "" {
		from = t.config.sender()
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To.Entries(),
		Cc:      msg.Cc.Entries(),
		Bcc:     msg.Bcc.Entries(),
		ReplyTo: address.Normalize(msg.ReplyTo),
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	if msg.Attachments != nil {
		req.Attachments = convertAttachments(msg.Attachments)
	}

	keys := make([]string, 0, len(msg.Options))
	for key := range msg.Options {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := msg.Options[key]
		if name, ok := strings.CutPrefix(key, headerPrefix); ok && name != "" {
			if req.Headers == nil {
				req.Headers = make(map[string]string)
			}
			req.Headers[name] = tagValue(value)
			continue
		}
		if name, ok := strings.CutPrefix(key, tagPrefix); ok && name != "" {
			req.Tags = append(req.Tags, resend.Tag{Name: name, Value: tagValue(value)})
		}
	}

	return req
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			Path:        a.Path,
		}
	}
	return result
}

// tagValue converts an option value to a string for Resend headers and tags.
// Presence-only values (nil, struct{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
