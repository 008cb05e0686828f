package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"

	"github.com/dmitrymomot/mailtransport/pkg/address"
)

// Mailer composes messages from templates and hands them to a Transport.
type Mailer struct {
	transport Transport
	renderer  *Renderer
	config    Config
}

// New creates a Mailer on top of a transport and a renderer.
func New(transport Transport, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		transport: transport,
		renderer:  renderer,
		config:    cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	Data     any           // Template data
	To       address.Value // Recipients
	Template string        // Template filename (e.g., "welcome.md")

	// Optional overrides
	Options     map[string]any // Provider-specific keys, passed through untouched
	Subject     string         // Override template subject
	Layout      string         // Override default layout
	From        address.Value  // Override default sender
	ReplyTo     address.Value  // Reply-to address
	Cc          address.Value  // Carbon copy
	Bcc         address.Value  // Blind carbon copy
	Attachments []Attachment   // File attachments
}

// Send renders a template and sends the resulting message.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) (*Result, error) {
	if len(params.To.Entries()) == 0 {
		return nil, ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	rendered, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if s, ok := rendered.Metadata["Subject"].(string); ok && s != "" {
			subject = s
		} else {
			subject = m.config.FallbackSubject
		}
	}

	subject, err = executeSubject(subject, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	from := params.From
	if from.IsZero() && m.config.DefaultFrom != "" {
		from = address.String(m.config.DefaultFrom)
	}

	return m.deliver(ctx, Message{
		From:        from,
		To:          params.To,
		Cc:          params.Cc,
		Bcc:         params.Bcc,
		ReplyTo:     params.ReplyTo,
		Subject:     subject,
		HTML:        rendered.HTML,
		Text:        rendered.Text,
		Attachments: params.Attachments,
		Options:     params.Options,
	})
}

// SendRaw sends a pre-built message without template rendering.
// When only HTML is given, the text part is derived from it.
func (m *Mailer) SendRaw(ctx context.Context, msg Message) (*Result, error) {
	if len(msg.To.Entries()) == 0 {
		return nil, ErrNoRecipient
	}
	if msg.Subject == "" {
		return nil, ErrNoSubject
	}
	if msg.HTML == "" && msg.Text == "" {
		return nil, ErrNoContent
	}
	if msg.Text == "" {
		msg.Text = PlainText(msg.HTML)
	}

	return m.deliver(ctx, msg)
}

func (m *Mailer) deliver(ctx context.Context, msg Message) (*Result, error) {
	res, err := send(ctx, m.transport, Envelope{Data: msg})
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}
	return res, nil
}

func executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
