package mailer

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/mailtransport/pkg/address"
)

// Message is a provider-agnostic mail message.
//
// Empty strings mean the field is absent. A nil Attachments slice is absent,
// while a non-nil empty slice is present and empty. Options carries every
// other key verbatim; each provider decides which of them it forwards.
type Message struct {
	Options     map[string]any // Provider-specific keys (e.g. "o:tag", "h:X-Foo", "v:user-id")
	From        address.Value  // Sender
	To          address.Value  // Recipients
	Cc          address.Value  // Carbon copy recipients
	Bcc         address.Value  // Blind carbon copy recipients
	ReplyTo     address.Value  // Reply-to address
	Subject     string         // Email subject
	Text        string         // Plain text body
	HTML        string         // HTML body
	Attachments []Attachment   // File attachments
}

// Attachment describes a file attached to a message.
// Content takes precedence over Path when both are set.
type Attachment struct {
	Path        string `json:"path,omitempty"`        // Local file path or remote location
	Filename    string `json:"filename,omitempty"`    // Display name for the attachment
	ContentType string `json:"contentType,omitempty"` // MIME type (e.g., "application/pdf")
	Content     []byte `json:"content,omitempty"`     // Raw file content
	KnownLength int64  `json:"knownLength,omitempty"` // Size hint in bytes
}

// Envelope wraps a message handed to a Transport.
type Envelope struct {
	Data Message
}

// Result is returned by a Transport after a successful send.
type Result struct {
	MessageID string
}

// Generic field names accepted by Message.UnmarshalJSON.
const (
	FieldFrom       = "from"
	FieldTo         = "to"
	FieldCc         = "cc"
	FieldBcc        = "bcc"
	FieldReplyTo    = "replyTo"
	FieldSubject    = "subject"
	FieldText       = "text"
	FieldHTML       = "html"
	FieldAttachment = "attachment"
)

// UnmarshalJSON decodes the generic key/value message shape.
// Recognized keys populate typed fields; all other keys land in Options.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	var msg Message
	for key, val := range raw {
		var err error
		switch key {
		case FieldFrom:
			err = json.Unmarshal(val, &msg.From)
		case FieldTo:
			err = json.Unmarshal(val, &msg.To)
		case FieldCc:
			err = json.Unmarshal(val, &msg.Cc)
		case FieldBcc:
			err = json.Unmarshal(val, &msg.Bcc)
		case FieldReplyTo:
			err = json.Unmarshal(val, &msg.ReplyTo)
		case FieldSubject:
			err = json.Unmarshal(val, &msg.Subject)
		case FieldText:
			err = json.Unmarshal(val, &msg.Text)
		case FieldHTML:
			err = json.Unmarshal(val, &msg.HTML)
		case FieldAttachment:
			err = json.Unmarshal(val, &msg.Attachments)
		default:
			var v any
			if err = json.Unmarshal(val, &v); err == nil {
				if msg.Options == nil {
					msg.Options = make(map[string]any)
				}
				msg.Options[key] = v
			}
		}
		if err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidMessage, key, err)
		}
	}

	*m = msg
	return nil
}
