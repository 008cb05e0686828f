package mailgun

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/mailtransport/pkg/address"
	"github.com/dmitrymomot/mailtransport/pkg/mailer"
)

// Mailgun parameter names.
const (
	FieldFrom       = "from"
	FieldTo         = "to"
	FieldCc         = "cc"
	FieldBcc        = "bcc"
	FieldSubject    = "subject"
	FieldText       = "text"
	FieldHTML       = "html"
	FieldAttachment = "attachment"

	// HeaderReplyTo carries the generic replyTo field.
	HeaderReplyTo = "h:Reply-To"
)

// Reserved key prefixes passed through verbatim.
const (
	PrefixOption   = "o:"
	PrefixHeader   = "h:"
	PrefixVariable = "v:"
)

var reservedPrefixes = [...]string{PrefixOption, PrefixHeader, PrefixVariable}

// AllowedFields returns the generic fields Mailgun accepts, in payload order.
func AllowedFields() []string {
	return []string{
		FieldFrom, FieldTo, FieldCc, FieldBcc,
		FieldSubject, FieldText, FieldHTML, FieldAttachment,
	}
}

// IsReserved reports whether key is in one of Mailgun's namespaces (o:, h:, v:).
func IsReserved(key string) bool {
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// MapFields converts a generic message into the Mailgun payload.
//
// Allow-listed fields come first in AllowedFields order, then h:Reply-To,
// then reserved-prefix options in sorted key order. Address fields that are
// set are always emitted, even when nothing survives normalization. ReplyTo
// takes precedence over an "h:Reply-To" option. Every other option is dropped.
func MapFields(msg mailer.Message) *Payload {
	p := &Payload{fields: make([]Field, 0, 9+len(msg.Options))}

	addAddress(p, FieldFrom, msg.From)
	addAddress(p, FieldTo, msg.To)
	addAddress(p, FieldCc, msg.Cc)
	addAddress(p, FieldBcc, msg.Bcc)
	addString(p, FieldSubject, msg.Subject)
	addString(p, FieldText, msg.Text)
	addString(p, FieldHTML, msg.HTML)
	if msg.Attachments != nil {
		p.add(FieldAttachment, MapAttachments(msg.Attachments))
	}
	addAddress(p, HeaderReplyTo, msg.ReplyTo)

	keys := make([]string, 0, len(msg.Options))
	for key, val := range msg.Options {
		if val == nil || !IsReserved(key) {
			continue
		}
		if key == HeaderReplyTo && !msg.ReplyTo.IsZero() {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		p.add(key, msg.Options[key])
	}

	return p
}

func addAddress(p *Payload, key string, v address.Value) {
	if v.IsZero() {
		return
	}
	p.add(key, address.Normalize(v))
}

func addString(p *Payload, key, v string) {
	if v == "" {
		return
	}
	p.add(key, v)
}
