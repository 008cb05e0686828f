package mailgun

import "github.com/dmitrymomot/mailtransport/pkg/mailer"

// Attachment is Mailgun's attachment descriptor.
type Attachment struct {
	Path        string // Local file read when Content is empty
	Filename    string // Defaults to the base name of Path
	ContentType string // Part Content-Type; application/octet-stream when empty
	Content     []byte // Raw file content
	KnownLength int64  // Size hint in bytes
}

// MapAttachments converts generic attachments one-to-one, preserving order.
// Descriptors are copied as-is, incomplete ones included.
// A non-nil empty input yields a non-nil empty result.
func MapAttachments(list []mailer.Attachment) []Attachment {
	if list == nil {
		return nil
	}
	out := make([]Attachment, len(list))
	for i, a := range list {
		out[i] = Attachment{
			Path:        a.Path,
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     a.Content,
			KnownLength: a.KnownLength,
		}
	}
	return out
}
