package mailgun

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when the Mailgun API key is not provided.
	ErrMissingAPIKey = errors.New("mailgun: missing API key")

	// ErrMissingDomain is returned when the sending domain is not provided.
	ErrMissingDomain = errors.New("mailgun: missing domain")

	// ErrSendFailed is returned when the HTTP request to Mailgun could not be made.
	ErrSendFailed = errors.New("mailgun: failed to send request")

	// ErrRequestFailed is returned when Mailgun responds with a non-2xx status.
	ErrRequestFailed = errors.New("mailgun: request returned non-OK status")

	// ErrDecodeFailed is returned when the Mailgun response cannot be decoded.
	ErrDecodeFailed = errors.New("mailgun: failed to decode response")

	// ErrAttachmentFailed is returned when an attachment cannot be read or encoded.
	ErrAttachmentFailed = errors.New("mailgun: failed to encode attachment")

	// ErrEmptyResponse is returned when the client reports success without a response.
	ErrEmptyResponse = errors.New("mailgun: empty response from client")
)

// APIError describes a non-2xx response from Mailgun.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("mailgun: status %d", e.StatusCode)
	}
	return fmt.Sprintf("mailgun: status %d: %s", e.StatusCode, e.Message)
}
