package resend

import "errors"

var (
	// ErrMissingAPIKey is returned when the Resend API key is not provided.
	ErrMissingAPIKey = errors.New("resend: missing API key")

	// ErrEmptyResponse is returned when the SDK reports success without a response.
	ErrEmptyResponse = errors.New("resend: empty response from client")
)
