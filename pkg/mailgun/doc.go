// Package mailgun sends generic mailer messages through the Mailgun Messages API.
//
// The transport maps a mailer.Message to Mailgun parameters and makes a
// single API call per Send:
//
//   - from, to, cc, bcc, subject, text, html and attachment are copied in that order
//   - address fields are collapsed to one comma-joined string (see package address)
//   - replyTo becomes the "h:Reply-To" header parameter
//   - options prefixed with o:, h: or v: pass through verbatim; anything else is dropped
//
// # Usage
//
//	transport, err := mailgun.New(mailgun.Config{
//		APIKey: os.Getenv("MAILGUN_API_KEY"),
//		Domain: "mg.example.com",
//	}, mailgun.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	res, err := transport.Send(ctx, mailer.Envelope{Data: mailer.Message{
//		From:    address.Object(address.Address{Name: "Team", Address: "team@example.com"}),
//		To:      address.Strings("a@example.com", "b@example.com"),
//		Subject: "Hello",
//		Text:    "Hi there",
//		Options: map[string]any{"o:tag": "welcome", "v:user-id": "42"},
//	}})
//	// res.MessageID == "<20111114174239.25659.5817@mg.example.com>"
//
// For EU-hosted domains pass WithBaseURL(mailgun.EUBaseURL).
//
// # Clients
//
// Transport talks to a Client. HTTPClient posts multipart forms to Mailgun;
// LogClient only logs and is handy in development. Any other implementation,
// such as a test double, can be injected with NewWithClient.
//
// # Errors
//
// Client errors are returned from Transport.Send unchanged. HTTPClient
// reports:
//
//   - ErrSendFailed: the request could not be made
//   - ErrRequestFailed: non-2xx status, joined with an *APIError
//   - ErrDecodeFailed: unexpected response body
//   - ErrAttachmentFailed: an attachment file could not be read
package mailgun
