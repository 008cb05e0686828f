// Package mailer defines the provider-agnostic message model and the
// Transport contract that provider packages implement.
//
// # Architecture
//
//   - Message: generic description of an email (addresses, bodies, attachments, provider options)
//   - Transport: one provider; a single Send is a single provider call
//   - Renderer: markdown templates with YAML frontmatter to HTML and text
//   - Mailer: composes messages from templates and sends them through a Transport
//
// # Messages
//
// Address fields use address.Value, so each accepts a string, a name/address
// object or a list of either. Message also decodes from the generic JSON shape:
//
//	var msg mailer.Message
//	err := json.Unmarshal([]byte(`{
//		"from": {"name": "Team", "address": "team@example.com"},
//		"to": ["a@example.com", "b@example.com"],
//		"subject": "Hello",
//		"text": "Hi there",
//		"o:tag": "welcome"
//	}`), &msg)
//
// Keys the model does not recognize are kept in Message.Options; providers
// forward the ones in their own namespace and drop the rest.
//
// # Sending
//
// A Transport returns either a Result or an error, never both:
//
//	res, err := transport.Send(ctx, mailer.Envelope{Data: msg})
//
// Callback and channel forms are available for callers that prefer them:
//
//	mailer.Deliver(ctx, transport, env, func(err error, res *mailer.Result) { ... })
//
//	out := <-mailer.Go(ctx, transport, env)
//
// Errors returned by a Transport come straight from the provider client.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, welcome to our service!
//
// Mailer.Send renders the template, resolves the subject (params, then
// frontmatter, then Config.FallbackSubject) and sends the result:
//
//	m := mailer.New(transport, mailer.NewRenderer(emails.FS), mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//	})
//
//	res, err := m.Send(ctx, mailer.SendParams{
//		To:       address.String("user@example.com"),
//		Template: "welcome.md",
//		Data:     map[string]any{"Name": "John"},
//	})
//
// Mailer.SendRaw sends a pre-built Message and fills the text part from the
// HTML when it is missing.
//
// # Errors
//
//   - ErrNoRecipient, ErrNoSubject, ErrNoContent: Mailer validation
//   - ErrTemplateNotFound, ErrLayoutNotFound, ErrInvalidFrontmatter, ErrRenderFailed: rendering
//   - ErrSendFailed: wraps the transport error (reachable with errors.Is/As)
//   - ErrInvalidMessage: generic JSON could not be decoded
//   - ErrEmptyResult: a transport returned neither a result nor an error
package mailer
