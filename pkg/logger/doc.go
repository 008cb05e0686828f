// Package logger builds the slog loggers used by the mail transports.
//
// Transports default to NewNope, which discards everything. Applications pass
// a real logger through the transport's WithLogger option:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"},
//		logger.AttrsExtractor("mail"))
//
//	tr, err := mailgun.New(cfg, mailgun.WithLogger(log))
//
// # Context attributes
//
// ContextWithAttrs attaches attributes to a context; AttrsExtractor adds them
// to every record logged with that context. This carries caller data, such as
// a correlation id, into the transport's log lines:
//
//	ctx = logger.ContextWithAttrs(ctx, slog.String("order_id", "A-1001"))
//	tr.Send(ctx, env) // logs include "mail":{"order_id":"A-1001"}
//
// Any other ContextExtractor can be combined with it, and any slog.Handler can
// be wrapped with NewLogHandlerDecorator.
//
// # Sentry
//
// When Config.SentryDSN is set, warnings and errors are also forwarded to
// Sentry; errors become issues. If the SDK fails to initialize, the failure is
// logged locally and the logger keeps working without Sentry.
package logger
