package logger

import (
	"context"
	"log/slog"
)

type attrsKey struct{}

// ContextWithAttrs returns a copy of ctx carrying attrs in addition to any
// attributes already attached. Use with AttrsExtractor.
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	prev := attrsFromContext(ctx)
	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsKey{}, merged)
}

func attrsFromContext(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	return attrs
}

// AttrsExtractor returns an extractor that emits the attributes stored by
// ContextWithAttrs, grouped under name. An empty name inlines them.
func AttrsExtractor(name string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		attrs := attrsFromContext(ctx)
		if len(attrs) == 0 {
			return slog.Attr{}, false
		}
		args := make([]any, len(attrs))
		for i, a := range attrs {
			args[i] = a
		}
		return slog.Group(name, args...), true
	}
}
