package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtransport/pkg/logger"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &out))
	return out
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{name: "", want: slog.LevelInfo},
		{name: "debug", want: slog.LevelDebug},
		{name: "INFO", want: slog.LevelInfo},
		{name: " warn ", want: slog.LevelWarn},
		{name: "error", want: slog.LevelError},
		{name: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := logger.ParseLevel(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, logger.ErrInvalidLevel)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("json output at configured level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "warn", Format: "json"})

		log.Info("dropped")
		require.Zero(t, buf.Len())

		log.Warn("kept", slog.String("provider", "mailgun"))
		line := decodeLine(t, &buf)
		require.Equal(t, "kept", line["msg"])
		require.Equal(t, "WARN", line["level"])
		require.Equal(t, "mailgun", line["provider"])
	})

	t.Run("text output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "debug", Format: "text"})

		log.Debug("payload prepared", slog.Int("fields", 3))
		out := buf.String()
		require.Contains(t, out, "level=DEBUG")
		require.Contains(t, out, `msg="payload prepared"`)
		require.Contains(t, out, "fields=3")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "loud"})

		log.Debug("dropped")
		require.Zero(t, buf.Len())
		log.Info("kept")
		require.Contains(t, buf.String(), "kept")
	})

	t.Run("sentry init failure keeps local logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{SentryDSN: "not-a-dsn"})

		require.Contains(t, buf.String(), "failed to initialize Sentry")
		buf.Reset()

		log.Error("send failed")
		require.Contains(t, buf.String(), "send failed")
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	require.False(t, log.Enabled(context.Background(), slog.LevelError))

	// must not panic
	log.With(slog.String("k", "v")).WithGroup("g").Error("ignored")
}

func TestContextAttrs(t *testing.T) {
	t.Parallel()

	t.Run("grouped attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{}, logger.AttrsExtractor("mail"))

		ctx := logger.ContextWithAttrs(context.Background(), slog.String("order_id", "A-1001"))
		ctx = logger.ContextWithAttrs(ctx, slog.Int("attempt", 2))
		log.InfoContext(ctx, "message queued")

		line := decodeLine(t, &buf)
		require.Equal(t, map[string]any{"order_id": "A-1001", "attempt": float64(2)}, line["mail"])
	})

	t.Run("inlined attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{}, logger.AttrsExtractor(""))

		ctx := logger.ContextWithAttrs(context.Background(), slog.String("request_id", "abc-123"))
		log.InfoContext(ctx, "message queued")

		line := decodeLine(t, &buf)
		require.Equal(t, "abc-123", line["request_id"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{}, logger.AttrsExtractor("mail"))
		log.InfoContext(context.Background(), "message queued")

		require.NotContains(t, buf.String(), `"mail"`)
	})

	t.Run("parent context untouched", func(t *testing.T) {
		t.Parallel()

		parent := logger.ContextWithAttrs(context.Background(), slog.String("a", "1"))
		_ = logger.ContextWithAttrs(parent, slog.String("b", "2"))

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{}, logger.AttrsExtractor("mail"))
		log.InfoContext(parent, "x")

		line := decodeLine(t, &buf)
		require.Equal(t, map[string]any{"a": "1"}, line["mail"])
	})
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(ctxKey{}).(string); ok {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil, extractor)
		log := slog.New(h).With(slog.String("provider", "mailgun")).WithGroup("send")

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "ok", slog.String("message_id", "<id@mg>"))

		line := decodeLine(t, &buf)
		require.Equal(t, "mailgun", line["provider"])
		send, ok := line["send"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "<id@mg>", send["message_id"])
		require.Equal(t, "req-1", send["request_id"])
	})

	t.Run("no extractors returns handler unchanged", func(t *testing.T) {
		t.Parallel()

		base := slog.NewTextHandler(&bytes.Buffer{}, nil)
		require.Same(t, base, logger.NewLogHandlerDecorator(base, nil))
	})

	t.Run("respects level of wrapped handler", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := logger.NewLogHandlerDecorator(
			slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}), extractor)

		require.False(t, h.Enabled(context.Background(), slog.LevelWarn))
		require.True(t, h.Enabled(context.Background(), slog.LevelError))
		require.True(t, strings.TrimSpace(buf.String()) == "")
	})
}

type ctxKey struct{}
