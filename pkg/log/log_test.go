package log_test

import (
	"context"
	"testing"

	"lead-qualification-assistant/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-123")
	if got := log.RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "bogus"},
	} {
		l := log.Init(cfg)
		ctx := log.WithRequestID(context.Background(), "abc")
		l.Debugf(ctx, "debug %d", 1)
		l.Info(ctx, "info")
		l.Warnf(ctx, "warn %s", "x")
	}
}
