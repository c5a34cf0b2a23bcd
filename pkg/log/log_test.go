package log_test

import (
	"context"
	"testing"

	"customer-support-router/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: "", Encoding: ""},
	} {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Infof(log.WithRequestID(context.Background(), "req-2"), "logger ready: %s", cfg.Mode)
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Infof(log.WithRequestID(context.Background(), "req-1"), "discarded %d", 1)
	l.Warn(context.Background(), "discarded")
}
