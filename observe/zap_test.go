package observe

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobs "go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := zapobs.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))
	ctx := context.Background()

	scoped := logger.WithComponent(ComponentMeta{Name: "primary", Kind: "postgres"})
	scoped.Info(ctx, "resource ready", Field{Key: "attempt", Value: 1})
	scoped.Error(ctx, "resource failed", Field{Key: "password", Value: "hunter2"})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	info := entries[0]
	if info.Level != zapcore.InfoLevel || info.Message != "resource ready" {
		t.Errorf("entry = %v %q", info.Level, info.Message)
	}
	fields := info.ContextMap()
	if fields["resource.name"] != "primary" {
		t.Errorf("resource.name = %v, want primary", fields["resource.name"])
	}
	if fields["resource.kind"] != "postgres" {
		t.Errorf("resource.kind = %v, want postgres", fields["resource.kind"])
	}
	if fields["attempt"] != int64(1) {
		t.Errorf("attempt = %v (%T), want 1", fields["attempt"], fields["attempt"])
	}

	errEntry := entries[1]
	if errEntry.Level != zapcore.ErrorLevel {
		t.Errorf("level = %v, want error", errEntry.Level)
	}
	if got := errEntry.ContextMap()["password"]; got != "[REDACTED]" {
		t.Errorf("password = %v, want redacted", got)
	}
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := zapobs.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))
	ctx := context.Background()

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	want := []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
	}
	entries := logs.All()
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, entry := range entries {
		if entry.Level != want[i] {
			t.Errorf("entry %d level = %v, want %v", i, entry.Level, want[i])
		}
	}
}
