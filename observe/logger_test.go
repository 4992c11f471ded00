package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func parseEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)
	ctx := context.Background()

	logger.Info(ctx, "server started", Field{Key: "port", Value: 8080})

	entries := parseEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["msg"] != "server started" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["port"] != float64(8080) {
		t.Errorf("port = %v, want 8080", entry["port"])
	}
	if entry["timestamp"] == nil {
		t.Error("timestamp missing")
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)
	ctx := context.Background()

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "dropped")
	logger.Warn(ctx, "kept")
	logger.Error(ctx, "kept")

	entries := parseEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["level"] != "warn" || entries[1]["level"] != "error" {
		t.Errorf("levels = %v, %v", entries[0]["level"], entries[1]["level"])
	}
}

func TestLogger_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "connecting",
		Field{Key: "dsn", Value: "postgres://user:hunter2@db/app"},
		Field{Key: "password", Value: "hunter2"},
		Field{Key: "host", Value: "db"},
	)

	entries := parseEntries(t, &buf)
	entry := entries[0]
	if entry["dsn"] != "[REDACTED]" {
		t.Errorf("dsn = %v, want redacted", entry["dsn"])
	}
	if entry["password"] != "[REDACTED]" {
		t.Errorf("password = %v, want redacted", entry["password"])
	}
	if entry["host"] != "db" {
		t.Errorf("host = %v, want db", entry["host"])
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	scoped := logger.WithComponent(ComponentMeta{Name: "primary", Kind: "postgres"})
	scoped.Info(context.Background(), "ready")

	// The parent logger is unaffected.
	logger.Info(context.Background(), "plain")

	entries := parseEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["resource.name"] != "primary" {
		t.Errorf("resource.name = %v, want primary", entries[0]["resource.name"])
	}
	if entries[0]["resource.kind"] != "postgres" {
		t.Errorf("resource.kind = %v, want postgres", entries[0]["resource.kind"])
	}
	if _, ok := entries[1]["resource.name"]; ok {
		t.Error("parent logger picked up component attrs")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	ctx := context.Background()

	// Must not panic and WithComponent must keep discarding.
	scoped := logger.WithComponent(ComponentMeta{Name: "x"})
	scoped.Info(ctx, "msg")
	scoped.Warn(ctx, "msg")
	scoped.Error(ctx, "msg")
	scoped.Debug(ctx, "msg")
}
