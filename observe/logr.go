package observe

import (
	"context"

	"github.com/go-logr/logr"
)

// logrLogger adapts a logr.Logger to the Logger interface, for applications
// in the Kubernetes ecosystem.
type logrLogger struct {
	logger logr.Logger
}

// NewLogrLogger wraps a logr logger as a Logger. Debug maps to verbosity 1,
// Info and Warn to verbosity 0, and Error to the logr error channel.
func NewLogrLogger(logger logr.Logger) Logger {
	return &logrLogger{logger: logger}
}

// WithComponent returns a logger with component context attached.
func (l *logrLogger) WithComponent(meta ComponentMeta) Logger {
	kv := []any{"resource.name", meta.Name}
	if meta.Kind != "" {
		kv = append(kv, "resource.kind", meta.Kind)
	}
	return &logrLogger{logger: l.logger.WithValues(kv...)}
}

func (l *logrLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.logger.Info(msg, logrKeyValues(fields)...)
}

func (l *logrLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.logger.Info(msg, append(logrKeyValues(fields), "warn", true)...)
}

func (l *logrLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.logger.Error(nil, msg, logrKeyValues(fields)...)
}

func (l *logrLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.logger.V(1).Info(msg, logrKeyValues(fields)...)
}

func logrKeyValues(fields []Field) []any {
	kv := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		if isRedactedField(f.Key) {
			kv = append(kv, f.Key, "[REDACTED]")
			continue
		}
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

var _ Logger = (*logrLogger)(nil)
