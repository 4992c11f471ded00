package observe

import (
	"context"

	"go.uber.org/zap"
)

// zapLogger adapts a zap.Logger to the Logger interface, for applications
// that already standardize on zap.
type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps a zap logger as a Logger.
func NewZapLogger(logger *zap.Logger) Logger {
	return &zapLogger{logger: logger}
}

// WithComponent returns a logger with component context attached.
func (l *zapLogger) WithComponent(meta ComponentMeta) Logger {
	fields := []zap.Field{zap.String("resource.name", meta.Name)}
	if meta.Kind != "" {
		fields = append(fields, zap.String("resource.kind", meta.Kind))
	}
	return &zapLogger{logger: l.logger.With(fields...)}
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.logger.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.logger.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.logger.Error(msg, zapFields(fields)...)
}

func (l *zapLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.logger.Debug(msg, zapFields(fields)...)
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if isRedactedField(f.Key) {
			out = append(out, zap.String(f.Key, "[REDACTED]"))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

var _ Logger = (*zapLogger)(nil)
