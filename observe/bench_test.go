package observe

import (
	"context"
	"io"
	"testing"
)

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "resource transition",
			Field{Key: "from", Value: "ready"},
			Field{Key: "to", Value: "failed"},
		)
	}
}

func BenchmarkLogger_FilteredOut(b *testing.B) {
	logger := NewLoggerWithWriter("error", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "dropped")
	}
}

func BenchmarkComponentMeta_SpanName(b *testing.B) {
	meta := ComponentMeta{Name: "primary", Kind: "postgres"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = meta.SpanName("check")
	}
}
