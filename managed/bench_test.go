package managed

import (
	"context"
	"testing"
	"time"

	"github.com/jonwraymond/resourceops/observe"
)

func BenchmarkResource_Get(b *testing.B) {
	cfg := testConfig()
	r, _ := New(cfg)
	if err := r.Init(context.Background()); err != nil {
		b.Fatalf("Init() error = %v", err)
	}
	defer r.Close(context.Background())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResource_Get_Parallel(b *testing.B) {
	r, _ := New(testConfig())
	if err := r.Init(context.Background()); err != nil {
		b.Fatalf("Init() error = %v", err)
	}
	defer r.Close(context.Background())

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := r.Get(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkResource_Check(b *testing.B) {
	cfg := testConfig()
	cfg.Logger = observe.NewNopLogger()
	r, _ := New(cfg)
	if err := r.Init(context.Background()); err != nil {
		b.Fatalf("Init() error = %v", err)
	}
	defer r.Close(context.Background())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Check(context.Background())
	}
}

func BenchmarkHealStrategy_NextInterval(b *testing.B) {
	s := NewHealStrategy(HealConfig{
		InitialDelay: 10 * time.Millisecond,
		MaxDelay:     time.Minute,
		Jitter:       true,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.NextInterval()
	}
}
