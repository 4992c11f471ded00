package observe_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/resourceops/observe"
)

func ExampleComponentMeta_SpanName() {
	meta := observe.ComponentMeta{Name: "primary", Kind: "postgres"}
	fmt.Println(meta.SpanName("init"))
	fmt.Println(meta.SpanName("check"))
	// Output:
	// resource.init.postgres.primary
	// resource.check.postgres.primary
}

func ExampleNewObserver() {
	obs, err := observe.NewObserver(context.Background(), observe.Config{
		ServiceName: "orders",
		Version:     "1.4.0",
		Tracing:     observe.TracingConfig{Enabled: true, Exporter: "none", SamplePct: 0.1},
		Metrics:     observe.MetricsConfig{Enabled: true, Exporter: "none"},
		Logging:     observe.LoggingConfig{Enabled: true, Level: "info"},
	})
	if err != nil {
		fmt.Println("setup error:", err)
		return
	}
	defer obs.Shutdown(context.Background())

	fmt.Println(obs.Tracer() != nil, obs.Logger() != nil)
	// Output: true true
}
