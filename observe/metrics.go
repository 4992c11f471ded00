package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LifecycleMetrics records lifecycle events for managed resources.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type LifecycleMetrics interface {
	// RecordTransition records a status transition.
	RecordTransition(ctx context.Context, meta ComponentMeta, from, to string)

	// RecordProbe records a health probe with its duration and outcome.
	RecordProbe(ctx context.Context, meta ComponentMeta, duration time.Duration, healthy bool)

	// RecordHeal records a heal attempt, the backoff delay that preceded it,
	// and its outcome.
	RecordHeal(ctx context.Context, meta ComponentMeta, delay time.Duration, err error)
}

// lifecycleMetrics is the concrete implementation of LifecycleMetrics.
type lifecycleMetrics struct {
	meter        metric.Meter
	transitions  metric.Int64Counter
	probeCount   metric.Int64Counter
	probeHist    metric.Float64Histogram
	healAttempts metric.Int64Counter
}

// NewLifecycleMetrics creates a LifecycleMetrics backed by the given meter.
func NewLifecycleMetrics(meter metric.Meter) (LifecycleMetrics, error) {
	transitions, err := meter.Int64Counter(
		"resource.transitions.total",
		metric.WithDescription("Total number of resource status transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	probeCount, err := meter.Int64Counter(
		"resource.probes.total",
		metric.WithDescription("Total number of health probes"),
		metric.WithUnit("{probe}"),
	)
	if err != nil {
		return nil, err
	}

	probeHist, err := meter.Float64Histogram(
		"resource.probe.duration_ms",
		metric.WithDescription("Health probe duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	healAttempts, err := meter.Int64Counter(
		"resource.heal.attempts",
		metric.WithDescription("Total number of heal attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	return &lifecycleMetrics{
		meter:        meter,
		transitions:  transitions,
		probeCount:   probeCount,
		probeHist:    probeHist,
		healAttempts: healAttempts,
	}, nil
}

func (m *lifecycleMetrics) baseAttrs(meta ComponentMeta) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("resource.id", meta.ID()),
		attribute.String("resource.name", meta.Name),
	}
	if meta.Kind != "" {
		attrs = append(attrs, attribute.String("resource.kind", meta.Kind))
	}
	return attrs
}

// RecordTransition records a status transition.
func (m *lifecycleMetrics) RecordTransition(ctx context.Context, meta ComponentMeta, from, to string) {
	attrs := append(m.baseAttrs(meta),
		attribute.String("from", from),
		attribute.String("to", to),
	)
	m.transitions.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordProbe records a health probe.
func (m *lifecycleMetrics) RecordProbe(ctx context.Context, meta ComponentMeta, duration time.Duration, healthy bool) {
	attrs := append(m.baseAttrs(meta), attribute.Bool("healthy", healthy))
	opt := metric.WithAttributes(attrs...)

	m.probeCount.Add(ctx, 1, opt)
	m.probeHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// RecordHeal records a heal attempt.
func (m *lifecycleMetrics) RecordHeal(ctx context.Context, meta ComponentMeta, delay time.Duration, err error) {
	attrs := append(m.baseAttrs(meta),
		attribute.Bool("success", err == nil),
		attribute.Int64("delay_ms", delay.Milliseconds()),
	)
	m.healAttempts.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// nopLifecycleMetrics is a metrics implementation that does nothing.
type nopLifecycleMetrics struct{}

// NewNopLifecycleMetrics returns a LifecycleMetrics that discards everything.
func NewNopLifecycleMetrics() LifecycleMetrics {
	return &nopLifecycleMetrics{}
}

func (m *nopLifecycleMetrics) RecordTransition(ctx context.Context, meta ComponentMeta, from, to string) {
}

func (m *nopLifecycleMetrics) RecordProbe(ctx context.Context, meta ComponentMeta, duration time.Duration, healthy bool) {
}

func (m *nopLifecycleMetrics) RecordHeal(ctx context.Context, meta ComponentMeta, delay time.Duration, err error) {
}
