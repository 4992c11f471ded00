package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// ComponentMeta contains metadata about a managed component for telemetry.
type ComponentMeta struct {
	Name string // Resource name (required)
	Kind string // Dependency kind, e.g. "postgres" or "redis" (optional)
}

// ID returns the fully qualified component identifier.
// Format: <kind>.<name> or just <name>.
func (m ComponentMeta) ID() string {
	if m.Kind != "" {
		return m.Kind + "." + m.Name
	}
	return m.Name
}

// SpanName returns the deterministic span name for a lifecycle operation.
// Format: resource.<op>.<id>
func (m ComponentMeta) SpanName(op string) string {
	return "resource." + op + "." + m.ID()
}

// Tracer wraps OpenTelemetry tracing with lifecycle-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartSpan must honor cancellation/deadlines.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a lifecycle operation (init, check,
	// teardown).
	StartSpan(ctx context.Context, meta ComponentMeta, op string) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with component metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta ComponentMeta, op string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("resource.id", meta.ID()),
		attribute.String("resource.name", meta.Name),
		attribute.String("resource.op", op),
	}
	if meta.Kind != "" {
		attrs = append(attrs, attribute.String("resource.kind", meta.Kind))
	}

	return t.tracer.Start(ctx, meta.SpanName(op),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// nopTracer is a tracer that does nothing.
type nopTracer struct {
	noop trace.Tracer
}

// NewNopTracer creates a no-op tracer.
func NewNopTracer() Tracer {
	return &nopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *nopTracer) StartSpan(ctx context.Context, meta ComponentMeta, op string) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName(op))
}

func (t *nopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
