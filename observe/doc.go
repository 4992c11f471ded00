// Package observe provides observability primitives for managed resource
// lifecycles: a structured logger, lifecycle metrics over an OpenTelemetry
// meter, and lifecycle span tracing.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. Consumers wire the observer into managed resources
// or their own plumbing.
package observe
