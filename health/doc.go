// Package health aggregates and exposes the health of managed resources.
//
// A Checker is any component that can report its health status: Healthy,
// Degraded, or Unhealthy. Managed resources plug in through
// NewResourceChecker, ad-hoc probes through NewCheckerFunc or NewPingChecker.
//
// # Aggregating Health Checks
//
// Use Aggregator to combine multiple checkers into one composite check:
//
//	agg := health.NewAggregator()
//	agg.Register("orders-db", health.NewResourceChecker(ordersDB))
//	agg.Register("billing-api", health.NewResourceChecker(billingAPI))
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
//
// # HTTP Endpoints
//
// The package provides HTTP handlers for common probe patterns:
//
//	// Liveness probe (for Kubernetes)
//	http.Handle("/healthz", health.LivenessHandler())
//
//	// Readiness probe over all registered resources
//	http.Handle("/readyz", health.ReadinessHandler(agg))
//
//	// Detailed health status
//	http.Handle("/health", health.DetailedHandler(agg))
package health
