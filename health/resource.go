package health

import (
	"context"
	"time"
)

// ResourceSource is the narrow surface a managed resource exposes for health
// reporting. *managed.Resource satisfies it for any instance type.
type ResourceSource interface {
	Name() string
	Ready() bool
	LastError() error
	StateTimestamp() time.Time
}

// ResourceChecker reports the health of a managed resource from its
// lifecycle state, without running an extra probe: the resource already
// re-validates itself on its own cadence.
type ResourceChecker struct {
	src ResourceSource
}

// NewResourceChecker creates a Checker over a managed resource.
func NewResourceChecker(src ResourceSource) *ResourceChecker {
	return &ResourceChecker{src: src}
}

// Name returns the resource name.
func (c *ResourceChecker) Name() string {
	return c.src.Name()
}

// Check reports healthy while the resource is ready and unhealthy otherwise,
// with the last captured failure attached.
func (c *ResourceChecker) Check(ctx context.Context) Result {
	details := map[string]any{
		"since": c.src.StateTimestamp().UTC().Format(time.RFC3339),
	}

	if c.src.Ready() {
		return Healthy("resource ready").WithDetails(details)
	}

	err := c.src.LastError()
	if err == nil {
		err = ErrCheckFailed
	}
	return Unhealthy("resource not ready", err).WithDetails(details)
}
