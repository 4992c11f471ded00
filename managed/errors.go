package managed

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingName indicates Config.Name is empty.
	ErrMissingName = errors.New("managed: resource name is required")

	// ErrMissingInitialize indicates Config.Initialize is nil.
	ErrMissingInitialize = errors.New("managed: initialize function is required")

	// ErrMissingCheck indicates Healthcheck.Check is nil.
	ErrMissingCheck = errors.New("managed: healthcheck function is required")

	// ErrClosed is returned when an operation is invoked on a closed resource.
	ErrClosed = errors.New("managed: resource is closed")

	// ErrProbeFailed records a probe that reported unhealthy without an error.
	ErrProbeFailed = errors.New("managed: healthcheck reported unhealthy")

	// ErrNotReady matches any NotReadyError via errors.Is.
	ErrNotReady = errors.New("managed: resource is not ready")
)

// NotReadyError is returned by Get when the resource is not ready. It carries
// the resource name and the last captured failure for diagnostics.
type NotReadyError struct {
	// Name identifies the resource.
	Name string

	// Err is the last captured failure, nil if the resource has not failed
	// since its last successful transition to ready.
	Err error
}

// Error returns the error message.
func (e *NotReadyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("managed: resource %q is not ready: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("managed: resource %q is not ready", e.Name)
}

// Unwrap returns the last captured failure.
func (e *NotReadyError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNotReady, so callers can match with
// errors.Is without knowing the concrete type.
func (e *NotReadyError) Is(target error) bool {
	return target == ErrNotReady
}

// normalizeRecovered converts a recovered panic value into an error so the
// last captured failure always has a uniform representation.
func normalizeRecovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("managed: panic: %v", v)
}
