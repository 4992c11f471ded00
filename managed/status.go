package managed

// Status represents the lifecycle state of a managed resource.
type Status int

const (
	// StatusUninitialized means no initialization attempt has been made yet.
	StatusUninitialized Status = iota
	// StatusInitializing means an initialization attempt is in flight.
	StatusInitializing
	// StatusReady means the wrapped instance passed its last probe and is usable.
	StatusReady
	// StatusFailed means initialization or a probe failed; healing is under way.
	StatusFailed
	// StatusClosed means the resource was explicitly closed. Terminal.
	StatusClosed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusInitializing:
		return "initializing"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// HealState describes the healing activity of a resource. It is derived from
// the heal strategy rather than stored: while the resource is not failed it
// is always HealNotScheduled.
type HealState int

const (
	// HealNotScheduled means no heal attempt is pending or in flight.
	HealNotScheduled HealState = iota
	// HealScheduled means a future heal attempt is pending.
	HealScheduled
	// HealInProgress means a heal attempt is currently executing.
	HealInProgress
)

// String returns the string representation of the heal state.
func (h HealState) String() string {
	switch h {
	case HealNotScheduled:
		return "not-scheduled"
	case HealScheduled:
		return "scheduled"
	case HealInProgress:
		return "in-progress"
	default:
		return "unknown"
	}
}
