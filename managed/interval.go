package managed

import "time"

// IntervalUnit is the time unit of a probe cadence.
type IntervalUnit string

const (
	// UnitMillisecond expresses the cadence in milliseconds.
	UnitMillisecond IntervalUnit = "ms"
	// UnitSecond expresses the cadence in seconds.
	UnitSecond IntervalUnit = "s"
	// UnitMinute expresses the cadence in minutes.
	UnitMinute IntervalUnit = "m"
	// UnitHour expresses the cadence in hours.
	UnitHour IntervalUnit = "h"
)

// Interval converts a cadence magnitude and unit into a duration.
// Non-positive magnitudes yield zero; an unknown unit is read as seconds.
func Interval(n int, unit IntervalUnit) time.Duration {
	if n <= 0 {
		return 0
	}
	switch unit {
	case UnitMillisecond:
		return time.Duration(n) * time.Millisecond
	case UnitMinute:
		return time.Duration(n) * time.Minute
	case UnitHour:
		return time.Duration(n) * time.Hour
	default:
		return time.Duration(n) * time.Second
	}
}
