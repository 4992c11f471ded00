package managed

import (
	"testing"
	"time"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		n    int
		unit IntervalUnit
		want time.Duration
	}{
		{500, UnitMillisecond, 500 * time.Millisecond},
		{30, UnitSecond, 30 * time.Second},
		{5, UnitMinute, 5 * time.Minute},
		{2, UnitHour, 2 * time.Hour},
		{10, "fortnight", 10 * time.Second}, // unknown unit falls back to seconds
		{0, UnitSecond, 0},
		{-3, UnitMinute, 0},
	}

	for _, tt := range tests {
		if got := Interval(tt.n, tt.unit); got != tt.want {
			t.Errorf("Interval(%d, %q) = %v, want %v", tt.n, tt.unit, got, tt.want)
		}
	}
}
