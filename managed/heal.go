package managed

import (
	"math/rand"
	"sync"
	"time"
)

// HealConfig configures the backoff between heal attempts.
type HealConfig struct {
	// Disabled turns automatic healing off entirely. A failed resource then
	// stays failed until Init is called manually.
	Disabled bool

	// InitialDelay is the delay before the first heal attempt.
	// Default: 1 second.
	InitialDelay time.Duration

	// MaxDelay caps the delay between heal attempts.
	// Default: 1 minute.
	MaxDelay time.Duration

	// Multiplier is the backoff growth factor.
	// Default: 2.0
	Multiplier float64

	// Jitter adds up to 25% randomness to each delay.
	// Default: false
	Jitter bool
}

// HealStrategy computes successive backoff delays after failures and owns the
// cancellable handle for the pending heal attempt. The owning Resource drives
// it: arming the next attempt while failed and resetting it otherwise.
type HealStrategy struct {
	cfg HealConfig

	mu       sync.Mutex
	delay    time.Duration // next delay to hand out
	timer    *time.Timer   // pending attempt, nil if none
	inFlight bool
}

// NewHealStrategy creates a heal strategy, applying defaults.
func NewHealStrategy(cfg HealConfig) *HealStrategy {
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Second
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = time.Minute
	}
	if cfg.MaxDelay < cfg.InitialDelay {
		cfg.MaxDelay = cfg.InitialDelay
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}

	return &HealStrategy{cfg: cfg, delay: cfg.InitialDelay}
}

// NextInterval returns the delay to wait before the next heal attempt and
// advances the backoff. The second return is false when healing is disabled.
func (s *HealStrategy) NextInterval() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextLocked()
}

func (s *HealStrategy) nextLocked() (time.Duration, bool) {
	if s.cfg.Disabled {
		return 0, false
	}

	d := s.delay

	grown := time.Duration(float64(s.delay) * s.cfg.Multiplier)
	if grown > s.cfg.MaxDelay {
		grown = s.cfg.MaxDelay
	}
	s.delay = grown

	if s.cfg.Jitter {
		if q := int64(d / 4); q > 0 {
			// #nosec G404 -- jitter is non-cryptographic timing variance.
			d += time.Duration(rand.Int63n(q))
		}
	}

	return d, true
}

// Arm schedules fn to run after the next backoff delay. It does nothing and
// returns false if an attempt is already scheduled or in flight, or healing
// is disabled. When the timer fires the attempt is marked in flight in the
// same critical section that clears the pending handle, so at most one
// attempt is ever scheduled or running; fn must call end when it concludes.
// fn receives the delay that was waited.
func (s *HealStrategy) Arm(fn func(delay time.Duration)) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil || s.inFlight {
		return 0, false
	}

	d, ok := s.nextLocked()
	if !ok {
		return 0, false
	}

	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		s.timer = nil
		s.inFlight = true
		s.mu.Unlock()
		fn(d)
	})

	return d, true
}

// Reset cancels any pending scheduled attempt and returns the backoff delay
// to its initial value. Called whenever the resource leaves the failed state.
func (s *HealStrategy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.delay = s.cfg.InitialDelay
}

// State reports whether an attempt is in flight, scheduled, or neither.
func (s *HealStrategy) State() HealState {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.inFlight:
		return HealInProgress
	case s.timer != nil:
		return HealScheduled
	default:
		return HealNotScheduled
	}
}

// InProgress reports whether a heal attempt is currently executing.
func (s *HealStrategy) InProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// end clears the in-flight marker once the attempt concludes.
func (s *HealStrategy) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}
