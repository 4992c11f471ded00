package managed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/resourceops/observe"
)

// HealthcheckConfig configures the recurring probe over a live instance.
type HealthcheckConfig[T any] struct {
	// Interval is the probe cadence magnitude.
	// Default: 1
	Interval int

	// Unit is the probe cadence unit.
	// Default: UnitMinute
	Unit IntervalUnit

	// Check probes a live instance. A false result or a non-nil error marks
	// the resource failed. Required.
	Check func(ctx context.Context, instance T) (bool, error)
}

// Config configures a managed resource.
type Config[T any] struct {
	// Name identifies the resource in logs and diagnostics. Required.
	Name string

	// Kind describes the wrapped dependency for telemetry, e.g. "postgres".
	// Optional.
	Kind string

	// Initialize produces the wrapped instance. Required.
	Initialize func(ctx context.Context) (T, error)

	// Teardown disposes of an instance before it is discarded. Optional.
	Teardown func(ctx context.Context, instance T) error

	// Healthcheck configures the recurring probe.
	Healthcheck HealthcheckConfig[T]

	// Heal configures the backoff between heal attempts.
	Heal HealConfig

	// AutoInit invokes Init once, fire-and-forget, right after construction.
	// Default: false
	AutoInit bool

	// Logger receives lifecycle events. If nil, a stderr JSON logger is used;
	// pass observe.NewNopLogger() to disable logging.
	Logger observe.Logger

	// Tracer records lifecycle spans. If nil, spans are not recorded.
	Tracer observe.Tracer

	// Metrics records lifecycle metrics. If nil, metrics are not recorded.
	Metrics observe.LifecycleMetrics
}

// Resource wraps one external dependency instance and keeps it usable:
// it initializes the instance, re-validates it on a recurring probe, evicts
// it on failure, and schedules heal attempts with exponential backoff until
// it recovers. See the package documentation for usage.
type Resource[T any] struct {
	cfg        Config[T]
	meta       observe.ComponentMeta
	probeEvery time.Duration
	heal       *HealStrategy

	logger  observe.Logger
	tracer  observe.Tracer
	metrics observe.LifecycleMetrics

	mu        sync.Mutex
	status    Status
	instance  T
	held      bool
	lastErr   error
	stateTime time.Time

	initGroup singleflight.Group

	probeMu   sync.Mutex
	probeStop chan struct{}
	probeBusy atomic.Bool
}

// New creates a managed resource, applying defaults. When cfg.AutoInit is
// set, the first initialization attempt starts in the background before New
// returns.
func New[T any](cfg Config[T]) (*Resource[T], error) {
	if cfg.Name == "" {
		return nil, ErrMissingName
	}
	if cfg.Initialize == nil {
		return nil, ErrMissingInitialize
	}
	if cfg.Healthcheck.Check == nil {
		return nil, ErrMissingCheck
	}
	if cfg.Healthcheck.Interval <= 0 {
		cfg.Healthcheck.Interval = 1
	}
	if cfg.Healthcheck.Unit == "" {
		cfg.Healthcheck.Unit = UnitMinute
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observe.NewLogger("info")
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = observe.NewNopTracer()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observe.NewNopLifecycleMetrics()
	}

	meta := observe.ComponentMeta{Name: cfg.Name, Kind: cfg.Kind}

	r := &Resource[T]{
		cfg:        cfg,
		meta:       meta,
		probeEvery: Interval(cfg.Healthcheck.Interval, cfg.Healthcheck.Unit),
		heal:       NewHealStrategy(cfg.Heal),
		logger:     logger.WithComponent(meta),
		tracer:     tracer,
		metrics:    metrics,
		status:     StatusUninitialized,
		stateTime:  time.Now(),
	}

	if cfg.AutoInit {
		go func() {
			_ = r.Init(context.Background())
		}()
	}

	return r, nil
}

// Name returns the resource name.
func (r *Resource[T]) Name() string {
	return r.cfg.Name
}

// Status returns the current lifecycle status.
func (r *Resource[T]) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Ready reports whether the resource is currently usable.
func (r *Resource[T]) Ready() bool {
	return r.Status() == StatusReady
}

// LastError returns the last captured failure, nil if the resource has not
// failed since its last successful transition to ready.
func (r *Resource[T]) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// StateTimestamp returns when the last status transition happened.
func (r *Resource[T]) StateTimestamp() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateTime
}

// HealStatus reports the healing activity. It is always HealNotScheduled
// while the resource is not failed.
func (r *Resource[T]) HealStatus() HealState {
	if r.Status() != StatusFailed {
		return HealNotScheduled
	}
	return r.heal.State()
}

// Get returns the wrapped instance. It fails with a NotReadyError unless the
// status is ready. Callers must not cache the returned value across calls:
// re-invoking Get on every use is what makes eviction observable immediately.
func (r *Resource[T]) Get() (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusReady {
		var zero T
		return zero, &NotReadyError{Name: r.cfg.Name, Err: r.lastErr}
	}
	return r.instance, nil
}

// Check probes the live instance out of band and returns the outcome. It
// returns false with no effect when no instance is held or the resource is
// not ready. A failing probe transitions the resource to failed; the probe
// error is captured, not returned.
func (r *Resource[T]) Check(ctx context.Context) bool {
	return r.check(ctx, false)
}

func (r *Resource[T]) check(ctx context.Context, force bool) bool {
	r.mu.Lock()
	if !r.held || (r.status != StatusReady && !force) {
		r.mu.Unlock()
		return false
	}
	instance := r.instance
	r.mu.Unlock()

	ctx, span := r.tracer.StartSpan(ctx, r.meta, "check")
	start := time.Now()
	ok, err := r.runCheck(ctx, instance)
	healthy := ok && err == nil
	r.metrics.RecordProbe(ctx, r.meta, time.Since(start), healthy)

	if healthy {
		r.tracer.EndSpan(span, nil)
		r.transition(ctx, StatusReady, nil)
		return true
	}

	if err == nil {
		err = ErrProbeFailed
	}
	r.tracer.EndSpan(span, err)

	r.transition(ctx, StatusFailed, err)
	return false
}

// Init initializes the resource. It is a no-op when already ready, returns
// ErrClosed when closed, and coalesces concurrent calls into one execution:
// every caller observes the outcome of the single in-flight attempt. The
// transition to ready is gated on a passing forced probe; an initialization
// error is captured as the last error and returned.
func (r *Resource[T]) Init(ctx context.Context) error {
	r.mu.Lock()
	switch r.status {
	case StatusReady:
		r.mu.Unlock()
		return nil
	case StatusClosed:
		r.mu.Unlock()
		return ErrClosed
	}
	r.mu.Unlock()

	_, err, _ := r.initGroup.Do("init", func() (any, error) {
		return nil, r.doInit(ctx)
	})
	return err
}

func (r *Resource[T]) doInit(ctx context.Context) error {
	if !r.transition(ctx, StatusInitializing, nil) {
		return ErrClosed
	}

	initCtx, span := r.tracer.StartSpan(ctx, r.meta, "init")
	instance, err := r.runInitialize(initCtx)
	r.tracer.EndSpan(span, err)

	if err != nil {
		r.transition(ctx, StatusFailed, err)
		return err
	}

	r.mu.Lock()
	if r.status == StatusClosed {
		r.mu.Unlock()
		// Closed while initializing; the fresh instance is never held.
		_ = r.teardownInstance(ctx, instance)
		return ErrClosed
	}
	r.instance = instance
	r.held = true
	r.mu.Unlock()

	r.check(ctx, true)
	return nil
}

// Close tears down the held instance, if any, and moves the resource to the
// terminal closed state. A teardown failure is returned to the caller, but
// the instance is treated as discarded regardless. Close is idempotent.
func (r *Resource[T]) Close(ctx context.Context) error {
	err := r.release(ctx)
	r.transition(ctx, StatusClosed, nil)
	return err
}

// release detaches and tears down the held instance without a transition.
func (r *Resource[T]) release(ctx context.Context) error {
	r.mu.Lock()
	if !r.held {
		r.mu.Unlock()
		return nil
	}
	instance := r.instance
	var zero T
	r.instance = zero
	r.held = false
	r.mu.Unlock()

	return r.teardownInstance(ctx, instance)
}

func (r *Resource[T]) teardownInstance(ctx context.Context, instance T) error {
	if r.cfg.Teardown == nil {
		return nil
	}

	ctx, span := r.tracer.StartSpan(ctx, r.meta, "teardown")
	err := r.runTeardown(ctx, instance)
	r.tracer.EndSpan(span, err)

	if err != nil {
		r.logger.Error(ctx, "resource teardown failed",
			observe.Field{Key: "error", Value: err.Error()},
		)
	}
	return err
}

// transition is the single chokepoint through which status ever changes.
// It records the timestamp and the failure cause in one critical section,
// logs the change, evicts a held instance when entering failed, and
// reconciles the probe and heal schedulers. It returns false when the
// resource is closed: no transition leaves the closed state, and a refused
// transition records nothing.
func (r *Resource[T]) transition(ctx context.Context, next Status, cause error) bool {
	r.mu.Lock()
	if r.status == StatusClosed && next != StatusClosed {
		r.mu.Unlock()
		return false
	}

	prev := r.status
	r.status = next
	r.stateTime = time.Now()
	if next == StatusReady {
		r.lastErr = nil
	}
	if next == StatusFailed && cause != nil {
		r.lastErr = cause
	}
	lastErr := r.lastErr

	// A dependency with broken internal state is discarded and rebuilt from
	// scratch on the next attempt rather than trusted to repair itself.
	var evicted T
	evict := false
	if next == StatusFailed && r.held {
		evicted = r.instance
		var zero T
		r.instance = zero
		r.held = false
		evict = true
	}
	r.mu.Unlock()

	if prev != next {
		fields := []observe.Field{
			{Key: "from", Value: prev.String()},
			{Key: "to", Value: next.String()},
		}
		if next == StatusFailed {
			if lastErr != nil {
				fields = append(fields, observe.Field{Key: "error", Value: lastErr.Error()})
			}
			r.logger.Error(ctx, "resource transition", fields...)
		} else {
			r.logger.Info(ctx, "resource transition", fields...)
		}
		r.metrics.RecordTransition(ctx, r.meta, prev.String(), next.String())
	}

	if evict {
		go func() {
			_ = r.teardownInstance(context.WithoutCancel(ctx), evicted)
		}()
	}

	r.reconcile()
	return true
}

// reconcile settles the two scheduling subsystems after a transition. Both
// branches are idempotent: the probe runs exactly while ready, and a heal
// attempt is armed exactly while failed. Resetting the strategy outside of
// failed clears accumulated backoff, so a manual Init success starts the
// next failure cycle from the initial delay; the reset is skipped while a
// heal attempt is mid-flight so that its own re-failure keeps growing the
// delay.
func (r *Resource[T]) reconcile() {
	status := r.Status()

	if status == StatusReady {
		r.startProbe()
	} else {
		r.stopProbe()
	}

	if status == StatusFailed {
		r.scheduleHeal()
	} else if !r.heal.InProgress() {
		r.heal.Reset()
	}
}

func (r *Resource[T]) startProbe() {
	r.probeMu.Lock()
	defer r.probeMu.Unlock()

	if r.probeStop != nil {
		return
	}
	stop := make(chan struct{})
	r.probeStop = stop
	go r.probeLoop(stop)
}

func (r *Resource[T]) stopProbe() {
	r.probeMu.Lock()
	defer r.probeMu.Unlock()

	if r.probeStop != nil {
		close(r.probeStop)
		r.probeStop = nil
	}
}

func (r *Resource[T]) probeLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(r.probeEvery)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// Slow probes are skipped rather than queued.
			if !r.probeBusy.CompareAndSwap(false, true) {
				continue
			}
			r.check(context.Background(), false)
			r.probeBusy.Store(false)
		}
	}
}

func (r *Resource[T]) scheduleHeal() {
	delay, ok := r.heal.Arm(r.healAttempt)
	if !ok {
		return
	}
	r.logger.Info(context.Background(), "resource heal scheduled",
		observe.Field{Key: "delay_ms", Value: delay.Milliseconds()},
	)
}

// healAttempt retries initialization after the backoff delay elapsed. The
// strategy marked the attempt in flight when its timer fired. Any error from
// Init is swallowed: the transitions already reflect the failure, and a heal
// attempt has no caller to propagate to. The final reconcile arms the next
// attempt if still failed.
func (r *Resource[T]) healAttempt(delay time.Duration) {
	if r.Status() != StatusFailed {
		r.heal.end()
		r.reconcile()
		return
	}

	ctx := context.Background()
	err := r.Init(ctx)
	r.metrics.RecordHeal(ctx, r.meta, delay, err)

	r.heal.end()
	r.reconcile()
}

// runInitialize, runCheck, and runTeardown call the user-supplied operations
// with panics normalized to errors, so a misbehaving dependency can never
// take down the background scheduling.

func (r *Resource[T]) runInitialize(ctx context.Context) (instance T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = normalizeRecovered(p)
		}
	}()
	return r.cfg.Initialize(ctx)
}

func (r *Resource[T]) runCheck(ctx context.Context, instance T) (ok bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			ok, err = false, normalizeRecovered(p)
		}
	}()
	return r.cfg.Healthcheck.Check(ctx, instance)
}

func (r *Resource[T]) runTeardown(ctx context.Context, instance T) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = normalizeRecovered(p)
		}
	}()
	return r.cfg.Teardown(ctx, instance)
}
