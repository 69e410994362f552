package syncer

import (
	"sync"
	"time"
)

// Flusher is anything holding deferred work that can be forced out
// synchronously, e.g. on shutdown.
type Flusher interface {
	Flush()
}

// FlushRegistry collects every debounced push in the process so one shutdown
// signal can flush them all. It is an explicit object handed to each
// [Debounced] at construction, not ambient state.
type FlushRegistry struct {
	mu       sync.Mutex
	flushers []Flusher
}

// NewFlushRegistry returns an empty registry.
func NewFlushRegistry() *FlushRegistry {
	return &FlushRegistry{}
}

// Register adds f to the registry.
func (r *FlushRegistry) Register(f Flusher) {
	r.mu.Lock()
	r.flushers = append(r.flushers, f)
	r.mu.Unlock()
}

// FlushAll flushes every registered flusher, in registration order.
func (r *FlushRegistry) FlushAll() {
	r.mu.Lock()
	flushers := make([]Flusher, len(r.flushers))
	copy(flushers, r.flushers)
	r.mu.Unlock()

	for _, f := range flushers {
		f.Flush()
	}
}

// Debounced coalesces bursts of calls into a single trailing-edge invocation
// of fn. Call replaces any pending value and re-arms a single timer; only the
// most recent value is ever delivered. While fn is executing, no second
// invocation starts for the same instance — a newer pending value waits for
// the in-flight call to finish and then gets its own timer. That is safe here
// because deliveries are idempotent full-snapshot upserts, not deltas: a
// superseded in-flight result is simply overwritten by the next push.
type Debounced[T any] struct {
	fn    func(T)
	delay time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	pending  *T
	inFlight bool
}

// NewDebounced wraps fn with a delay-long coalescing window and registers the
// instance's Flush in reg (when non-nil).
func NewDebounced[T any](fn func(T), delay time.Duration, reg *FlushRegistry) *Debounced[T] {
	d := &Debounced[T]{fn: fn, delay: delay}
	if reg != nil {
		reg.Register(d)
	}
	return d
}

// Call replaces the pending value and restarts the timer.
func (d *Debounced[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = &v
	d.armLocked()
}

// Cancel stops the timer and drops the pending value without delivering it.
func (d *Debounced[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopTimerLocked()
	d.pending = nil
}

// Flush cancels the timer and delivers the pending value immediately, if one
// exists. When a delivery is already in flight the pending value is left for
// that invocation's completion handler; at shutdown whatever remains is
// best-effort by contract.
func (d *Debounced[T]) Flush() {
	d.mu.Lock()
	d.stopTimerLocked()
	if d.pending == nil || d.inFlight {
		d.mu.Unlock()
		return
	}
	v := *d.pending
	d.pending = nil
	d.inFlight = true
	d.mu.Unlock()

	d.run(v)
}

func (d *Debounced[T]) armLocked() {
	d.stopTimerLocked()
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debounced[T]) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debounced[T]) fire() {
	d.mu.Lock()
	d.timer = nil
	if d.inFlight || d.pending == nil {
		// an in-flight delivery re-arms on completion
		d.mu.Unlock()
		return
	}
	v := *d.pending
	d.pending = nil
	d.inFlight = true
	d.mu.Unlock()

	d.run(v)
}

func (d *Debounced[T]) run(v T) {
	d.fn(v)

	d.mu.Lock()
	d.inFlight = false
	if d.pending != nil && d.timer == nil {
		d.armLocked()
	}
	d.mu.Unlock()
}
