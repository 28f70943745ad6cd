package schedule

import (
	"sync"
	"time"

	"golang.org/x/net/html"
)

// Debouncer coalesces bursts of notifications into a single callback
// after a quiet interval. The zero value is not usable; construct with
// NewDebouncer.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	fn    func()
	timer *time.Timer

	// gen stamps each armed timer. A timer that has already fired but
	// not yet locked mu cannot be stopped; the stamp lets fire detect
	// that a later Notify or Stop superseded it and discard it instead
	// of clearing the fresh timer's handle.
	gen uint64
}

// NewDebouncer creates a debouncer that invokes fn once a quiet
// interval has elapsed since the most recent Notify.
func NewDebouncer(quiet time.Duration, fn func()) *Debouncer {
	return &Debouncer{quiet: quiet, fn: fn}
}

// Notify records an event. Any pending callback is cancelled and a new
// one is armed for one quiet interval from now.
func (d *Debouncer) Notify() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.quiet, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}

// Pending reports whether a callback is currently armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending callback, including one that has fired but
// not yet run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// ReleaseTimers manages independent fire-and-forget delayed callbacks
// keyed by document node. Each node has at most one pending callback;
// scheduling again for the same node supersedes the previous one.
type ReleaseTimers struct {
	mu     sync.Mutex
	delay  time.Duration
	timers map[*html.Node]*time.Timer
}

// NewReleaseTimers creates a timer set with a fixed delay.
func NewReleaseTimers(delay time.Duration) *ReleaseTimers {
	return &ReleaseTimers{delay: delay, timers: make(map[*html.Node]*time.Timer)}
}

// Schedule arms fn to run after the delay, replacing any pending
// callback for the same node.
func (r *ReleaseTimers) Schedule(n *html.Node, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[n]; ok {
		t.Stop()
	}
	r.timers[n] = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		delete(r.timers, n)
		r.mu.Unlock()
		fn()
	})
}

// Cancel drops any pending callback for the node.
func (r *ReleaseTimers) Cancel(n *html.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.timers[n]; ok {
		t.Stop()
		delete(r.timers, n)
	}
}

// StopAll cancels every pending callback.
func (r *ReleaseTimers) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for n, t := range r.timers {
		t.Stop()
		delete(r.timers, n)
	}
}
