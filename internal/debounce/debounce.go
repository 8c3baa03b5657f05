// Package debounce decouples keystroke-rate input events from filter
// updates. A Debouncer holds the current draft text and propagates it only
// after a quiet period with no further input, so rapid typing produces a
// single update carrying the final settled value.
package debounce

import (
	"sync"
	"time"
)

// afterFunc is a seam for tests to control timer scheduling.
var afterFunc = time.AfterFunc

// Debouncer propagates settled text input through emit. It fires at most
// once per settled value: re-settling on the value that was last emitted
// does not fire again.
type Debouncer struct {
	delay time.Duration
	emit  func(string)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	draft   string
	last    string
	stopped bool
}

// New creates a Debouncer and immediately propagates the mount-time value,
// even when it is empty, so a stale search filter is never left in place on
// first render.
func New(delay time.Duration, initial string, emit func(string)) *Debouncer {
	d := &Debouncer{
		delay: delay,
		emit:  emit,
		draft: initial,
		last:  initial,
	}
	emit(initial)
	return d
}

// Input records a new draft value and restarts the quiet-period timer.
// Only the value in place when the timer expires is propagated.
func (d *Debouncer) Input(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.draft = text
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = afterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// Flush propagates the current draft immediately, cancelling any pending
// timer. It is a no-op when the draft already settled.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	value, ok := d.settleLocked()
	d.mu.Unlock()

	if ok {
		d.emit(value)
	}
}

// Stop cancels any pending propagation. The Debouncer cannot be reused.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs on timer expiry. A stale generation means newer input restarted
// the quiet period, so the expiry is ignored.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	value, ok := d.settleLocked()
	d.mu.Unlock()

	if ok {
		d.emit(value)
	}
}

// settleLocked marks the draft as settled and reports whether it changed
// since the last propagation. The emit call itself happens outside the lock
// so the callback may feed other components freely.
func (d *Debouncer) settleLocked() (string, bool) {
	if d.draft == d.last {
		return "", false
	}
	d.last = d.draft
	return d.draft, true
}
