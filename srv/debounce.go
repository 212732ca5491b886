package srv

import (
	"sync"
	"time"
)

// Debouncer delays live checks until the writer pauses. Each Trigger replaces the
// pending text and restarts the delay; only the last text is checked.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending string
	cancel  chan struct{}
	onFire  func(text string) // called on its own goroutine
}

// NewDebouncer creates a Debouncer that calls onFire once delay has passed without
// a newer Trigger.
func NewDebouncer(delay time.Duration, onFire func(string)) *Debouncer {
	return &Debouncer{
		delay:  delay,
		onFire: onFire,
	}
}

// Trigger schedules text, cancelling any pending one.
func (d *Debouncer) Trigger(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.pending = text
	d.cancel = make(chan struct{})
	go d.run(d.cancel, text)
}

// Stop cancels the pending text, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Debouncer) stopLocked() {
	if d.cancel != nil {
		close(d.cancel)
		d.cancel = nil
	}
	d.pending = ""
}

// Pending reports whether a text is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

func (d *Debouncer) run(cancel chan struct{}, text string) {
	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-cancel:
		return
	case <-timer.C:
		d.mu.Lock()
		if d.cancel != cancel {
			// Replaced or stopped while the timer fired.
			d.mu.Unlock()
			return
		}
		d.cancel = nil
		d.pending = ""
		d.mu.Unlock()
		if d.onFire != nil {
			d.onFire(text)
		}
	}
}
