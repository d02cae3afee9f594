package draft

import "time"

// DefaultDelay is the quiet period after the last edit before a save runs.
const DefaultDelay = 500 * time.Millisecond

// Debouncer is a cancellable delayed task. Every Schedule supersedes the
// tasks scheduled before it; only the most recent one ever becomes due.
// The caller owns the timer and reports back with the tag it was given.
type Debouncer struct {
	delay   time.Duration
	seq     uint64
	pending bool
}

// NewDebouncer returns a Debouncer with the given delay. A non-positive
// delay falls back to DefaultDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay is how long the caller should wait before calling Due.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule cancels any pending task and returns the tag of a new one.
func (d *Debouncer) Schedule() uint64 {
	d.seq++
	d.pending = true
	return d.seq
}

// Due reports whether the task tagged tag should run now. It returns true
// at most once per Schedule.
func (d *Debouncer) Due(tag uint64) bool {
	if !d.pending || tag != d.seq {
		return false
	}
	d.pending = false
	return true
}

// Cancel drops the pending task, if any.
func (d *Debouncer) Cancel() {
	d.pending = false
}

// Pending reports whether a scheduled task has not yet run.
func (d *Debouncer) Pending() bool {
	return d.pending
}
