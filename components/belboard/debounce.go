package belboard

import (
	"sync"
	"time"
)

// DefaultDebounce coalesces rapid keystrokes on free-text search inputs.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer is an explicit schedule/cancel pair: each Schedule supersedes
// any pending callback, so only the last write within the window fires.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   int
}

// NewDebouncer builds a debouncer with the given delay; non-positive
// delays use DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Schedule arranges fn to run after the delay, cancelling any pending
// callback first (last-write-wins).
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		live := seq == d.seq
		d.mu.Unlock()
		if live {
			fn()
		}
	})
}

// Cancel drops any pending callback without scheduling a new one.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
