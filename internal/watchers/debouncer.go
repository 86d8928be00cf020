package watchers

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// debouncer runs fn once delay has passed without another Touch.
type debouncer struct {
	clock clock.Clock
	delay time.Duration
	fn    func()

	mu    sync.Mutex
	timer *clock.Timer
}

func newDebouncer(clk clock.Clock, delay time.Duration, fn func()) *debouncer {
	return &debouncer{clock: clk, delay: delay, fn: fn}
}

func (d *debouncer) Touch() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, d.fn)
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
