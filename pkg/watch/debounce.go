package watch

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of filesystem notifications. Editors and
// atomic-save sequences fire several events per logical change; only
// the last one within the window is delivered.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: map[string]*time.Timer{},
	}
}

// add schedules fn after the debounce window, replacing any pending
// schedule for the same key.
func (d *debouncer) add(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[key]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		fn()

		// A callback that was already running when its timer got
		// replaced must not remove the replacement's entry.
		d.mu.Lock()
		if d.timers[key] == t {
			delete(d.timers, key)
		}
		d.mu.Unlock()
	})
	d.timers[key] = t
}

// stopAndWait rejects new work and waits for in-flight timers to fire
// or the timeout to elapse, whichever comes first.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
