package fs

import (
	"sync"
	"time"

	"github.com/avetori/flownote/pkg/core"
)

// debouncer coalesces bursts of filesystem events per (type, key) pair.
// Atomic snapshot writes show up as create+rename pairs; without
// debouncing every store mutation would emit several events.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire(e) after the debounce delay, resetting any pending
// timer for the same (type, key) pair.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	k := string(e.Type) + ":" + e.Key
	if t, ok := d.timers[k]; ok && t.Stop() {
		// Pending timer replaced; its wait-group slot carries over.
	} else {
		d.wg.Add(1)
	}

	d.timers[k] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, k)
		d.mu.Unlock()
		fire(e)
	})
}

// stopAndWait rejects new events, cancels pending timers and waits (up to
// timeout) for any in-flight fire callbacks to finish.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for k, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
			delete(d.timers, k)
		}
	}
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
