package registry

import (
	"sync"
	"time"
)

// FireFunc is invoked when a timer fires. It runs on the timer's own
// goroutine, after the entry has been removed from the registry.
type FireFunc func(id string)

type entry struct {
	timer  *time.Timer
	fireAt time.Time
}

// Registry holds at most one live timer per reminder id. All methods are
// safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	timers map[string]*entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{timers: make(map[string]*entry)}
}

// Arm schedules fn to run at the absolute instant fireAt. Any existing timer
// for the id is cancelled first; an instant already in the past fires
// immediately.
func (r *Registry) Arm(id string, fireAt time.Time, fn FireFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.timers[id]; ok {
		old.timer.Stop()
		delete(r.timers, id)
	}

	e := &entry{fireAt: fireAt}
	e.timer = time.AfterFunc(time.Until(fireAt), func() {
		r.mu.Lock()
		// A replacement or cancel may have won the race with this fire;
		// only the entry still registered under the id may proceed.
		if cur, ok := r.timers[id]; !ok || cur != e {
			r.mu.Unlock()
			return
		}
		delete(r.timers, id)
		r.mu.Unlock()

		fn(id)
	})
	r.timers[id] = e
}

// Cancel stops and removes the timer for the id. Cancelling an unknown id is
// a no-op.
func (r *Registry) Cancel(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.timers[id]; ok {
		e.timer.Stop()
		delete(r.timers, id)
	}
}

// Exists reports whether a live timer is registered for the id.
func (r *Registry) Exists(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.timers[id]
	return ok
}

// FireAt returns the instant the id's timer is armed for.
func (r *Registry) FireAt(id string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.timers[id]
	if !ok {
		return time.Time{}, false
	}
	return e.fireAt, true
}

// Len returns the number of live timers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Stop cancels every live timer. Used on shutdown; timers that already
// started firing still run to completion.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.timers {
		e.timer.Stop()
		delete(r.timers, id)
	}
}
