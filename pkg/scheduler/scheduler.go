package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/DmitriiFRS/my-realty-x-api/pkg/core"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/occurrence"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/registry"
)

// Scheduler orchestrates timer fires: it re-reads the reminder, dispatches
// the notification and either rolls the reminder over to its next occurrence
// or deactivates it.
type Scheduler struct {
	store    core.Store
	notifier core.Notifier
	reg      *registry.Registry
	cfg      Config

	cron *cron.Cron

	mu        sync.RWMutex
	eventSubs []chan core.Event
}

// New creates a scheduler over the given store and notifier.
func New(store core.Store, notifier core.Notifier, opts ...Option) *Scheduler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt.Apply(&cfg)
	}
	return &Scheduler{
		store:    store,
		notifier: notifier,
		reg:      registry.New(),
		cfg:      cfg,
	}
}

// Registry exposes the timer registry, mainly for tests and invariant checks.
func (s *Scheduler) Registry() *registry.Registry {
	return s.reg
}

// Arm registers the reminder's timer at its notify instant. A reminder
// without a notify instant is left untouched.
func (s *Scheduler) Arm(r *core.Reminder) {
	if r.RemindAt == nil {
		return
	}
	s.reg.Arm(r.ID, *r.RemindAt, s.handleFire)
}

// Disarm cancels any live timer for the id. Unknown ids are a no-op.
func (s *Scheduler) Disarm(id string) {
	s.reg.Cancel(id)
}

// Armed reports whether the id currently has a live timer.
func (s *Scheduler) Armed(id string) bool {
	return s.reg.Exists(id)
}

// Stop cancels all timers and the reconciliation sweep. In-flight fires run
// to completion.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.cron = nil
	}
	s.reg.Stop()
}

// handleFire runs on the timer's goroutine when a reminder comes due.
func (s *Scheduler) handleFire(id string) {
	ctx := context.Background()
	if s.cfg.FireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FireTimeout)
		defer cancel()
	}

	// Re-read current state: the reminder may have been deleted or
	// deactivated between arming and firing.
	r, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.cfg.Logger.Debug("fired reminder no longer exists", "reminder_id", id)
			return
		}
		s.cfg.Logger.Error("failed to read reminder on fire", "reminder_id", id, "error", err)
		return
	}
	if !r.IsActive {
		s.reg.Cancel(id)
		return
	}

	s.Emit(&core.ReminderFired{Reminder: r, Timestamp: s.cfg.Now()})

	if err := s.notifier.Send(ctx, r.OwnerID, core.PayloadFor(r)); err != nil {
		// At-least-one-attempt semantics: the occurrence counts as
		// attempted and the rollover proceeds.
		derr := &core.DeliveryError{ReminderID: id, Err: err}
		s.cfg.Logger.Warn("reminder delivery failed", "reminder_id", id, "error", derr)
		s.Emit(&core.DeliveryFailed{ReminderID: id, Err: err, Timestamp: s.cfg.Now()})
	}

	firedAt := s.cfg.Now().UTC()

	if r.Recurrence == core.RecurrenceMonthly {
		s.rollover(ctx, r, firedAt)
		return
	}

	if err := s.store.FinishOnce(ctx, id, firedAt); err != nil {
		s.cfg.Logger.Error("failed to finish one-shot reminder", "reminder_id", id, "error", err)
		return
	}
	s.Emit(&core.ReminderDeactivated{ReminderID: id, Timestamp: firedAt})
}

func (s *Scheduler) rollover(ctx context.Context, r *core.Reminder, firedAt time.Time) {
	nextDue, notifyAt, exhausted := occurrence.Next(
		r.DueDate, anchorDay(r), r.AdvanceDays, 1, s.cfg.Now())
	if exhausted {
		s.cfg.Logger.Warn("occurrence search exhausted, falling back to next month",
			"reminder_id", r.ID, "due_date", r.DueDate)
	}

	if err := s.store.ApplyRollover(ctx, r.ID, firedAt, nextDue, notifyAt); err != nil {
		// Leave the reminder unarmed; bootstrap or the sweep recomputes it
		// from the still-persisted previous occurrence.
		s.cfg.Logger.Error("failed to persist rollover", "reminder_id", r.ID, "error", err)
		return
	}

	s.reg.Arm(r.ID, notifyAt, s.handleFire)
	s.Emit(&core.ReminderRolledOver{
		Reminder:  r,
		NextDue:   nextDue,
		NotifyAt:  notifyAt,
		Timestamp: firedAt,
	})
}

// anchorDay returns the reminder's schedule anchor, falling back to the due
// date's day for rows created before the anchor column existed.
func anchorDay(r *core.Reminder) int {
	if r.OriginalDay >= 1 && r.OriginalDay <= 31 {
		return r.OriginalDay
	}
	return r.DueDate.Day()
}

// Events returns a channel for receiving engine events.
// The caller must call Unsubscribe when done to prevent resource leaks.
func (s *Scheduler) Events() <-chan core.Event {
	ch := make(chan core.Event, 100)
	s.mu.Lock()
	s.eventSubs = append(s.eventSubs, ch)
	s.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber channel created by Events().
// The channel is not closed. After Unsubscribe returns, no further events
// are sent.
func (s *Scheduler) Unsubscribe(ch <-chan core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.eventSubs {
		if sub == ch {
			s.eventSubs = append(s.eventSubs[:i], s.eventSubs[i+1:]...)
			return
		}
	}
}

// Emit broadcasts an event to all subscribers. Slow consumers drop events
// rather than block a fire.
func (s *Scheduler) Emit(e core.Event) {
	s.mu.RLock()
	subs := make([]chan core.Event, len(s.eventSubs))
	copy(subs, s.eventSubs)
	s.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Logger returns the scheduler's logger for collaborating components.
func (s *Scheduler) Logger() *slog.Logger {
	return s.cfg.Logger
}

// Clock returns the scheduler's wall-clock source so collaborating
// components agree on "now".
func (s *Scheduler) Clock() func() time.Time {
	return s.cfg.Now
}
