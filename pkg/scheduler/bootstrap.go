package scheduler

import (
	"context"
	"fmt"

	"github.com/DmitriiFRS/my-realty-x-api/pkg/core"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/occurrence"
)

// Bootstrap reconciles the store with wall-clock time and re-arms every
// active reminder. It runs once at process start, before any scheduling
// requests are served.
//
// A reminder whose notify instant is still in the future is armed as
// persisted. One whose notify instant is unset or already elapsed (the
// process was down through one or more fires) gets a fresh occurrence
// computed from its current due date; missed occurrences are skipped, not
// queued.
func (s *Scheduler) Bootstrap(ctx context.Context) error {
	active, err := s.store.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("load active reminders: %w", err)
	}

	var armed, recomputed int
	for _, r := range active {
		fresh, err := s.armOrRecover(ctx, r)
		if err != nil {
			s.cfg.Logger.Error("failed to recover reminder", "reminder_id", r.ID, "error", err)
			continue
		}
		if fresh {
			recomputed++
		}
		armed++
	}

	s.cfg.Logger.Info("reminder bootstrap complete",
		"active", len(active), "armed", armed, "recomputed", recomputed)

	if s.cfg.SweepSpec != "" {
		if err := s.startSweep(); err != nil {
			return fmt.Errorf("start reconciliation sweep: %w", err)
		}
	}
	return nil
}

// armOrRecover arms the reminder at its persisted notify instant, or
// recomputes and persists a fresh occurrence when that instant has elapsed.
// It reports whether a recompute happened.
func (s *Scheduler) armOrRecover(ctx context.Context, r *core.Reminder) (bool, error) {
	now := s.cfg.Now()
	if r.RemindAt != nil && r.RemindAt.After(now) {
		s.reg.Arm(r.ID, *r.RemindAt, s.handleFire)
		return false, nil
	}

	nextDue, notifyAt, exhausted := occurrence.Next(
		r.DueDate, anchorDay(r), r.AdvanceDays, 0, now)
	if exhausted {
		s.cfg.Logger.Warn("occurrence search exhausted during recovery",
			"reminder_id", r.ID, "due_date", r.DueDate)
	}

	if err := s.store.Reschedule(ctx, r.ID, nextDue, notifyAt); err != nil {
		return false, err
	}
	s.reg.Arm(r.ID, notifyAt, s.handleFire)
	return true, nil
}
