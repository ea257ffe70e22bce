package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
)

// startSweep begins the periodic reconciliation pass on the configured cron
// spec. The sweep is a backstop: replace-on-arm and the fire-time re-read
// already keep the registry consistent, but a failed rollover persist or a
// store written to by another process can leave an active reminder without a
// timer.
func (s *Scheduler) startSweep() error {
	c := cron.New()
	if _, err := c.AddFunc(s.cfg.SweepSpec, s.sweepOnce); err != nil {
		return err
	}
	s.cron = c
	c.Start()
	s.cfg.Logger.Info("reconciliation sweep started", "spec", s.cfg.SweepSpec)
	return nil
}

// sweepOnce re-arms every active reminder that has no live timer.
func (s *Scheduler) sweepOnce() {
	ctx := context.Background()
	if s.cfg.FireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FireTimeout)
		defer cancel()
	}

	active, err := s.store.ListActive(ctx)
	if err != nil {
		s.cfg.Logger.Error("sweep failed to list active reminders", "error", err)
		return
	}

	for _, r := range active {
		if s.reg.Exists(r.ID) {
			continue
		}
		s.cfg.Logger.Warn("active reminder had no timer, re-arming", "reminder_id", r.ID)
		if _, err := s.armOrRecover(ctx, r); err != nil {
			s.cfg.Logger.Error("sweep failed to re-arm reminder", "reminder_id", r.ID, "error", err)
		}
	}
}
