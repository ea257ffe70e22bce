package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DmitriiFRS/my-realty-x-api/pkg/core"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/occurrence"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/scheduler"
)

// DefaultAdvanceDays is used when creation input omits the lead time.
const DefaultAdvanceDays = 3

// Service implements the reminder operations exposed to the surrounding
// CRUD layer.
type Service struct {
	store core.Store
	dir   core.Directory
	sched *scheduler.Scheduler
	now   func() time.Time
}

// New creates the service. The scheduler supplies the wall clock so service
// and fires agree on "now".
func New(store core.Store, dir core.Directory, sched *scheduler.Scheduler, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, dir: dir, sched: sched, now: now}
}

// CreateInput carries the caller-supplied fields for a new reminder.
type CreateInput struct {
	EstateID    string
	Text        string
	Amount      decimal.Decimal
	DueDate     time.Time
	OriginalDay int             // 0 defaults to DueDate's day of month
	Recurrence  core.Recurrence // empty defaults to MONTHLY
	AdvanceDays int             // 0 defaults to DefaultAdvanceDays
}

// Create validates the input, resolves the estate reference, computes the
// first upcoming occurrence and arms its timer.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*core.Reminder, error) {
	if in.DueDate.IsZero() {
		return nil, core.Invalid("dueDate", core.ErrInvalidDueDate)
	}
	due := in.DueDate.UTC()

	advance := in.AdvanceDays
	if advance == 0 {
		advance = DefaultAdvanceDays
	}
	if err := ValidateAdvanceDays(advance); err != nil {
		return nil, err
	}

	anchor := in.OriginalDay
	if anchor == 0 {
		anchor = due.Day()
	}
	if err := ValidateOriginalDay(anchor); err != nil {
		return nil, err
	}

	if in.Amount.IsNegative() {
		return nil, core.Invalid("amount", core.ErrNegativeAmount)
	}

	text := SanitizeText(in.Text)
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	rec := in.Recurrence
	if rec == "" {
		rec = core.RecurrenceMonthly
	}

	ok, err := s.dir.EstateExists(ctx, in.EstateID)
	if err != nil {
		return nil, fmt.Errorf("resolve estate: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrEstateNotFound, in.EstateID)
	}

	// Month offset 0: the given due date itself is a candidate when its
	// notify instant is still ahead of now.
	nextDue, notifyAt, exhausted := occurrence.Next(due, anchor, advance, 0, s.now())
	if exhausted {
		s.sched.Logger().Warn("occurrence search exhausted at creation", "due_date", due)
	}

	r := &core.Reminder{
		OwnerID:     ownerID,
		EstateID:    in.EstateID,
		Text:        text,
		Amount:      in.Amount,
		DueDate:     nextDue,
		OriginalDay: anchor,
		Recurrence:  rec,
		AdvanceDays: advance,
		RemindAt:    &notifyAt,
		IsActive:    true,
	}
	if err := s.store.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}

	s.sched.Arm(r)
	return r, nil
}

// ListByOwner returns the owner's reminders ordered by due date.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]*core.Reminder, error) {
	ok, err := s.dir.UserExists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrOwnerNotFound, ownerID)
	}
	return s.store.ListByOwner(ctx, ownerID)
}

// Get returns one reminder, enforcing owner-only access.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*core.Reminder, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.OwnerID != ownerID {
		return nil, core.ErrForbidden
	}
	return r, nil
}

// UpdateInput carries the mutable fields; nil pointers leave a field
// untouched. The schedule anchor is immutable and deliberately absent.
type UpdateInput struct {
	Text        *string
	Amount      *decimal.Decimal
	DueDate     *time.Time
	AdvanceDays *int
	IsActive    *bool
}

// Update mutates a reminder's note, amount or schedule fields. Any change to
// the due date or lead time recomputes the notify instant and re-arms the
// timer; deactivation cancels it synchronously.
func (s *Service) Update(ctx context.Context, ownerID, id string, in UpdateInput) (*core.Reminder, error) {
	r, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if in.Text != nil {
		text := SanitizeText(*in.Text)
		if err := ValidateText(text); err != nil {
			return nil, err
		}
		r.Text = text
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, core.Invalid("amount", core.ErrNegativeAmount)
		}
		r.Amount = *in.Amount
	}

	reschedule := false
	if in.DueDate != nil {
		if in.DueDate.IsZero() {
			return nil, core.Invalid("dueDate", core.ErrInvalidDueDate)
		}
		r.DueDate = in.DueDate.UTC()
		reschedule = true
	}
	if in.AdvanceDays != nil {
		if err := ValidateAdvanceDays(*in.AdvanceDays); err != nil {
			return nil, err
		}
		r.AdvanceDays = *in.AdvanceDays
		reschedule = true
	}
	if in.IsActive != nil && *in.IsActive != r.IsActive {
		r.IsActive = *in.IsActive
		reschedule = r.IsActive
	}

	if !r.IsActive {
		r.RemindAt = nil
		if err := s.store.Save(ctx, r); err != nil {
			return nil, fmt.Errorf("update reminder: %w", err)
		}
		s.sched.Disarm(id)
		return r, nil
	}

	if reschedule {
		nextDue, notifyAt, exhausted := occurrence.Next(
			r.DueDate, r.OriginalDay, r.AdvanceDays, 0, s.now())
		if exhausted {
			s.sched.Logger().Warn("occurrence search exhausted on update", "reminder_id", id)
		}
		r.DueDate = nextDue
		r.RemindAt = &notifyAt
	}

	if err := s.store.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	s.sched.Arm(r)
	return r, nil
}

// Deactivate cancels the schedule without deleting the record. The timer is
// removed as part of the same operation.
func (s *Service) Deactivate(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	s.sched.Disarm(id)
	if err := s.store.Deactivate(ctx, id); err != nil {
		return err
	}
	s.sched.Emit(&core.ReminderDeactivated{ReminderID: id, Timestamp: s.now()})
	return nil
}

// Delete removes the reminder entirely, cancelling any live timer first so a
// pending fire cannot race the removal.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	s.sched.Disarm(id)
	return s.store.Delete(ctx, id)
}
