package core

import (
	"context"
	"time"
)

// Store defines the persistence layer for reminders.
//
// Get returns ErrNotFound (possibly wrapped) when no reminder exists for the
// id. The Apply* methods persist a fire outcome as a single atomic update so
// no observer can see a half-rolled-over row.
type Store interface {
	// Migrate creates the necessary database tables.
	Migrate(ctx context.Context) error

	// Lifecycle
	Create(ctx context.Context, r *Reminder) error
	Save(ctx context.Context, r *Reminder) error
	Delete(ctx context.Context, id string) error

	// Queries
	Get(ctx context.Context, id string) (*Reminder, error)
	ListActive(ctx context.Context) ([]*Reminder, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Reminder, error)

	// Fire outcomes, each applied atomically.

	// ApplyRollover records a fire and advances a monthly reminder to its
	// next occurrence.
	ApplyRollover(ctx context.Context, id string, firedAt, nextDue, notifyAt time.Time) error

	// FinishOnce records the single fire of a ONCE reminder and deactivates it.
	FinishOnce(ctx context.Context, id string, firedAt time.Time) error

	// Reschedule persists a recomputed occurrence without recording a fire
	// (recovery path).
	Reschedule(ctx context.Context, id string, nextDue, notifyAt time.Time) error

	// Deactivate clears the schedule without recording a fire (explicit
	// cancellation path).
	Deactivate(ctx context.Context, id string) error
}

// Notifier delivers a reminder notification to its owner. Implementations
// own their channel's timeout and reliability; the scheduler treats a
// returned error as a failed attempt and proceeds with the rollover.
type Notifier interface {
	Send(ctx context.Context, ownerID string, p Payload) error
}

// Directory validates the external references a reminder carries. The
// estate/user records themselves live outside this engine.
type Directory interface {
	EstateExists(ctx context.Context, estateID string) (bool, error)
	UserExists(ctx context.Context, userID string) (bool, error)
}
