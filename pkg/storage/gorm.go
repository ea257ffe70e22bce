package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DmitriiFRS/my-realty-x-api/pkg/core"
)

// GormStore implements core.Store using GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB returns the underlying *gorm.DB.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

// IsSQLite reports whether the store is backed by SQLite.
func (s *GormStore) IsSQLite() bool {
	return s.db != nil && s.db.Dialector.Name() == "sqlite"
}

// Migrate creates the necessary tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&core.Reminder{})
}

// Create inserts a reminder, assigning an id when none is set.
func (s *GormStore) Create(ctx context.Context, r *core.Reminder) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Recurrence == "" {
		r.Recurrence = core.RecurrenceMonthly
	}
	return s.db.WithContext(ctx).Create(r).Error
}

// Save writes the full reminder row.
func (s *GormStore) Save(ctx context.Context, r *core.Reminder) error {
	return s.db.WithContext(ctx).Save(r).Error
}

// Delete removes the reminder row. Deleting an unknown id returns
// core.ErrNotFound.
func (s *GormStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&core.Reminder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.ErrNotFound
	}
	return nil
}

// Get fetches a reminder by id, returning core.ErrNotFound when absent.
func (s *GormStore) Get(ctx context.Context, id string) (*core.Reminder, error) {
	var r core.Reminder
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return nil, err
	}
	return &r, nil
}

// ListActive returns every reminder with is_active = true.
func (s *GormStore) ListActive(ctx context.Context) ([]*core.Reminder, error) {
	var out []*core.Reminder
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&out).Error
	return out, err
}

// ListByOwner returns the owner's reminders ordered by due date ascending.
func (s *GormStore) ListByOwner(ctx context.Context, ownerID string) ([]*core.Reminder, error) {
	var out []*core.Reminder
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("due_date ASC").
		Find(&out).Error
	return out, err
}

// ApplyRollover records a fire and advances the reminder to its next
// occurrence in a single update.
func (s *GormStore) ApplyRollover(ctx context.Context, id string, firedAt, nextDue, notifyAt time.Time) error {
	return s.applyFireOutcome(ctx, id, map[string]any{
		"last_reminded_at": firedAt,
		"due_date":         nextDue,
		"remind_at":        notifyAt,
	})
}

// FinishOnce records the single fire of a ONCE reminder and deactivates it
// in a single update.
func (s *GormStore) FinishOnce(ctx context.Context, id string, firedAt time.Time) error {
	return s.applyFireOutcome(ctx, id, map[string]any{
		"last_reminded_at": firedAt,
		"is_active":        false,
		"remind_at":        nil,
	})
}

// Reschedule persists a recomputed occurrence without recording a fire.
func (s *GormStore) Reschedule(ctx context.Context, id string, nextDue, notifyAt time.Time) error {
	return s.applyFireOutcome(ctx, id, map[string]any{
		"due_date":  nextDue,
		"remind_at": notifyAt,
	})
}

// Deactivate clears the schedule without recording a fire.
func (s *GormStore) Deactivate(ctx context.Context, id string) error {
	return s.applyFireOutcome(ctx, id, map[string]any{
		"is_active": false,
		"remind_at": nil,
	})
}

func (s *GormStore) applyFireOutcome(ctx context.Context, id string, updates map[string]any) error {
	result := s.db.WithContext(ctx).
		Model(&core.Reminder{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.ErrNotFound
	}
	return nil
}
