// Package reminders provides a recurring payment-reminder scheduling engine
// with a durable store and restart recovery.
//
// This is the main package users should import. It re-exports all public
// types from the internal pkg/ packages for a clean API surface.
//
// Basic usage:
//
//	// Create storage and the engine
//	db, _ := gorm.Open(sqlite.Open("reminders.db"), &gorm.Config{})
//	store := reminders.NewGormStore(db)
//	store.Migrate(context.Background())
//	engine := reminders.NewEngine(store, directory, notifier)
//
//	// Recover persisted schedules, then serve requests
//	engine.Bootstrap(ctx)
//	engine.Service.Create(ctx, ownerID, reminders.CreateInput{...})
package reminders

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/DmitriiFRS/my-realty-x-api/pkg/core"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/notify"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/registry"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/scheduler"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/service"
	"github.com/DmitriiFRS/my-realty-x-api/pkg/storage"
)

// Type aliases re-exported from pkg/.
type (
	// Reminder is the payment reminder data model.
	Reminder = core.Reminder

	// Recurrence determines whether a reminder fires once or monthly.
	Recurrence = core.Recurrence

	// Payload is what the Notifier receives for a single fire.
	Payload = core.Payload

	// Store defines the persistence layer for reminders.
	Store = core.Store

	// Notifier delivers a reminder notification to its owner.
	Notifier = core.Notifier

	// Directory validates estate and user references.
	Directory = core.Directory

	// Event is the interface for all engine events.
	Event = core.Event

	// ReminderFired is emitted when an active reminder's timer fires.
	ReminderFired = core.ReminderFired

	// ReminderRolledOver is emitted when a monthly reminder advances.
	ReminderRolledOver = core.ReminderRolledOver

	// ReminderDeactivated is emitted when a reminder reaches a terminal state.
	ReminderDeactivated = core.ReminderDeactivated

	// DeliveryFailed is emitted when the Notifier call fails.
	DeliveryFailed = core.DeliveryFailed

	// ValidationError annotates a validation failure with the field.
	ValidationError = core.ValidationError

	// DeliveryError reports a failed Notifier call.
	DeliveryError = core.DeliveryError

	// Registry is the in-process timer registry.
	Registry = registry.Registry

	// Scheduler handles fires, rollover and recovery.
	Scheduler = scheduler.Scheduler

	// Option configures the Scheduler.
	Option = scheduler.Option

	// Service exposes the create/list/update/delete operations.
	Service = service.Service

	// CreateInput carries the fields for a new reminder.
	CreateInput = service.CreateInput

	// UpdateInput carries the mutable fields for an update.
	UpdateInput = service.UpdateInput

	// GormStore implements Store using GORM.
	GormStore = storage.GormStore

	// SMSGateway is the logging SMS-channel notifier stub.
	SMSGateway = notify.SMSGateway
)

// Recurrence constants.
const (
	RecurrenceOnce    = core.RecurrenceOnce
	RecurrenceMonthly = core.RecurrenceMonthly
)

// DefaultAdvanceDays is used when creation input omits the lead time.
const DefaultAdvanceDays = service.DefaultAdvanceDays

// Error variables.
var (
	ErrNotFound           = core.ErrNotFound
	ErrEstateNotFound     = core.ErrEstateNotFound
	ErrOwnerNotFound      = core.ErrOwnerNotFound
	ErrForbidden          = core.ErrForbidden
	ErrInvalidDueDate     = core.ErrInvalidDueDate
	ErrInvalidAdvanceDays = core.ErrInvalidAdvanceDays
	ErrInvalidOriginalDay = core.ErrInvalidOriginalDay
)

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return storage.NewGormStore(db)
}

// NewGormStoreWithPool creates a GORM-backed store with connection pooling
// configured.
func NewGormStoreWithPool(db *gorm.DB, opts ...storage.PoolOption) (*GormStore, error) {
	return storage.NewGormStoreWithPool(db, opts...)
}

// NewSMSGateway creates the logging SMS stub notifier.
func NewSMSGateway(logger *slog.Logger) *SMSGateway {
	return notify.NewSMSGateway(logger)
}

// NewScheduler creates a scheduler over the given store and notifier.
func NewScheduler(store Store, notifier Notifier, opts ...Option) *Scheduler {
	return scheduler.New(store, notifier, opts...)
}

// WithLogger sets the scheduler's logger.
var WithLogger = scheduler.WithLogger

// WithClock substitutes the scheduler's wall-clock source.
var WithClock = scheduler.WithClock

// WithFireTimeout bounds the work done for a single fire.
var WithFireTimeout = scheduler.WithFireTimeout

// WithSweep enables the periodic reconciliation sweep on a cron spec.
var WithSweep = scheduler.WithSweep

// Engine bundles the scheduler with the API-facing service over one store.
type Engine struct {
	Scheduler *Scheduler
	Service   *Service
}

// NewEngine wires a scheduler and service over the store.
func NewEngine(store Store, dir Directory, notifier Notifier, opts ...Option) *Engine {
	sched := scheduler.New(store, notifier, opts...)
	svc := service.New(store, dir, sched, sched.Clock())
	return &Engine{Scheduler: sched, Service: svc}
}

// Bootstrap reconciles persisted schedules with wall-clock time and arms a
// timer for every active reminder. Run once at process start.
func (e *Engine) Bootstrap(ctx context.Context) error {
	return e.Scheduler.Bootstrap(ctx)
}

// Stop cancels all timers and the reconciliation sweep.
func (e *Engine) Stop() {
	e.Scheduler.Stop()
}
