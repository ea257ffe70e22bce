package core

import (
	"errors"
	"fmt"
)

// Operational errors surfaced to callers of the service layer.
var (
	ErrNotFound       = errors.New("reminders: reminder not found")
	ErrEstateNotFound = errors.New("reminders: estate not found")
	ErrOwnerNotFound  = errors.New("reminders: owner not found")
	ErrForbidden      = errors.New("reminders: caller does not own this reminder")
)

// Validation errors for creation and update input.
var (
	ErrInvalidDueDate     = errors.New("reminders: due date is zero or malformed")
	ErrInvalidAdvanceDays = errors.New("reminders: advance days must be 1, 3 or 7")
	ErrInvalidOriginalDay = errors.New("reminders: original day must be within 1-31")
	ErrTextTooLong        = errors.New("reminders: text exceeds maximum length")
	ErrNegativeAmount     = errors.New("reminders: amount must not be negative")
)

// ValidationError annotates a validation failure with the offending field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Invalid wraps a sentinel into a field-tagged validation error.
func Invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// DeliveryError reports a failed Notifier call. It is logged by the
// scheduler and never surfaced to request-time callers; the fire still
// counts as attempted.
type DeliveryError struct {
	ReminderID string
	Err        error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed for reminder %s: %v", e.ReminderID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
