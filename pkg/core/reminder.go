package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recurrence determines whether a reminder fires once or rolls over monthly.
type Recurrence string

const (
	RecurrenceOnce    Recurrence = "ONCE"
	RecurrenceMonthly Recurrence = "MONTHLY"
)

// AdvanceDaysAllowed is the set of valid notification lead times, in days.
var AdvanceDaysAllowed = []int{1, 3, 7}

// ValidAdvanceDays reports whether n is an allowed notification lead time.
func ValidAdvanceDays(n int) bool {
	for _, v := range AdvanceDaysAllowed {
		if n == v {
			return true
		}
	}
	return false
}

// Reminder is a payment reminder for an estate, owned by a user.
//
// DueDate holds the current occurrence's due instant and is advanced on every
// rollover. OriginalDay anchors the monthly schedule to a calendar day and is
// set once at creation; short months clamp the effective day without ever
// mutating the anchor. RemindAt is always derived from DueDate minus
// AdvanceDays and is recomputed on every rollover and on recovery.
//
// IsActive carries no column default: a false value would be dropped on
// insert in favor of the default. Creators set it explicitly.
//
// All timestamps are stored in UTC.
type Reminder struct {
	ID          string          `gorm:"primaryKey;size:36"`
	OwnerID     string          `gorm:"index;size:36;not null"`
	EstateID    string          `gorm:"index;size:36;not null"`
	Text        string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,8)"`
	DueDate     time.Time       `gorm:"index;not null"`
	OriginalDay int             `gorm:"not null"`
	Recurrence  Recurrence      `gorm:"size:20;default:'MONTHLY'"`
	AdvanceDays int             `gorm:"default:3"`
	RemindAt    *time.Time      `gorm:"index"`
	IsActive    bool            `gorm:"index"`

	LastRemindedAt *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// Payload is what the Notifier receives for a single fire.
type Payload struct {
	ReminderID string
	Text       string
	Amount     decimal.Decimal
	DueDate    time.Time
}

// PayloadFor builds the notification payload for a reminder.
func PayloadFor(r *Reminder) Payload {
	return Payload{
		ReminderID: r.ID,
		Text:       r.Text,
		Amount:     r.Amount,
		DueDate:    r.DueDate,
	}
}
