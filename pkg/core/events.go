package core

import "time"

// Event is the interface for all engine events.
type Event interface {
	eventMarker()
}

// ReminderFired is emitted when a timer fires and the reminder is still
// active, before the Notifier is called.
type ReminderFired struct {
	Reminder  *Reminder
	Timestamp time.Time
}

func (*ReminderFired) eventMarker() {}

// ReminderRolledOver is emitted when a monthly reminder advances to its
// next occurrence.
type ReminderRolledOver struct {
	Reminder  *Reminder
	NextDue   time.Time
	NotifyAt  time.Time
	Timestamp time.Time
}

func (*ReminderRolledOver) eventMarker() {}

// ReminderDeactivated is emitted when a reminder reaches a terminal state,
// either a ONCE reminder after its single fire or an explicit cancellation.
type ReminderDeactivated struct {
	ReminderID string
	Timestamp  time.Time
}

func (*ReminderDeactivated) eventMarker() {}

// DeliveryFailed is emitted when the Notifier call fails. The rollover
// proceeds regardless.
type DeliveryFailed struct {
	ReminderID string
	Err        error
	Timestamp  time.Time
}

func (*DeliveryFailed) eventMarker() {}
