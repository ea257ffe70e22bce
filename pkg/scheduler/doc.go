// Package scheduler provides the delivery and rollover controller for the
// reminder engine.
//
// This package includes:
//   - Scheduler: handles timer fires, notification dispatch and rollover
//   - Bootstrap: reconciles store state with wall-clock time at start-up
//   - an optional cron-driven reconciliation sweep re-arming orphaned timers
//
// Each timer fire runs on its own goroutine; reminders are independent rows,
// so no global lock serializes fires of different reminders.
//
// Most users should import the root package
// github.com/DmitriiFRS/my-realty-x-api which wires the scheduler together
// with the service layer.
package scheduler
