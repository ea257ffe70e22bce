// Package occurrence provides the pure date arithmetic for the reminder
// engine.
//
// This package includes:
//   - Next: derives the upcoming (dueDate, notifyAt) pair from an anchor day
//   - AddMonthsClamped: month stepping that clamps to short months
//   - LastDayOfMonth: calendar helper
//
// Nothing here performs I/O or holds state; "now" is always an explicit
// argument. All arithmetic is done in UTC.
package occurrence
