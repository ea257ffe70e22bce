// Package core provides the fundamental types and interfaces for the
// reminders package.
//
// This package contains:
//   - Reminder data model with GORM annotations
//   - Store interface defining the persistence contract
//   - Notifier and Directory collaborator interfaces
//   - Event types for engine monitoring
//   - Error types for validation and delivery
//
// Most users should import the root package
// github.com/DmitriiFRS/my-realty-x-api instead of this package directly.
package core
