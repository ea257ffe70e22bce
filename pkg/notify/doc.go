// Package notify provides Notifier implementations for the reminder engine.
//
// This package includes:
//   - SMSGateway: a logging SMS-channel stub used until a provider is wired
//   - Fanout: dispatches one fire to several notifiers
//
// The Notifier interface itself is defined in pkg/core; delivery reliability
// (timeouts, provider retries) is owned by implementations, not by the
// scheduler.
package notify
