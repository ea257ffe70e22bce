// Package registry provides the in-process timer registry for the reminder
// engine.
//
// The registry maps a reminder id to at most one live, cancelable, fire-once
// timer. Arming replaces any existing timer for the same id, and a timer
// removes itself from the registry before invoking its handler, so a handler
// that re-arms never races its own prior registration.
package registry
