// Package service exposes the reminder operations consumed by the
// surrounding CRUD layer: create, list, update, deactivate and delete.
//
// Every mutation routes through the timer registry via the scheduler, so the
// "one live timer per active reminder" invariant holds on every path, not
// just on fires. Callers never touch the store directly.
package service
