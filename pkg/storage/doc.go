// Package storage provides storage implementations for reminder persistence.
//
// This package includes:
//   - GormStore: a GORM-based implementation supporting various databases
//   - connection pool configuration helpers
//
// The Store interface is defined in pkg/core and must be implemented by any
// custom storage backend.
//
// Most users should import the root package
// github.com/DmitriiFRS/my-realty-x-api which provides NewGormStore() to
// create storage instances.
package storage
