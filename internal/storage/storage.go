// Package storage provides persistent storage for expense records.
package storage

import (
	"fmt"

	"github.com/user/gastos/internal/model"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// KV is a flat string-keyed namespace accessed synchronously.
//
// Implementations are single-writer stores: no locking is layered on top,
// and callers must not share a namespace across concurrent writers.
type KV interface {
	// Get retrieves the value stored under key. ok is false when the key
	// is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key from the namespace. Deleting an absent key is
	// not an error.
	Delete(key string) error

	// Path returns the location of the backing file.
	Path() string

	// Close releases resources.
	Close() error
}

// Open creates the KV backend named by backend, rooted at dir.
func Open(backend, dir string) (KV, error) {
	switch backend {
	case BackendSQLite:
		return NewSQLiteKV(dir)
	case BackendFile:
		return NewFileKV(dir)
	default:
		return nil, fmt.Errorf("%w: %q (expected %q or %q)",
			model.ErrUnknownBackend, backend, BackendSQLite, BackendFile)
	}
}
