// Package kv provides the durable key-value stores backing the board.
//
// Values are opaque strings. A Set replaces the previous value wholesale;
// there are no partial writes.
package kv

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
)

// Store is a string key-value store that survives process restarts.
type Store interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written.
	Get(key string) (value string, ok bool, err error)

	// Set replaces the value stored under key.
	Set(key, value string) error

	// Close releases resources held by the store.
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	// BackendFile stores one file per key in a directory.
	BackendFile Backend = "file"

	// BackendSQLite stores entries in a SQLite database.
	BackendSQLite Backend = "sqlite"

	// BackendMemory keeps entries in memory only.
	BackendMemory Backend = "memory"
)

// ErrInvalidKey is returned for keys that cannot be stored.
var ErrInvalidKey = errors.New("invalid key")

// ErrUnknownBackend is returned by Open for an unrecognized backend.
var ErrUnknownBackend = errors.New("unknown storage backend")

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateKey checks that key is usable by every backend.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// SQLiteFile is the database file name used by the SQLite backend.
const SQLiteFile = "kaban.db"

// Open opens the store for backend rooted at dir.
func Open(backend Backend, dir string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(dir), nil
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, SQLiteFile))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
