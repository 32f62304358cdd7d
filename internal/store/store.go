// Package store is the user-config storage: a small key-value store the
// editor mirrors its catalog into on exit, alongside the document file.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("store: key not found")

// Backend names accepted by Open.
const (
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
)

// Store is a persistent map from key to opaque bytes.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Close flushes pending writes and releases the backend.
	Close() error
}

// Open returns the backend named by backend, rooted at path.
func Open(ctx context.Context, backend, path string) (Store, error) {
	switch backend {
	case "", BackendTOML:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}
