// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store defines the durable key-value slot the snapshot is written to.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, memory)
// without changing the gateway or the application store.
type Store interface {
	// Get returns the value stored under key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}
