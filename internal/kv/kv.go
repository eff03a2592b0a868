package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the opaque string-keyed storage the API is built on. Writes
// replace the entire value for a key; there are no partial updates.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error

	// PutIfAbsent stores value only when key currently holds nothing and
	// reports whether the write happened. Backs one-time initialization.
	PutIfAbsent(ctx context.Context, key, value string) (bool, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
