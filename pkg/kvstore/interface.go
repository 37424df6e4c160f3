package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Store persists JSON-encoded values by key.
// Writes are synchronous and independent; there is no multi-key transaction.
type Store interface {
	// Get decodes the value stored under key into dst.
	Get(ctx context.Context, key string, dst any) error
	// Set JSON-encodes v and stores it under key.
	Set(ctx context.Context, key string, v any) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
