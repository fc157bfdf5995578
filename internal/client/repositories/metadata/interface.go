// Package metadata persists small named values in the client's local SQLite
// database. The session uses it as the durable credential slot.
package metadata

import (
	"context"
	"time"
)

// Entry is a stored value with its last write time.
type Entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
}
