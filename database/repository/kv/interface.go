package kvRepo

import (
	"context"
	"time"
)

// Store is the key/value persistence adapter. Values are opaque string blobs.
type Store interface {
	// Get returns the value stored under key; found is false when the key is absent or expired.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key with no expiry.
	Set(ctx context.Context, key, value string) error
	// SetWithTTL stores value under key; it disappears after ttl.
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
