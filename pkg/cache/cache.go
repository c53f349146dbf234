// Package cache provides the probe cache used to remember image dimensions.
//
// Probing a folder with thousands of images means opening every file to read
// its header. Dimensions never change for an unmodified file, so the CLI
// keeps them in a small file-backed cache keyed by path, size and mtime.
// A no-op implementation is available for --no-cache and for tests.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache implementations.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present (a miss is not an error).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
