// Package cache provides the key/value caches behind HTTP response reuse and
// built-artifact reuse.
//
// # Backends
//
//   - [FileCache]: JSON entries under ~/.cache/scholarnet, the CLI default
//   - [RedisCache]: a shared Redis instance, for `serve` deployments
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: caching disabled (--no-cache)
//
// [Open] picks one from an [Options] value. All backends treat a zero TTL as
// "never expires" and report misses as (nil, false, nil), never as an error.
//
// # Keys
//
// A [Keyer] derives keys so every caller names entries the same way:
// HTTP responses by namespace and URL, profiles by locator, rendered
// artifacts by graph hash plus render options.
package cache

import (
	"context"
	"time"
)

// Default lifetimes of cached entries.
const (
	TTLHTTP     = 24 * time.Hour
	TTLProfile  = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte slices by key.
type Cache interface {
	// Get returns the value for key. A miss is reported as ok=false with a
	// nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero keeps the entry until it is
	// deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
