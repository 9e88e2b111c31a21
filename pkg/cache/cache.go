// Package cache stores rendered dashboard artifacts.
//
// Rendering is deterministic: the same dataset, view and render options
// always produce the same bytes. Artifacts are therefore keyed by a hash of
// the dataset plus the options ([Keyer.ArtifactKey]) and can be shared
// between CLI runs ([FileCache]) or server replicas ([RedisCache]).
// [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. A miss is reported as
// (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// TTLArtifact is how long a rendered artifact stays cached. Artifacts are
// keyed by content, so expiry only bounds disk and memory use.
const TTLArtifact = 7 * 24 * time.Hour

// Clear drops every entry of c if the backend supports it.
func Clear(ctx context.Context, c Cache) error {
	if cl, ok := c.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return nil
}
