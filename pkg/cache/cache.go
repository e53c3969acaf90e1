// Package cache stores rendered bouquet artifacts between runs.
//
// Generation is deterministic, so an artifact is fully described by its seed,
// format and rendering options. The CLI keeps rasterized PNG and PDF output in
// a [FileCache] under the user cache directory so re-rendering a seed skips
// the external rasterizer.
//
// # Keys
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the key components;
// [ScopedKeyer] adds a prefix, which the CLI uses to separate artifacts
// produced by different builds.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
//	key := keyer.ArtifactKey("2024-01-01", cache.ArtifactKeyOpts{Format: "png", Width: 800})
package cache

import (
	"context"
	"errors"
	"time"
)

// TTLArtifact bounds how long rendered artifacts are kept.
const TTLArtifact = 30 * 24 * time.Hour

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Lookup is Get with a miss reported as ErrCacheMiss.
func Lookup(ctx context.Context, c Cache, key string) ([]byte, error) {
	data, hit, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, ErrCacheMiss
	}
	return data, nil
}
