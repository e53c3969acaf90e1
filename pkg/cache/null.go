package cache

import (
	"context"
	"time"
)

// nullCache backs `--no-cache`: every lookup misses and writes are
// discarded, so each render goes to the rasterizer.
type nullCache struct{}

// NewNullCache returns a cache that stores nothing. Like [FileCache], it
// reports a cancelled context as an error.
func NewNullCache() Cache {
	return nullCache{}
}

func (nullCache) Get(ctx context.Context, _ string) ([]byte, bool, error) {
	return nil, false, ctx.Err()
}

func (nullCache) Set(ctx context.Context, _ string, _ []byte, _ time.Duration) error {
	return ctx.Err()
}

func (nullCache) Delete(ctx context.Context, _ string) error {
	return ctx.Err()
}

func (nullCache) Close() error { return nil }
