package cache

import (
	"context"
	"time"
)

// NullCache stores nothing: every lookup misses and writes are dropped.
// It backs --no-cache runs. Like FileCache it reports a canceled context,
// so a canceled run fails at the same point with or without caching.
type NullCache struct{}

// NewNullCache returns a cache that never holds an entry.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(ctx context.Context, _ string) ([]byte, bool, error) {
	return nil, false, ctx.Err()
}

func (NullCache) Set(ctx context.Context, _ string, _ []byte, _ time.Duration) error {
	return ctx.Err()
}

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
