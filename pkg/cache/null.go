package cache

import (
	"context"
	"time"
)

// NullCache stands in for a cache when filter results should be
// recomputed on every run (--no-cache, or no usable cache directory).
// Lookups always miss and writes are dropped.
type NullCache struct{}

// NewNullCache returns a cache that holds nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
