// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package cache

import (
	"context"
	"fmt"
	"time"
)

// Store is the interface the recommendation engine caches responses
// through. Implementations hold opaque byte values and apply a fixed
// TTL configured at construction.
//
// Get returns the cached value and true on a hit. Misses, expired
// entries, and backend errors all return false; implementations log
// backend errors rather than surface them, because a cache failure
// must never fail a request.
type Store interface {
	// Get retrieves a value. Returns the value and true if found and
	// not expired.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with the store's configured TTL. Best effort;
	// errors are logged and dropped.
	Set(ctx context.Context, key string, value []byte)

	// Len returns the number of entries currently held, or -1 when the
	// backend cannot report it cheaply.
	Len() int

	// Clear removes all entries owned by this store.
	Clear()
}

// Backend selects the Store implementation.
type Backend string

const (
	// BackendMemory is an in-process LRU cache (default).
	// Best for: single-instance deployments, no external services.
	BackendMemory Backend = "memory"

	// BackendRedis is a shared Redis-backed cache.
	// Best for: multi-instance deployments that want cache hits across
	// replicas.
	BackendRedis Backend = "redis"
)

// Config holds configuration for creating a Store.
type Config struct {
	// Backend specifies the store implementation (memory or redis)
	Backend Backend

	// TTL is the time-to-live for cache entries
	TTL time.Duration

	// Capacity is the maximum number of entries (memory backend only)
	Capacity int

	// RedisAddr is the host:port of the Redis server (redis backend only)
	RedisAddr string

	// RedisDB is the Redis logical database number (redis backend only)
	RedisDB int

	// KeyPrefix namespaces keys in shared backends. Defaults to
	// "sentirec:" when empty.
	KeyPrefix string
}

// NewStore creates a Store based on the configuration. The memory
// backend never fails; the redis backend fails when the server is
// unreachable so misconfiguration surfaces at startup.
func NewStore(cfg Config) (Store, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}

	switch cfg.Backend {
	case BackendRedis:
		return NewRedisStore(cfg)
	case BackendMemory, "":
		return NewMemoryStore(cfg.Capacity, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Verify interface implementations at compile time
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)
