// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sentirec/sentirec/internal/logging"
	"github.com/sentirec/sentirec/internal/metrics"
)

// redisCacheType is the metrics label for the Redis-backed store.
const redisCacheType = "redis"

// redisPingTimeout bounds the connectivity check at construction.
const redisPingTimeout = 5 * time.Second

// RedisStore is a Store backed by a Redis server, for deployments
// running several instances that should share cache hits. Keys are
// namespaced with a prefix so one Redis database can serve multiple
// applications.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection with a
// ping. An unreachable server is a construction error so bad addresses
// fail at startup rather than as silent misses at request time.
func NewRedisStore(cfg Config) (*RedisStore, error) {
	if cfg.RedisAddr == "" {
		return nil, errors.New("redis cache backend requires an address")
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		closeQuietly(client)
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "sentirec:"
	}

	logging.Info().
		Str("addr", cfg.RedisAddr).
		Int("db", cfg.RedisDB).
		Dur("ttl", cfg.TTL).
		Msg("Redis cache connected")

	return &RedisStore{
		client: client,
		ttl:    cfg.TTL,
		prefix: prefix,
	}, nil
}

// Get retrieves a value. Backend errors are logged and reported as
// misses so the caller recomputes instead of failing.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Warn().Err(err).Str("key", key).Msg("Redis cache get failed")
		}
		metrics.RecordCacheMiss(redisCacheType)
		return nil, false
	}

	metrics.RecordCacheHit(redisCacheType)
	return value, true
}

// Set stores a value with the configured TTL. Best effort.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Redis cache set failed")
	}
}

// Len is not tracked for Redis; counting prefixed keys requires a scan.
func (s *RedisStore) Len() int {
	return -1
}

// Clear removes all keys under the store's prefix. Uses SCAN rather
// than KEYS to avoid blocking the server on large databases.
func (s *RedisStore) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			logging.Warn().Err(err).Msg("Redis cache clear failed")
			return
		}
	}
	if err := iter.Err(); err != nil {
		logging.Warn().Err(err).Msg("Redis cache scan failed")
	}
}

// Close releases the underlying client connections.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// closeQuietly closes c and logs any error at debug level.
func closeQuietly(c interface{ Close() error }) {
	if err := c.Close(); err != nil {
		logging.Debug().Err(err).Msg("Close failed")
	}
}
