// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package cache

import (
	"context"
	"time"

	"github.com/sentirec/sentirec/internal/metrics"
)

// memoryCacheType is the metrics label for the in-process store.
const memoryCacheType = "memory"

// MemoryStore is an in-process Store backed by LRUCache. It is the
// default response cache and needs no external services.
type MemoryStore struct {
	lru *LRUCache
}

// NewMemoryStore creates a memory-backed store with the given capacity
// and TTL. Non-positive values fall back to the LRUCache defaults.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: NewLRUCache(capacity, ttl)}
}

// Get retrieves a value. The context is unused; the signature matches
// Store so callers can swap backends freely.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	value, ok := s.lru.Get(key)
	if ok {
		metrics.RecordCacheHit(memoryCacheType)
	} else {
		metrics.RecordCacheMiss(memoryCacheType)
	}
	metrics.CacheSize.WithLabelValues(memoryCacheType).Set(float64(s.lru.Len()))
	return value, ok
}

// Set stores a value with the configured TTL.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) {
	s.lru.Add(key, value)
	metrics.CacheSize.WithLabelValues(memoryCacheType).Set(float64(s.lru.Len()))
}

// Len returns the number of cached entries.
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}

// Clear removes all entries.
func (s *MemoryStore) Clear() {
	s.lru.Clear()
	metrics.CacheSize.WithLabelValues(memoryCacheType).Set(0)
}

// CleanupExpired removes expired entries in bulk and returns how many
// were dropped. The background engine service calls this periodically
// so entries that are never read again still get reclaimed.
func (s *MemoryStore) CleanupExpired() int {
	removed := s.lru.CleanupExpired()
	metrics.CacheSize.WithLabelValues(memoryCacheType).Set(float64(s.lru.Len()))
	return removed
}

// Stats returns hit/miss/eviction counters and the current size.
func (s *MemoryStore) Stats() (hits, misses, evictions int64, size int) {
	return s.lru.Stats()
}
