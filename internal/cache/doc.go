// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

/*
Package cache provides the response cache used by the recommendation
engine, with in-memory and Redis backends behind a common Store
interface.

Recommendation responses are expensive to compute (neighbor search plus
sentiment scoring over candidate reviews), deterministic for a fixed
dataset and threshold, and frequently re-requested for the same user.
Caching the serialized response keeps repeat lookups cheap without
affecting correctness: cache keys include every input that can change
the result, so a stale entry can never be served.

# Backends

Two Store implementations are provided:

  - MemoryStore: an LRU cache with TTL expiration, bounded by a
    configurable capacity. This is the default and requires no external
    services.
  - RedisStore: a go-redis backed store for deployments that run
    multiple instances behind a load balancer and want a shared cache.

The backend is selected through Config.Backend ("memory" or "redis")
and constructed by New.

# Values Are Opaque Bytes

Stores hold []byte values. Callers serialize before Set and deserialize
after Get. This keeps the interface identical across backends (Redis
can only hold bytes) and avoids retaining references to mutable
structures.

# Cache Keys

Callers build keys from all response inputs:

	rec:alice:5:4611911198408756429

The trailing component is the sentiment threshold encoded as raw bits,
so operator threshold changes invalidate prior entries naturally.

# Failure Behavior

Cache failures are never fatal. A Redis error on Get is treated as a
miss and logged at warn level; an error on Set is logged and dropped.
The engine always recomputes on a miss, so a degraded cache only costs
latency.

# Thread Safety

All Store implementations are safe for concurrent use. MemoryStore
serializes access with a mutex inside LRUCache; RedisStore relies on
the go-redis client's connection pool.

# See Also

  - internal/recommend: the engine that reads and writes this cache
  - internal/metrics: cache hit/miss/size instrumentation
*/
package cache
