// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

/*
Package config provides centralized configuration management for Sentirec.

Configuration is assembled from three layers, each overriding the one
before it: built-in defaults, an optional YAML config file, and
environment variables. The merged result is validated before any
component sees it; an invalid configuration aborts startup.

# Configuration Sources

The package reads configuration from:
  - Built-in defaults (always present)
  - A YAML file: CONFIG_PATH, or the first match among config.yaml,
    config.yml, /etc/sentirec/config.yaml, /etc/sentirec/config.yml
  - Environment variables (highest precedence)

# Configuration Structure

The package organizes configuration into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeouts)
  - LoggingConfig: zerolog level and output format
  - DataConfig: review snapshot location
  - ArtifactsConfig: trained sentiment artifact paths
  - RecommendConfig: recommendation pipeline tuning
  - SentimentConfig: classification threshold and text gates
  - CacheConfig: response cache backend selection
  - SecurityConfig: authentication for the admin surface
  - APIConfig: rate limiting, CORS, and request shaping

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_READ_TIMEOUT: Request read timeout (default: 30s)
  - HTTP_WRITE_TIMEOUT: Response write timeout (default: 30s)
  - HTTP_IDLE_TIMEOUT: Keep-alive idle timeout (default: 120s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful drain window (default: 10s)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Annotate entries with file:line (default: false)

Review Data (DataConfig):
  - REVIEWS_PATH: Path to the review snapshot (required)
  - REVIEWS_TABLE: Table name inside the snapshot (default: reviews)

Sentiment Artifacts (ArtifactsConfig):
  - VOCABULARY_PATH: Trained vocabulary artifact (required)
  - CLASSIFIER_PATH: Trained classifier artifact (required)

Recommendation Pipeline (RecommendConfig):
  - RECOMMEND_TOP_CANDIDATES: Candidates kept per request, 1-100 (default: 20)
  - RECOMMEND_TOP_RESULTS: Recommendations returned, 1-20 (default: 5)
  - RECOMMEND_NEIGHBOR_K: Neighborhood size, 0 or 30-50 (default: 40)
  - RECOMMEND_MIN_COMMON_ITEMS: Overlap floor for neighbors (default: 1)
  - RECOMMEND_WORKERS: Scoring workers, 0 for CPU count (default: CPU count)
  - RECOMMEND_CACHE_ENABLED: Cache responses (default: true)
  - RECOMMEND_CACHE_TTL: Response cache TTL (default: 5m)
  - RECOMMEND_CACHE_SIZE: Response cache capacity (default: 1024)

Sentiment (SentimentConfig):
  - SENTIMENT_THRESHOLD: Positive cutoff, strictly between 0 and 1 (default: 0.55)
  - SENTIMENT_LANGUAGE_GATE: Skip reviews unlikely to be English (default: false)
  - SENTIMENT_EXTRA_STOPWORDS: Comma-separated additions to the stopword list

Cache Backend (CacheConfig):
  - CACHE_BACKEND: memory or redis (default: memory)
  - REDIS_ADDR: Redis address (default: localhost:6379)
  - REDIS_DB: Redis database number, 0-15 (default: 0)

Security (SecurityConfig):
  - AUTH_MODE: none or jwt (default: none)
  - JWT_SECRET: Signing secret, min 32 chars (required for jwt mode)
  - ADMIN_USERNAME: Admin login username (required for jwt mode)
  - ADMIN_PASSWORD_HASH: bcrypt hash of the admin password (required for jwt mode)
  - TOKEN_TTL: Issued token lifetime (default: 1h)

API Shaping (APIConfig):
  - RATE_LIMIT_RPS: Requests per second per client, 0 disables (default: 10)
  - RATE_LIMIT_BURST: Burst allowance (default: 20)
  - CORS_ORIGINS: Comma-separated allowed origins
  - MAX_BODY_BYTES: Request body cap in bytes (default: 1048576)

# Usage Example

Basic configuration loading:

	import "github.com/sentirec/sentirec/internal/config"

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("failed to load config: %v", err)
	}

	fmt.Printf("starting server on %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("review snapshot: %s\n", cfg.Data.ReviewsPath)

# Validation

The package performs validation after merging all layers:

  - Required fields: REVIEWS_PATH, VOCABULARY_PATH, CLASSIFIER_PATH
  - Numeric ranges: HTTP_PORT (1-65535), RECOMMEND_TOP_CANDIDATES (1-100),
    RECOMMEND_TOP_RESULTS (1-20), RECOMMEND_NEIGHBOR_K (0 or 30-50)
  - Exclusive bounds: SENTIMENT_THRESHOLD strictly between 0 and 1
  - Mode requirements: jwt mode needs JWT_SECRET (32+ chars),
    ADMIN_USERNAME, and a bcrypt ADMIN_PASSWORD_HASH; redis backend
    needs REDIS_ADDR
*/
package config
