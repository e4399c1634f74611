// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package config

import (
	"runtime"
	"time"
)

// Config holds all application configuration, loaded once at startup and
// immutable afterwards. Every field can be set through a YAML file or an
// environment variable; see Load for the precedence rules.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Data      DataConfig      `koanf:"data"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Recommend RecommendConfig `koanf:"recommend"`
	Sentiment SentimentConfig `koanf:"sentiment"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	API       APIConfig       `koanf:"api"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the bind address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8080
	Port int `koanf:"port"`

	// ReadTimeout bounds reading the request including the body.
	// Default: 30s
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds writing the response. Default: 30s
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// IdleTimeout bounds keep-alive connections. Default: 120s
	IdleTimeout time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout is the graceful drain window on shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console. JSON is recommended
	// for production; console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs. Adds slight
	// performance overhead. Default: false
	Caller bool `koanf:"caller"`
}

// DataConfig locates the review snapshot the engine is built from.
type DataConfig struct {
	// ReviewsPath is the review source: a DuckDB database file or a CSV
	// file (read through DuckDB's CSV reader). Required.
	ReviewsPath string `koanf:"reviews_path"`

	// Table is the relation holding reviews when ReviewsPath is a
	// database file. Default: reviews
	Table string `koanf:"table"`
}

// ArtifactsConfig locates the pretrained sentiment artifacts.
type ArtifactsConfig struct {
	// VocabularyPath is the JSON vocabulary artifact, optionally
	// gzip-compressed (.gz). Required.
	VocabularyPath string `koanf:"vocabulary_path"`

	// ClassifierPath is the JSON classifier weights artifact, optionally
	// gzip-compressed (.gz). Required.
	ClassifierPath string `koanf:"classifier_path"`
}

// RecommendConfig tunes the recommendation pipeline.
type RecommendConfig struct {
	// TopCandidates is how many affinity-ranked candidates enter
	// sentiment aggregation. Range 1-100. Default: 20
	TopCandidates int `koanf:"top_candidates"`

	// TopResults is the default size of the final list when a request
	// does not specify one. Range 1-20. Default: 5
	TopResults int `koanf:"top_results"`

	// NeighborK is how many nearest neighbors feed candidate
	// generation. Range 30-50, or 0 for the default. Default: 40
	NeighborK int `koanf:"neighbor_k"`

	// MinCommonItems is the minimum co-rated product count for a user
	// to qualify as a neighbor. Default: 1
	MinCommonItems int `koanf:"min_common_items"`

	// Workers is the parallelism of the neighbor scan and the sentiment
	// fan-out. Default: number of CPUs
	Workers int `koanf:"workers"`

	// CacheEnabled controls response caching. Default: true
	CacheEnabled bool `koanf:"cache_enabled"`

	// CacheTTL is how long cached responses stay valid. Default: 5m
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheSize is the entry capacity of the in-memory response cache.
	// Default: 1024
	CacheSize int `koanf:"cache_size"`
}

// SentimentConfig tunes review classification.
type SentimentConfig struct {
	// Threshold is the decision boundary for the Positive label,
	// exclusive on both ends. Default: 0.55
	Threshold float64 `koanf:"threshold"`

	// LanguageGate skips reviews reliably detected as non-English
	// before scoring. Default: false
	LanguageGate bool `koanf:"language_gate"`

	// ExtraStopwords extends the normalizer's built-in stopword list.
	ExtraStopwords []string `koanf:"extra_stopwords"`
}

// CacheConfig selects the response cache backend.
type CacheConfig struct {
	// Backend is memory or redis. Default: memory
	Backend string `koanf:"backend"`

	// RedisAddr is the host:port of the Redis server. Required when
	// Backend is redis. Default: localhost:6379
	RedisAddr string `koanf:"redis_addr"`

	// RedisDB is the Redis logical database number. Default: 0
	RedisDB int `koanf:"redis_db"`
}

// SecurityConfig holds authentication settings for the admin surface.
type SecurityConfig struct {
	// AuthMode is none or jwt. With none, the admin endpoints are open;
	// intended only for trusted networks. Default: none
	AuthMode string `koanf:"auth_mode"`

	// JWTSecret signs admin tokens. Minimum 32 characters when AuthMode
	// is jwt.
	JWTSecret string `koanf:"jwt_secret"`

	// AdminUsername is the login name for the admin account.
	AdminUsername string `koanf:"admin_username"`

	// AdminPasswordHash is the bcrypt hash of the admin password. Plain
	// passwords are never configured.
	AdminPasswordHash string `koanf:"admin_password_hash"`

	// TokenTTL is the lifetime of issued tokens. Default: 1h
	TokenTTL time.Duration `koanf:"token_ttl"`
}

// APIConfig holds request shaping for the public endpoints.
type APIConfig struct {
	// RateLimitRPS is the per-client request rate. 0 disables rate
	// limiting. Default: 10
	RateLimitRPS int `koanf:"rate_limit_rps"`

	// RateLimitBurst is the per-client burst allowance. Default: 20
	RateLimitBurst int `koanf:"rate_limit_burst"`

	// CORSOrigins lists allowed cross-origin hosts. Empty disallows
	// cross-origin requests.
	CORSOrigins []string `koanf:"cors_origins"`

	// MaxBodyBytes caps request body size. Default: 1MB
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// defaultConfig returns the built-in defaults, applied before the config
// file and environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Data: DataConfig{
			ReviewsPath: "",
			Table:       "reviews",
		},
		Artifacts: ArtifactsConfig{
			VocabularyPath: "",
			ClassifierPath: "",
		},
		Recommend: RecommendConfig{
			TopCandidates:  20,
			TopResults:     5,
			NeighborK:      40,
			MinCommonItems: 1,
			Workers:        runtime.NumCPU(),
			CacheEnabled:   true,
			CacheTTL:       5 * time.Minute,
			CacheSize:      1024,
		},
		Sentiment: SentimentConfig{
			Threshold:      0.55,
			LanguageGate:   false,
			ExtraStopwords: nil,
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			RedisDB:   0,
		},
		Security: SecurityConfig{
			AuthMode: "none",
			TokenTTL: time.Hour,
		},
		API: APIConfig{
			RateLimitRPS:   10,
			RateLimitBurst: 20,
			CORSOrigins:    nil,
			MaxBodyBytes:   1 << 20,
		},
	}
}
