// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns a configuration that passes Validate: the defaults
// plus the three required paths.
func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Data.ReviewsPath = "/data/reviews.parquet"
	cfg.Artifacts.VocabularyPath = "/models/vocabulary.json.gz"
	cfg.Artifacts.ClassifierPath = "/models/classifier.json.gz"
	return cfg
}

// jwtConfig returns a valid configuration with JWT authentication enabled.
func jwtConfig() *Config {
	cfg := validConfig()
	cfg.Security.AuthMode = "jwt"
	cfg.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.Security.AdminUsername = "admin"
	cfg.Security.AdminPasswordHash = "$2b$12$LJ3m4rzxXSqqLyvGA3rEau6fnThq3mgW7Rc9KMd8JQ0YJ4mPQYpG6"
	cfg.Security.TokenTTL = time.Hour
	return cfg
}

// --- Test: Validate ---

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults with required paths",
			modify: func(c *Config) {},
		},
		{
			name:    "port zero",
			modify:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "port above range",
			modify:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "zero read timeout",
			modify:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "HTTP_READ_TIMEOUT",
		},
		{
			name:    "negative write timeout",
			modify:  func(c *Config) { c.Server.WriteTimeout = -time.Second },
			wantErr: "HTTP_WRITE_TIMEOUT",
		},
		{
			name:    "zero shutdown timeout",
			modify:  func(c *Config) { c.Server.ShutdownTimeout = 0 },
			wantErr: "HTTP_SHUTDOWN_TIMEOUT",
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.Logging.Format = "logfmt" },
			wantErr: "LOG_FORMAT",
		},
		{
			name:   "empty log format falls back to default",
			modify: func(c *Config) { c.Logging.Format = "" },
		},
		{
			name:    "missing reviews path",
			modify:  func(c *Config) { c.Data.ReviewsPath = "" },
			wantErr: "REVIEWS_PATH",
		},
		{
			name:    "empty reviews table",
			modify:  func(c *Config) { c.Data.Table = "" },
			wantErr: "REVIEWS_TABLE",
		},
		{
			name:    "missing vocabulary path",
			modify:  func(c *Config) { c.Artifacts.VocabularyPath = "" },
			wantErr: "VOCABULARY_PATH",
		},
		{
			name:    "missing classifier path",
			modify:  func(c *Config) { c.Artifacts.ClassifierPath = "" },
			wantErr: "CLASSIFIER_PATH",
		},
		{
			name:    "top candidates zero",
			modify:  func(c *Config) { c.Recommend.TopCandidates = 0 },
			wantErr: "RECOMMEND_TOP_CANDIDATES",
		},
		{
			name:    "top candidates above range",
			modify:  func(c *Config) { c.Recommend.TopCandidates = 101 },
			wantErr: "RECOMMEND_TOP_CANDIDATES",
		},
		{
			name:    "top results zero",
			modify:  func(c *Config) { c.Recommend.TopResults = 0 },
			wantErr: "RECOMMEND_TOP_RESULTS",
		},
		{
			name:    "top results above range",
			modify:  func(c *Config) { c.Recommend.TopResults = 21 },
			wantErr: "RECOMMEND_TOP_RESULTS",
		},
		{
			name: "top results above top candidates",
			modify: func(c *Config) {
				c.Recommend.TopCandidates = 5
				c.Recommend.TopResults = 10
			},
			wantErr: "RECOMMEND_TOP_RESULTS must not exceed",
		},
		{
			name:    "neighbor k below band",
			modify:  func(c *Config) { c.Recommend.NeighborK = 10 },
			wantErr: "RECOMMEND_NEIGHBOR_K",
		},
		{
			name:    "neighbor k above band",
			modify:  func(c *Config) { c.Recommend.NeighborK = 51 },
			wantErr: "RECOMMEND_NEIGHBOR_K",
		},
		{
			name:   "neighbor k zero selects engine default",
			modify: func(c *Config) { c.Recommend.NeighborK = 0 },
		},
		{
			name:   "neighbor k at lower bound",
			modify: func(c *Config) { c.Recommend.NeighborK = 30 },
		},
		{
			name:   "neighbor k at upper bound",
			modify: func(c *Config) { c.Recommend.NeighborK = 50 },
		},
		{
			name:    "min common items zero",
			modify:  func(c *Config) { c.Recommend.MinCommonItems = 0 },
			wantErr: "RECOMMEND_MIN_COMMON_ITEMS",
		},
		{
			name:    "negative workers",
			modify:  func(c *Config) { c.Recommend.Workers = -1 },
			wantErr: "RECOMMEND_WORKERS",
		},
		{
			name:    "zero cache ttl with cache enabled",
			modify:  func(c *Config) { c.Recommend.CacheTTL = 0 },
			wantErr: "RECOMMEND_CACHE_TTL",
		},
		{
			name: "zero cache ttl with cache disabled",
			modify: func(c *Config) {
				c.Recommend.CacheEnabled = false
				c.Recommend.CacheTTL = 0
				c.Recommend.CacheSize = 0
			},
		},
		{
			name:    "zero cache size with cache enabled",
			modify:  func(c *Config) { c.Recommend.CacheSize = 0 },
			wantErr: "RECOMMEND_CACHE_SIZE",
		},
		{
			name:    "threshold at zero",
			modify:  func(c *Config) { c.Sentiment.Threshold = 0 },
			wantErr: "SENTIMENT_THRESHOLD",
		},
		{
			name:    "threshold at one",
			modify:  func(c *Config) { c.Sentiment.Threshold = 1 },
			wantErr: "SENTIMENT_THRESHOLD",
		},
		{
			name:   "threshold inside the open interval",
			modify: func(c *Config) { c.Sentiment.Threshold = 0.9 },
		},
		{
			name:    "unknown cache backend",
			modify:  func(c *Config) { c.Cache.Backend = "disk" },
			wantErr: "CACHE_BACKEND",
		},
		{
			name: "redis backend without address",
			modify: func(c *Config) {
				c.Cache.Backend = "redis"
				c.Cache.RedisAddr = ""
			},
			wantErr: "REDIS_ADDR",
		},
		{
			name: "redis db above range",
			modify: func(c *Config) {
				c.Cache.Backend = "redis"
				c.Cache.RedisDB = 16
			},
			wantErr: "REDIS_DB",
		},
		{
			name:    "unknown auth mode",
			modify:  func(c *Config) { c.Security.AuthMode = "basic" },
			wantErr: "AUTH_MODE",
		},
		{
			name: "jwt mode without secret",
			modify: func(c *Config) {
				c.Security.AuthMode = "jwt"
				c.Security.AdminUsername = "admin"
				c.Security.AdminPasswordHash = "$2b$12$abcdefghijklmnopqrstuv"
			},
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "jwt secret too short",
			modify: func(c *Config) {
				c.Security.AuthMode = "jwt"
				c.Security.JWTSecret = "short"
				c.Security.AdminUsername = "admin"
				c.Security.AdminPasswordHash = "$2b$12$abcdefghijklmnopqrstuv"
			},
			wantErr: "at least 32 characters",
		},
		{
			name: "jwt secret with placeholder",
			modify: func(c *Config) {
				c.Security.AuthMode = "jwt"
				c.Security.JWTSecret = "CHANGEME-CHANGEME-CHANGEME-CHANGEME"
				c.Security.AdminUsername = "admin"
				c.Security.AdminPasswordHash = "$2b$12$abcdefghijklmnopqrstuv"
			},
			wantErr: "placeholder",
		},
		{
			name: "jwt mode without admin username",
			modify: func(c *Config) {
				c.Security.AuthMode = "jwt"
				c.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
				c.Security.AdminPasswordHash = "$2b$12$abcdefghijklmnopqrstuv"
			},
			wantErr: "ADMIN_USERNAME",
		},
		{
			name: "jwt mode without password hash",
			modify: func(c *Config) {
				c.Security.AuthMode = "jwt"
				c.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
				c.Security.AdminUsername = "admin"
			},
			wantErr: "ADMIN_PASSWORD_HASH is required",
		},
		{
			name: "plain password instead of bcrypt hash",
			modify: func(c *Config) {
				c.Security.AuthMode = "jwt"
				c.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
				c.Security.AdminUsername = "admin"
				c.Security.AdminPasswordHash = "hunter2hunter2"
			},
			wantErr: "must be a bcrypt hash",
		},
		{
			name: "jwt mode with zero token ttl",
			modify: func(c *Config) {
				c.Security.AuthMode = "jwt"
				c.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
				c.Security.AdminUsername = "admin"
				c.Security.AdminPasswordHash = "$2b$12$abcdefghijklmnopqrstuv"
				c.Security.TokenTTL = 0
			},
			wantErr: "TOKEN_TTL",
		},
		{
			name:    "negative rate limit",
			modify:  func(c *Config) { c.API.RateLimitRPS = -1 },
			wantErr: "RATE_LIMIT_RPS",
		},
		{
			name:    "negative burst",
			modify:  func(c *Config) { c.API.RateLimitBurst = -1 },
			wantErr: "RATE_LIMIT_BURST must be non-negative",
		},
		{
			name: "rate limit without burst",
			modify: func(c *Config) {
				c.API.RateLimitRPS = 10
				c.API.RateLimitBurst = 0
			},
			wantErr: "RATE_LIMIT_BURST must be positive",
		},
		{
			name: "rate limiting disabled entirely",
			modify: func(c *Config) {
				c.API.RateLimitRPS = 0
				c.API.RateLimitBurst = 0
			},
		},
		{
			name:    "zero max body bytes",
			modify:  func(c *Config) { c.API.MaxBodyBytes = 0 },
			wantErr: "MAX_BODY_BYTES",
		},
		{
			name: "wildcard cors with auth enabled",
			modify: func(c *Config) {
				c.Security.AuthMode = "jwt"
				c.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
				c.Security.AdminUsername = "admin"
				c.Security.AdminPasswordHash = "$2b$12$abcdefghijklmnopqrstuv"
				c.API.CORSOrigins = []string{"*"}
			},
			wantErr: "CORS_ORIGINS",
		},
		{
			name:   "wildcard cors without auth",
			modify: func(c *Config) { c.API.CORSOrigins = []string{"*"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

// --- Test: JWT configuration ---

func TestValidate_JWTConfig(t *testing.T) {
	cfg := jwtConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

// --- Test: placeholder detection ---

func TestContainsPlaceholder(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"changeme-please-changeme-please!", true},
		{"REPLACE_WITH_REAL_SECRET_32_CHARS", true},
		{"this-is-an-example-secret-value!", true},
		{"fyuNKW7SItJi1oJZDMdO5jkNZPp4oWk3", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := containsPlaceholder(tt.value); got != tt.want {
			t.Errorf("containsPlaceholder(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
