// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package config

import (
	"fmt"
	"strings"
)

// Recommendation pipeline bounds. These mirror the ranges the engine
// accepts; rejecting bad values here keeps startup failures early and
// explicit instead of silently clamping operator configuration.
const (
	minTopCandidates = 1
	maxTopCandidates = 100
	minTopResults    = 1
	maxTopResults    = 20
	minNeighborK     = 30
	maxNeighborK     = 50

	minJWTSecretLength = 32
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateArtifacts(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSentiment(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateAPI()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("HTTP_IDLE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateData validates review snapshot configuration
func (c *Config) validateData() error {
	if c.Data.ReviewsPath == "" {
		return fmt.Errorf("REVIEWS_PATH is required")
	}
	if c.Data.Table == "" {
		return fmt.Errorf("REVIEWS_TABLE must not be empty")
	}
	return nil
}

// validateArtifacts validates sentiment artifact paths
func (c *Config) validateArtifacts() error {
	if c.Artifacts.VocabularyPath == "" {
		return fmt.Errorf("VOCABULARY_PATH is required")
	}
	if c.Artifacts.ClassifierPath == "" {
		return fmt.Errorf("CLASSIFIER_PATH is required")
	}
	return nil
}

// validateRecommend validates recommendation pipeline configuration
func (c *Config) validateRecommend() error {
	if c.Recommend.TopCandidates < minTopCandidates || c.Recommend.TopCandidates > maxTopCandidates {
		return fmt.Errorf("RECOMMEND_TOP_CANDIDATES must be between %d and %d", minTopCandidates, maxTopCandidates)
	}
	if c.Recommend.TopResults < minTopResults || c.Recommend.TopResults > maxTopResults {
		return fmt.Errorf("RECOMMEND_TOP_RESULTS must be between %d and %d", minTopResults, maxTopResults)
	}
	if c.Recommend.TopResults > c.Recommend.TopCandidates {
		return fmt.Errorf("RECOMMEND_TOP_RESULTS must not exceed RECOMMEND_TOP_CANDIDATES")
	}
	// neighbor_k is either 0 (engine default) or inside the supported
	// band. Values outside it degrade result quality enough that they
	// are treated as operator error.
	if c.Recommend.NeighborK != 0 && (c.Recommend.NeighborK < minNeighborK || c.Recommend.NeighborK > maxNeighborK) {
		return fmt.Errorf("RECOMMEND_NEIGHBOR_K must be 0 or between %d and %d", minNeighborK, maxNeighborK)
	}
	if c.Recommend.MinCommonItems < 1 {
		return fmt.Errorf("RECOMMEND_MIN_COMMON_ITEMS must be at least 1")
	}
	if c.Recommend.Workers < 0 {
		return fmt.Errorf("RECOMMEND_WORKERS must be non-negative")
	}
	if c.Recommend.CacheEnabled {
		if c.Recommend.CacheTTL <= 0 {
			return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when the recommendation cache is enabled")
		}
		if c.Recommend.CacheSize < 1 {
			return fmt.Errorf("RECOMMEND_CACHE_SIZE must be at least 1 when the recommendation cache is enabled")
		}
	}
	return nil
}

// validateSentiment validates sentiment classification configuration
func (c *Config) validateSentiment() error {
	// The threshold bounds are exclusive: 0 would label every review
	// positive and 1 every review negative, which makes the positive
	// ratio meaningless.
	if c.Sentiment.Threshold <= 0 || c.Sentiment.Threshold >= 1 {
		return fmt.Errorf("SENTIMENT_THRESHOLD must be strictly between 0 and 1")
	}
	return nil
}

// validCacheBackends defines the supported cache backends
var validCacheBackends = map[string]bool{
	"memory": true,
	"redis":  true,
}

// validateCache validates cache backend configuration
func (c *Config) validateCache() error {
	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis")
	}
	if c.Cache.Backend == "redis" {
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND is redis")
		}
		if c.Cache.RedisDB < 0 || c.Cache.RedisDB > 15 {
			return fmt.Errorf("REDIS_DB must be between 0 and 15")
		}
	}
	return nil
}

// validAuthModes defines the supported authentication modes
var validAuthModes = map[string]bool{
	"none": true,
	"jwt":  true,
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if !validAuthModes[c.Security.AuthMode] {
		return fmt.Errorf("AUTH_MODE must be one of: none, jwt")
	}
	if c.Security.AuthMode != "jwt" {
		return nil
	}

	if err := c.validateJWTSecret(); err != nil {
		return err
	}
	if c.Security.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required when AUTH_MODE is jwt")
	}
	if err := c.validateAdminPasswordHash(); err != nil {
		return err
	}
	if c.Security.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive when AUTH_MODE is jwt")
	}
	return nil
}

// validateJWTSecret validates the JWT signing secret
func (c *Config) validateJWTSecret() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is jwt")
	}
	if len(c.Security.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	return nil
}

// bcryptHashPrefixes lists the modular crypt identifiers bcrypt emits.
var bcryptHashPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// validateAdminPasswordHash validates the admin credential hash. Only
// bcrypt hashes are accepted; a plain password in this field is rejected
// so it never ends up comparable in constant time against itself.
func (c *Config) validateAdminPasswordHash() error {
	hash := c.Security.AdminPasswordHash
	if hash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required when AUTH_MODE is jwt")
	}
	for _, prefix := range bcryptHashPrefixes {
		if strings.HasPrefix(hash, prefix) {
			return nil
		}
	}
	return fmt.Errorf("ADMIN_PASSWORD_HASH must be a bcrypt hash - generate one with: htpasswd -bnBC 12 '' <password>")
}

// validateAPI validates API shaping configuration
func (c *Config) validateAPI() error {
	if c.API.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.API.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be non-negative")
	}
	if c.API.RateLimitRPS > 0 && c.API.RateLimitBurst == 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}
	if c.API.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.Security.AuthMode != "none" && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* is not allowed with authentication enabled; list explicit origins instead")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.API.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// placeholderPatterns defines common placeholder patterns that indicate
// the operator forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"PLACEHOLDER",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains common placeholder
// patterns that indicate the operator forgot to set a real value.
func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
