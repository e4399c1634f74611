// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order. The
// first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/sentirec/config.yaml",
	"/etc/sentirec/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration from three layers, later layers
// overriding earlier ones:
//
//  1. Built-in defaults.
//  2. An optional YAML config file (CONFIG_PATH or the default search
//     paths).
//  3. Environment variables.
//
// The merged result is validated; an invalid configuration is a startup
// failure, never repaired silently.
func Load() (*Config, error) {
	return loadFrom(findConfigFile())
}

// LoadFile builds the configuration like Load but from an explicit file
// path. The file must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return loadFrom(path)
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths lists config paths parsed as comma-separated slices
// when they arrive as strings from the environment.
var sliceConfigPaths = []string{
	"sentiment.extra_stopwords",
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields. Environment variables come in as flat strings.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names to config paths. Variables
// not in this table are ignored, so unrelated environment noise cannot
// leak into the configuration.
var envMappings = map[string]string{
	// HTTP server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Review snapshot
	"reviews_path":  "data.reviews_path",
	"reviews_table": "data.table",

	// Sentiment artifacts
	"vocabulary_path": "artifacts.vocabulary_path",
	"classifier_path": "artifacts.classifier_path",

	// Recommendation pipeline
	"recommend_top_candidates":   "recommend.top_candidates",
	"recommend_top_results":      "recommend.top_results",
	"recommend_neighbor_k":       "recommend.neighbor_k",
	"recommend_min_common_items": "recommend.min_common_items",
	"recommend_workers":          "recommend.workers",
	"recommend_cache_enabled":    "recommend.cache_enabled",
	"recommend_cache_ttl":        "recommend.cache_ttl",
	"recommend_cache_size":       "recommend.cache_size",

	// Sentiment
	"sentiment_threshold":       "sentiment.threshold",
	"sentiment_language_gate":   "sentiment.language_gate",
	"sentiment_extra_stopwords": "sentiment.extra_stopwords",

	// Cache backend
	"cache_backend": "cache.backend",
	"redis_addr":    "cache.redis_addr",
	"redis_db":      "cache.redis_db",

	// Security
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"admin_username":      "security.admin_username",
	"admin_password_hash": "security.admin_password_hash",
	"token_ttl":           "security.token_ttl",

	// API shaping
	"rate_limit_rps":   "api.rate_limit_rps",
	"rate_limit_burst": "api.rate_limit_burst",
	"cors_origins":     "api.cors_origins",
	"max_body_bytes":   "api.max_body_bytes",
}

// envTransformFunc maps an environment variable name to its config path,
// or "" to ignore it.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
