// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sentirec/sentirec/internal/recommend"
)

// StatsSource exposes the engine counters the heartbeat reports.
// Satisfied by *recommend.Engine.
type StatsSource interface {
	Stats() recommend.Stats
}

// CacheSweeper removes expired cache entries in bulk. Satisfied by
// *cache.MemoryStore; the Redis backend expires keys server-side and
// needs no sweeping.
type CacheSweeper interface {
	CleanupExpired() int
}

// EngineServiceConfig holds configuration for the engine maintenance
// service.
type EngineServiceConfig struct {
	// SweepInterval is how often expired cache entries are reclaimed.
	// Default: 5m
	SweepInterval time.Duration

	// HeartbeatInterval is how often engine counters are logged.
	// Default: 1m
	HeartbeatInterval time.Duration
}

// EngineService runs the engine's background maintenance under
// supervision: a periodic expired-entry sweep of the in-process cache
// and a stats heartbeat so operators can watch counters without
// scraping /metrics.
type EngineService struct {
	engine  StatsSource
	sweeper CacheSweeper
	config  EngineServiceConfig
	logger  zerolog.Logger
	name    string
}

// NewEngineService creates the maintenance service. sweeper may be nil
// when the cache backend manages its own expiry.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngineService(engine StatsSource, sweeper CacheSweeper, cfg EngineServiceConfig, logger zerolog.Logger) *EngineService {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 5 * time.Minute
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = time.Minute
	}
	return &EngineService{
		engine:  engine,
		sweeper: sweeper,
		config:  cfg,
		logger:  logger.With().Str("service", "engine").Logger(),
		name:    "engine-maintenance",
	}
}

// Serve implements the suture.Service interface.
func (s *EngineService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("sweep_interval", s.config.SweepInterval).
		Dur("heartbeat_interval", s.config.HeartbeatInterval).
		Msg("engine maintenance starting")

	sweep := time.NewTicker(s.config.SweepInterval)
	defer sweep.Stop()
	heartbeat := time.NewTicker(s.config.HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("engine maintenance shutting down")
			return ctx.Err()

		case <-sweep.C:
			if s.sweeper == nil {
				continue
			}
			if removed := s.sweeper.CleanupExpired(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("swept expired cache entries")
			}

		case <-heartbeat.C:
			stats := s.engine.Stats()
			s.logger.Info().
				Int64("requests", stats.Requests).
				Int64("cache_hits", stats.CacheHits).
				Int64("cache_misses", stats.CacheMisses).
				Int64("cold_starts", stats.ColdStarts).
				Float64("threshold", stats.Threshold).
				Msg("engine heartbeat")
		}
	}
}

// String returns the service name for logging.
func (s *EngineService) String() string {
	return s.name
}
