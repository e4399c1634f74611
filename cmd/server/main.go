// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

// Package main is the entry point for the Sentirec server application.
//
// Sentirec serves hybrid product recommendations that combine user-based
// collaborative filtering over a review corpus with sentiment analysis
// of the review text itself. The same trained classifier also backs a
// standalone sentiment prediction endpoint.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: settings from environment variables and config files (Koanf v2)
//  2. Corpus: the review snapshot loaded through DuckDB (CSV or database file)
//  3. Classifier: vocabulary and logistic model artifacts parsed and validated
//  4. Cache: in-process LRU or Redis response cache
//  5. Engine: the recommendation engine over the immutable snapshot
//  6. Authentication: JWT or no-auth mode for the admin surface
//  7. Supervisor tree: HTTP server and engine maintenance under suture
//
// All loading happens before the first request is accepted; a failure in
// any loading step is fatal. Once serving, the engine never touches disk.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (see internal/config for the mapping)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Minimal setup:
//
//	export REVIEWS_PATH=/data/reviews.csv.gz
//	export VOCABULARY_PATH=/data/vocabulary.json
//	export CLASSIFIER_PATH=/data/classifier.json
//	./sentirec
//
// For JWT authentication on the admin endpoints:
//
//	export AUTH_MODE=jwt
//	export JWT_SECRET=$(openssl rand -base64 32)
//	export ADMIN_USERNAME=admin
//	export ADMIN_PASSWORD_HASH='$2a$10$...'
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (shutdown timeout)
//   - Stops the engine maintenance loop
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sentirec/sentirec/internal/api"
	"github.com/sentirec/sentirec/internal/auth"
	"github.com/sentirec/sentirec/internal/cache"
	"github.com/sentirec/sentirec/internal/config"
	"github.com/sentirec/sentirec/internal/corpus"
	"github.com/sentirec/sentirec/internal/logging"
	"github.com/sentirec/sentirec/internal/recommend"
	"github.com/sentirec/sentirec/internal/sentiment"
	"github.com/sentirec/sentirec/internal/supervisor"
	"github.com/sentirec/sentirec/internal/supervisor/services"
	"github.com/sentirec/sentirec/internal/text"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Sentirec with supervisor tree")
	logging.Info().
		Str("reviews_path", cfg.Data.ReviewsPath).
		Str("auth_mode", cfg.Security.AuthMode).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the review corpus. Blocking by design: there is nothing to
	// serve until the snapshot is in memory.
	dataset, err := corpus.Load(ctx, corpus.LoaderConfig{
		Path:  cfg.Data.ReviewsPath,
		Table: cfg.Data.Table,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load review corpus")
	}
	logging.Info().
		Int("reviews", dataset.Size()).
		Int("users", dataset.Matrix().NumUsers()).
		Int("products", dataset.Matrix().NumItems()).
		Int("skipped", dataset.Skipped()).
		Msg("Review corpus loaded")

	// Load and validate the classifier artifacts.
	normalizer := text.NewNormalizer(text.Config{
		ExtraStopwords: cfg.Sentiment.ExtraStopwords,
	})
	classifier, err := sentiment.LoadClassifier(
		normalizer,
		cfg.Artifacts.VocabularyPath,
		cfg.Artifacts.ClassifierPath,
		cfg.Sentiment.Threshold,
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load classifier artifacts")
	}
	logging.Info().
		Int("dimensions", classifier.Dim()).
		Float64("threshold", classifier.Threshold()).
		Msg("Sentiment classifier loaded")

	// Response cache. The memory backend needs a periodic sweep, which
	// the engine maintenance service runs; Redis expires keys itself.
	store, err := cache.NewStore(cache.Config{
		Backend:   cache.Backend(cfg.Cache.Backend),
		TTL:       cfg.Recommend.CacheTTL,
		Capacity:  cfg.Recommend.CacheSize,
		RedisAddr: cfg.Cache.RedisAddr,
		RedisDB:   cfg.Cache.RedisDB,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize cache")
	}

	engine, err := recommend.NewEngine(recommend.Config{
		NeighborK:      cfg.Recommend.NeighborK,
		MinCommonItems: cfg.Recommend.MinCommonItems,
		TopCandidates:  cfg.Recommend.TopCandidates,
		TopResults:     cfg.Recommend.TopResults,
		Workers:        cfg.Recommend.Workers,
		LanguageGate:   cfg.Sentiment.LanguageGate,
		CacheEnabled:   cfg.Recommend.CacheEnabled,
	}, dataset, classifier, store, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	var jwtManager *auth.JWTManager
	var verifier *auth.CredentialVerifier
	switch cfg.Security.AuthMode {
	case "jwt":
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		verifier, err = auth.NewCredentialVerifier(cfg.Security.AdminUsername, cfg.Security.AdminPasswordHash)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize credential verifier")
		}
		logging.Info().Msg("JWT authentication enabled")
	case "none", "":
		logging.Warn().Msg("Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("The admin endpoints are publicly accessible; use only on isolated networks")
	default:
		logging.Fatal().Str("auth_mode", cfg.Security.AuthMode).Msg("Unknown auth mode")
	}

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.API.CORSOrigins
	if cfg.API.RateLimitRPS > 0 {
		mwConfig.RateLimitRequests = cfg.API.RateLimitRPS * 60
		mwConfig.RateLimitWindow = time.Minute
	}

	handler := api.NewHandler(engine, cfg, jwtManager, verifier)
	router := api.NewRouter(
		handler,
		auth.NewMiddleware(jwtManager, cfg.Security.AuthMode),
		api.NewChiMiddleware(mwConfig),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Supervisor tree. sutureslog wants slog, so the zerolog logger is
	// bridged through the adapter.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	var sweeper services.CacheSweeper
	if ms, ok := store.(*cache.MemoryStore); ok {
		sweeper = ms
	}
	tree.AddEngineService(services.NewEngineService(engine, sweeper, services.EngineServiceConfig{}, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
