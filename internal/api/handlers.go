// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package api

import (
	"time"

	"github.com/sentirec/sentirec/internal/auth"
	"github.com/sentirec/sentirec/internal/config"
	"github.com/sentirec/sentirec/internal/middleware"
	"github.com/sentirec/sentirec/internal/recommend"
)

// defaultMaxBodyBytes caps request bodies when the configuration does
// not set a limit. The largest legitimate payload is a 5000-character
// review, so 1MB leaves generous headroom.
const defaultMaxBodyBytes = 1 << 20

// requestTimeout bounds a single scoring request. The pipeline is pure
// computation; anything that runs this long is a runaway, not a slow
// backend.
const requestTimeout = 30 * time.Second

// Handler holds the HTTP handlers and their dependencies. All fields
// are set at construction and never mutated, so one Handler serves all
// requests concurrently.
type Handler struct {
	engine       *recommend.Engine
	cfg          *config.Config
	jwtManager   *auth.JWTManager
	verifier     *auth.CredentialVerifier
	lockout      *auth.LockoutManager
	loginLimiter *auth.RateLimiter
	perf         *middleware.PerformanceMonitor
	maxBodyBytes int64
	startTime    time.Time
	version      string
}

// perfWindowSize is the number of request samples the performance
// monitor retains for the admin stats endpoint.
const perfWindowSize = 1000

// NewHandler creates the handler set over a ready engine. jwtManager
// and verifier are nil when AuthMode is none; the admin endpoints are
// then open.
func NewHandler(engine *recommend.Engine, cfg *config.Config, jwtManager *auth.JWTManager, verifier *auth.CredentialVerifier) *Handler {
	maxBody := cfg.API.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	var lockout *auth.LockoutManager
	var loginLimiter *auth.RateLimiter
	if verifier != nil {
		lockout = auth.NewLockoutManager(auth.DefaultLockoutConfig())
		// Per-username limiting on top of the route's per-IP budget, so
		// a distributed brute force against one account still stalls.
		loginLimiter = auth.NewRateLimiter(5, time.Minute)
	}

	return &Handler{
		engine:       engine,
		cfg:          cfg,
		jwtManager:   jwtManager,
		verifier:     verifier,
		lockout:      lockout,
		loginLimiter: loginLimiter,
		perf:         middleware.NewPerformanceMonitor(perfWindowSize),
		maxBodyBytes: maxBody,
		startTime:    time.Now(),
		version:      Version,
	}
}

// Version is the reported application version, overridable at build
// time with -ldflags "-X github.com/sentirec/sentirec/internal/api.Version=...".
var Version = "dev"
