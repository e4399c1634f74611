// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sentirec/sentirec/internal/auth"
	"github.com/sentirec/sentirec/internal/middleware"
)

// Router assembles the HTTP surface: handlers, authentication, and the
// per-group middleware stacks.
type Router struct {
	handler       *Handler
	authMW        *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. authMW decides whether the admin group
// requires a token (AuthMode jwt) or passes everything (AuthMode none).
func NewRouter(handler *Handler, authMW *auth.Middleware, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		authMW:        authMW,
		chiMiddleware: chiMW,
	}
}

// SetupChi configures all HTTP routes and returns the root handler.
//
// Rate limits are tiered per group: generous for health probes, tight
// for login, moderate for the scoring endpoints. Prometheus
// instrumentation wraps the scoring and admin groups only; probe and
// metrics traffic would drown the request metrics in noise.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Authentication endpoints. Login carries the strictest budget.
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitCustom(RateLimitLogin)).Post("/login", router.handler.Login)
	})

	// Scoring endpoints: prediction, recommendation, and the combined
	// round trip. Public by design; the engine is read-only.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.perf.Middleware)
		r.Use(chiMiddleware(middleware.Compression))

		r.Post("/predict", router.handler.Predict)
		r.Post("/recommend", router.handler.Recommend)
		r.Post("/combined", router.handler.Combined)
	})

	// Admin endpoints, token-gated when AuthMode is jwt.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitAdmin))
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.requireAdmin))

		r.Put("/threshold", router.handler.UpdateThreshold)
		r.Get("/stats", router.handler.AdminStats)
	})

	// Prometheus exposition.
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown route", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}

// requireAdmin authenticates the request and requires the admin role.
// With AuthMode none both checks pass everything through.
func (router *Router) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	if router.authMW == nil {
		return next
	}
	return router.authMW.Authenticate(router.authMW.RequireRole(adminRole, next))
}
