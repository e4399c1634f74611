// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package auth

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/sentirec/sentirec/internal/logging"
)

type contextKey string

// ClaimsContextKey is the request context key holding *Claims after
// successful authentication.
const ClaimsContextKey contextKey = "claims"

// ClaimsFromContext returns the authenticated claims, or nil when the
// request was not authenticated (AUTH_MODE=none or missing middleware).
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ClaimsContextKey).(*Claims)
	return claims
}

// Middleware enforces JWT authentication on protected endpoints.
type Middleware struct {
	jwtManager *JWTManager
	authMode   string
}

// NewMiddleware creates authentication middleware. With authMode "none"
// the middleware passes every request through untouched.
func NewMiddleware(jwtManager *JWTManager, authMode string) *Middleware {
	return &Middleware{
		jwtManager: jwtManager,
		authMode:   authMode,
	}
}

// Authenticate requires a valid Bearer token when authentication is
// enabled. Claims are stored on the request context for downstream
// handlers.
func (m *Middleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == "none" {
			next(w, r)
			return
		}

		token, ok := extractBearerToken(r)
		if !ok {
			unauthorized(w, "missing or malformed Authorization header")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Debug().Err(err).Msg("token validation failed")
			unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireRole requires the authenticated user to carry the given role.
// With authentication disabled it passes requests through, matching the
// open-by-default posture of AUTH_MODE=none.
func (m *Middleware) RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == "none" {
			next(w, r)
			return
		}

		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			unauthorized(w, "authentication required")
			return
		}
		if claims.Role != role {
			forbidden(w, "insufficient role")
			return
		}

		next(w, r)
	}
}

// extractBearerToken pulls the token out of an Authorization header.
func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, message string) {
	http.Error(w, "Unauthorized: "+message, http.StatusUnauthorized)
}

func forbidden(w http.ResponseWriter, message string) {
	http.Error(w, "Forbidden: "+message, http.StatusForbidden)
}

// RateLimiter implements per-subject rate limiting with automatic cleanup.
// The general API tiers use go-chi/httprate; this limiter exists for the
// login endpoint, where limiting keys on the submitted username as well as
// the client IP.
type RateLimiter struct {
	limiters  map[string]*rateLimiterEntry
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	stopClean chan struct{}
}

// rateLimiterEntry wraps a rate limiter with last access time.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter creates a rate limiter allowing burst requests per window.
func NewRateLimiter(burst int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rateLimiterEntry),
		rate:      rate.Every(window),
		burst:     burst,
		stopClean: make(chan struct{}),
	}
}

// Allow checks if a request for the given subject is allowed.
func (rl *RateLimiter) Allow(subject string) bool {
	rl.mu.Lock()
	entry, exists := rl.limiters[subject]
	if !exists {
		entry = &rateLimiterEntry{
			limiter:    rate.NewLimiter(rl.rate, rl.burst),
			lastAccess: time.Now(),
		}
		rl.limiters[subject] = entry
	} else {
		entry.lastAccess = time.Now()
	}
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// StartCleanup periodically removes stale limiter entries until Stop is
// called.
func (rl *RateLimiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopClean:
			return
		}
	}
}

// cleanup removes limiters that have been idle for over an hour.
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := time.Now().Add(-1 * time.Hour)
	for subject, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, subject)
		}
	}
}

// Stop stops the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopClean)
}
