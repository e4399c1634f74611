// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/sentirec/sentirec/internal/auth"
	"github.com/sentirec/sentirec/internal/logging"
	"github.com/sentirec/sentirec/internal/middleware"
	"github.com/sentirec/sentirec/internal/models"
	"github.com/sentirec/sentirec/internal/recommend"
)

// adminRole is the role claim issued to the admin account and required
// by the admin route group.
const adminRole = "admin"

// Login handles POST /api/v1/auth/login. It exchanges the admin
// credentials for a signed JWT. Failed attempts count toward a
// per-username lockout on top of the route's IP rate limit.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.jwtManager == nil || h.verifier == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Authentication is disabled", nil)
		return
	}

	var req models.LoginRequest
	if !h.decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if !h.loginLimiter.Allow(req.Username) {
		respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
			"Too many login attempts for this account", nil)
		return
	}

	if locked, until := h.lockout.IsLocked(req.Username); locked {
		logging.Warn().
			Str("username", sanitizeLogValue(req.Username)).
			Time("until", until).
			Msg("Login attempt on locked account")
		respondError(w, http.StatusTooManyRequests, "ACCOUNT_LOCKED",
			"Too many failed attempts, try again later", nil)
		return
	}

	if err := h.verifier.Verify(req.Username, req.Password); err != nil {
		h.lockout.RecordFailure(req.Username)
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			logging.Error().Err(err).Msg("Credential verification failed")
		}
		respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Invalid username or password", nil)
		return
	}
	h.lockout.RecordSuccess(req.Username)

	token, err := h.jwtManager.GenerateToken(req.Username, adminRole)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", err)
		return
	}

	logging.Info().Str("username", sanitizeLogValue(req.Username)).Msg("Admin login")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.LoginResponse{
			Token:     token,
			ExpiresAt: time.Now().UTC().Add(h.jwtManager.TokenTTL()),
			Username:  req.Username,
			Role:      adminRole,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// UpdateThreshold handles PUT /api/v1/admin/threshold. The new value
// takes effect atomically for all future classifications; the change is
// logged with the acting user for the audit trail.
func (h *Handler) UpdateThreshold(w http.ResponseWriter, r *http.Request) {
	var req models.ThresholdRequest
	if !h.decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	old := h.engine.Threshold()
	if err := h.engine.SetThreshold(req.Threshold); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Threshold must be between 0 and 1 exclusive", err)
		return
	}

	actor := "anonymous"
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		actor = claims.Username
	}
	logging.Info().
		Str("actor", sanitizeLogValue(actor)).
		Float64("old_threshold", old).
		Float64("new_threshold", req.Threshold).
		Msg("Sentiment threshold changed")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ThresholdResult{
			Threshold:    req.Threshold,
			OldThreshold: old,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// AdminStats handles GET /api/v1/admin/stats, exposing the engine's
// request, cache, and cold-start counters plus per-endpoint latency
// aggregates from the in-process performance monitor.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: adminStatsResult{
			Engine:    h.engine.Stats(),
			Endpoints: h.perf.GetStats(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// adminStatsResult is the payload of the admin stats endpoint.
type adminStatsResult struct {
	Engine    recommend.Stats            `json:"engine"`
	Endpoints []middleware.EndpointStats `json:"endpoints"`
}
