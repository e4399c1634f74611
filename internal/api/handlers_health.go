// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sentirec/sentirec/internal/models"
)

// Health handles GET /api/v1/health. It reports overall status plus
// per-component checks: the loaded corpus and the classifier artifacts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.componentChecks()

	status := "ok"
	for _, c := range components {
		if c.Status != "ok" {
			status = "degraded"
			break
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthResult{
			Status:     status,
			Version:    h.version,
			UptimeSecs: int64(time.Since(h.startTime).Seconds()),
			Components: components,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthLive handles GET /api/v1/health/live. It returns 200 whenever
// the process is up, regardless of engine state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthResult{
			Status:     "ok",
			UptimeSecs: int64(time.Since(h.startTime).Seconds()),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady handles GET /api/v1/health/ready. Readiness requires the
// engine; a 503 tells orchestrators to hold traffic.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Recommendation engine not ready", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthResult{
			Status:     "ok",
			UptimeSecs: int64(time.Since(h.startTime).Seconds()),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// componentChecks builds the per-component section of the full health
// response. The engine holds everything immutable, so a ready engine
// implies loaded artifacts; the checks still report sizes so operators
// can spot an accidentally empty snapshot.
func (h *Handler) componentChecks() map[string]models.ComponentCheck {
	checks := make(map[string]models.ComponentCheck, 2)

	if h.engine == nil {
		checks["engine"] = models.ComponentCheck{Status: "down", Message: "engine not initialized"}
		return checks
	}

	stats := h.engine.Stats()

	corpusStatus := "ok"
	corpusMsg := fmt.Sprintf("%d reviews, %d users, %d products", stats.Reviews, stats.Users, stats.Products)
	if stats.Reviews == 0 {
		corpusStatus = "degraded"
		corpusMsg = "corpus is empty"
	}
	checks["corpus"] = models.ComponentCheck{Status: corpusStatus, Message: corpusMsg}

	checks["classifier"] = models.ComponentCheck{
		Status:  "ok",
		Message: fmt.Sprintf("threshold %.2f", stats.Threshold),
	}

	return checks
}
