// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sentirec/sentirec/internal/logging"
	"github.com/sentirec/sentirec/internal/models"
	"github.com/sentirec/sentirec/internal/recommend"
	"github.com/sentirec/sentirec/internal/sentiment"
)

// maxRequestedRecommendations is the largest list length a client may
// ask for. Out-of-range values fall back to the configured default
// instead of erroring, so sloppy clients still get a useful answer.
const maxRequestedRecommendations = 20

// combinedResult is the payload of the combined predict+recommend
// endpoint: both results plus the server timestamp, mirroring the
// separate endpoints exactly.
type combinedResult struct {
	Sentiment       models.PredictionResult `json:"sentiment"`
	Recommendations *recommend.Response     `json:"recommendations"`
	Timestamp       time.Time               `json:"timestamp"`
}

// Predict handles POST /api/v1/predict. It classifies one review text
// and returns the label, probability, and confidence.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.PredictRequest
	if !h.decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result, err := h.engine.Classify(req.ReviewText)
	if err != nil {
		if errors.Is(err, sentiment.ErrNoUsableTokens) {
			respondError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE",
				"Review text contains no usable tokens after normalization", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to classify review text", err)
		return
	}

	respondSuccess(w, h.predictionResult(result), start, false)
}

// Recommend handles POST /api/v1/recommend. Unknown usernames are
// served by the popularity fallback and flagged cold_start, never
// rejected.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendRequest
	if !h.decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Username: req.Username,
		N:        clampRequestedN(req.NRecommendations),
	})
	if err != nil {
		h.respondPipelineError(w, r, err, "Failed to generate recommendations")
		return
	}

	respondSuccess(w, resp, start, resp.CacheHit)
}

// Combined handles POST /api/v1/combined: one round trip for a
// sentiment prediction and a recommendation list.
func (h *Handler) Combined(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CombinedRequest
	if !h.decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result, err := h.engine.Classify(req.ReviewText)
	if err != nil {
		if errors.Is(err, sentiment.ErrNoUsableTokens) {
			respondError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE",
				"Review text contains no usable tokens after normalization", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to classify review text", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Username: req.Username,
		N:        clampRequestedN(req.NRecommendations),
	})
	if err != nil {
		h.respondPipelineError(w, r, err, "Failed to generate recommendations")
		return
	}

	respondSuccess(w, combinedResult{
		Sentiment:       h.predictionResult(result),
		Recommendations: resp,
		Timestamp:       time.Now().UTC(),
	}, start, resp.CacheHit)
}

// respondPipelineError maps engine errors to status codes. The engine
// only fails on cancellation; 499 mirrors the nginx convention for a
// client that went away.
func (h *Handler) respondPipelineError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
		logging.Debug().Str("path", r.URL.Path).Msg("Request canceled by client")
		respondError(w, 499, "CLIENT_CLOSED_REQUEST", "Request canceled", nil)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		respondError(w, http.StatusGatewayTimeout, "TIMEOUT", "Request timed out", err)
		return
	}
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", message, err)
}

// predictionResult converts a classifier result into the API payload,
// annotating it with the threshold that produced the label so clients
// can reproduce the decision.
func (h *Handler) predictionResult(result sentiment.Result) models.PredictionResult {
	return models.PredictionResult{
		Sentiment:   string(result.Label),
		Probability: result.Probability,
		Confidence:  result.Confidence,
		Threshold:   h.engine.Threshold(),
	}
}

// clampRequestedN maps a client-requested list length to what the
// engine should see: 0 (engine default) when the request is absent or
// out of range.
func clampRequestedN(n int) int {
	if n < 1 || n > maxRequestedRecommendations {
		return 0
	}
	return n
}
