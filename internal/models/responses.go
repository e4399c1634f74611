// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package models

// PredictionResult is the payload of a successful /predict call.
//
// Confidence is max(p, 1-p): the distance from the coin flip, regardless
// of which label won. Threshold is the decision threshold that was in
// effect, so clients can reproduce the labeling.
type PredictionResult struct {
	Sentiment   string  `json:"sentiment"`
	Probability float64 `json:"probability"`
	Confidence  float64 `json:"confidence"`
	Threshold   float64 `json:"threshold"`
}

// ThresholdResult confirms a threshold update, echoing the previous value
// so audit trails can reconstruct the change.
type ThresholdResult struct {
	Threshold    float64 `json:"threshold"`
	OldThreshold float64 `json:"old_threshold"`
}

// ComponentCheck is one named readiness probe inside a health response.
type ComponentCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResult is the payload of the /health endpoint.
//
// Status is "ok" when every component check passed and "degraded"
// otherwise. The liveness endpoint never reports degraded; only readiness
// inspects the components.
type HealthResult struct {
	Status     string                    `json:"status"`
	Version    string                    `json:"version,omitempty"`
	UptimeSecs int64                     `json:"uptime_seconds"`
	Components map[string]ComponentCheck `json:"components,omitempty"`
}
