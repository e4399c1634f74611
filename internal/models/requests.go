// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package models

// PredictRequest asks for a sentiment classification of one review text.
type PredictRequest struct {
	// ReviewText is the raw review to classify. Texts that normalize to
	// no usable tokens are rejected with 422, not classified.
	ReviewText string `json:"review_text" validate:"required,max=5000"`
}

// RecommendRequest asks for a ranked product list for one user.
//
// NRecommendations is deliberately not range-validated here. The engine
// replaces out-of-range values with its configured default, so a client
// sending n=0 or n=500 still gets a useful answer.
type RecommendRequest struct {
	// Username is the user to recommend for. Unknown usernames are
	// served by the popularity fallback.
	Username string `json:"username" validate:"required,max=50"`

	// NRecommendations is the requested list length, default 5.
	NRecommendations int `json:"n_recommendations"`
}

// CombinedRequest asks for a prediction and a recommendation list in one
// round trip.
type CombinedRequest struct {
	Username         string `json:"username" validate:"required,max=50"`
	ReviewText       string `json:"review_text" validate:"required,max=5000"`
	NRecommendations int    `json:"n_recommendations"`
}

// ThresholdRequest updates the runtime sentiment decision threshold.
// The bounds are exclusive; 0 and 1 would make one label unreachable.
type ThresholdRequest struct {
	Threshold float64 `json:"threshold" validate:"required,gt=0,lt=1"`
}
