// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package sentiment

import (
	"fmt"
	"math"
)

// Model holds pretrained logistic-regression weights over the TF-IDF
// feature space. Immutable after construction.
type Model struct {
	bias    float64
	weights []float64
}

// NewModel creates a logistic model from an intercept and per-column weights.
func NewModel(bias float64, weights []float64) (*Model, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: empty weight vector", ErrInvalidArtifact)
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %d is not finite", ErrInvalidArtifact, i)
		}
	}
	return &Model{bias: bias, weights: weights}, nil
}

// Dim returns the expected feature dimension.
func (m *Model) Dim() int {
	return len(m.weights)
}

// Probability returns P(positive) for the given feature vector, in [0,1].
// The vector dimension must equal Dim; that invariant is enforced once at
// classifier construction, not per call.
func (m *Model) Probability(vec SparseVector) float64 {
	return sigmoid(m.bias + vec.DotDense(m.weights))
}

// sigmoid is the standard logistic function. math.Exp saturates cleanly for
// large |z|, so no explicit clamping is needed.
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
