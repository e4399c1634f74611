// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package sentiment

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/sentirec/sentirec/internal/text"
)

// DefaultThreshold is the decision boundary for the Positive label.
const DefaultThreshold = 0.55

// Label is the sentiment class of a review text.
type Label string

// Sentiment labels.
const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
)

// Result is the outcome of classifying one text.
type Result struct {
	// Label is Positive iff Probability >= the threshold in effect.
	Label Label `json:"sentiment"`

	// Probability is P(positive) in [0,1].
	Probability float64 `json:"probability"`

	// Confidence is max(p, 1-p): how far the model is from the coin flip.
	Confidence float64 `json:"confidence"`
}

// Classifier is the text-only sentiment entry point. It owns the normalize,
// encode and score stages plus the runtime-adjustable decision threshold.
type Classifier struct {
	normalizer *text.Normalizer
	vocab      *Vocabulary
	model      *Model

	// threshold holds math.Float64bits of the decision boundary so it can
	// be updated at runtime without a lock.
	threshold atomic.Uint64
}

// NewClassifier wires a normalizer, vocabulary and model together. It fails
// with ErrDimensionMismatch when the artifacts disagree on the feature
// dimension and with ErrInvalidThreshold for a threshold outside (0,1).
func NewClassifier(n *text.Normalizer, v *Vocabulary, m *Model, threshold float64) (*Classifier, error) {
	if v.Dim() != m.Dim() {
		return nil, fmt.Errorf("%w: vocabulary dim %d, classifier dim %d",
			ErrDimensionMismatch, v.Dim(), m.Dim())
	}
	c := &Classifier{
		normalizer: n,
		vocab:      v,
		model:      m,
	}
	if err := c.SetThreshold(threshold); err != nil {
		return nil, err
	}
	return c, nil
}

// Threshold returns the decision boundary currently in effect.
func (c *Classifier) Threshold() float64 {
	return math.Float64frombits(c.threshold.Load())
}

// SetThreshold updates the decision boundary at runtime. Scores and stored
// reviews are untouched; only future label decisions change.
func (c *Classifier) SetThreshold(t float64) error {
	if math.IsNaN(t) || t <= 0 || t >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, t)
	}
	c.threshold.Store(math.Float64bits(t))
	return nil
}

// Dim returns the feature dimension shared by vocabulary and model.
func (c *Classifier) Dim() int {
	return c.vocab.Dim()
}

// Classify normalizes, encodes and scores one text. Text that normalizes to
// an empty token sequence returns ErrNoUsableTokens; the classification is
// undefined for such input rather than defaulted.
func (c *Classifier) Classify(reviewText string) (Result, error) {
	tokens := c.normalizer.Normalize(reviewText)
	if len(tokens) == 0 {
		return Result{}, ErrNoUsableTokens
	}
	return c.ClassifyTokens(tokens), nil
}

// ClassifyTokens scores an already-normalized token sequence. The sequence
// must be non-empty.
func (c *Classifier) ClassifyTokens(tokens []string) Result {
	p := c.model.Probability(c.vocab.Encode(tokens))
	return Result{
		Label:       labelFor(p, c.Threshold()),
		Probability: p,
		Confidence:  math.Max(p, 1-p),
	}
}

// labelFor applies the decision boundary: Positive iff p >= threshold.
func labelFor(p, threshold float64) Label {
	if p >= threshold {
		return LabelPositive
	}
	return LabelNegative
}
