// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package sentiment

import (
	"errors"
	"math"
	"testing"
)

func TestNewModelValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewModel(0, nil); !errors.Is(err, ErrInvalidArtifact) {
		t.Errorf("NewModel(empty) error = %v, want ErrInvalidArtifact", err)
	}
	if _, err := NewModel(0, []float64{1, math.NaN()}); !errors.Is(err, ErrInvalidArtifact) {
		t.Errorf("NewModel(NaN) error = %v, want ErrInvalidArtifact", err)
	}
	if _, err := NewModel(0, []float64{math.Inf(1)}); !errors.Is(err, ErrInvalidArtifact) {
		t.Errorf("NewModel(Inf) error = %v, want ErrInvalidArtifact", err)
	}
}

func TestProbability(t *testing.T) {
	t.Parallel()

	model, err := NewModel(-0.5, []float64{2.0, -3.0, 1.0})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	tests := []struct {
		name string
		vec  SparseVector
		want float64
	}{
		{
			name: "empty vector scores the bias",
			vec:  SparseVector{Dim: 3},
			want: sigmoid(-0.5),
		},
		{
			name: "positive evidence",
			vec:  SparseVector{Indices: []int{0}, Values: []float64{1.5}, Dim: 3},
			want: sigmoid(-0.5 + 3.0),
		},
		{
			name: "mixed evidence",
			vec:  SparseVector{Indices: []int{0, 1}, Values: []float64{1.0, 1.0}, Dim: 3},
			want: sigmoid(-0.5 + 2.0 - 3.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := model.Probability(tt.vec)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Probability() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Probability() = %v, want value in [0,1]", got)
			}
		})
	}
}

func TestProbabilityBounds(t *testing.T) {
	t.Parallel()

	model, err := NewModel(0, []float64{1000.0, -1000.0})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	high := model.Probability(SparseVector{Indices: []int{0}, Values: []float64{10}, Dim: 2})
	low := model.Probability(SparseVector{Indices: []int{1}, Values: []float64{10}, Dim: 2})

	if high < 0.999999 || high > 1 {
		t.Errorf("saturated positive probability = %v, want close to 1 within [0,1]", high)
	}
	if low > 0.000001 || low < 0 {
		t.Errorf("saturated negative probability = %v, want close to 0 within [0,1]", low)
	}
}
