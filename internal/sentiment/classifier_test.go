// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package sentiment

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/sentirec/sentirec/internal/text"
)

// testClassifier builds a classifier over a small hand-weighted vocabulary.
// Terms are stems as the normalizer produces them.
func testClassifier(t *testing.T, threshold float64) *Classifier {
	t.Helper()

	vocab, err := NewVocabulary(map[string]int{
		"good":         0,
		"not good":     1,
		"amaz":         2,
		"product":      3,
		"terribl":      4,
		"great":        5,
		"junk":         6,
		"product amaz": 7,
	}, []float64{1.0, 1.0, 1.0, 1.0, 1.0, 1.2, 1.5, 1.0})
	if err != nil {
		t.Fatalf("NewVocabulary() error = %v", err)
	}

	model, err := NewModel(-0.2, []float64{2.0, -4.0, 3.0, 0.2, -3.0, 2.5, -2.8, 1.0})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	c, err := NewClassifier(text.NewNormalizer(text.Config{}), vocab, model, threshold)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	return c
}

func TestNewClassifierDimensionMismatch(t *testing.T) {
	t.Parallel()

	vocab, err := NewVocabulary(map[string]int{"good": 0}, []float64{1.0, 1.0})
	if err != nil {
		t.Fatalf("NewVocabulary() error = %v", err)
	}
	model, err := NewModel(0, []float64{1.0, 2.0, 3.0})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	_, err = NewClassifier(text.NewNormalizer(text.Config{}), vocab, model, DefaultThreshold)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("NewClassifier() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestThresholdValidation(t *testing.T) {
	t.Parallel()

	c := testClassifier(t, DefaultThreshold)

	for _, bad := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		if err := c.SetThreshold(bad); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("SetThreshold(%v) error = %v, want ErrInvalidThreshold", bad, err)
		}
	}

	if err := c.SetThreshold(0.7); err != nil {
		t.Fatalf("SetThreshold(0.7) error = %v", err)
	}
	if got := c.Threshold(); got != 0.7 {
		t.Errorf("Threshold() = %v, want 0.7", got)
	}
}

func TestClassifyPositiveScenario(t *testing.T) {
	t.Parallel()

	c := testClassifier(t, DefaultThreshold)

	got, err := c.Classify("This product is amazing!")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Label != LabelPositive {
		t.Errorf("Classify() label = %v, want %v", got.Label, LabelPositive)
	}
	if got.Probability < DefaultThreshold {
		t.Errorf("Classify() probability = %v, want >= %v", got.Probability, DefaultThreshold)
	}
	if want := math.Max(got.Probability, 1-got.Probability); got.Confidence != want {
		t.Errorf("Classify() confidence = %v, want %v", got.Confidence, want)
	}
}

func TestClassifyNegationDiffersFromPlain(t *testing.T) {
	t.Parallel()

	c := testClassifier(t, DefaultThreshold)

	plain, err := c.Classify("good")
	if err != nil {
		t.Fatalf("Classify(good) error = %v", err)
	}
	negated, err := c.Classify("not good at all")
	if err != nil {
		t.Fatalf("Classify(not good at all) error = %v", err)
	}

	if plain.Label != LabelPositive {
		t.Errorf("Classify(good) label = %v, want %v", plain.Label, LabelPositive)
	}
	if negated.Label != LabelNegative {
		t.Errorf("Classify(not good at all) label = %v, want %v", negated.Label, LabelNegative)
	}
	if negated.Probability >= plain.Probability {
		t.Errorf("negated probability %v should be below plain probability %v",
			negated.Probability, plain.Probability)
	}
}

func TestClassifyNoUsableTokens(t *testing.T) {
	t.Parallel()

	c := testClassifier(t, DefaultThreshold)

	for _, input := range []string{"", "   ", "!!!", "the and or", "12345"} {
		if _, err := c.Classify(input); !errors.Is(err, ErrNoUsableTokens) {
			t.Errorf("Classify(%q) error = %v, want ErrNoUsableTokens", input, err)
		}
	}
}

func TestThresholdMonotonicity(t *testing.T) {
	t.Parallel()

	c := testClassifier(t, 0.5)

	texts := []string{
		"This product is amazing!",
		"good",
		"terrible junk",
		"not good at all",
		"great product",
	}

	countPositives := func() int {
		var n int
		for _, s := range texts {
			res, err := c.Classify(s)
			if err != nil {
				t.Fatalf("Classify(%q) error = %v", s, err)
			}
			if res.Label == LabelPositive {
				n++
			}
		}
		return n
	}

	prev := math.MaxInt32
	for _, threshold := range []float64{0.2, 0.5, 0.8, 0.95} {
		if err := c.SetThreshold(threshold); err != nil {
			t.Fatalf("SetThreshold(%v) error = %v", threshold, err)
		}
		n := countPositives()
		if n > prev {
			t.Errorf("positives at threshold %v = %d, exceeds %d at lower threshold", threshold, n, prev)
		}
		prev = n
	}
}

func TestClassifyConcurrent(t *testing.T) {
	t.Parallel()

	c := testClassifier(t, DefaultThreshold)

	want, err := c.Classify("great product")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Classify("great product")
			if err != nil {
				t.Errorf("concurrent Classify() error = %v", err)
				return
			}
			if got != want {
				t.Errorf("concurrent Classify() = %+v, want %+v", got, want)
			}
		}()
	}
	wg.Wait()
}
