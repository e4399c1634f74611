// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sentirec/sentirec/internal/corpus"
	"github.com/sentirec/sentirec/internal/sentiment"
)

func aggregateDataset(t *testing.T) *corpus.Dataset {
	t.Helper()

	stamp := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	reviews := []corpus.Review{
		{Username: "u1", Product: "prodA", Rating: 5, Text: "This product is amazing!", Timestamp: stamp},
		{Username: "u2", Product: "prodA", Rating: 2, Text: "junk", Timestamp: stamp},
		{Username: "u1", Product: "prodB", Rating: 4, Text: "", Timestamp: stamp},
		{Username: "u2", Product: "prodB", Rating: 1, Text: "!!!", Timestamp: stamp},
		{Username: "u3", Product: "prodB", Rating: 3, Text: "good", Timestamp: stamp},
		{Username: "u1", Product: "prodC", Rating: 2, Text: "", Timestamp: stamp},
	}

	ds, err := corpus.NewDataset(reviews, 0)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	return ds
}

func TestSentimentAggregator_Aggregate(t *testing.T) {
	agg := NewSentimentAggregator(
		DefaultConfig(),
		aggregateDataset(t),
		testClassifier(t, sentiment.DefaultThreshold),
	)

	candidates := []Candidate{
		{Product: "prodA", Affinity: 4.5, Support: 2, Rank: 1},
		{Product: "prodB", Affinity: 4.1, Support: 2, Rank: 2},
		{Product: "prodC", Affinity: 3.9, Support: 1, Rank: 3},
		{Product: "prodD", Affinity: 3.5, Support: 1, Rank: 4},
	}

	got, err := agg.Aggregate(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	// prodC's only review has no text and prodD has no reviews at all:
	// their ratios are undefined, so both disappear instead of
	// defaulting to 0 or 1.
	if len(got) != 2 {
		t.Fatalf("Aggregate() count = %d, want 2 (%+v)", len(got), got)
	}

	if got[0].Product != "prodA" {
		t.Errorf("Aggregate()[0].Product = %q, want %q", got[0].Product, "prodA")
	}
	if got[0].positiveRatio != 0.5 {
		t.Errorf("prodA ratio = %v, want 0.5", got[0].positiveRatio)
	}
	if got[0].reviewCount != 2 {
		t.Errorf("prodA review count = %d, want 2", got[0].reviewCount)
	}
	if got[0].Rank != 1 {
		t.Errorf("prodA rank = %d, want 1", got[0].Rank)
	}

	// prodB keeps only the "good" review: the empty text and the text
	// that strips to nothing never enter the denominator.
	if got[1].Product != "prodB" {
		t.Errorf("Aggregate()[1].Product = %q, want %q", got[1].Product, "prodB")
	}
	if got[1].positiveRatio != 1.0 {
		t.Errorf("prodB ratio = %v, want 1.0", got[1].positiveRatio)
	}
	if got[1].reviewCount != 1 {
		t.Errorf("prodB review count = %d, want 1", got[1].reviewCount)
	}
}

func TestSentimentAggregator_RaisingThresholdNeverRaisesRatio(t *testing.T) {
	ds := aggregateDataset(t)
	candidates := []Candidate{
		{Product: "prodA", Rank: 1},
		{Product: "prodB", Rank: 2},
	}

	low := NewSentimentAggregator(DefaultConfig(), ds, testClassifier(t, sentiment.DefaultThreshold))
	high := NewSentimentAggregator(DefaultConfig(), ds, testClassifier(t, 0.9))

	lowScored, err := low.Aggregate(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	highScored, err := high.Aggregate(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if len(lowScored) != len(highScored) {
		t.Fatalf("scored counts differ: %d vs %d", len(lowScored), len(highScored))
	}
	for i := range lowScored {
		if highScored[i].positiveRatio > lowScored[i].positiveRatio {
			t.Errorf("%s: ratio rose from %v to %v when the threshold rose",
				lowScored[i].Product, lowScored[i].positiveRatio, highScored[i].positiveRatio)
		}
	}

	// "good" scores ~0.86: positive at the default threshold, negative
	// at 0.9. prodB's ratio must drop to zero while prodA, carried by a
	// stronger text, keeps its score unchanged.
	if highScored[1].positiveRatio != 0.0 {
		t.Errorf("prodB ratio at 0.9 = %v, want 0", highScored[1].positiveRatio)
	}
	if highScored[0].positiveRatio != 0.5 {
		t.Errorf("prodA ratio at 0.9 = %v, want 0.5", highScored[0].positiveRatio)
	}
}

func TestSentimentAggregator_EnglishPassesLanguageGate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LanguageGate = true

	agg := NewSentimentAggregator(cfg, aggregateDataset(t), testClassifier(t, sentiment.DefaultThreshold))

	got, err := agg.Aggregate(context.Background(), []Candidate{{Product: "prodA", Rank: 1}})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(got) != 1 || got[0].reviewCount != 2 {
		t.Fatalf("Aggregate() = %+v, want prodA with 2 scored reviews", got)
	}
}

func TestLikelyEnglish(t *testing.T) {
	if !likelyEnglish("This product works great and I would happily recommend it to anyone looking for one.") {
		t.Error("likelyEnglish() = false for plainly English text")
	}
}

func TestSentimentAggregator_EmptyCandidates(t *testing.T) {
	agg := NewSentimentAggregator(
		DefaultConfig(),
		aggregateDataset(t),
		testClassifier(t, sentiment.DefaultThreshold),
	)

	got, err := agg.Aggregate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Aggregate() = %+v, want empty", got)
	}
}

func TestSentimentAggregator_Cancelled(t *testing.T) {
	agg := NewSentimentAggregator(
		DefaultConfig(),
		aggregateDataset(t),
		testClassifier(t, sentiment.DefaultThreshold),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := agg.Aggregate(ctx, []Candidate{{Product: "prodA", Rank: 1}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Aggregate() error = %v, want context.Canceled", err)
	}
}
