// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"context"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/sync/errgroup"

	"github.com/sentirec/sentirec/internal/corpus"
	"github.com/sentirec/sentirec/internal/metrics"
	"github.com/sentirec/sentirec/internal/sentiment"
)

// scoredCandidate is a candidate annotated with its aggregated
// sentiment, ready for hybrid ranking.
type scoredCandidate struct {
	Candidate

	// positiveRatio is positives / reviewCount, in [0,1].
	positiveRatio float64

	// reviewCount is the number of reviews the classifier scored.
	reviewCount int
}

// SentimentAggregator scores every review of each candidate product
// with the sentiment classifier and collapses them into a positive
// review ratio. Candidates fan out across an errgroup; each product's
// reviews are scored sequentially within its goroutine.
type SentimentAggregator struct {
	cfg        Config
	dataset    *corpus.Dataset
	classifier *sentiment.Classifier
}

// NewSentimentAggregator creates an aggregator over the given dataset
// and classifier.
func NewSentimentAggregator(cfg Config, dataset *corpus.Dataset, classifier *sentiment.Classifier) *SentimentAggregator {
	return &SentimentAggregator{
		cfg:        cfg.normalized(),
		dataset:    dataset,
		classifier: classifier,
	}
}

// Aggregate classifies the reviews of every candidate in parallel and
// returns the candidates with at least one scoreable review, in input
// order. A candidate whose reviews all normalize to nothing has an
// undefined ratio and is dropped, never defaulted to 0 or 1. The only
// error is context cancellation.
func (a *SentimentAggregator) Aggregate(ctx context.Context, candidates []Candidate) ([]scoredCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	// Indexed writes preserve candidate order without a merge sort.
	results := make([]*scoredCandidate, len(candidates))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.cfg.Workers)

	for i, cand := range candidates {
		i, cand := i, cand
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			positives, scored := a.scoreProduct(cand.Product)
			if scored == 0 {
				return nil
			}

			results[i] = &scoredCandidate{
				Candidate:     cand,
				positiveRatio: float64(positives) / float64(scored),
				reviewCount:   scored,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]scoredCandidate, 0, len(candidates))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

// scoreProduct classifies every review of one product. Reviews with no
// text, reviews that normalize to no tokens, and reviews gated as
// non-English are skipped; a review that carries no verdict must not
// appear in the ratio's denominator.
func (a *SentimentAggregator) scoreProduct(product string) (positives, scored int) {
	for _, review := range a.dataset.ItemReviews(product) {
		if review.Text == "" {
			metrics.ReviewsSkipped.Inc()
			continue
		}
		if a.cfg.LanguageGate && !likelyEnglish(review.Text) {
			metrics.ReviewsSkipped.Inc()
			continue
		}

		result, err := a.classifier.Classify(review.Text)
		if err != nil {
			// Unscoreable text drops this review only.
			metrics.ReviewsSkipped.Inc()
			continue
		}

		scored++
		metrics.RecordReviewScore(result.Probability)
		if result.Label == sentiment.LabelPositive {
			positives++
		}
	}
	return positives, scored
}

// likelyEnglish reports whether text should reach the classifier when
// the language gate is on. Unreliable detections pass through; short
// review snippets rarely detect reliably.
func likelyEnglish(text string) bool {
	info := whatlanggo.Detect(text)
	return info.Lang == whatlanggo.Eng || !info.IsReliable()
}
