// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sentirec/sentirec/internal/cache"
	"github.com/sentirec/sentirec/internal/corpus"
	"github.com/sentirec/sentirec/internal/metrics"
	"github.com/sentirec/sentirec/internal/sentiment"
)

// Engine orchestrates the recommendation pipeline: neighbor search,
// candidate generation, sentiment aggregation, and hybrid ranking. The
// dataset and classifier artifacts are immutable after construction, so
// requests run fully in parallel; the only mutable state is the
// response cache and atomic counters. It is safe for concurrent use.
type Engine struct {
	config Config
	logger zerolog.Logger

	dataset    *corpus.Dataset
	classifier *sentiment.Classifier

	finder     *NeighborFinder
	generator  *CandidateGenerator
	popularity *PopularityRanker
	aggregator *SentimentAggregator

	// store caches serialized responses; nil disables caching.
	store cache.Store

	requestCount  atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
	coldStarts    atomic.Int64
	reviewsScored atomic.Int64
}

// NewEngine creates a recommendation engine over an immutable dataset
// snapshot and a trained classifier. A nil store disables response
// caching.
//
//nolint:gocritic // hugeParam: logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, dataset *corpus.Dataset, classifier *sentiment.Classifier, store cache.Store, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.normalized()

	if dataset == nil {
		return nil, errors.New("dataset is required")
	}
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}

	matrix := dataset.Matrix()

	e := &Engine{
		config:     cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
		dataset:    dataset,
		classifier: classifier,
		finder:     NewNeighborFinder(cfg, matrix),
		generator:  NewCandidateGenerator(cfg, matrix),
		popularity: NewPopularityRanker(cfg, matrix),
		aggregator: NewSentimentAggregator(cfg, dataset, classifier),
		store:      store,
	}

	metrics.SentimentThreshold.Set(classifier.Threshold())

	e.logger.Info().
		Int("users", matrix.NumUsers()).
		Int("products", matrix.NumItems()).
		Int("ratings", matrix.NumRatings()).
		Int("neighbor_k", cfg.NeighborK).
		Float64("threshold", classifier.Threshold()).
		Bool("cache", e.cacheEnabled()).
		Msg("Recommendation engine ready")

	return e, nil
}

// Recommend generates recommendations for a user. Unknown usernames and
// users collaborative filtering cannot serve get the popularity
// fallback, never an error; the only error is context cancellation.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)

	if resp := e.tryGetCachedResponse(ctx, req, logger); resp != nil {
		return resp, nil
	}

	resp, err := e.computeResponse(ctx, req)
	if err != nil {
		return nil, err
	}

	e.cacheResponse(ctx, req, resp)

	duration := time.Since(start)
	metrics.RecordRecommendation(string(resp.Source), duration, resp.TotalCandidates)

	logger.Debug().
		Str("source", string(resp.Source)).
		Bool("cold_start", resp.ColdStart).
		Int("candidates", resp.TotalCandidates).
		Int("returned", len(resp.Recommendations)).
		Dur("elapsed", duration).
		Msg("Recommendation complete")

	return resp, nil
}

// Classify is the text-only sentiment entry point. Text that normalizes
// to no usable tokens returns sentiment.ErrNoUsableTokens.
func (e *Engine) Classify(reviewText string) (sentiment.Result, error) {
	result, err := e.classifier.Classify(reviewText)
	if err != nil {
		return sentiment.Result{}, err
	}
	metrics.RecordPrediction(string(result.Label))
	return result, nil
}

// Threshold returns the sentiment decision boundary currently in effect.
func (e *Engine) Threshold() float64 {
	return e.classifier.Threshold()
}

// SetThreshold updates the sentiment decision boundary at runtime,
// without retraining. Future classifications and freshly computed
// ratios use the new value; cache keys include the threshold, so
// responses computed under the old one are never served.
func (e *Engine) SetThreshold(t float64) error {
	if err := e.classifier.SetThreshold(t); err != nil {
		return err
	}
	metrics.SentimentThreshold.Set(t)
	e.logger.Info().Float64("threshold", t).Msg("Sentiment threshold updated")
	return nil
}

// Stats returns a snapshot of engine counters and dataset shape.
func (e *Engine) Stats() Stats {
	matrix := e.dataset.Matrix()
	return Stats{
		Requests:        e.requestCount.Load(),
		CacheHits:       e.cacheHits.Load(),
		CacheMisses:     e.cacheMisses.Load(),
		ColdStarts:      e.coldStarts.Load(),
		ReviewsScored:   e.reviewsScored.Load(),
		Threshold:       e.classifier.Threshold(),
		Users:           matrix.NumUsers(),
		Products:        matrix.NumItems(),
		Reviews:         e.dataset.Size(),
		DatasetLoadedAt: e.dataset.LoadedAt(),
	}
}

// prepareRequest applies defaults and clamps the result count.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.N <= 0 {
		req.N = e.config.TopResults
	}
	if req.N > MaxTopResults {
		req.N = MaxTopResults
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("username", req.Username).
		Int("n", req.N).
		Logger()
}

// computeResponse runs the pipeline for a cache miss.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) computeResponse(ctx context.Context, req Request) (*Response, error) {
	candidates, source, coldStart, err := e.getCandidates(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}

	scored, err := e.aggregator.Aggregate(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("aggregate sentiment: %w", err)
	}

	for i := range scored {
		e.reviewsScored.Add(int64(scored[i].reviewCount))
	}

	if coldStart {
		e.coldStarts.Add(1)
		metrics.ColdStartsTotal.Inc()
	}

	return &Response{
		Username:        req.Username,
		Recommendations: rankHybrid(scored, req.N),
		ColdStart:       coldStart,
		Source:          source,
		Explanation:     explanationFor(source, len(candidates)),
		TotalCandidates: len(candidates),
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// getCandidates produces candidates via collaborative filtering,
// falling back to popularity when the user cannot be served: unknown
// username, no positive-similarity neighbor, or no unrated product any
// neighbor rated.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) getCandidates(ctx context.Context, req Request) ([]Candidate, Source, bool, error) {
	if e.dataset.Matrix().HasUser(req.Username) {
		neighbors, err := e.finder.Neighbors(ctx, req.Username)
		if err != nil {
			return nil, SourceUserCF, false, err
		}

		if len(neighbors) > 0 {
			if candidates := e.generator.Candidates(req.Username, neighbors); len(candidates) > 0 {
				return candidates, SourceUserCF, false, nil
			}
		}
	}

	return e.popularity.Candidates(req.Username), SourcePopularity, true, nil
}

// cacheEnabled reports whether responses are cached.
func (e *Engine) cacheEnabled() bool {
	return e.config.CacheEnabled && e.store != nil
}

// cacheKey builds the cache key from every input that can change the
// response. The threshold is part of the key, so an operator threshold
// change naturally invalidates responses computed under the old one.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cacheKey(req Request) string {
	return fmt.Sprintf("rec:%s:%d:%d", req.Username, req.N, math.Float64bits(e.classifier.Threshold()))
}

// tryGetCachedResponse attempts to serve the request from cache.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCachedResponse(ctx context.Context, req Request, logger zerolog.Logger) *Response {
	if !e.cacheEnabled() {
		return nil
	}

	raw, ok := e.store.Get(ctx, e.cacheKey(req))
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		logger.Warn().Err(err).Msg("Discarding undecodable cache entry")
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	resp.CacheHit = true
	logger.Debug().Msg("Cache hit")
	return &resp
}

// cacheResponse stores the response if caching is enabled. Best effort;
// encoding failures are logged and the response is served uncached.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cacheResponse(ctx context.Context, req Request, resp *Response) {
	if !e.cacheEnabled() {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		e.logger.Warn().Err(err).Msg("Failed to encode response for cache")
		return
	}
	e.store.Set(ctx, e.cacheKey(req), raw)
}

// explanationFor summarizes the candidate path for API consumers.
func explanationFor(source Source, candidates int) string {
	if source == SourcePopularity {
		return fmt.Sprintf("ranked %d popular products by their positive review ratio (cold start fallback)", candidates)
	}
	return fmt.Sprintf("ranked %d products predicted from similar users by their positive review ratio", candidates)
}
