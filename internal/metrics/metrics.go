// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentirec_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentirec_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentirec_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentirec_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Corpus Metrics
	CorpusLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentirec_corpus_load_duration_seconds",
			Help:    "Duration of dataset snapshot loads in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	CorpusRecordsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentirec_corpus_records_loaded_total",
			Help: "Total number of review records accepted during loads",
		},
	)

	CorpusRecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentirec_corpus_records_skipped_total",
			Help: "Total number of malformed review records skipped during loads",
		},
		[]string{"reason"}, // "missing_user", "missing_item", "rating_range", "scan"
	)

	CorpusUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentirec_corpus_users",
			Help: "Number of distinct users in the active snapshot",
		},
	)

	CorpusItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentirec_corpus_items",
			Help: "Number of distinct items in the active snapshot",
		},
	)

	CorpusReviews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentirec_corpus_reviews",
			Help: "Number of review records in the active snapshot",
		},
	)

	// Recommendation Engine Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentirec_recommendations_total",
			Help: "Total number of recommendation requests served",
		},
		[]string{"source"}, // "usercf", "popularity"
	)

	ColdStartsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentirec_cold_starts_total",
			Help: "Total number of requests answered by the popularity fallback",
		},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentirec_recommend_duration_seconds",
			Help:    "Duration of full recommendation pipeline runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CandidatesGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentirec_candidates_generated",
			Help:    "Number of candidates produced per recommendation request",
			Buckets: []float64{1, 5, 10, 20, 50, 100},
		},
	)

	// Sentiment Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentirec_predictions_total",
			Help: "Total number of single-text sentiment predictions",
		},
		[]string{"label"}, // "Positive", "Negative"
	)

	ReviewsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentirec_reviews_scored_total",
			Help: "Total number of stored reviews scored during aggregation",
		},
	)

	ReviewsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentirec_reviews_skipped_total",
			Help: "Total number of stored reviews skipped as unscorable",
		},
	)

	ReviewScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentirec_review_scores",
			Help:    "Distribution of review positivity probabilities",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
		},
	)

	SentimentThreshold = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentirec_sentiment_threshold",
			Help: "Decision threshold currently in effect for the Positive label",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentirec_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "response"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentirec_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sentirec_cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sentirec_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentirec_app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCorpusSkip records one malformed review record skipped during a load.
func RecordCorpusSkip(reason string) {
	CorpusRecordsSkipped.WithLabelValues(reason).Inc()
}

// RecordCorpusLoad records the outcome of a completed snapshot load.
func RecordCorpusLoad(duration time.Duration, users, items, reviews int) {
	CorpusLoadDuration.Observe(duration.Seconds())
	CorpusUsers.Set(float64(users))
	CorpusItems.Set(float64(items))
	CorpusReviews.Set(float64(reviews))
}

// RecordRecommendation records one served recommendation request.
func RecordRecommendation(source string, duration time.Duration, candidates int) {
	RecommendationsTotal.WithLabelValues(source).Inc()
	RecommendDuration.Observe(duration.Seconds())
	CandidatesGenerated.Observe(float64(candidates))
}

// RecordPrediction records one single-text sentiment prediction.
func RecordPrediction(label string) {
	PredictionsTotal.WithLabelValues(label).Inc()
}

// RecordReviewScore records one stored review scored during aggregation.
func RecordReviewScore(probability float64) {
	ReviewsScored.Inc()
	ReviewScores.Observe(probability)
}

// RecordCacheHit records a cache hit for the given cache type.
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the given cache type.
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}
