// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring request performance, recommendation
quality signals, sentiment scoring throughput, and system health.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8650/metrics

# Available Metrics

API Metrics:
  - sentirec_api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - sentirec_api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - sentirec_api_active_requests: Active requests (gauge)
  - sentirec_api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Corpus Metrics:
  - sentirec_corpus_load_duration_seconds: Snapshot load duration (histogram)
  - sentirec_corpus_records_loaded_total: Accepted review records (counter)
  - sentirec_corpus_records_skipped_total: Malformed records skipped (counter)
    Labels: reason (missing_user, missing_item, rating_range, scan)
  - sentirec_corpus_users: Distinct users in the active snapshot (gauge)
  - sentirec_corpus_items: Distinct items in the active snapshot (gauge)
  - sentirec_corpus_reviews: Review records in the active snapshot (gauge)

Recommendation Metrics:
  - sentirec_recommendations_total: Recommendation requests served (counter)
    Labels: source (usercf, popularity)
  - sentirec_cold_starts_total: Requests answered by the popularity fallback (counter)
  - sentirec_recommend_duration_seconds: Pipeline run duration (histogram)
  - sentirec_candidates_generated: Candidates produced per request (histogram)

Sentiment Metrics:
  - sentirec_predictions_total: Single-text predictions (counter)
    Labels: label (Positive, Negative)
  - sentirec_reviews_scored_total: Stored reviews scored during aggregation (counter)
  - sentirec_reviews_skipped_total: Stored reviews skipped as unscorable (counter)
  - sentirec_review_scores: Distribution of review positivity probabilities (histogram)
  - sentirec_sentiment_threshold: Decision threshold currently in effect (gauge)

Cache Metrics:
  - sentirec_cache_hits_total: Cache hits (counter)
    Labels: cache_type
  - sentirec_cache_misses_total: Cache misses (counter)
    Labels: cache_type
  - sentirec_cache_entries: Current cached entries (gauge)
    Labels: cache_type

System Metrics:
  - sentirec_app_info: Version and build information (gauge)
    Labels: version, go_version
  - sentirec_app_uptime_seconds: Application uptime (gauge)

# Usage Example

Recording API metrics from middleware:

	start := time.Now()
	next.ServeHTTP(rw, r)
	metrics.RecordAPIRequest(r.Method, pattern, strconv.Itoa(rw.status), time.Since(start))

Recording recommendation outcomes:

	metrics.RecordRecommendation("usercf", time.Since(start), len(candidates))

Example PromQL queries:

	# Request rate
	rate(sentirec_api_requests_total[5m])

	# p95 recommendation latency
	histogram_quantile(0.95, rate(sentirec_recommend_duration_seconds_bucket[5m]))

	# Cold start ratio
	rate(sentirec_cold_starts_total[5m]) / rate(sentirec_recommendations_total[5m])

	# Cache hit rate
	sum(rate(sentirec_cache_hits_total[5m])) / (sum(rate(sentirec_cache_hits_total[5m])) + sum(rate(sentirec_cache_misses_total[5m])))

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels use the registered route pattern, never the raw URL path
  - Prediction labels are limited to the two decision labels
  - Usernames and item identifiers never appear as label values

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/corpus: Dataset load metrics recording
  - internal/recommend: Pipeline metrics recording
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
