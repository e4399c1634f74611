// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

/*
Package middleware provides HTTP middleware components for the API surface.

This package implements infrastructure middleware for Prometheus
instrumentation, gzip compression, and in-process performance monitoring.
The components chain as plain http.HandlerFunc wrappers (or http.Handler
for the performance monitor); the api package adapts them onto its chi
router. Request ID handling lives in the api package, which wraps chi's
RequestID middleware with logger propagation.

Key Components:

  - PrometheusMetrics: request counter, latency histogram, and in-flight gauge
  - Compression: gzip response compression for clients that accept it
  - PerformanceMonitor: rolling latency window with percentile aggregation,
    served by the admin stats endpoint

Usage Example:

	pm := middleware.NewPerformanceMonitor(1000)
	handler := pm.Middleware(http.HandlerFunc(
	    middleware.PrometheusMetrics(
	        middleware.Compression(predictHandler),
	    ),
	))

Thread Safety:

All middleware components are safe for concurrent use. Compression pools gzip
writers and the performance monitor guards its window with a sync.RWMutex.

See Also:

  - internal/auth: authentication middleware for the admin surface
  - internal/api: HTTP handlers wrapped by this package
  - internal/metrics: Prometheus metric definitions
*/
package middleware
