// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

// Package api implements the HTTP surface of the recommendation engine.
//
// The package wires a chi router around a small set of JSON handlers:
//
//   - POST /api/v1/predict    sentiment for a single piece of review text
//   - POST /api/v1/recommend  personalized product recommendations
//   - POST /api/v1/combined   both of the above in one round trip
//   - GET  /api/v1/health     component health, plus /live and /ready probes
//   - POST /api/v1/auth/login JWT issuance for the admin account
//   - PUT  /api/v1/admin/threshold  runtime decision-threshold updates
//   - GET  /api/v1/admin/stats      engine and endpoint counters
//   - GET  /metrics           Prometheus exposition
//
// Every handler responds with the models.APIResponse envelope. Cross-cutting
// concerns (request IDs, CORS, rate limiting, compression, metrics, security
// headers) are applied per route group in SetupChi, with tiered rate limits
// so health probes and login attempts are budgeted independently of the
// scoring endpoints.
package api
