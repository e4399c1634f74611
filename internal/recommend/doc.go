// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

// Package recommend implements the sentiment-aware recommendation engine.
//
// # Pipeline
//
// A recommendation request flows through four read-only stages:
//
//   - Neighbor search: cosine similarity of mean-centered rating vectors,
//     restricted to co-rated products, selects the K most similar users.
//   - Candidate generation: similarity-weighted averaging of neighbor
//     ratings predicts an affinity for each product the target has not
//     rated; the top-N candidates survive.
//   - Sentiment aggregation: every review of every candidate is scored by
//     the logistic classifier and collapsed into a positive review ratio.
//   - Hybrid ranking: candidates order by positive ratio, then affinity
//     rank, then product id; the top-M are returned, never padded.
//
// Users that collaborative filtering cannot serve (no history, or no
// rating overlap with anyone) fall back to a popularity ranking over the
// whole corpus, flagged cold_start. The fallback feeds the same
// aggregation and ranking stages, so sentiment ordering holds there too.
//
// # Design Principles
//
//   - Deterministic: identical dataset, artifacts, and threshold produce
//     identical ordered output; every sort has explicit tiebreakers.
//   - Read-only: the dataset and model artifacts are immutable after
//     startup, so requests run fully in parallel with no coordination.
//   - Cancellable: the neighbor scan and sentiment fan-out check the
//     request context between units of work; cancellation never corrupts
//     state, it only stops wasted computation.
//   - Non-fatal data: one unscoreable review drops that review, one
//     unscoreable candidate drops that candidate, and an unknown user is
//     a cold start. None of these fail the request.
//
// # Usage
//
//	engine := recommend.NewEngine(cfg, dataset, classifier, store, logger)
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Username: "alice",
//	    N:        5,
//	})
//
// # Thread Safety
//
// All exported methods on Engine are safe for concurrent use. The only
// mutable state is the response cache and atomic counters.
package recommend
