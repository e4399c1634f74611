// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

// Package sentiment classifies review text as Positive or Negative using a
// pretrained TF-IDF vocabulary and logistic-regression weights.
//
// The pipeline is: normalize text (package text), encode tokens into a
// sparse TF-IDF vector against the vocabulary, then score the vector with
// the logistic model. The decision threshold defaults to 0.55 and can be
// changed at runtime without retraining.
//
// # Artifacts
//
// Vocabulary and classifier weights are loaded once at startup from JSON
// files (optionally gzip-compressed). Loading verifies the declared
// dimension, logs the SHA-256 checksum of each artifact, and fails hard on
// any mismatch between vocabulary and classifier dimensions; the server
// never starts with inconsistent artifacts.
//
// # Thread Safety
//
// Vocabulary and Model are immutable after construction. Classifier is safe
// for unbounded concurrent use: scoring reads only immutable state, and the
// runtime threshold is stored atomically.
package sentiment
