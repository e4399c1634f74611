// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package sentiment

import "errors"

// ErrInvalidArtifact indicates a vocabulary or classifier artifact that is
// structurally unusable (bad format, out-of-range index, non-finite weight).
var ErrInvalidArtifact = errors.New("invalid sentiment artifact")

// ErrDimensionMismatch indicates vocabulary and classifier artifacts that
// disagree on the feature dimension. Fatal at startup, never recoverable.
var ErrDimensionMismatch = errors.New("vocabulary and classifier dimensions do not match")

// ErrInvalidThreshold indicates a decision threshold outside (0,1).
var ErrInvalidThreshold = errors.New("threshold must be between 0 and 1 exclusive")

// ErrNoUsableTokens indicates text whose normalized token sequence is empty,
// leaving the classification undefined for that text.
var ErrNoUsableTokens = errors.New("no usable tokens after normalization")
