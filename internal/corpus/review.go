// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package corpus

import (
	"errors"
	"strings"
	"time"
)

// Rating bounds for the five-star scale used by the review sources.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// LikedThreshold is the minimum rating counted as an endorsement when
// computing item popularity.
const LikedThreshold = 4.0

var (
	ErrMissingUser  = errors.New("review has no username")
	ErrMissingItem  = errors.New("review has no product")
	ErrRatingRange  = errors.New("rating outside valid range")
	ErrEmptyDataset = errors.New("dataset contains no valid reviews")
)

// Review is one accepted review record from the snapshot source.
type Review struct {
	Username  string
	Product   string
	Rating    float64
	Text      string
	Timestamp time.Time
}

// Validate reports whether the record is usable. Records failing validation
// are skipped during loads, never repaired.
func (r Review) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return ErrMissingUser
	}
	if strings.TrimSpace(r.Product) == "" {
		return ErrMissingItem
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrRatingRange
	}
	return nil
}

// skipReason maps a validation error to the metrics label for the skip
// counter.
func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingUser):
		return "missing_user"
	case errors.Is(err, ErrMissingItem):
		return "missing_item"
	case errors.Is(err, ErrRatingRange):
		return "rating_range"
	default:
		return "scan"
	}
}
