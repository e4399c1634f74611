// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package corpus

import (
	"time"

	"github.com/sentirec/sentirec/internal/logging"
	"github.com/sentirec/sentirec/internal/metrics"
)

// Dataset is an immutable snapshot of the review corpus: the accepted records
// in snapshot order, a per-item index for sentiment aggregation, and the
// derived rating matrix.
type Dataset struct {
	reviews  []Review
	byItem   map[string][]Review
	matrix   *RatingMatrix
	skipped  int
	loadedAt time.Time
}

// NewDataset builds a snapshot from validated reviews. skipped records the
// number of source records dropped during the load for observability.
func NewDataset(reviews []Review, skipped int) (*Dataset, error) {
	if len(reviews) == 0 {
		return nil, ErrEmptyDataset
	}

	byItem := make(map[string][]Review)
	for _, r := range reviews {
		byItem[r.Product] = append(byItem[r.Product], r)
	}

	ds := &Dataset{
		reviews:  reviews,
		byItem:   byItem,
		matrix:   NewRatingMatrix(reviews),
		skipped:  skipped,
		loadedAt: time.Now().UTC(),
	}

	logging.Info().
		Int("users", ds.matrix.NumUsers()).
		Int("items", ds.matrix.NumItems()).
		Int("reviews", len(reviews)).
		Int("skipped", skipped).
		Msg("Dataset snapshot built")

	return ds, nil
}

// Matrix returns the derived rating matrix.
func (d *Dataset) Matrix() *RatingMatrix { return d.matrix }

// Reviews returns all accepted records in snapshot order. Every record kept
// here participates in sentiment aggregation even when a later duplicate
// replaced its rating cell.
func (d *Dataset) Reviews() []Review { return d.reviews }

// ItemReviews returns the records for one item in snapshot order, or nil for
// unknown items.
func (d *Dataset) ItemReviews(product string) []Review { return d.byItem[product] }

// Size returns the number of accepted records.
func (d *Dataset) Size() int { return len(d.reviews) }

// Skipped returns the number of source records dropped during the load.
func (d *Dataset) Skipped() int { return d.skipped }

// LoadedAt returns when the snapshot was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// recordLoadMetrics publishes the snapshot gauges after a successful load.
func (d *Dataset) recordLoadMetrics(duration time.Duration) {
	metrics.RecordCorpusLoad(duration, d.matrix.NumUsers(), d.matrix.NumItems(), d.Size())
}
