// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package corpus

import (
	"errors"
	"testing"
	"time"
)

func TestNewDataset_Empty(t *testing.T) {
	if _, err := NewDataset(nil, 0); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("NewDataset(nil) error = %v, want ErrEmptyDataset", err)
	}
	if _, err := NewDataset([]Review{}, 3); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("NewDataset(empty) error = %v, want ErrEmptyDataset", err)
	}
}

func TestDataset_ItemReviews(t *testing.T) {
	ds, err := NewDataset(testReviews(), 2)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}

	p1 := ds.ItemReviews("P1")
	if len(p1) != 2 {
		t.Fatalf("ItemReviews(P1) returned %d records, want 2", len(p1))
	}
	if p1[0].Username != "alice" || p1[1].Username != "bob" {
		t.Errorf("ItemReviews(P1) order = [%s, %s], want snapshot order [alice, bob]",
			p1[0].Username, p1[1].Username)
	}

	if got := ds.ItemReviews("P999"); got != nil {
		t.Errorf("ItemReviews(P999) = %v, want nil", got)
	}
}

func TestDataset_DuplicateRecordsKeptForAggregation(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reviews := []Review{
		{Username: "u", Product: "p", Rating: 2.0, Text: "bad at first", Timestamp: base},
		{Username: "u", Product: "p", Rating: 5.0, Text: "great after update", Timestamp: base.Add(time.Hour)},
	}

	ds, err := NewDataset(reviews, 0)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}

	// The rating cell collapses latest-wins, but both texts stay available
	// for sentiment aggregation.
	if got := len(ds.ItemReviews("p")); got != 2 {
		t.Errorf("ItemReviews(p) returned %d records, want 2", got)
	}
	if rating, _ := ds.Matrix().Rating("u", "p"); rating != 5.0 {
		t.Errorf("Rating(u, p) = %v, want 5.0", rating)
	}
}

func TestDataset_Counters(t *testing.T) {
	ds, err := NewDataset(testReviews(), 4)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}

	if ds.Size() != 8 {
		t.Errorf("Size() = %d, want 8", ds.Size())
	}
	if ds.Skipped() != 4 {
		t.Errorf("Skipped() = %d, want 4", ds.Skipped())
	}
	if ds.LoadedAt().IsZero() {
		t.Error("LoadedAt() is zero")
	}
}

func TestReviewValidate(t *testing.T) {
	tests := []struct {
		name    string
		review  Review
		wantErr error
	}{
		{
			name:    "valid review",
			review:  Review{Username: "alice", Product: "P1", Rating: 4.0},
			wantErr: nil,
		},
		{
			name:    "missing username",
			review:  Review{Product: "P1", Rating: 4.0},
			wantErr: ErrMissingUser,
		},
		{
			name:    "whitespace username",
			review:  Review{Username: "   ", Product: "P1", Rating: 4.0},
			wantErr: ErrMissingUser,
		},
		{
			name:    "missing product",
			review:  Review{Username: "alice", Rating: 4.0},
			wantErr: ErrMissingItem,
		},
		{
			name:    "rating below range",
			review:  Review{Username: "alice", Product: "P1", Rating: 0.5},
			wantErr: ErrRatingRange,
		},
		{
			name:    "rating above range",
			review:  Review{Username: "alice", Product: "P1", Rating: 5.5},
			wantErr: ErrRatingRange,
		},
		{
			name:    "boundary ratings valid",
			review:  Review{Username: "alice", Product: "P1", Rating: 1.0},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.review.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
