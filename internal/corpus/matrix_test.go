// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package corpus

import (
	"math"
	"reflect"
	"sort"
	"testing"
	"time"
)

func testReviews() []Review {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []Review{
		{Username: "alice", Product: "P1", Rating: 5.0, Text: "Great product", Timestamp: base},
		{Username: "alice", Product: "P2", Rating: 3.0, Text: "It is fine", Timestamp: base.Add(time.Hour)},
		{Username: "alice", Product: "P3", Rating: 4.0, Text: "Solid", Timestamp: base.Add(2 * time.Hour)},
		{Username: "bob", Product: "P1", Rating: 4.0, Text: "Liked it", Timestamp: base},
		{Username: "bob", Product: "P2", Rating: 2.0, Text: "Not good", Timestamp: base.Add(time.Hour)},
		{Username: "bob", Product: "P4", Rating: 5.0, Text: "Amazing", Timestamp: base.Add(2 * time.Hour)},
		{Username: "carol", Product: "P3", Rating: 1.0, Text: "Terrible junk", Timestamp: base},
		{Username: "carol", Product: "P4", Rating: 4.0, Text: "Good", Timestamp: base.Add(time.Hour)},
	}
}

func TestNewRatingMatrix_LatestWins(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		reviews []Review
		want    float64
	}{
		{
			name: "later timestamp wins regardless of order",
			reviews: []Review{
				{Username: "u", Product: "p", Rating: 5.0, Timestamp: base.Add(time.Hour)},
				{Username: "u", Product: "p", Rating: 2.0, Timestamp: base},
			},
			want: 5.0,
		},
		{
			name: "earlier timestamp never replaces",
			reviews: []Review{
				{Username: "u", Product: "p", Rating: 2.0, Timestamp: base},
				{Username: "u", Product: "p", Rating: 5.0, Timestamp: base.Add(time.Hour)},
			},
			want: 5.0,
		},
		{
			name: "equal timestamps fall to snapshot order",
			reviews: []Review{
				{Username: "u", Product: "p", Rating: 2.0, Timestamp: base},
				{Username: "u", Product: "p", Rating: 4.0, Timestamp: base},
			},
			want: 4.0,
		},
		{
			name: "zero timestamps fall to snapshot order",
			reviews: []Review{
				{Username: "u", Product: "p", Rating: 1.0},
				{Username: "u", Product: "p", Rating: 3.0},
			},
			want: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRatingMatrix(tt.reviews)

			got, ok := m.Rating("u", "p")
			if !ok {
				t.Fatal("Rating(u, p) not found")
			}
			if got != tt.want {
				t.Errorf("Rating(u, p) = %v, want %v", got, tt.want)
			}
			if m.NumRatings() != 1 {
				t.Errorf("NumRatings() = %d, want 1 (duplicates must collapse, never average)", m.NumRatings())
			}
		})
	}
}

func TestRatingMatrix_MeanCentering(t *testing.T) {
	m := NewRatingMatrix(testReviews())

	for _, user := range m.Users() {
		centered := m.Centered(user)
		if centered == nil {
			t.Fatalf("Centered(%q) = nil", user)
		}

		sum := 0.0
		for _, v := range centered {
			sum += v
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("centered sum for %q = %v, want 0 within 1e-9", user, sum)
		}

		if len(centered) != len(m.Ratings(user)) {
			t.Errorf("centered row for %q has %d entries, want %d", user, len(centered), len(m.Ratings(user)))
		}
	}

	// alice rated P1=5, P2=3, P3=4: mean 4, centered P1 = +1.
	mean, ok := m.Mean("alice")
	if !ok {
		t.Fatal("Mean(alice) not found")
	}
	if mean != 4.0 {
		t.Errorf("Mean(alice) = %v, want 4.0", mean)
	}
	if got := m.Centered("alice")["P1"]; got != 1.0 {
		t.Errorf("Centered(alice)[P1] = %v, want 1.0", got)
	}
}

func TestRatingMatrix_SingleRatingUserCentersToZero(t *testing.T) {
	m := NewRatingMatrix([]Review{{Username: "u", Product: "p", Rating: 4.5}})

	if got := m.Centered("u")["p"]; got != 0.0 {
		t.Errorf("Centered(u)[p] = %v, want 0.0", got)
	}
}

func TestRatingMatrix_AbsenceIsNotZero(t *testing.T) {
	m := NewRatingMatrix(testReviews())

	// alice never rated P4.
	if _, ok := m.Rating("alice", "P4"); ok {
		t.Error("Rating(alice, P4) reported ok for an unobserved cell")
	}
	if _, ok := m.Centered("alice")["P4"]; ok {
		t.Error("Centered(alice) contains an entry for an unrated item")
	}
}

func TestRatingMatrix_UnknownUser(t *testing.T) {
	m := NewRatingMatrix(testReviews())

	if m.HasUser("mallory") {
		t.Error("HasUser(mallory) = true, want false")
	}
	if m.Ratings("mallory") != nil {
		t.Error("Ratings(mallory) != nil for unknown user")
	}
	if _, ok := m.Mean("mallory"); ok {
		t.Error("Mean(mallory) reported ok for unknown user")
	}
}

func TestRatingMatrix_SortedAccessors(t *testing.T) {
	m := NewRatingMatrix(testReviews())

	if !sort.StringsAreSorted(m.Users()) {
		t.Errorf("Users() = %v, want ascending order", m.Users())
	}
	if !sort.StringsAreSorted(m.Items()) {
		t.Errorf("Items() = %v, want ascending order", m.Items())
	}

	wantUsers := []string{"alice", "bob", "carol"}
	if !reflect.DeepEqual(m.Users(), wantUsers) {
		t.Errorf("Users() = %v, want %v", m.Users(), wantUsers)
	}
	wantItems := []string{"P1", "P2", "P3", "P4"}
	if !reflect.DeepEqual(m.Items(), wantItems) {
		t.Errorf("Items() = %v, want %v", m.Items(), wantItems)
	}
}

func TestRatingMatrix_Stats(t *testing.T) {
	m := NewRatingMatrix(testReviews())

	tests := []struct {
		product string
		want    ItemStats
	}{
		// P1: alice 5.0, bob 4.0. Both count as liked (>= 4.0).
		{product: "P1", want: ItemStats{Ratings: 2, Liked: 2, Mean: 4.5}},
		// P2: alice 3.0, bob 2.0.
		{product: "P2", want: ItemStats{Ratings: 2, Liked: 0, Mean: 2.5}},
		// P3: alice 4.0, carol 1.0. The 4.0 boundary counts as liked.
		{product: "P3", want: ItemStats{Ratings: 2, Liked: 1, Mean: 2.5}},
		// P4: bob 5.0, carol 4.0.
		{product: "P4", want: ItemStats{Ratings: 2, Liked: 2, Mean: 4.5}},
	}

	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			got, ok := m.Stats(tt.product)
			if !ok {
				t.Fatalf("Stats(%q) not found", tt.product)
			}
			if got != tt.want {
				t.Errorf("Stats(%q) = %+v, want %+v", tt.product, got, tt.want)
			}
		})
	}

	if _, ok := m.Stats("P999"); ok {
		t.Error("Stats(P999) reported ok for unknown item")
	}
}

func TestRatingMatrix_Counts(t *testing.T) {
	m := NewRatingMatrix(testReviews())

	if m.NumUsers() != 3 {
		t.Errorf("NumUsers() = %d, want 3", m.NumUsers())
	}
	if m.NumItems() != 4 {
		t.Errorf("NumItems() = %d, want 4", m.NumItems())
	}
	if m.NumRatings() != 8 {
		t.Errorf("NumRatings() = %d, want 8", m.NumRatings())
	}
}

func TestRatingMatrix_Deterministic(t *testing.T) {
	a := NewRatingMatrix(testReviews())
	b := NewRatingMatrix(testReviews())

	if !reflect.DeepEqual(a.Users(), b.Users()) {
		t.Errorf("Users differ between identical builds: %v vs %v", a.Users(), b.Users())
	}
	if !reflect.DeepEqual(a.Items(), b.Items()) {
		t.Errorf("Items differ between identical builds: %v vs %v", a.Items(), b.Items())
	}
	for _, user := range a.Users() {
		if !reflect.DeepEqual(a.Centered(user), b.Centered(user)) {
			t.Errorf("Centered(%q) differs between identical builds", user)
		}
	}
}
