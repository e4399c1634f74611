// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package corpus

import (
	"sort"
	"time"
)

// ItemStats summarizes the kept ratings for one item. Liked counts ratings at
// or above LikedThreshold and drives the popularity fallback ordering.
type ItemStats struct {
	Ratings int
	Liked   int
	Mean    float64
}

// RatingMatrix is the sparse user-item rating matrix derived from a snapshot,
// with per-user means and mean-centered vectors precomputed.
//
// Duplicate (user, item) pairs resolve latest-wins by timestamp; when
// timestamps tie, the record appearing later in the snapshot wins. Duplicates
// are never averaged. A missing cell means "unobserved", not zero.
//
// The matrix is immutable after construction. Accessors return internal maps
// and slices; callers must treat them as read-only.
type RatingMatrix struct {
	ratings  map[string]map[string]float64
	centered map[string]map[string]float64
	means    map[string]float64
	stats    map[string]ItemStats
	users    []string
	items    []string
	size     int
}

type ratingCell struct {
	rating float64
	stamp  time.Time
}

// NewRatingMatrix builds the matrix from the snapshot's accepted reviews.
// Reviews must already be validated; the slice order is the snapshot order
// used for duplicate tie-breaking.
func NewRatingMatrix(reviews []Review) *RatingMatrix {
	cells := make(map[string]map[string]ratingCell)
	for _, r := range reviews {
		row, ok := cells[r.Username]
		if !ok {
			row = make(map[string]ratingCell)
			cells[r.Username] = row
		}
		cur, exists := row[r.Product]
		if exists && r.Timestamp.Before(cur.stamp) {
			continue
		}
		row[r.Product] = ratingCell{rating: r.Rating, stamp: r.Timestamp}
	}

	m := &RatingMatrix{
		ratings:  make(map[string]map[string]float64, len(cells)),
		centered: make(map[string]map[string]float64, len(cells)),
		means:    make(map[string]float64, len(cells)),
		stats:    make(map[string]ItemStats),
	}

	itemSums := make(map[string]float64)
	for user, row := range cells {
		ratings := make(map[string]float64, len(row))
		sum := 0.0
		for item, cell := range row {
			ratings[item] = cell.rating
			sum += cell.rating

			s := m.stats[item]
			s.Ratings++
			if cell.rating >= LikedThreshold {
				s.Liked++
			}
			m.stats[item] = s
			itemSums[item] += cell.rating
		}

		mean := sum / float64(len(row))
		centered := make(map[string]float64, len(row))
		for item, rating := range ratings {
			centered[item] = rating - mean
		}

		m.ratings[user] = ratings
		m.centered[user] = centered
		m.means[user] = mean
		m.size += len(row)
	}

	for item, s := range m.stats {
		s.Mean = itemSums[item] / float64(s.Ratings)
		m.stats[item] = s
	}

	m.users = make([]string, 0, len(m.ratings))
	for user := range m.ratings {
		m.users = append(m.users, user)
	}
	sort.Strings(m.users)

	m.items = make([]string, 0, len(m.stats))
	for item := range m.stats {
		m.items = append(m.items, item)
	}
	sort.Strings(m.items)

	return m
}

// Users returns all usernames in ascending order.
func (m *RatingMatrix) Users() []string { return m.users }

// Items returns all item identifiers in ascending order.
func (m *RatingMatrix) Items() []string { return m.items }

// NumUsers returns the number of distinct users.
func (m *RatingMatrix) NumUsers() int { return len(m.users) }

// NumItems returns the number of distinct items.
func (m *RatingMatrix) NumItems() int { return len(m.items) }

// NumRatings returns the number of kept (user, item) cells after duplicate
// resolution.
func (m *RatingMatrix) NumRatings() int { return m.size }

// HasUser reports whether the user has at least one rating.
func (m *RatingMatrix) HasUser(username string) bool {
	_, ok := m.ratings[username]
	return ok
}

// Ratings returns the user's item → rating row, or nil for unknown users.
func (m *RatingMatrix) Ratings(username string) map[string]float64 {
	return m.ratings[username]
}

// Centered returns the user's mean-centered row, or nil for unknown users.
// Items the user never rated are absent, not zero.
func (m *RatingMatrix) Centered(username string) map[string]float64 {
	return m.centered[username]
}

// Mean returns the user's rating mean. ok is false for unknown users.
func (m *RatingMatrix) Mean(username string) (mean float64, ok bool) {
	mean, ok = m.means[username]
	return mean, ok
}

// Rating returns one cell. ok is false when the user never rated the item.
func (m *RatingMatrix) Rating(username, product string) (rating float64, ok bool) {
	row, found := m.ratings[username]
	if !found {
		return 0, false
	}
	rating, ok = row[product]
	return rating, ok
}

// Stats returns the popularity statistics for an item. ok is false for items
// with no kept ratings.
func (m *RatingMatrix) Stats(product string) (s ItemStats, ok bool) {
	s, ok = m.stats[product]
	return s, ok
}
