// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"time"
)

// Source identifies which candidate path produced a response.
type Source string

const (
	// SourceUserCF means candidates came from user-based collaborative
	// filtering over the target's neighbors.
	SourceUserCF Source = "usercf"

	// SourcePopularity means candidates came from the corpus-wide
	// popularity fallback (cold start).
	SourcePopularity Source = "popularity"
)

// Request represents a recommendation request.
type Request struct {
	// Username is the user to generate recommendations for. An unknown
	// username is served by the popularity fallback, never rejected.
	Username string `json:"username"`

	// N is the number of recommendations to return.
	// Defaults to Config.TopResults if zero; clamped to MaxTopResults.
	N int `json:"n,omitempty"`
}

// Neighbor is a user similar to the request target.
type Neighbor struct {
	// Username identifies the neighbor.
	Username string `json:"username"`

	// Similarity is the cosine similarity of the two users' centered
	// rating vectors over their co-rated products. Always > 0 here;
	// non-positive similarities are excluded during the scan.
	Similarity float64 `json:"similarity"`

	// Common is the number of products both users rated.
	Common int `json:"common"`
}

// Candidate is a product with a predicted affinity for the target user.
type Candidate struct {
	// Product is the product identifier.
	Product string `json:"product"`

	// Affinity is the predicted rating: the target's mean plus the
	// similarity-weighted average of neighbors' centered ratings.
	Affinity float64 `json:"affinity"`

	// Support is the number of neighbors whose rating contributed to
	// Affinity. Always >= 1; zero-support products are excluded.
	Support int `json:"support"`

	// Rank is the 1-based position by affinity, assigned after sorting.
	// The hybrid ranker uses it as the secondary sort key.
	Rank int `json:"rank"`
}

// Recommendation is one entry in the final ranked list.
type Recommendation struct {
	// Product is the recommended product identifier.
	Product string `json:"product"`

	// AffinityRank is the product's 1-based rank by predicted affinity
	// among this request's candidates.
	AffinityRank int `json:"affinity_rank"`

	// PositiveRatio is the fraction of the product's scoreable reviews
	// the classifier labeled Positive, in [0,1].
	PositiveRatio float64 `json:"positive_ratio"`

	// ReviewCount is the number of reviews that contributed to
	// PositiveRatio. Reviews that normalize to no tokens are not
	// counted.
	ReviewCount int `json:"review_count"`
}

// Response represents a recommendation response.
type Response struct {
	// Username is the user the recommendations are for.
	Username string `json:"username"`

	// Recommendations is the final ordered list, at most Request.N
	// entries. Fewer candidates than requested returns a shorter list.
	Recommendations []Recommendation `json:"recommendations"`

	// ColdStart is true when collaborative filtering could not serve
	// this user and the popularity fallback was used instead.
	ColdStart bool `json:"cold_start"`

	// Source is the candidate path used (usercf or popularity).
	Source Source `json:"source"`

	// Explanation is a short human-readable note on how the list was
	// produced.
	Explanation string `json:"explanation,omitempty"`

	// TotalCandidates is the number of candidates that entered
	// sentiment aggregation.
	TotalCandidates int `json:"total_candidates"`

	// CacheHit indicates whether the response was served from cache.
	CacheHit bool `json:"cache_hit"`

	// GeneratedAt is when the response was computed. Cached responses
	// keep the original computation time.
	GeneratedAt time.Time `json:"generated_at"`
}

// Stats is a snapshot of engine counters for the admin endpoint.
type Stats struct {
	// Requests is the total number of recommendation requests served.
	Requests int64 `json:"requests"`

	// CacheHits is the number of responses served from cache.
	CacheHits int64 `json:"cache_hits"`

	// CacheMisses is the number of responses computed fresh.
	CacheMisses int64 `json:"cache_misses"`

	// ColdStarts is the number of requests served by the popularity
	// fallback.
	ColdStarts int64 `json:"cold_starts"`

	// ReviewsScored is the total number of reviews classified during
	// sentiment aggregation.
	ReviewsScored int64 `json:"reviews_scored"`

	// Threshold is the sentiment decision boundary currently in effect.
	Threshold float64 `json:"threshold"`

	// Users, Products, and Reviews describe the loaded dataset.
	Users    int `json:"users"`
	Products int `json:"products"`
	Reviews  int `json:"reviews"`

	// DatasetLoadedAt is when the dataset snapshot was built.
	DatasetLoadedAt time.Time `json:"dataset_loaded_at"`
}
