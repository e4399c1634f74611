// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"sort"

	"github.com/sentirec/sentirec/internal/corpus"
)

// PopularityRanker ranks products for users collaborative filtering
// cannot serve: unknown usernames, users with no ratings, and users
// whose history overlaps nobody. It orders the whole corpus by how
// many users liked each product.
type PopularityRanker struct {
	cfg    Config
	matrix *corpus.RatingMatrix
}

// NewPopularityRanker creates a ranker over the given matrix.
func NewPopularityRanker(cfg Config, matrix *corpus.RatingMatrix) *PopularityRanker {
	return &PopularityRanker{cfg: cfg.normalized(), matrix: matrix}
}

// Candidates returns the top-N products by popularity, excluding any
// the user already rated. Products order by liked count (ratings at or
// above corpus.LikedThreshold) descending, then mean rating, then
// product id. Affinity carries the mean rating so the downstream
// ranking stages treat fallback candidates exactly like collaborative
// filtering ones.
func (p *PopularityRanker) Candidates(username string) []Candidate {
	rated := p.matrix.Ratings(username)

	type popularity struct {
		product string
		stats   corpus.ItemStats
	}

	ranked := make([]popularity, 0, p.matrix.NumItems())
	for _, product := range p.matrix.Items() {
		if _, seen := rated[product]; seen {
			continue
		}
		stats, ok := p.matrix.Stats(product)
		if !ok {
			continue
		}
		ranked = append(ranked, popularity{product: product, stats: stats})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].stats.Liked != ranked[j].stats.Liked {
			return ranked[i].stats.Liked > ranked[j].stats.Liked
		}
		if ranked[i].stats.Mean != ranked[j].stats.Mean {
			return ranked[i].stats.Mean > ranked[j].stats.Mean
		}
		return ranked[i].product < ranked[j].product
	})

	if len(ranked) > p.cfg.TopCandidates {
		ranked = ranked[:p.cfg.TopCandidates]
	}

	out := make([]Candidate, len(ranked))
	for i, r := range ranked {
		out[i] = Candidate{
			Product:  r.product,
			Affinity: r.stats.Mean,
			Support:  r.stats.Ratings,
			Rank:     i + 1,
		}
	}
	return out
}
