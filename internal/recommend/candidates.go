// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"math"
	"sort"

	"github.com/sentirec/sentirec/internal/corpus"
)

// CandidateGenerator predicts affinities for products the target user
// has not rated, from the centered ratings of their neighbors.
//
// For a target user u and candidate product i:
//
//	affinity(u, i) = mean(u) + sum_v sim(u, v) * centered(v, i) / sum_v |sim(u, v)|
//
// where v ranges over u's neighbors that rated i. Adding mean(u) back
// maps the centered prediction onto the target's own rating scale.
type CandidateGenerator struct {
	cfg    Config
	matrix *corpus.RatingMatrix
}

// NewCandidateGenerator creates a generator over the given matrix.
func NewCandidateGenerator(cfg Config, matrix *corpus.RatingMatrix) *CandidateGenerator {
	return &CandidateGenerator{cfg: cfg.normalized(), matrix: matrix}
}

// Candidates returns the top-N unrated products by predicted affinity,
// each with a 1-based affinity rank. Products no neighbor rated are
// excluded rather than scored zero; a product nobody similar has seen
// carries no signal. Ties break by more supporting ratings, then
// product id, so repeated calls return the identical order.
//
// All computation is in-memory over at most NeighborK neighbor vectors.
func (g *CandidateGenerator) Candidates(username string, neighbors []Neighbor) []Candidate {
	targetMean, ok := g.matrix.Mean(username)
	if !ok || len(neighbors) == 0 {
		return nil
	}
	rated := g.matrix.Ratings(username)

	type accumulator struct {
		num     float64
		den     float64
		support int
	}

	// Neighbors arrive in deterministic order, so each product's
	// accumulator sums in a fixed order regardless of map iteration.
	scores := make(map[string]*accumulator)
	for _, n := range neighbors {
		for product, centered := range g.matrix.Centered(n.Username) {
			if _, seen := rated[product]; seen {
				continue
			}

			acc := scores[product]
			if acc == nil {
				acc = &accumulator{}
				scores[product] = acc
			}
			acc.num += n.Similarity * centered
			acc.den += math.Abs(n.Similarity)
			acc.support++
		}
	}

	out := make([]Candidate, 0, len(scores))
	for product, acc := range scores {
		if acc.den <= 0 {
			continue
		}
		out = append(out, Candidate{
			Product:  product,
			Affinity: targetMean + acc.num/acc.den,
			Support:  acc.support,
		})
	}

	// Affinity descending; support then product id break ties.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Affinity != out[j].Affinity {
			return out[i].Affinity > out[j].Affinity
		}
		if out[i].Support != out[j].Support {
			return out[i].Support > out[j].Support
		}
		return out[i].Product < out[j].Product
	})

	if len(out) > g.cfg.TopCandidates {
		out = out[:g.cfg.TopCandidates]
	}

	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}
