// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import "sort"

// rankHybrid orders scored candidates by positive ratio descending,
// then affinity rank ascending, then product id, and returns the top n
// as Recommendations. The community's verbal verdict outranks the
// predicted rating: a candidate with a higher positive ratio always
// places above one with a lower ratio, regardless of affinity.
//
// Fewer survivors than n returns a shorter list, never padded. The
// returned slice is non-nil so it serializes as [] rather than null.
func rankHybrid(scored []scoredCandidate, n int) []Recommendation {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].positiveRatio != scored[j].positiveRatio {
			return scored[i].positiveRatio > scored[j].positiveRatio
		}
		if scored[i].Rank != scored[j].Rank {
			return scored[i].Rank < scored[j].Rank
		}
		return scored[i].Product < scored[j].Product
	})

	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}

	out := make([]Recommendation, len(scored))
	for i, s := range scored {
		out[i] = Recommendation{
			Product:       s.Product,
			AffinityRank:  s.Rank,
			PositiveRatio: s.positiveRatio,
			ReviewCount:   s.reviewCount,
		}
	}
	return out
}
