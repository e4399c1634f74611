// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/sentirec/sentirec/internal/corpus"
)

// NeighborFinder scans the rating matrix for the users most similar to
// a target. The scan partitions users across a worker pool; results are
// merged and sorted deterministically afterwards.
type NeighborFinder struct {
	cfg    Config
	matrix *corpus.RatingMatrix
}

// NewNeighborFinder creates a finder over the given matrix.
func NewNeighborFinder(cfg Config, matrix *corpus.RatingMatrix) *NeighborFinder {
	return &NeighborFinder{cfg: cfg.normalized(), matrix: matrix}
}

// Neighbors returns the top-K users most similar to username, ordered
// by similarity descending with username ascending as tiebreaker. Only
// positive similarities over at least MinCommonItems co-rated products
// qualify. A user with no ratings, or with no qualifying neighbor,
// yields an empty result rather than an error; the engine treats that
// as a cold start.
func (f *NeighborFinder) Neighbors(ctx context.Context, username string) ([]Neighbor, error) {
	target := f.matrix.Centered(username)
	if len(target) == 0 {
		return nil, nil
	}

	users := f.matrix.Users()

	workers := f.cfg.Workers
	if workers > len(users) {
		workers = len(users)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	found := make([]Neighbor, 0, len(users))
	chunkSize := (len(users) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > len(users) {
			end = len(users)
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(chunk []string) {
			defer wg.Done()

			local := make([]Neighbor, 0, len(chunk))
			for _, other := range chunk {
				if contextCancelled(ctx) {
					return
				}
				if other == username {
					continue
				}

				sim, common := cosineOverlap(target, f.matrix.Centered(other))
				if sim <= 0 || common < f.cfg.MinCommonItems {
					continue
				}

				local = append(local, Neighbor{
					Username:   other,
					Similarity: sim,
					Common:     common,
				})
			}

			mu.Lock()
			found = append(found, local...)
			mu.Unlock()
		}(users[start:end])
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Sort by similarity (descending); username breaks ties so equal
	// similarities keep a reproducible order across runs.
	sort.Slice(found, func(i, j int) bool {
		if found[i].Similarity != found[j].Similarity {
			return found[i].Similarity > found[j].Similarity
		}
		return found[i].Username < found[j].Username
	})

	if len(found) > f.cfg.NeighborK {
		found = found[:f.cfg.NeighborK]
	}

	return found, nil
}

// cosineOverlap computes the cosine similarity of two centered rating
// vectors restricted to the products both users rated. The dot product
// and both norms run over the overlap only; a full-vector norm would
// penalize users for rating products the other never saw. Returns 0
// when the overlap is empty or either norm is zero on it, so the caller
// never divides by zero.
//
// Swapping a and b returns the identical value: the shared products are
// accumulated in sorted order, keeping float rounding independent of
// argument order and of map iteration order between runs.
func cosineOverlap(a, b map[string]float64) (sim float64, common int) {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	shared := make([]string, 0, len(small))
	for product := range small {
		if _, ok := large[product]; ok {
			shared = append(shared, product)
		}
	}
	if len(shared) == 0 {
		return 0, 0
	}
	sort.Strings(shared)

	var dot, normA, normB float64
	for _, product := range shared {
		av, bv := a[product], b[product]
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0, len(shared)
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), len(shared)
}

// contextCancelled reports whether ctx is done without blocking.
func contextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
