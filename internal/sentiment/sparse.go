// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package sentiment

// SparseVector is a fixed-dimension vector storing only non-zero entries.
// Indices are sorted ascending and unique; Values[i] belongs to Indices[i].
// The zero value is an empty vector of dimension 0.
type SparseVector struct {
	Indices []int
	Values  []float64
	Dim     int
}

// Nnz returns the number of non-zero entries.
func (v SparseVector) Nnz() int {
	return len(v.Indices)
}

// DotDense returns the dot product with a dense vector. The dense vector
// must have length v.Dim; entries beyond its length are ignored so a
// malformed input cannot panic.
func (v SparseVector) DotDense(dense []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		if idx < 0 || idx >= len(dense) {
			continue
		}
		sum += v.Values[i] * dense[idx]
	}
	return sum
}
