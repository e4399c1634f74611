// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package sentiment

import (
	"fmt"
	"math"
	"sort"
)

// Vocabulary maps terms (unigrams and bigrams) to column indices and carries
// the per-column IDF weights of a pretrained TF-IDF vectorizer.
// Immutable after construction.
type Vocabulary struct {
	index map[string]int
	idf   []float64
}

// NewVocabulary builds a vocabulary from a term index and IDF weights.
// The dimension is len(idf); every term index must fall inside [0, dim).
func NewVocabulary(terms map[string]int, idf []float64) (*Vocabulary, error) {
	if len(idf) == 0 {
		return nil, fmt.Errorf("%w: empty idf table", ErrInvalidArtifact)
	}
	dim := len(idf)

	index := make(map[string]int, len(terms))
	for term, col := range terms {
		if term == "" {
			return nil, fmt.Errorf("%w: empty term", ErrInvalidArtifact)
		}
		if col < 0 || col >= dim {
			return nil, fmt.Errorf("%w: term %q maps to column %d outside [0,%d)",
				ErrInvalidArtifact, term, col, dim)
		}
		index[term] = col
	}

	return &Vocabulary{index: index, idf: idf}, nil
}

// Dim returns the vector dimension V.
func (v *Vocabulary) Dim() int {
	return len(v.idf)
}

// Terms returns the number of distinct vocabulary terms.
func (v *Vocabulary) Terms() int {
	return len(v.index)
}

// Encode converts a token sequence into a sparse TF-IDF vector of dimension
// Dim. Each in-vocabulary token contributes weight (1 + ln(tf)) * idf at its
// column; out-of-vocabulary tokens are dropped silently. Identical token
// sequences always yield identical vectors.
func (v *Vocabulary) Encode(tokens []string) SparseVector {
	tf := make(map[int]int)
	for _, tok := range tokens {
		if col, ok := v.index[tok]; ok {
			tf[col]++
		}
	}

	vec := SparseVector{Dim: v.Dim()}
	if len(tf) == 0 {
		return vec
	}

	vec.Indices = make([]int, 0, len(tf))
	for col := range tf {
		vec.Indices = append(vec.Indices, col)
	}
	sort.Ints(vec.Indices)

	vec.Values = make([]float64, len(vec.Indices))
	for i, col := range vec.Indices {
		vec.Values[i] = (1 + math.Log(float64(tf[col]))) * v.idf[col]
	}
	return vec
}
