// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"fmt"
	"runtime"
)

// Neighbor search bounds. K outside this range degrades either recall
// (too few neighbors) or precision (similarity noise from weak
// neighbors), so configuration is clamped rather than rejected.
const (
	MinNeighborK     = 30
	MaxNeighborK     = 50
	DefaultNeighborK = 40
)

// Candidate and result list bounds.
const (
	DefaultTopCandidates = 20
	MaxTopCandidates     = 100
	DefaultTopResults    = 5
	MaxTopResults        = 20
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// NeighborK is the number of similar users to consider.
	// Clamped to [MinNeighborK, MaxNeighborK]. Default: 40.
	NeighborK int `json:"neighbor_k"`

	// MinCommonItems is the minimum number of co-rated products required
	// for a similarity to count. Default: 1.
	MinCommonItems int `json:"min_common_items"`

	// TopCandidates is the number of affinity-ranked candidates that
	// enter sentiment aggregation. Default: 20.
	TopCandidates int `json:"top_candidates"`

	// TopResults is the default number of final recommendations when the
	// request does not specify one. Default: 5.
	TopResults int `json:"top_results"`

	// Workers is the parallelism of the neighbor scan and the sentiment
	// fan-out. Default: runtime.NumCPU().
	Workers int `json:"workers"`

	// LanguageGate skips reviews whose text is reliably detected as
	// non-English before sentiment scoring. The classifier artifacts are
	// trained on English reviews. Default: false.
	LanguageGate bool `json:"language_gate"`

	// CacheEnabled controls whether responses are cached.
	// Default: true.
	CacheEnabled bool `json:"cache_enabled"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{
		NeighborK:      DefaultNeighborK,
		MinCommonItems: 1,
		TopCandidates:  DefaultTopCandidates,
		TopResults:     DefaultTopResults,
		Workers:        runtime.NumCPU(),
		LanguageGate:   false,
		CacheEnabled:   true,
	}
}

// Validate checks the configuration for errors. Zero values are filled
// by normalized, so only explicitly invalid settings fail.
func (c Config) Validate() error {
	if c.NeighborK < 0 {
		return fmt.Errorf("neighbor_k must be non-negative, got %d", c.NeighborK)
	}
	if c.MinCommonItems < 0 {
		return fmt.Errorf("min_common_items must be non-negative, got %d", c.MinCommonItems)
	}
	if c.TopCandidates < 0 || c.TopCandidates > MaxTopCandidates {
		return fmt.Errorf("top_candidates must be in [0, %d], got %d", MaxTopCandidates, c.TopCandidates)
	}
	if c.TopResults < 0 || c.TopResults > MaxTopResults {
		return fmt.Errorf("top_results must be in [0, %d], got %d", MaxTopResults, c.TopResults)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// normalized returns a copy with zero values defaulted and NeighborK
// clamped to its supported range.
func (c Config) normalized() Config {
	if c.NeighborK == 0 {
		c.NeighborK = DefaultNeighborK
	}
	if c.NeighborK < MinNeighborK {
		c.NeighborK = MinNeighborK
	}
	if c.NeighborK > MaxNeighborK {
		c.NeighborK = MaxNeighborK
	}
	if c.MinCommonItems == 0 {
		c.MinCommonItems = 1
	}
	if c.TopCandidates == 0 {
		c.TopCandidates = DefaultTopCandidates
	}
	if c.TopResults == 0 {
		c.TopResults = DefaultTopResults
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}
