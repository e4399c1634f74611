// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

package recommend

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("neighbor k is within supported range", func(t *testing.T) {
		if cfg.NeighborK < MinNeighborK || cfg.NeighborK > MaxNeighborK {
			t.Errorf("NeighborK = %d, want in [%d, %d]", cfg.NeighborK, MinNeighborK, MaxNeighborK)
		}
	})

	t.Run("candidate and result limits are positive", func(t *testing.T) {
		if cfg.TopCandidates <= 0 {
			t.Errorf("TopCandidates = %d, want > 0", cfg.TopCandidates)
		}
		if cfg.TopResults <= 0 {
			t.Errorf("TopResults = %d, want > 0", cfg.TopResults)
		}
		if cfg.TopResults > cfg.TopCandidates {
			t.Errorf("TopResults = %d, want <= TopCandidates (%d)", cfg.TopResults, cfg.TopCandidates)
		}
	})

	t.Run("workers defaults to available CPUs", func(t *testing.T) {
		if cfg.Workers <= 0 {
			t.Errorf("Workers = %d, want > 0", cfg.Workers)
		}
	})

	t.Run("validates cleanly", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{
			name:      "valid default config",
			modify:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "zero values are filled later, not rejected",
			modify:    func(c *Config) { *c = Config{} },
			wantError: false,
		},
		{
			name:      "negative neighbor k",
			modify:    func(c *Config) { c.NeighborK = -1 },
			wantError: true,
		},
		{
			name:      "negative min common items",
			modify:    func(c *Config) { c.MinCommonItems = -2 },
			wantError: true,
		},
		{
			name:      "negative top candidates",
			modify:    func(c *Config) { c.TopCandidates = -1 },
			wantError: true,
		},
		{
			name:      "top candidates over maximum",
			modify:    func(c *Config) { c.TopCandidates = MaxTopCandidates + 1 },
			wantError: true,
		},
		{
			name:      "negative top results",
			modify:    func(c *Config) { c.TopResults = -5 },
			wantError: true,
		},
		{
			name:      "top results over maximum",
			modify:    func(c *Config) { c.TopResults = MaxTopResults + 1 },
			wantError: true,
		},
		{
			name:      "negative workers",
			modify:    func(c *Config) { c.Workers = -4 },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfig_normalized(t *testing.T) {
	t.Run("zero config gets defaults", func(t *testing.T) {
		got := Config{}.normalized()

		if got.NeighborK != DefaultNeighborK {
			t.Errorf("NeighborK = %d, want %d", got.NeighborK, DefaultNeighborK)
		}
		if got.MinCommonItems != 1 {
			t.Errorf("MinCommonItems = %d, want 1", got.MinCommonItems)
		}
		if got.TopCandidates != DefaultTopCandidates {
			t.Errorf("TopCandidates = %d, want %d", got.TopCandidates, DefaultTopCandidates)
		}
		if got.TopResults != DefaultTopResults {
			t.Errorf("TopResults = %d, want %d", got.TopResults, DefaultTopResults)
		}
		if got.Workers <= 0 {
			t.Errorf("Workers = %d, want > 0", got.Workers)
		}
	})

	t.Run("neighbor k below range is clamped up", func(t *testing.T) {
		got := Config{NeighborK: 5}.normalized()
		if got.NeighborK != MinNeighborK {
			t.Errorf("NeighborK = %d, want %d", got.NeighborK, MinNeighborK)
		}
	})

	t.Run("neighbor k above range is clamped down", func(t *testing.T) {
		got := Config{NeighborK: 80}.normalized()
		if got.NeighborK != MaxNeighborK {
			t.Errorf("NeighborK = %d, want %d", got.NeighborK, MaxNeighborK)
		}
	})

	t.Run("in-range values pass through", func(t *testing.T) {
		cfg := Config{
			NeighborK:      35,
			MinCommonItems: 3,
			TopCandidates:  50,
			TopResults:     10,
			Workers:        2,
		}
		got := cfg.normalized()
		if got != cfg {
			t.Errorf("normalized() = %+v, want %+v", got, cfg)
		}
	})
}
