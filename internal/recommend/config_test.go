// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/cinematch/internal/vector"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("limits config has valid defaults", func(t *testing.T) {
		if cfg.Limits.DefaultK != 5 {
			t.Errorf("Limits.DefaultK = %d, want 5", cfg.Limits.DefaultK)
		}
		if cfg.Limits.MaxK < cfg.Limits.DefaultK {
			t.Errorf("Limits.MaxK = %d, want >= DefaultK (%d)", cfg.Limits.MaxK, cfg.Limits.DefaultK)
		}
	})

	t.Run("default preference is the slider midpoint", func(t *testing.T) {
		if cfg.DefaultPreference != vector.New(5, 5, 5) {
			t.Errorf("DefaultPreference = %v, want (5, 5, 5)", cfg.DefaultPreference)
		}
	})

	t.Run("defaults validate", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	validConfig := func() *Config {
		return DefaultConfig()
	}

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
			name:      "zero default K",
			modify:    func(c *Config) { c.Limits.DefaultK = 0 },
			wantError: true,
		},
		{
			name:      "negative default K",
			modify:    func(c *Config) { c.Limits.DefaultK = -5 },
			wantError: true,
		},
		{
			name:      "max K below default K",
			modify:    func(c *Config) { c.Limits.MaxK = 2 },
			wantError: true,
		},
		{
			name:      "negative cache size",
			modify:    func(c *Config) { c.CacheSize = -1 },
			wantError: true,
		},
		{
			name:      "cache enabled",
			modify:    func(c *Config) { c.CacheSize = 256 },
			wantError: false,
		},
		{
			name:      "max K equal to default K",
			modify:    func(c *Config) { c.Limits.MaxK = c.Limits.DefaultK },
			wantError: false,
		},
		{
			name:      "NaN default preference",
			modify:    func(c *Config) { c.DefaultPreference.Y = math.NaN() },
			wantError: true,
		},
		{
			name:      "zero default preference",
			modify:    func(c *Config) { c.DefaultPreference = vector.Zero },
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	original := DefaultConfig()
	clone := original.Clone()

	clone.Limits.MaxK = 7
	clone.DefaultPreference.X = 1

	if original.Limits.MaxK == 7 || original.DefaultPreference.X == 1 {
		t.Error("Clone shares state with the original")
	}
}
