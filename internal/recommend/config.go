// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"

	"github.com/tomtom215/cinematch/internal/vector"
)

// Config contains all configuration for the ranking engine.
type Config struct {
	// Limits bounds the size of ranking results.
	Limits LimitsConfig `json:"limits"`

	// DefaultPreference is the starting preference vector offered to users
	// before they adjust anything.
	DefaultPreference vector.Vector3 `json:"default_preference"`

	// CacheSize bounds the number of ranked catalogs kept per target
	// vector. Zero disables caching.
	CacheSize int `json:"cache_size"`
}

// LimitsConfig contains result size limits.
type LimitsConfig struct {
	// DefaultK is used when a request does not specify K.
	DefaultK int `json:"default_k"`

	// MaxK caps the number of items a single request may return.
	MaxK int `json:"max_k"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultK: 5,
			MaxK:     100,
		},
		DefaultPreference: vector.New(5, 5, 5),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultK <= 0 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if err := c.DefaultPreference.Validate(); err != nil {
		return fmt.Errorf("default_preference: %w", err)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
