// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"
)

// maxK bounds recommend.max_k.
const maxK = 1000

// Validate checks every configuration section.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
		c.validateCatalog,
		c.validateRecommend,
		c.validateWebSocket,
	}

	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}

	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %s", c.Security.RateLimitWindow)
	}

	if c.Server.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain * in production")
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be trace, debug, info, warn or error, got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		return nil
	}

	switch strings.ToLower(filepath.Ext(c.Catalog.Path)) {
	case ".json", ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("CATALOG_PATH must be a .json, .yaml or .yml file, got %q", c.Catalog.Path)
	}
}

func (c *Config) validateRecommend() error {
	r := &c.Recommend

	if r.DefaultK <= 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be positive, got %d", r.DefaultK)
	}
	if r.MaxK < r.DefaultK || r.MaxK > maxK {
		return fmt.Errorf("RECOMMEND_MAX_K must be between RECOMMEND_DEFAULT_K (%d) and %d, got %d", r.DefaultK, maxK, r.MaxK)
	}

	if r.CacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must not be negative, got %d", r.CacheSize)
	}

	defaults := map[string]float64{
		"RECOMMEND_DEFAULT_TONE":       r.DefaultTone,
		"RECOMMEND_DEFAULT_INTENSITY":  r.DefaultIntensity,
		"RECOMMEND_DEFAULT_COMPLEXITY": r.DefaultComplexity,
	}
	for name, v := range defaults {
		if math.IsNaN(v) || v < MinPreference || v > MaxPreference {
			return fmt.Errorf("%s must be between %g and %g, got %g", name, MinPreference, MaxPreference, v)
		}
	}
	return nil
}

func (c *Config) validateWebSocket() error {
	if !c.WebSocket.Enabled {
		return nil
	}
	if c.WebSocket.MaxMessageBytes < 64 {
		return fmt.Errorf("WEBSOCKET_MAX_MESSAGE_BYTES must be at least 64, got %d", c.WebSocket.MaxMessageBytes)
	}
	if c.WebSocket.PingInterval < time.Second {
		return fmt.Errorf("WEBSOCKET_PING_INTERVAL must be at least 1s, got %s", c.WebSocket.PingInterval)
	}
	return nil
}
