// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/vector"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	WebSocket WebSocketConfig `koanf:"websocket"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file and line number in logs.
	Caller bool `koanf:"caller"`
}

// CatalogConfig selects the movie catalog.
type CatalogConfig struct {
	// Path is a JSON or YAML catalog file. Empty selects the embedded dataset.
	Path string `koanf:"path"`
}

// RecommendConfig holds ranking defaults.
type RecommendConfig struct {
	DefaultK          int     `koanf:"default_k"`
	MaxK              int     `koanf:"max_k"`
	DefaultTone       float64 `koanf:"default_tone"`
	DefaultIntensity  float64 `koanf:"default_intensity"`
	DefaultComplexity float64 `koanf:"default_complexity"`

	// CacheSize is the number of ranked catalogs memoized per target vector.
	// Zero disables the cache.
	CacheSize int `koanf:"cache_size"`
}

// DefaultPreference returns the configured starting preference vector.
func (r *RecommendConfig) DefaultPreference() vector.Vector3 {
	return vector.New(r.DefaultTone, r.DefaultIntensity, r.DefaultComplexity)
}

// EngineConfig converts the settings into a ranking engine configuration.
func (r *RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultK: r.DefaultK,
			MaxK:     r.MaxK,
		},
		DefaultPreference: r.DefaultPreference(),
		CacheSize:         r.CacheSize,
	}
}

// WebSocketConfig holds live ranking session settings.
type WebSocketConfig struct {
	Enabled         bool          `koanf:"enabled"`
	MaxMessageBytes int64         `koanf:"max_message_bytes"`
	PingInterval    time.Duration `koanf:"ping_interval"`
}

// Preference slider bounds offered to users.
const (
	MinPreference = 1.0
	MaxPreference = 10.0
)
