// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Recommend: RecommendConfig{
			DefaultK:          5,
			MaxK:              100,
			DefaultTone:       5,
			DefaultIntensity:  5,
			DefaultComplexity: 5,
			CacheSize:         1024,
		},
		WebSocket: WebSocketConfig{
			Enabled:         true,
			MaxMessageBytes: 4096,
			PingInterval:    30 * time.Second,
		},
	}
}

// Load reads configuration from defaults, the optional config file and the
// environment, in increasing order of precedence, and validates the result.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	return load(configPath)
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the config file to load, or "" when none exists.
// A path named by CONFIG_PATH must exist.
func findConfigFile() (string, error) {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", ConfigPathEnvVar, envPath, err)
		}
		return envPath, nil
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// sliceConfigPaths are parsed as comma-separated lists when set from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated strings for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}

		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"catalog_path": "catalog.path",

	"recommend_default_k":          "recommend.default_k",
	"recommend_max_k":              "recommend.max_k",
	"recommend_default_tone":       "recommend.default_tone",
	"recommend_default_intensity":  "recommend.default_intensity",
	"recommend_default_complexity": "recommend.default_complexity",
	"recommend_cache_size":         "recommend.cache_size",

	"websocket_enabled":           "websocket.enabled",
	"websocket_max_message_bytes": "websocket.max_message_bytes",
	"websocket_ping_interval":     "websocket.ping_interval",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unknown variables map to "" and are ignored.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
