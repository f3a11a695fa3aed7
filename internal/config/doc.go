// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config loads CineMatch configuration with koanf.

# Configuration Sources

Sources are layered, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml or
    /etc/cinematch/config.yaml
 3. Environment variables listed below

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown limit (default: 10s)
  - ENVIRONMENT: development, staging or production (default: development)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Catalog:
  - CATALOG_PATH: JSON or YAML catalog file (default: embedded dataset)

Recommendations:
  - RECOMMEND_DEFAULT_K: Results when k is omitted (default: 5)
  - RECOMMEND_MAX_K: Upper bound on k (default: 100)
  - RECOMMEND_DEFAULT_TONE, RECOMMEND_DEFAULT_INTENSITY,
    RECOMMEND_DEFAULT_COMPLEXITY: Starting preference (default: 5 each)
  - RECOMMEND_CACHE_SIZE: Ranked catalogs kept in memory, 0 disables (default: 1024)

WebSocket:
  - WEBSOCKET_ENABLED: Serve /api/v1/ws (default: true)
  - WEBSOCKET_MAX_MESSAGE_BYTES: Inbound frame limit (default: 4096)
  - WEBSOCKET_PING_INTERVAL: Keep-alive ping period (default: 30s)

# Example File

	server:
	  port: 9000
	logging:
	  level: debug
	  format: console
	catalog:
	  path: /data/movies.yaml
	recommend:
	  default_k: 10
*/
package config
