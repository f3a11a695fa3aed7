// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package main is the entry point for the CineMatch server.
//
// CineMatch ranks a fixed movie catalog against a three-slider preference
// (tone, intensity, complexity) using cosine similarity and serves the result
// over a REST API and a WebSocket live ranking channel.
//
// # Startup Order
//
//  1. Configuration: defaults, config.yaml, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: embedded dataset or CATALOG_PATH (JSON or YAML)
//  4. Ranking engine over the catalog
//  5. WebSocket hub (if WEBSOCKET_ENABLED)
//  6. HTTP server under the supervisor tree
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
// server (waiting up to SHUTDOWN_TIMEOUT for in-flight requests) and the hub
// closes every live session with a going-away frame.
//
// # Example Usage
//
//	./cinematch-server
//
//	CATALOG_PATH=/data/movies.yaml LOG_LEVEL=debug LOG_FORMAT=console ./cinematch-server
//
//	curl 'http://localhost:8080/api/v1/recommendations?tone=8&intensity=3&complexity=6&k=5'
package main
