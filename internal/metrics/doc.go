// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics exposes Prometheus metrics for the CineMatch server.

# Metrics Endpoint

Metrics are served in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Ranking:
  - cinematch_rankings_total{mode, status}: Ranking requests by outcome
  - cinematch_ranking_duration_seconds{mode}: Time to score and sort the catalog
  - cinematch_catalog_items: Items in the loaded catalog
  - cinematch_items_scored_total: Catalog items scored across all requests

HTTP API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

WebSocket:
  - websocket_connections
  - websocket_messages_received_total{type}
  - websocket_messages_sent_total{type}
  - websocket_errors_total{error_type}
*/
package metrics
