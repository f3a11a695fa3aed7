// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware for the CineMatch API.

All middleware has the standard func(http.Handler) http.Handler shape and can
be passed to chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

Key Components:

  - RequestID: honors or assigns X-Request-ID and stores it for logging
  - AccessLog: one zerolog line per request
  - PrometheusMetrics: request counts, latency and in-flight gauge, labeled by
    the chi route pattern rather than the raw path

The response writer wrapper passes through http.Hijacker so that WebSocket
upgrades work behind every middleware in this package.
*/
package middleware
