// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ranking Metrics
	RankingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_rankings_total",
			Help: "Total number of ranking requests",
		},
		[]string{"mode", "status"}, // status: "ok", "rejected"
	)

	RankingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_ranking_duration_seconds",
			Help:    "Time spent scoring and sorting the catalog",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05}, // Ranking is CPU-only and sub-millisecond
		},
		[]string{"mode"},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_catalog_items",
			Help: "Number of items in the loaded catalog",
		},
	)

	ItemsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_items_scored_total",
			Help: "Total number of catalog items scored",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_received_total",
			Help: "Total number of WebSocket messages received",
		},
		[]string{"type"},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
		[]string{"type"},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)
)

// RecordRanking records the outcome of one ranking request.
func RecordRanking(mode string, itemsScored int, duration time.Duration, err error) {
	if err != nil {
		RankingsTotal.WithLabelValues(mode, "rejected").Inc()
		return
	}
	RankingsTotal.WithLabelValues(mode, "ok").Inc()
	RankingDuration.WithLabelValues(mode).Observe(duration.Seconds())
	ItemsScored.Add(float64(itemsScored))
}

// SetCatalogSize records the number of items in the loaded catalog.
func SetCatalogSize(n int) {
	CatalogItems.Set(float64(n))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackWSConnection tracks open WebSocket connections.
func TrackWSConnection(open bool) {
	if open {
		WSConnections.Inc()
	} else {
		WSConnections.Dec()
	}
}
