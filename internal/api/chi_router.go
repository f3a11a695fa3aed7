// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinematch/internal/middleware"
)

// Health probes get a permissive budget so monitoring never trips the API limiter.
const (
	healthRateLimitRequests = 1000
	healthRateLimitWindow   = time.Minute
)

// Router wires handlers into a Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	websocket     http.Handler
}

// NewRouter creates a router. ws may be nil when live ranking is disabled.
func NewRouter(handler *Handler, mw *ChiMiddleware, ws http.Handler) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		websocket:     ws,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(healthRateLimitRequests, healthRateLimitWindow))
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Catalog and Ranking Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Compress(5, "application/json"))

			r.Get("/catalog", router.handler.Catalog)
			r.Get("/catalog/vectors", router.handler.CatalogVectors)
			r.Get("/catalog/{itemID}", router.handler.CatalogItem)

			r.Get("/recommendations", router.handler.GetRecommendations)
			r.Post("/recommendations", router.handler.PostRecommendations)
			r.Get("/recommendations/similar/{itemID}", router.handler.GetSimilar)
			r.Get("/recommendations/config", router.handler.GetRecommendationConfig)
			r.Get("/recommendations/status", router.handler.GetRecommendationStatus)
		})

		if router.websocket != nil {
			r.Get("/ws", router.websocket.ServeHTTP)
		}
	})

	// ========================
	// Prometheus Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
