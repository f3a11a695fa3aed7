// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	RateLimitKeyFunc  httprate.KeyFunc
}

// DefaultChiMiddlewareConfig returns a secure default configuration.
// CORS origins default to empty, requiring explicit configuration.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		CORSExposedHeaders: []string{middleware.RequestIDHeader},
		CORSMaxAge:         86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// NewChiMiddlewareFromConfig builds middleware factories from the security settings.
func NewChiMiddlewareFromConfig(sec *config.SecurityConfig) *ChiMiddleware {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = sec.CORSOrigins
	cfg.RateLimitRequests = sec.RateLimitReqs
	cfg.RateLimitWindow = sec.RateLimitWindow
	cfg.RateLimitDisabled = sec.RateLimitDisabled
	return NewChiMiddleware(cfg)
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(cfg *ChiMiddlewareConfig) *ChiMiddleware {
	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   cfg.CORSAllowedMethods,
		AllowedHeaders:   cfg.CORSAllowedHeaders,
		ExposedHeaders:   cfg.CORSExposedHeaders,
		AllowCredentials: cfg.CORSAllowCredentials,
		MaxAge:           cfg.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: cfg,
		cors:   corsHandler,
	}
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns a rate limiter keyed by client IP using go-chi/httprate.
// Rejections are counted per endpoint and answered with the standard error envelope.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(m.config.RateLimitRequests, m.config.RateLimitWindow)
}

// RateLimitCustom returns a rate limiter with its own budget, sharing the
// key function and rejection handler of the default limiter.
func (m *ChiMiddleware) RateLimitCustom(requests int, window time.Duration) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRateLimitHit(r.URL.Path)
	WriteError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests, "Rate limit exceeded")
}
