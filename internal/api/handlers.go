// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// CatalogReader is the catalog surface the API exposes.
type CatalogReader interface {
	recommend.CatalogProvider

	// Genres returns the sorted set of genre labels.
	Genres() []string

	// Source names where the catalog was loaded from.
	Source() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: liveness and readiness probes
//   - handlers_catalog.go: catalog browsing and vector-space data
//   - handlers_recommend.go: ranking endpoints
type Handler struct {
	engine    *recommend.Engine
	catalog   CatalogReader
	startTime time.Time
}

// NewHandler creates an API handler over a ranking engine and its catalog.
func NewHandler(engine *recommend.Engine, catalog CatalogReader) *Handler {
	return &Handler{
		engine:    engine,
		catalog:   catalog,
		startTime: time.Now(),
	}
}
