// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// RecommendComponents holds the catalog and the engine ranking it.
type RecommendComponents struct {
	Catalog *catalog.Catalog
	Engine  *recommend.Engine
}

// initRecommend loads the configured catalog and builds the ranking engine.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*RecommendComponents, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	metrics.SetCatalogSize(cat.Len())

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), cat, logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	pref := engine.DefaultPreference()
	logger.Info().
		Str("catalog_source", cat.Source()).
		Int("catalog_items", cat.Len()).
		Int("default_k", cfg.Recommend.DefaultK).
		Int("max_k", cfg.Recommend.MaxK).
		Str("default_preference", pref.String()).
		Msg("ranking engine initialized")

	return &RecommendComponents{Catalog: cat, Engine: engine}, nil
}
