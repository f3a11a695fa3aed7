// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/vector"
)

// Errors returned by Engine.
var (
	ErrNoCatalog         = errors.New("catalog not provided")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidK          = errors.New("k must not be negative")
	ErrInvalidPreference = errors.New("invalid preference vector")
	ErrUnknownMode       = errors.New("unknown recommend mode")
)

// Engine ranks an immutable catalog on request.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog CatalogProvider
	ranked  *cache.LRU[rankKey, RankedList] // nil when caching is disabled

	requestCount  atomic.Int64
	errorCount    atomic.Int64
	itemsScored   atomic.Int64
	latencyMicros atomic.Int64
}

// NewEngine creates a ranking engine over catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, catalog CatalogProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if catalog == nil {
		return nil, ErrNoCatalog
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: catalog,
	}
	if cfg.CacheSize > 0 {
		e.ranked = cache.NewLRU[rankKey, RankedList](cfg.CacheSize)
	}
	return e, nil
}

// rankKey identifies a ranked catalog: the target vector plus the item
// excluded from the candidates (0 for none).
type rankKey struct {
	target  vector.Vector3
	exclude int
}

// Recommend ranks the catalog for req and returns the top K items.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	requestedK := req.K
	req, kPolicy, err := e.prepareRequest(req)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	logger := e.createRequestLogger(req)

	target, candidates, err := e.resolveTarget(req)
	if err != nil {
		e.errorCount.Add(1)
		logger.Debug().Err(err).Msg("ranking request rejected")
		return nil, err
	}

	ranked, hit := e.rankCandidates(req, target, candidates)
	items := ranked.Top(req.K)
	if !hit {
		e.itemsScored.Add(int64(len(candidates)))
	}

	resp := &Response{
		Items:           items,
		TotalCandidates: len(candidates),
		Metadata:        e.buildResponseMetadata(req, target, start),
	}
	resp.Metadata.RequestedK = requestedK
	resp.Metadata.KPolicy = kPolicy
	e.latencyMicros.Add(resp.Metadata.LatencyUS)

	logger.Debug().
		Int("candidates", len(candidates)).
		Int("returned", len(items)).
		Bool("cache_hit", hit).
		Int64("latency_us", resp.Metadata.LatencyUS).
		Msg("ranking complete")

	return resp, nil
}

// rankCandidates returns the ranked candidates for target, consulting the
// cache when enabled. Cached lists are never mutated; Top copies out of them.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) rankCandidates(req Request, target vector.Vector3, candidates []CatalogItem) (RankedList, bool) {
	if e.ranked == nil {
		return Rank(target, candidates), false
	}

	key := rankKey{target: target}
	if req.Mode == ModeSimilar {
		key.exclude = req.ItemID
	}
	if list, ok := e.ranked.Get(key); ok {
		return list, true
	}

	list := Rank(target, candidates)
	e.ranked.Add(key, list)
	return list, false
}

// ScoreCatalog scores every catalog item against pref without reordering.
func (e *Engine) ScoreCatalog(pref vector.Vector3) ([]ScoredItem, error) {
	if err := pref.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreference, err)
	}
	return Score(pref, e.catalog.Items()), nil
}

// prepareRequest applies the K policy and generates a request ID if needed.
// It reports which K policy applied.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) (Request, string, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	policy := KPolicyRequested
	switch {
	case req.K < 0:
		return req, "", fmt.Errorf("%w: got %d", ErrInvalidK, req.K)
	case req.K == 0:
		req.K = e.config.Limits.DefaultK
		policy = KPolicyDefault
	case req.K > e.config.Limits.MaxK:
		req.K = e.config.Limits.MaxK
		policy = KPolicyClamped
	}

	return req, policy, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("mode", req.Mode.String()).
		Int("k", req.K).
		Logger()
}

// resolveTarget returns the vector to rank against and the candidate items.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) resolveTarget(req Request) (vector.Vector3, []CatalogItem, error) {
	switch req.Mode {
	case ModePreference:
		if err := req.Preference.Validate(); err != nil {
			return vector.Zero, nil, fmt.Errorf("%w: %w", ErrInvalidPreference, err)
		}
		return req.Preference, e.catalog.Items(), nil

	case ModeSimilar:
		ref, ok := e.catalog.Get(req.ItemID)
		if !ok {
			return vector.Zero, nil, fmt.Errorf("%w: %d", ErrItemNotFound, req.ItemID)
		}
		return ref.Vector, excludeItem(e.catalog.Items(), ref.ID), nil

	default:
		return vector.Zero, nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(req.Mode))
	}
}

// excludeItem returns items without the entry whose ID is id, preserving order.
func excludeItem(items []CatalogItem, id int) []CatalogItem {
	filtered := make([]CatalogItem, 0, len(items))
	for i := range items {
		if items[i].ID != id {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

// buildResponseMetadata constructs response metadata.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, target vector.Vector3, start time.Time) ResponseMetadata {
	return ResponseMetadata{
		RequestID:   req.RequestID,
		Mode:        req.Mode.String(),
		Target:      target,
		ItemID:      req.ItemID,
		K:           req.K,
		CatalogSize: e.catalog.Len(),
		LatencyUS:   time.Since(start).Microseconds(),
		Timestamp:   time.Now(),
	}
}

// DefaultPreference returns the configured starting preference vector.
func (e *Engine) DefaultPreference() vector.Vector3 {
	return e.config.DefaultPreference
}

// Catalog returns the catalog the engine ranks.
func (e *Engine) Catalog() CatalogProvider {
	return e.catalog
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
		ItemsScored:  e.itemsScored.Load(),
	}

	if e.ranked != nil {
		stats := e.ranked.Stats()
		m.CacheHits = stats.Hits
		m.CacheMisses = stats.Misses
		m.CacheSize = stats.Size
	}

	if served := m.RequestCount - m.ErrorCount; served > 0 {
		m.AvgLatencyMicros = float64(e.latencyMicros.Load()) / float64(served)
	}

	return m
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
