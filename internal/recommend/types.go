// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"math"
	"time"

	"github.com/tomtom215/cinematch/internal/vector"
)

// CatalogItem is a movie in the catalog with its position in preference space.
// Items are immutable once the catalog is built.
type CatalogItem struct {
	// ID uniquely identifies the item within its catalog.
	ID int `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Year is the release year.
	Year int `json:"year"`

	// Genres lists genre labels in display order.
	Genres []string `json:"genres"`

	// Vector is the item's (tone, intensity, complexity) coordinate.
	Vector vector.Vector3 `json:"vector"`
}

// ScoredItem pairs a catalog item with its similarity to a preference vector.
type ScoredItem struct {
	Item  CatalogItem `json:"item"`
	Score float64     `json:"score"`
}

// MatchPercent returns the score as a percentage rounded half up, so
// -12.5 becomes -12 and 12.5 becomes 13.
func (s ScoredItem) MatchPercent() int {
	return int(math.Floor(s.Score*100 + 0.5))
}

// RankedItem is a scored catalog item flattened for hosts: every
// CatalogItem field plus its 1-based rank, score and match percentage.
type RankedItem struct {
	Rank         int            `json:"rank"`
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Year         int            `json:"year"`
	Genres       []string       `json:"genres"`
	Vector       vector.Vector3 `json:"vector"`
	Score        float64        `json:"score"`
	MatchPercent int            `json:"match_percent"`
}

// NewRankedItems flattens items in order, numbering ranks from 1.
func NewRankedItems(items []ScoredItem) []RankedItem {
	out := make([]RankedItem, len(items))
	for i, s := range items {
		out[i] = RankedItem{
			Rank:         i + 1,
			ID:           s.Item.ID,
			Title:        s.Item.Title,
			Year:         s.Item.Year,
			Genres:       s.Item.Genres,
			Vector:       s.Item.Vector,
			Score:        s.Score,
			MatchPercent: s.MatchPercent(),
		}
	}
	return out
}

// RankedList is a scored catalog ordered by descending score.
// Items with equal scores appear in catalog order.
type RankedList []ScoredItem

// CatalogProvider supplies the items to rank.
// Implementations must return the same items in the same order on every call.
type CatalogProvider interface {
	// Items returns every catalog item in catalog order.
	Items() []CatalogItem

	// Get returns the item with the given ID.
	Get(id int) (CatalogItem, bool)

	// Len returns the number of items.
	Len() int
}

// RecommendMode selects what the catalog is ranked against.
type RecommendMode int

const (
	// ModePreference ranks against the request's preference vector.
	ModePreference RecommendMode = iota
	// ModeSimilar ranks against the vector of a catalog item.
	ModeSimilar
)

// String returns the mode name.
func (m RecommendMode) String() string {
	switch m {
	case ModePreference:
		return "preference"
	case ModeSimilar:
		return "similar"
	default:
		return "unknown"
	}
}

// Sliders holds optional slider positions as sent by clients. Hosts embed
// it in their request types so every host validates and resolves sliders
// the same way.
type Sliders struct {
	Tone       *float64 `json:"tone" validate:"omitnil,finite,gte=1,lte=10"`
	Intensity  *float64 `json:"intensity" validate:"omitnil,finite,gte=1,lte=10"`
	Complexity *float64 `json:"complexity" validate:"omitnil,finite,gte=1,lte=10"`
}

// Resolve returns defaults with every set slider applied.
func (s *Sliders) Resolve(defaults vector.Vector3) vector.Vector3 {
	pref := defaults
	if s.Tone != nil {
		pref.X = *s.Tone
	}
	if s.Intensity != nil {
		pref.Y = *s.Intensity
	}
	if s.Complexity != nil {
		pref.Z = *s.Complexity
	}
	return pref
}

// K policies reported in ResponseMetadata.KPolicy.
const (
	KPolicyRequested = "requested"
	KPolicyDefault   = "default"
	KPolicyClamped   = "clamped"
)

// Request describes a single ranking request.
type Request struct {
	// Mode selects the ranking target. Defaults to ModePreference.
	Mode RecommendMode `json:"mode"`

	// Preference is the user's preference vector for ModePreference.
	Preference vector.Vector3 `json:"preference"`

	// ItemID is the reference item for ModeSimilar.
	ItemID int `json:"item_id,omitempty"`

	// K is the number of items to return. Zero selects the configured default.
	K int `json:"k"`

	// RequestID is propagated to the response. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response is the result of a ranking request.
type Response struct {
	// Items holds the top K scored items in ranked order.
	Items []ScoredItem `json:"items"`

	// TotalCandidates is the number of items that were scored.
	TotalCandidates int `json:"total_candidates"`

	// Metadata describes how the response was produced.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes a ranking pass. K is the effective result
// limit; RequestedK is what the caller asked for and KPolicy says how one
// became the other.
type ResponseMetadata struct {
	RequestID   string         `json:"request_id"`
	Mode        string         `json:"mode"`
	Target      vector.Vector3 `json:"target"`
	ItemID      int            `json:"item_id,omitempty"`
	K           int            `json:"k"`
	RequestedK  int            `json:"requested_k"`
	KPolicy     string         `json:"k_policy"`
	CatalogSize int            `json:"catalog_size"`
	LatencyUS   int64          `json:"latency_us"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Metrics contains engine counters.
type Metrics struct {
	RequestCount     int64   `json:"request_count"`
	ErrorCount       int64   `json:"error_count"`
	ItemsScored      int64   `json:"items_scored"`
	AvgLatencyMicros float64 `json:"avg_latency_us"`
	CacheHits        int64   `json:"cache_hits"`
	CacheMisses      int64   `json:"cache_misses"`
	CacheSize        int     `json:"cache_size"`
}
