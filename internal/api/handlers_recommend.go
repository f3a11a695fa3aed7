// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
	"github.com/tomtom215/cinematch/internal/vector"
)

// RecommendationsResponse is the payload of the ranking endpoints.
type RecommendationsResponse struct {
	Items           []recommend.RankedItem     `json:"items"`
	TotalCandidates int                        `json:"total_candidates"`
	Metadata        recommend.ResponseMetadata `json:"metadata"`
}

// RecommendConfigResponse describes the slider bounds and ranking limits.
type RecommendConfigResponse struct {
	DefaultK          int            `json:"default_k"`
	MaxK              int            `json:"max_k"`
	DefaultPreference vector.Vector3 `json:"default_preference"`
	MinPreference     float64        `json:"min_preference"`
	MaxPreference     float64        `json:"max_preference"`
}

// RecommendStatusResponse reports engine counters.
type RecommendStatusResponse struct {
	Metrics       recommend.Metrics `json:"metrics"`
	CatalogItems  int               `json:"catalog_items"`
	CatalogSource string            `json:"catalog_source"`
	UptimeSeconds float64           `json:"uptime_seconds"`
}

// GetRecommendations handles GET /api/v1/recommendations
// Ranks the catalog against ?tone=&intensity=&complexity= and returns the top ?k=.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	req, err := parseRecommendQuery(r.URL.Query())
	if err != nil {
		NewResponseWriter(w, r).BadRequest(ErrCodeBadRequest, err.Error())
		return
	}
	h.recommendByPreference(w, r, req)
}

// PostRecommendations handles POST /api/v1/recommendations
// Same as GetRecommendations with the sliders in a JSON body.
func (h *Handler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRecommendBody(r)
	if err != nil {
		NewResponseWriter(w, r).BadRequest(ErrCodeBadRequest, err.Error())
		return
	}
	h.recommendByPreference(w, r, req)
}

func (h *Handler) recommendByPreference(w http.ResponseWriter, r *http.Request, req *RecommendRequest) {
	if verr := validation.ValidateStruct(req); verr != nil {
		writeValidationError(w, r, verr)
		return
	}

	h.rank(w, r, recommend.Request{
		Mode:       recommend.ModePreference,
		Preference: req.Resolve(h.engine.DefaultPreference()),
		K:          req.K,
		RequestID:  logging.RequestIDFromContext(r.Context()),
	})
}

// GetSimilar handles GET /api/v1/recommendations/similar/{itemID}
// Returns the items closest to the given item, excluding the item itself.
func (h *Handler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		NewResponseWriter(w, r).BadRequest(ErrCodeInvalidItemID, err.Error())
		return
	}

	k, err := parseOptionalInt(r.URL.Query(), "k")
	if err != nil {
		NewResponseWriter(w, r).BadRequest(ErrCodeBadRequest, err.Error())
		return
	}

	req := &SimilarRequest{ItemID: id, K: k}
	if verr := validation.ValidateStruct(req); verr != nil {
		writeValidationError(w, r, verr)
		return
	}

	h.rank(w, r, recommend.Request{
		Mode:      recommend.ModeSimilar,
		ItemID:    req.ItemID,
		K:         req.K,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

//nolint:gocritic // hugeParam: req passed by value like Engine.Recommend
func (h *Handler) rank(w http.ResponseWriter, r *http.Request, req recommend.Request) {
	start := time.Now()
	resp, err := h.engine.Recommend(req)

	scored := 0
	if resp != nil {
		scored = resp.TotalCandidates
	}
	metrics.RecordRanking(req.Mode.String(), scored, time.Since(start), err)

	if err != nil {
		writeRecommendError(w, r, err)
		return
	}

	NewResponseWriter(w, r).SuccessWithCount(toRecommendationsResponse(resp), len(resp.Items))
}

// GetRecommendationConfig handles GET /api/v1/recommendations/config
func (h *Handler) GetRecommendationConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.engine.GetConfig()
	WriteSuccess(w, r, RecommendConfigResponse{
		DefaultK:          cfg.Limits.DefaultK,
		MaxK:              cfg.Limits.MaxK,
		DefaultPreference: cfg.DefaultPreference,
		MinPreference:     config.MinPreference,
		MaxPreference:     config.MaxPreference,
	})
}

// GetRecommendationStatus handles GET /api/v1/recommendations/status
func (h *Handler) GetRecommendationStatus(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, RecommendStatusResponse{
		Metrics:       h.engine.GetMetrics(),
		CatalogItems:  h.catalog.Len(),
		CatalogSource: h.catalog.Source(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// toRecommendationsResponse flattens engine results for clients.
func toRecommendationsResponse(resp *recommend.Response) RecommendationsResponse {
	return RecommendationsResponse{
		Items:           recommend.NewRankedItems(resp.Items),
		TotalCandidates: resp.TotalCandidates,
		Metadata:        resp.Metadata,
	}
}
