// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
	"github.com/tomtom215/cinematch/internal/vector"
)

// CatalogListResponse is the payload of GET /api/v1/catalog.
type CatalogListResponse struct {
	Items  []recommend.CatalogItem `json:"items"`
	Genres []string                `json:"genres"`
	Source string                  `json:"source"`
}

// VectorPoint is one catalog item positioned in preference space.
type VectorPoint struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Vector       vector.Vector3 `json:"vector"`
	Score        float64        `json:"score"`
	MatchPercent int            `json:"match_percent"`
}

// VectorSpaceResponse is the payload of GET /api/v1/catalog/vectors.
type VectorSpaceResponse struct {
	Preference vector.Vector3 `json:"preference"`
	Points     []VectorPoint  `json:"points"`
}

// Catalog handles GET /api/v1/catalog
// Lists every movie in catalog order, optionally filtered by ?genre=.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.Items()

	if genre := strings.TrimSpace(r.URL.Query().Get("genre")); genre != "" {
		items = filterByGenre(items, genre)
	}

	NewResponseWriter(w, r).SuccessWithCount(CatalogListResponse{
		Items:  items,
		Genres: h.catalog.Genres(),
		Source: h.catalog.Source(),
	}, len(items))
}

// CatalogItem handles GET /api/v1/catalog/{itemID}
func (h *Handler) CatalogItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		NewResponseWriter(w, r).BadRequest(ErrCodeInvalidItemID, err.Error())
		return
	}

	item, ok := h.catalog.Get(id)
	if !ok {
		NewResponseWriter(w, r).NotFound("Catalog item not found")
		return
	}

	WriteSuccess(w, r, item)
}

// CatalogVectors handles GET /api/v1/catalog/vectors
// Returns every item's vector and its similarity to the requested preference,
// in catalog order, for plotting the preference space.
func (h *Handler) CatalogVectors(w http.ResponseWriter, r *http.Request) {
	req, err := parseRecommendQuery(r.URL.Query())
	if err != nil {
		NewResponseWriter(w, r).BadRequest(ErrCodeBadRequest, err.Error())
		return
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		writeValidationError(w, r, verr)
		return
	}

	pref := req.Resolve(h.engine.DefaultPreference())
	scored, err := h.engine.ScoreCatalog(pref)
	if err != nil {
		writeRecommendError(w, r, err)
		return
	}

	points := make([]VectorPoint, len(scored))
	for i, s := range scored {
		points[i] = VectorPoint{
			ID:           s.Item.ID,
			Title:        s.Item.Title,
			Vector:       s.Item.Vector,
			Score:        s.Score,
			MatchPercent: s.MatchPercent(),
		}
	}

	NewResponseWriter(w, r).SuccessWithCount(VectorSpaceResponse{
		Preference: pref,
		Points:     points,
	}, len(points))
}

func filterByGenre(items []recommend.CatalogItem, genre string) []recommend.CatalogItem {
	filtered := make([]recommend.CatalogItem, 0, len(items))
	for i := range items {
		for _, g := range items[i].Genres {
			if strings.EqualFold(g, genre) {
				filtered = append(filtered, items[i])
				break
			}
		}
	}
	return filtered
}
