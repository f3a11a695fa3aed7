// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/vector"
)

// testEnvelope mirrors APIResponse with a raw payload for per-test decoding.
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

// testItems is the three-movie catalog used across API tests.
func testItems() []recommend.CatalogItem {
	return []recommend.CatalogItem{
		{ID: 1, Title: "All Ten", Year: 2001, Genres: []string{"Drama"}, Vector: vector.New(10, 10, 10)},
		{ID: 2, Title: "All One", Year: 2002, Genres: []string{"Comedy", "Drama"}, Vector: vector.New(1, 1, 1)},
		{ID: 3, Title: "Bright Only", Year: 2003, Genres: []string{"Comedy"}, Vector: vector.New(10, 1, 1)},
	}
}

func setupTestHandler(t *testing.T, items []recommend.CatalogItem) *Handler {
	t.Helper()

	cat, err := catalog.New(items)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	return NewHandler(engine, cat)
}

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(setupTestHandler(t, testItems()), NewChiMiddleware(cfg), nil).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target string, body io.Reader) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env testEnvelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func itemIDs(items []recommend.RankedItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
