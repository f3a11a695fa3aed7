// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	CatalogItems  int     `json:"catalog_items"`
	CatalogSource string  `json:"catalog_source,omitempty"`
	Uptime        float64 `json:"uptime_seconds"`
}

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, HealthStatus{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether a non-empty catalog is loaded.
// An empty catalog ranks to empty lists, which is valid but useless to clients.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil || h.catalog.Len() == 0 {
		NewResponseWriter(w, r).ServiceUnavailable("Catalog is empty")
		return
	}

	WriteSuccess(w, r, HealthStatus{
		Status:        "ready",
		CatalogItems:  h.catalog.Len(),
		CatalogSource: h.catalog.Source(),
		Uptime:        time.Since(h.startTime).Seconds(),
	})
}
