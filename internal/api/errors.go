// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// writeRecommendError maps engine errors to HTTP status codes.
func writeRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	switch {
	case errors.Is(err, recommend.ErrItemNotFound):
		rw.NotFound("Catalog item not found")
	case errors.Is(err, recommend.ErrInvalidK):
		rw.BadRequest(ErrCodeInvalidK, "k must be zero or a positive integer")
	case errors.Is(err, recommend.ErrInvalidPreference):
		rw.BadRequest(ErrCodeInvalidPreference, err.Error())
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("ranking failed")
		rw.InternalError("Failed to rank catalog")
	}
}

// writeValidationError writes a 400 response carrying every field failure.
func writeValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	NewResponseWriter(w, r).ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}
