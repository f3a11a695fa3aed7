// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide. Field names in error
// messages follow the struct's json tag, so a failure on
//
//	type PreferenceRequest struct {
//	    Tone float64 `json:"tone" validate:"finite,gte=1,lte=10"`
//	}
//
// reads "tone must be less than or equal to 10".
//
// # Custom Tags
//
//   - finite: float fields must not be NaN or infinite
//
// # API Errors
//
// RequestValidationError.ToAPIError converts failures into the VALIDATION_ERROR
// shape used by the HTTP and WebSocket layers. Offending values are reported
// as strings so that NaN or infinite inputs can still be encoded as JSON.
package validation
