// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// maxRequestBodyBytes caps POST bodies. A preference request is a few dozen bytes.
const maxRequestBodyBytes = 4096

// RecommendRequest holds slider positions for a ranking request.
// Nil sliders fall back to the configured default preference.
type RecommendRequest struct {
	recommend.Sliders
	K int `json:"k" validate:"gte=0,lte=1000"`
}

// SimilarRequest holds parameters for a "more like this" request.
type SimilarRequest struct {
	ItemID int `json:"item_id" validate:"gt=0"`
	K      int `json:"k" validate:"gte=0,lte=1000"`
}

// parseRecommendQuery reads slider values and k from query parameters.
func parseRecommendQuery(q url.Values) (*RecommendRequest, error) {
	req := &RecommendRequest{}

	for _, p := range []struct {
		name string
		dst  **float64
	}{
		{"tone", &req.Tone},
		{"intensity", &req.Intensity},
		{"complexity", &req.Complexity},
	} {
		v, err := parseOptionalFloat(q, p.name)
		if err != nil {
			return nil, err
		}
		*p.dst = v
	}

	k, err := parseOptionalInt(q, "k")
	if err != nil {
		return nil, err
	}
	req.K = k

	return req, nil
}

// decodeRecommendBody reads a JSON RecommendRequest from the request body.
func decodeRecommendBody(r *http.Request) (*RecommendRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxRequestBodyBytes {
		return nil, errors.New("request body too large")
	}

	req := &RecommendRequest{}
	if len(strings.TrimSpace(string(body))) == 0 {
		return req, nil
	}

	if err := json.Unmarshal(body, req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return req, nil
}

func parseOptionalFloat(q url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &f, nil
}

func parseOptionalInt(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

// parseItemID parses a positive catalog item ID from a path segment.
func parseItemID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item ID %q", raw)
	}
	return id, nil
}
