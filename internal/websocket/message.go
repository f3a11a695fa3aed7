// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package websocket

import (
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/vector"
)

// Message types for WebSocket communication
const (
	MessageTypePreference = "preference"
	MessageTypeSimilar    = "similar"
	MessageTypePing       = "ping"

	MessageTypeWelcome = "welcome"
	MessageTypeRanking = "ranking"
	MessageTypeError   = "error"
	MessageTypePong    = "pong"
)

// Error codes carried by error messages.
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeUnknownType    = "UNKNOWN_TYPE"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// Message is an outbound frame.
type Message struct {
	Type      string      `json:"type"`
	RequestID string      `json:"request_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// inboundMessage is a client frame with its payload left undecoded.
type inboundMessage struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// PreferencePayload carries slider positions. Nil sliders use the default preference.
type PreferencePayload struct {
	recommend.Sliders
	K int `json:"k" validate:"gte=0,lte=1000"`
}

// SimilarPayload asks for items closest to a catalog item.
type SimilarPayload struct {
	ItemID int `json:"item_id" validate:"gt=0"`
	K      int `json:"k" validate:"gte=0,lte=1000"`
}

// WelcomePayload is sent once per session.
type WelcomePayload struct {
	SessionID         string         `json:"session_id"`
	DefaultPreference vector.Vector3 `json:"default_preference"`
	MinPreference     float64        `json:"min_preference"`
	MaxPreference     float64        `json:"max_preference"`
	CatalogSize       int            `json:"catalog_size"`
}

// RankingPayload is the data of a ranking message.
type RankingPayload struct {
	Mode            string                 `json:"mode"`
	Target          vector.Vector3         `json:"target"`
	ItemID          int                    `json:"item_id,omitempty"`
	K               int                    `json:"k"`
	RequestedK      int                    `json:"requested_k"`
	KPolicy         string                 `json:"k_policy"`
	TotalCandidates int                    `json:"total_candidates"`
	Items           []recommend.RankedItem `json:"items"`
	LatencyUS       int64                  `json:"latency_us"`
}

// ErrorPayload is the data of an error message.
type ErrorPayload struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func newRankingPayload(resp *recommend.Response) RankingPayload {
	return RankingPayload{
		Mode:            resp.Metadata.Mode,
		Target:          resp.Metadata.Target,
		ItemID:          resp.Metadata.ItemID,
		K:               resp.Metadata.K,
		RequestedK:      resp.Metadata.RequestedK,
		KPolicy:         resp.Metadata.KPolicy,
		TotalCandidates: resp.TotalCandidates,
		Items:           recommend.NewRankedItems(resp.Items),
		LatencyUS:       resp.Metadata.LatencyUS,
	}
}
