// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

const handshakeTimeout = 10 * time.Second

// Handler upgrades HTTP requests into live ranking sessions.
type Handler struct {
	hub            *Hub
	ranker         Ranker
	settings       Settings
	allowedOrigins []string
	upgrader       websocket.Upgrader
	logger         zerolog.Logger
}

// NewHandler creates the upgrade endpoint. allowedOrigins follows the CORS
// configuration; "*" admits any origin.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(hub *Hub, ranker Ranker, settings Settings, allowedOrigins []string, logger zerolog.Logger) *Handler {
	h := &Handler{
		hub:            hub,
		ranker:         ranker,
		settings:       settings,
		allowedOrigins: allowedOrigins,
		logger:         logger.With().Str("component", "websocket").Logger(),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		HandshakeTimeout: handshakeTimeout,
		CheckOrigin:      h.checkOrigin,
	}
	return h
}

// ServeHTTP handles GET /api/v1/ws.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		metrics.WSErrors.WithLabelValues("upgrade").Inc()
		h.logger.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	ctx := logging.ContextWithSessionID(r.Context(), logging.GenerateSessionID())
	client := newClient(ctx, h.hub, conn, h.ranker, h.settings, h.logger)

	if !h.hub.Register(client) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, shutdownCloseText),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	client.start()
}

// checkOrigin rejects requests without an Origin header or from origins
// outside the allow list. Browsers always send Origin on WebSocket upgrades.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		h.logger.Warn().Msg("websocket connection rejected: missing Origin header")
		return false
	}

	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	h.logger.Warn().Str("origin", origin).Msg("websocket connection rejected from unauthorized origin")
	return false
}
