// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/metrics"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful shutdown path (e.g., SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline may indicate a hung operation during shutdown.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// shutdownCloseText is the close frame reason sent when the hub stops.
const shutdownCloseText = "server shutting down"

// Hub tracks open sessions. Run it under a supervisor with Serve.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	doneOnce   sync.Once
	mu         sync.RWMutex
	logger     zerolog.Logger
}

// NewHub creates a new Hub.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "websocket-hub").Logger(),
	}
}

// Serve processes session lifecycle events until ctx is canceled, then closes
// every open session. It implements suture.Service.
//
// Lifecycle events are drained before shutdown is observed so a session that
// registered just before cancellation is still closed cleanly.
func (h *Hub) Serve(ctx context.Context) error {
	defer h.doneOnce.Do(func() { close(h.done) })

	for {
		select {
		case client := <-h.register:
			h.add(client)
			continue
		case client := <-h.unregister:
			h.remove(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.register:
			h.add(client)
		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// String implements fmt.Stringer for supervisor logging.
func (h *Hub) String() string {
	return "websocket-hub"
}

// ClientCount returns the number of open sessions.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Register adds a session. It returns false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a session and closes its outbound queue.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	metrics.TrackWSConnection(true)
	h.logger.Info().Str("session_id", c.SessionID()).Int("total_clients", total).Msg("websocket client connected")
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if !ok {
		return
	}

	c.closeSend()
	metrics.TrackWSConnection(false)
	h.logger.Info().Str("session_id", c.SessionID()).Int("total_clients", total).Msg("websocket client disconnected")
}

// shutdown closes every session in connection order.
func (h *Hub) shutdown(ctx context.Context) {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*Client]struct{})
	h.mu.Unlock()

	sort.Slice(clients, func(i, j int) bool { return clients[i].id < clients[j].id })

	for _, c := range clients {
		c.closeWith(websocket.CloseGoingAway, shutdownCloseText)
		metrics.TrackWSConnection(false)
	}

	reason := ShutdownReasonContextCanceled
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		reason = ShutdownReasonContextDeadline
	}

	h.logger.Info().
		Str("reason", string(reason)).
		Int("clients_closed", len(clients)).
		Msg("websocket hub shutdown")
}
