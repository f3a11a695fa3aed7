// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package websocket

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
	"github.com/tomtom215/cinematch/internal/vector"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 64
)

// Ranker ranks the catalog for a session.
type Ranker interface {
	Recommend(req recommend.Request) (*recommend.Response, error)
	DefaultPreference() vector.Vector3
	Catalog() recommend.CatalogProvider
}

// Settings controls per-connection limits.
type Settings struct {
	// MaxMessageBytes caps inbound frames.
	MaxMessageBytes int64

	// PingInterval is how often the server pings. The read deadline is
	// extended by 10/9 of this on every pong.
	PingInterval time.Duration
}

// SettingsFromConfig converts the websocket configuration section.
func SettingsFromConfig(cfg *config.WebSocketConfig) Settings {
	return Settings{
		MaxMessageBytes: cfg.MaxMessageBytes,
		PingInterval:    cfg.PingInterval,
	}
}

func (s Settings) pongWait() time.Duration {
	return s.PingInterval * 10 / 9
}

// clientIDCounter orders sessions for deterministic shutdown.
var clientIDCounter atomic.Uint64

// Client is one live ranking session.
type Client struct {
	id        uint64
	sessionID string
	hub       *Hub
	conn      *websocket.Conn
	ranker    Ranker
	settings  Settings
	logger    zerolog.Logger

	send   chan Message
	sendMu sync.Mutex
	closed bool

	// closeCode and closeText form the close frame sent once send is closed.
	closeCode int
	closeText string
}

// newClient creates a session. ctx carries the session ID and the request ID
// of the upgrade request; both are attached to every session log entry.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func newClient(ctx context.Context, hub *Hub, conn *websocket.Conn, ranker Ranker, settings Settings, logger zerolog.Logger) *Client {
	return &Client{
		id:        clientIDCounter.Add(1),
		sessionID: logging.SessionIDFromContext(ctx),
		hub:       hub,
		conn:      conn,
		ranker:    ranker,
		settings:  settings,
		logger:    logging.WithContextFields(logger, ctx),
		send:      make(chan Message, sendBufferSize),
	}
}

// SessionID returns the session identifier sent in the welcome message.
func (c *Client) SessionID() string {
	return c.sessionID
}

// enqueue queues msg for the write pump. It reports false when the session
// is closed or too slow to keep up.
//
//nolint:gocritic // hugeParam: Message is small
func (c *Client) enqueue(msg Message) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
		metrics.WSErrors.WithLabelValues("send_buffer_full").Inc()
		c.logger.Warn().Str("type", msg.Type).Msg("dropping websocket message: send buffer full")
		return false
	}
}

// closeSend stops the write pump after a normal disconnect.
func (c *Client) closeSend() {
	c.closeWith(websocket.CloseNormalClosure, "")
}

// closeWith stops the write pump, which then sends a close frame with code
// and text. Only the first call takes effect.
func (c *Client) closeWith(code int, text string) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if !c.closed {
		c.closed = true
		c.closeCode = code
		c.closeText = text
		close(c.send)
	}
}

// closeStatus returns the close frame code and text chosen by closeWith.
func (c *Client) closeStatus() (int, string) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	return c.closeCode, c.closeText
}

// start sends the greeting and launches both pumps.
func (c *Client) start() {
	defaults := c.ranker.DefaultPreference()

	c.enqueue(Message{
		Type: MessageTypeWelcome,
		Data: WelcomePayload{
			SessionID:         c.sessionID,
			DefaultPreference: defaults,
			MinPreference:     config.MinPreference,
			MaxPreference:     config.MaxPreference,
			CatalogSize:       c.ranker.Catalog().Len(),
		},
	})
	c.rank("", recommend.Request{Mode: recommend.ModePreference, Preference: defaults})

	go c.writePump()
	go c.readPump()
}

// readPump reads client frames and answers each one.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.settings.MaxMessageBytes)
	if err := c.conn.SetReadDeadline(time.Now().Add(c.settings.pongWait())); err != nil {
		c.logger.Error().Err(err).Msg("failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.settings.pongWait()))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				metrics.WSErrors.WithLabelValues("read").Inc()
				c.logger.Debug().Err(err).Msg("unexpected websocket close")
			}
			return
		}

		c.handle(data)
	}
}

func (c *Client) handle(data []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		metrics.WSMessagesReceived.WithLabelValues("invalid").Inc()
		c.sendError("", ErrCodeInvalidMessage, "message is not valid JSON", nil)
		return
	}

	switch msg.Type {
	case MessageTypePing:
		metrics.WSMessagesReceived.WithLabelValues(msg.Type).Inc()
		c.enqueue(Message{Type: MessageTypePong, RequestID: msg.RequestID})

	case MessageTypePreference:
		metrics.WSMessagesReceived.WithLabelValues(msg.Type).Inc()
		var p PreferencePayload
		if !c.decodePayload(&msg, &p) {
			return
		}
		c.rank(msg.RequestID, recommend.Request{
			Mode:       recommend.ModePreference,
			Preference: p.Resolve(c.ranker.DefaultPreference()),
			K:          p.K,
		})

	case MessageTypeSimilar:
		metrics.WSMessagesReceived.WithLabelValues(msg.Type).Inc()
		var p SimilarPayload
		if !c.decodePayload(&msg, &p) {
			return
		}
		c.rank(msg.RequestID, recommend.Request{
			Mode:   recommend.ModeSimilar,
			ItemID: p.ItemID,
			K:      p.K,
		})

	default:
		metrics.WSMessagesReceived.WithLabelValues("unknown").Inc()
		c.sendError(msg.RequestID, ErrCodeUnknownType, "unknown message type: "+msg.Type, nil)
	}
}

// decodePayload unmarshals and validates msg.Data into dst.
// An absent payload decodes to the zero value.
func (c *Client) decodePayload(msg *inboundMessage, dst interface{}) bool {
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, dst); err != nil {
			c.sendError(msg.RequestID, ErrCodeInvalidMessage, "invalid "+msg.Type+" payload", nil)
			return false
		}
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		c.sendError(msg.RequestID, apiErr.Code, apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

//nolint:gocritic // hugeParam: req passed by value like Engine.Recommend
func (c *Client) rank(requestID string, req recommend.Request) {
	req.RequestID = requestID

	start := time.Now()
	resp, err := c.ranker.Recommend(req)

	scored := 0
	if resp != nil {
		scored = resp.TotalCandidates
	}
	metrics.RecordRanking(req.Mode.String(), scored, time.Since(start), err)

	if err != nil {
		code, message := rankErrorCode(err)
		c.sendError(requestID, code, message, nil)
		return
	}

	c.enqueue(Message{
		Type:      MessageTypeRanking,
		RequestID: requestID,
		Data:      newRankingPayload(resp),
	})
}

func rankErrorCode(err error) (code, message string) {
	switch {
	case errors.Is(err, recommend.ErrItemNotFound):
		return ErrCodeNotFound, "catalog item not found"
	case errors.Is(err, recommend.ErrInvalidK), errors.Is(err, recommend.ErrInvalidPreference):
		return ErrCodeInvalidRequest, err.Error()
	default:
		return ErrCodeInternal, "failed to rank catalog"
	}
}

func (c *Client) sendError(requestID, code, message string, details map[string]interface{}) {
	c.enqueue(Message{
		Type:      MessageTypeError,
		RequestID: requestID,
		Data:      ErrorPayload{Code: code, Message: message, Details: details},
	})
}

// writePump writes queued messages and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.settings.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("failed to set write deadline")
				return
			}

			if !ok {
				code, text := c.closeStatus()
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, text))
				return
			}

			payload, err := json.Marshal(message)
			if err != nil {
				metrics.WSErrors.WithLabelValues("encode").Inc()
				c.logger.Error().Err(err).Str("type", message.Type).Msg("failed to encode websocket message")
				continue
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				metrics.WSErrors.WithLabelValues("write").Inc()
				c.logger.Debug().Err(err).Msg("failed to write websocket message")
				return
			}
			metrics.WSMessagesSent.WithLabelValues(message.Type).Inc()

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("failed to set write deadline for ping")
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
