// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sessionIDKey contextKey = "session_id"
)

// GenerateRequestID returns a new random request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateSessionID returns a short ID for long-lived connections.
func GenerateSessionID() string {
	return uuid.New().String()[:8]
}

// ContextWithRequestID returns a context carrying id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithSessionID returns a context carrying a WebSocket session ID.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext returns the session ID stored in ctx, or "".
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger with request_id and session_id fields from ctx.
//
//	logging.Ctx(ctx).Info().Msg("ranking request")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := WithContextFields(Logger(), ctx)
	return &logger
}

// WithContextFields returns a child of logger carrying the request_id and
// session_id stored in ctx.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithContextFields(logger zerolog.Logger, ctx context.Context) zerolog.Logger {
	logCtx := logger.With()

	if id := RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if id := SessionIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("session_id", id)
	}

	return logCtx.Logger()
}
