// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

// slowRequestThreshold promotes access log lines to warn level.
const slowRequestThreshold = 500 * time.Millisecond

// AccessLog writes one structured log line per request.
// Server errors and slow requests are logged at warn level, everything else at debug.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := newStatusResponseWriter(w)

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		logger := logging.Ctx(r.Context())

		event := logger.Debug()
		if wrapper.statusCode >= http.StatusInternalServerError || duration > slowRequestThreshold {
			event = logger.Warn()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("http request")
	})
}
