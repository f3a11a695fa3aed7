// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging provides the process-wide zerolog logger for CineMatch.
//
// Call Init once from main, then log through the package helpers or through a
// component logger:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//
//	logger := logging.WithComponent("catalog")
//	logger.Info().Int("items", n).Msg("catalog loaded")
//
// # Request Context
//
// HTTP middleware stores a request ID in the request context. Ctx returns a
// logger that carries it:
//
//	logging.Ctx(r.Context()).Debug().Msg("ranking request")
//
// # slog Bridge
//
// Libraries that only accept *slog.Logger (the suture supervisor hook) are
// given NewSlogLogger, which writes through the zerolog backend.
//
// Environment Variables (read by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
package logging
