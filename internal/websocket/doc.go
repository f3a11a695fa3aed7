// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package websocket provides live re-ranking over a WebSocket connection.

A browser moving the tone, intensity and complexity sliders sends a
preference message on every change. The session re-ranks the catalog and
pushes the new top-K list back immediately. There is no server-side debounce:
every accepted message produces exactly one ranking or error reply.

Key Components:

  - Hub: tracks open sessions and closes them on shutdown (suture service)
  - Client: one connection with a read pump and a write pump
  - Handler: HTTP upgrade endpoint mounted at /api/v1/ws

Protocol:

Client to server:

	{"type": "preference", "request_id": "r1", "data": {"tone": 8, "intensity": 3, "complexity": 5, "k": 5}}
	{"type": "similar", "data": {"item_id": 12, "k": 5}}
	{"type": "ping"}

Server to client:

	{"type": "welcome", "data": {"session_id": "...", "default_preference": {...}, ...}}
	{"type": "ranking", "request_id": "r1", "data": {"mode": "preference", "items": [...], ...}}
	{"type": "error", "request_id": "r1", "data": {"code": "VALIDATION_ERROR", "message": "..."}}
	{"type": "pong"}

A ranking for the default preference follows the welcome message so a new
page can render results before the first slider move.
*/
package websocket
