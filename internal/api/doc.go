// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP REST API layer for CineMatch.

Every ranking endpoint is a thin host around recommend.Engine: it parses and
validates the caller's preference sliders, ranks the immutable catalog, and
writes the result in the standard response envelope.

Routes:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/catalog                          ?genre=
	GET  /api/v1/catalog/{itemID}
	GET  /api/v1/catalog/vectors                  ?tone=&intensity=&complexity=
	GET  /api/v1/recommendations                  ?tone=&intensity=&complexity=&k=
	POST /api/v1/recommendations                  {"tone":8,"intensity":3,"complexity":5,"k":5}
	GET  /api/v1/recommendations/similar/{itemID} ?k=
	GET  /api/v1/recommendations/config
	GET  /api/v1/recommendations/status
	GET  /api/v1/ws                               (WebSocket upgrade)
	GET  /metrics

Omitted slider values fall back to the configured default preference.

Response envelope:

	{
	  "success": true,
	  "data": { ... },
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}
	}

Errors set success=false and carry {"code", "message", "details"}.

Usage Example:

	engine, _ := recommend.NewEngine(cfg.Recommend.EngineConfig(), cat, logging.Logger())
	handler := api.NewHandler(engine, cat, cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security), wsHandler)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Thread Safety:

Handlers hold no mutable state of their own. The engine and catalog are safe
for concurrent use.
*/
package api
