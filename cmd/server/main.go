// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
	ws "github.com/tomtom215/cinematch/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Bool("websocket_enabled", cfg.WebSocket.Enabled).
		Msg("Starting CineMatch")

	components, err := initRecommend(cfg, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize ranking engine")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// A nil handler leaves /api/v1/ws unregistered.
	var wsHandler http.Handler
	if cfg.WebSocket.Enabled {
		hub := ws.NewHub(logging.Logger())
		tree.AddMessagingService(hub)
		wsHandler = ws.NewHandler(
			hub,
			components.Engine,
			ws.SettingsFromConfig(&cfg.WebSocket),
			cfg.Security.CORSOrigins,
			logging.Logger(),
		)
		logging.Info().Msg("WebSocket hub added to supervisor tree")
	}

	handler := api.NewHandler(components.Engine, components.Catalog)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security), wsHandler)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
