// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor provides process supervision for CineMatch using suture v4.

The supervisor tree organizes the server's long-running services into two
layers so a failure in one does not take down the other:

	RootSupervisor ("cinematch")
	├── MessagingSupervisor ("messaging-layer")
	│   └── websocket.Hub (if WEBSOCKET_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Ranking itself is synchronous and runs inside request handlers, so it needs
no supervised goroutine of its own.

Supervisor events (service start, failure, backoff) are logged through
sutureslog, fed by the zerolog-backed slog handler from internal/logging.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("failed to create supervisor tree")
	}

	tree.AddMessagingService(hub)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped with error")
	}
*/
package supervisor
