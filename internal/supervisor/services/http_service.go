// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

// DefaultShutdownTimeout bounds graceful shutdown when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer is the lifecycle surface of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under suture.
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	addr            string
}

// NewHTTPServerService wraps server. Non-positive timeouts use DefaultShutdownTimeout.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	var addr string
	if s, ok := server.(*http.Server); ok {
		addr = s.Addr
	}

	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		addr:            addr,
	}
}

// Serve implements suture.Service.
//
// It returns a wrapped error if the listener fails, which makes suture
// restart the service, and ctx.Err() after a graceful shutdown.
// http.ErrServerClosed is expected on shutdown and never reported.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logging.Info().Str("addr", h.addr).Msg("http server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// The parent context is already canceled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		start := time.Now()
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		<-errCh

		logging.Info().
			Str("addr", h.addr).
			Dur("shutdown_duration", time.Since(start)).
			Msg("http server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer for supervisor logging.
func (h *HTTPServerService) String() string {
	if h.addr == "" {
		return "http-server"
	}
	return "http-server(" + h.addr + ")"
}
