// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// mockHTTPServer is a test double for HTTPServer.
type mockHTTPServer struct {
	listenErr     error
	shutdownErr   error
	shutdownCount atomic.Int32
	started       chan struct{}
	stopCh        chan struct{}
	stopOnce      sync.Once
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		started: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
}

func (m *mockHTTPServer) ListenAndServe() error {
	select {
	case m.started <- struct{}{}:
	default:
	}

	if m.listenErr != nil {
		return m.listenErr
	}

	<-m.stopCh
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(ctx context.Context) error {
	m.shutdownCount.Add(1)
	m.stopOnce.Do(func() { close(m.stopCh) })
	return m.shutdownErr
}

func TestHTTPServerService_Interface(t *testing.T) {
	t.Parallel()
	var _ suture.Service = (*HTTPServerService)(nil)
}

func TestNewHTTPServerService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		server      HTTPServer
		timeout     time.Duration
		wantTimeout time.Duration
		wantName    string
	}{
		{"explicit timeout", newMockHTTPServer(), 3 * time.Second, 3 * time.Second, "http-server"},
		{"zero timeout", newMockHTTPServer(), 0, DefaultShutdownTimeout, "http-server"},
		{"negative timeout", newMockHTTPServer(), -time.Second, DefaultShutdownTimeout, "http-server"},
		{"real server", &http.Server{Addr: ":8080", ReadHeaderTimeout: time.Second}, time.Second, time.Second, "http-server(:8080)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewHTTPServerService(tt.server, tt.timeout)
			if svc.shutdownTimeout != tt.wantTimeout {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.wantTimeout)
			}
			if svc.String() != tt.wantName {
				t.Errorf("String() = %q, want %q", svc.String(), tt.wantName)
			}
		})
	}
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-server.started
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}

	if server.shutdownCount.Load() != 1 {
		t.Errorf("Shutdown called %d times, want 1", server.shutdownCount.Load())
	}
}

func TestHTTPServerService_ListenFailure(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	server.listenErr = errors.New("address already in use")
	svc := NewHTTPServerService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("Serve() error = %v, want wrapped listen error", err)
	}
}

func TestHTTPServerService_ShutdownFailure(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	server.shutdownErr = context.DeadlineExceeded
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-server.started
	cancel()

	if err := <-errCh; !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want wrapped shutdown error", err)
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	}
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	var resp *http.Response
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err = http.Get("http://" + addr + "/")
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never answered: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
}
