// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService implements suture.Service with controllable failures.
type mockService struct {
	name       string
	startCount atomic.Int32
	stopCount  atomic.Int32
	failCount  atomic.Int32
	maxFails   int32
}

func newMockService(name string) *mockService {
	return &mockService{name: name}
}

// Serve fails maxFails times, then runs until ctx is canceled.
func (m *mockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)
	defer m.stopCount.Add(1)

	if m.maxFails > 0 && m.failCount.Add(1) <= m.maxFails {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}
