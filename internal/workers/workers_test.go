// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// countingWorker records that it ran and blocks until cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (m *countingWorker) Run(ctx context.Context) {
	m.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersStartAndStop(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}
	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

func TestNewWorkers(t *testing.T) {
	ws := NewWorkers(nil, config.Workers{ChallengeSweepInterval: time.Minute}, logger.Nop())

	assert.Len(t, ws.workers, 1)
	assert.IsType(t, &ChallengeSweeper{}, ws.workers[0])
}

func TestChallengeSweeper_SweepsEveryInterval(t *testing.T) {
	facade := mock.NewMockIdentityFacade(gomock.NewController(t))

	var calls atomic.Int32
	facade.EXPECT().SweepExpiredChallenges(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		calls.Add(1)
		return 2, nil
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewChallengeSweeper(facade, 10*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestChallengeSweeper_SurvivesErrors(t *testing.T) {
	facade := mock.NewMockIdentityFacade(gomock.NewController(t))

	var calls atomic.Int32
	facade.EXPECT().SweepExpiredChallenges(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, assert.AnError
		}
		return 0, nil
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewChallengeSweeper(facade, 10*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestChallengeSweeper_StopsWithoutSweeping(t *testing.T) {
	facade := mock.NewMockIdentityFacade(gomock.NewController(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewChallengeSweeper(facade, time.Hour, logger.Nop()).Run(ctx)
}
