// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-securnote/internal/logger"
)

// ChallengeSweeper periodically deletes challenges older than their TTL,
// used or not, so the challenge table does not grow without bound.
type ChallengeSweeper struct {
	sweeper  challengeSweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewChallengeSweeper(sweeper challengeSweeper, interval time.Duration, log *logger.Logger) *ChallengeSweeper {
	return &ChallengeSweeper{
		sweeper:  sweeper,
		interval: interval,
		logger:   log,
	}
}

// Run sweeps once per interval until ctx is cancelled. A failed sweep is
// logged and retried on the next tick.
func (c *ChallengeSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", c.interval).Msg("challenge sweeper started")
	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("challenge sweeper stopped")
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *ChallengeSweeper) sweep(ctx context.Context) {
	deleted, err := c.sweeper.SweepExpiredChallenges(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Err(err).Msg("challenge sweep failed")
		}
		return
	}
	if deleted > 0 {
		c.logger.Info().Int("deleted", deleted).Msg("expired challenges swept")
	}
}
