package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
)

// Workers starts a fixed set of workers and waits for them.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background jobs.
func NewWorkers(sweeper challengeSweeper, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewChallengeSweeper(sweeper, cfg.ChallengeSweepInterval, log),
	}}
}

// Run starts every worker in its own goroutine and returns once all of
// them stopped, which happens after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
