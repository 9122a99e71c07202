// Package workers runs the background jobs of the SecurNote server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// challengeSweeper is the part of the identity facade the sweeper needs.
type challengeSweeper interface {
	SweepExpiredChallenges(ctx context.Context) (int, error)
}
