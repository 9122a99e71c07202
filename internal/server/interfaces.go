package server

import "context"

// Server defines the lifecycle of a transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns an error only when the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting new requests and waits for in-flight ones
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
