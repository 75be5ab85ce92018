package server

import "context"

// Server is the lifecycle of the bridge listener.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Run serves until ctx is done or the listener fails, then shuts down
	// within the configured timeout.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
