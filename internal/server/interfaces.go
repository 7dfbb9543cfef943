package server

import "context"

// Server defines the lifecycle of the backend transport.
type Server interface {
	// RunServer serves requests until ctx is done or a stop signal arrives,
	// then shuts down gracefully. It returns the first serve error.
	RunServer(ctx context.Context) error

	// Shutdown stops the server and runs the closers once.
	Shutdown()
}
