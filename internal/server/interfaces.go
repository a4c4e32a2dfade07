package server

import "context"

// Server defines the lifecycle of the gateway transport.
type Server interface {
	// Run serves requests until ctx is cancelled or serving fails, then shuts
	// down gracefully. A shutdown caused by ctx is not an error.
	Run(ctx context.Context) error

	// Addr returns the address the server is bound to.
	Addr() string
}
