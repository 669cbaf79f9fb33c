package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations block in [Server.RunServer] until shutdown is requested and
// release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A nil error means the server was shut down.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
