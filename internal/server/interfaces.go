package server

// Server defines the lifecycle contract of the application's transport.
type Server interface {
	// RunServer serves requests until a stop signal arrives or the listener
	// fails, then shuts down gracefully.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
