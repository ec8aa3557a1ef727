package server

// Server is the lifecycle of the storage server process.
//
// RunServer blocks until a stop signal arrives and the listener has been
// shut down. Shutdown may also be called directly, e.g. from tests.
type Server interface {
	RunServer()
	Shutdown()
}
