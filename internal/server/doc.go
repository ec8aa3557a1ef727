// Package server runs the HTTP transport of the remote storage server.
//
// It provides startup, signal handling, and graceful shutdown.
package server
