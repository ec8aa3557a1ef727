// Package http implements the HTTP transport layer of the remote storage
// server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API the "http" remote provider talks to. Authentication, request tracing,
// access logging and response compression are handled in this package before
// requests are delegated to the service layer.
package http
