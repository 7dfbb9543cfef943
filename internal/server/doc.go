// Package server runs the backend's plugin API server.
//
// It owns the listener, stops on SIGINT/SIGTERM/SIGQUIT or when the run
// context ends, drains in-flight requests and then runs the registered
// closers (sync runner, database).
package server
