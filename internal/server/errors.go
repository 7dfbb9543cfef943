package server

import "errors"

// ErrNoHTTPHandler is returned by NewServer when no plugin API handler was
// built, typically because no listen address is configured.
var ErrNoHTTPHandler = errors.New("no HTTP handler to serve")
