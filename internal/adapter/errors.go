package adapter

import "errors"

// Transport errors mapped from backend HTTP status codes, plus ErrRejected for
// a plugin write answered with success:false.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("panel unauthorized")
	ErrNotFound            = errors.New("plugin method not found")
	ErrInternalServerError = errors.New("backend internal error")
	ErrBackendStopping     = errors.New("backend is shutting down")
	ErrRejected            = errors.New("backend rejected the call")
	ErrInvalidAddress      = errors.New("invalid backend address")
)
