package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-git-save/internal/service"
)

// errorStatusMap lists the errors answered with an HTTP error status.
// Any other plugin error is a plugin-level failure: 200 with success=false.
var errorStatusMap = map[error]int{
	ErrUnknownMethod:      http.StatusNotFound,
	ErrMalformedArguments: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrRunnerStopped: http.StatusServiceUnavailable,
}

func statusFromError(err error) (int, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return http.StatusOK, false
}
