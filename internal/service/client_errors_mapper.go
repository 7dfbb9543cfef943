// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-git-save/internal/adapter"
	"github.com/MKhiriev/go-git-save/models"
)

// describeAdapterError turns a transport error into a short message for the
// user.
func describeAdapterError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrUnauthorized):
		return "backend rejected the panel token, check the shared secret"
	case errors.Is(err, adapter.ErrNotFound):
		return "backend does not support sync"
	case errors.Is(err, adapter.ErrBadRequest):
		return "backend rejected the request"
	case errors.Is(err, adapter.ErrInternalServerError):
		return "backend internal error"
	case errors.Is(err, adapter.ErrBackendStopping):
		return "backend is shutting down"
	case errors.Is(err, context.DeadlineExceeded):
		return "backend did not answer in time"
	default:
		return "backend unreachable: " + err.Error()
	}
}

// failureError returns the sentinel matching a job's failure kind.
func failureError(kind models.FailureKind) error {
	switch kind {
	case models.FailureSubmit:
		return ErrSubmit
	case models.FailureProbe:
		return ErrProbe
	case models.FailureSync:
		return ErrSyncFailed
	case models.FailureTimeout:
		return ErrTimeout
	case models.FailureCancelled:
		return ErrCancelled
	}
	return nil
}

// describeProbeCode names a backend exit code.
func describeProbeCode(code int) string {
	switch code {
	case models.ProbeCodeOpenFailed:
		return "could not open the save repository"
	case models.ProbeCodeRemoteFailed:
		return "could not configure the remote"
	case models.ProbeCodeAddFailed:
		return "could not stage save files"
	case models.ProbeCodeCommitFailed:
		return "could not commit saves"
	case models.ProbeCodePullFailed:
		return "could not pull from the remote"
	case models.ProbeCodePushFailed:
		return "could not push to the remote"
	case models.ProbeCodeSettingsMissing:
		return "game settings are incomplete"
	case models.ProbeCodeRepositoryLocked:
		return "save repository is locked"
	case models.ProbeCodeUnknownJob:
		return "backend has no record of this sync"
	}
	return "unexpected exit code"
}
