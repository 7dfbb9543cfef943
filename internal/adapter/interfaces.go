// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the panel's transport to the backend host.
//
// The primary abstraction is [BackendAdapter], which decouples the panel
// services from the plugin call protocol. The package ships an HTTP
// implementation ([NewHTTPBackendAdapter]) that posts JSON arguments to
// /api/plugin/{method} and decodes the {success, result} envelope.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401). A plugin-level failure of a read or of sync_now is not an error:
// it is reported through the Success field of the returned envelope.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-git-save/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines the plugin methods the panel calls on the backend.
type BackendAdapter interface {
	// SubmitSync calls sync_now for entityID. A success:false response is
	// returned as-is with the backend's message in Result.
	SubmitSync(ctx context.Context, entityID string) (models.SubmitResponse, error)

	// ProbeSync calls sync_now_probe. A nil Result with Success=true means the
	// job is still running.
	ProbeSync(ctx context.Context, entityID string) (models.ProbeResponse, error)

	// GetConfig calls get_config. On success:false the caller should use its
	// own fallback.
	GetConfig(ctx context.Context, key, defaults string) (models.ConfigResponse, error)

	// SetConfig calls set_config. A success:false response yields
	// [ErrRejected].
	SetConfig(ctx context.Context, key, value string) error

	// GetEntitySetting calls get_app_setting.
	GetEntitySetting(ctx context.Context, entityID, key, defaults string) (models.ConfigResponse, error)

	// SetEntitySetting calls set_app_setting. A success:false response yields
	// [ErrRejected].
	SetEntitySetting(ctx context.Context, entityID, key, value string) error

	// Health checks that the backend is reachable.
	Health(ctx context.Context) error
}
