package service

import (
	"context"

	"github.com/MKhiriev/go-git-save/models"
)

// SettingsService reads and writes the plugin configuration and the per-game
// git settings on the backend.
type SettingsService interface {
	// GetConfig returns the value stored under key, or defaults when the key
	// has never been written.
	GetConfig(ctx context.Context, key, defaults string) (string, error)
	SetConfig(ctx context.Context, key, value string) error

	// GetAppSetting returns one game setting, or defaults when unset. The
	// password is returned in clear text.
	GetAppSetting(ctx context.Context, appID, key, defaults string) (string, error)
	// SetAppSetting stores one game setting. The password is sealed before
	// it is written.
	SetAppSetting(ctx context.Context, appID, key, value string) error

	// GetAppSettings returns every setting of a game.
	GetAppSettings(ctx context.Context, appID string) (models.EntitySettings, error)
}

// SettingsServiceWrapper decorates a [SettingsService], e.g. with argument
// validation.
type SettingsServiceWrapper interface {
	Wrap(SettingsService) SettingsService
}

// SyncService runs git syncs in the background, at most one per game.
type SyncService interface {
	// Submit starts a sync for appID and returns models.SubmitStarted. If a
	// sync for appID is still running, the same job is kept and
	// models.SubmitStarted is returned again. Incomplete settings return an
	// error wrapping [ErrSettingsIncomplete].
	Submit(ctx context.Context, appID string) (string, error)

	// Probe returns nil while the job of appID runs and its exit code once it
	// has finished. An empty appID probes the most recently submitted job.
	// Without any job the result is models.ProbeCodeUnknownJob.
	Probe(ctx context.Context, appID string) (*int, error)

	// Shutdown cancels running jobs and waits for them to return.
	Shutdown()
}

// AuthService issues and verifies the panel's bearer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}
