package service

import (
	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/crypto"
	"github.com/MKhiriev/go-git-save/internal/gitsync"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/store"
	"github.com/MKhiriev/go-git-save/models"
)

// Services groups the backend services served by the plugin API.
type Services struct {
	AuthService     AuthService
	AppInfoService  AppInfoService
	SettingsService SettingsService
	SyncService     SyncService
}

func NewServices(storages *store.Storages, box crypto.SecretBox, executor gitsync.Executor, build models.AppBuildInfo, cfg config.BackendConfig, logger *logger.Logger) *Services {
	settings := NewSettingsValidationService().Wrap(
		NewSettingsService(storages.ConfigRepository, storages.AppSettingRepository, box, logger),
	)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  NewAppInfoService(build, nil, logger),
		SettingsService: settings,
		SyncService:     NewSyncService(settings, executor, cfg.Workers.JobTimeout, nil, logger),
	}
}
