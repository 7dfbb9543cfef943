package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-git-save/internal/crypto"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/store"
	"github.com/MKhiriev/go-git-save/models"
)

// settingsService is the repository-backed implementation of
// [SettingsService]. Passwords never reach the repository unsealed.
type settingsService struct {
	configs store.ConfigRepository
	apps    store.AppSettingRepository
	box     crypto.SecretBox

	logger *logger.Logger
}

func NewSettingsService(configs store.ConfigRepository, apps store.AppSettingRepository, box crypto.SecretBox, logger *logger.Logger) SettingsService {
	return &settingsService{
		configs: configs,
		apps:    apps,
		box:     box,
		logger:  logger,
	}
}

func (s *settingsService) GetConfig(ctx context.Context, key, defaults string) (string, error) {
	value, err := s.configs.GetConfig(ctx, key)
	switch {
	case errors.Is(err, store.ErrSettingNotFound):
		return defaults, nil
	case err != nil:
		return "", fmt.Errorf("get config %q: %w", key, err)
	}
	return value, nil
}

func (s *settingsService) SetConfig(ctx context.Context, key, value string) error {
	if err := s.configs.SetConfig(ctx, key, value); err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	logger.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("config updated")
	return nil
}

func (s *settingsService) GetAppSetting(ctx context.Context, appID, key, defaults string) (string, error) {
	value, err := s.apps.GetAppSetting(ctx, appID, key)
	switch {
	case errors.Is(err, store.ErrSettingNotFound):
		return defaults, nil
	case err != nil:
		return "", fmt.Errorf("get setting %s.%s: %w", appID, key, err)
	}

	if models.SettingKey(key) == models.SettingPassword {
		return s.open(appID, value)
	}
	return value, nil
}

func (s *settingsService) SetAppSetting(ctx context.Context, appID, key, value string) error {
	stored := value
	if models.SettingKey(key) == models.SettingPassword {
		sealed, err := s.box.Seal(value)
		if err != nil {
			return fmt.Errorf("seal password of %s: %w", appID, err)
		}
		stored = sealed
	}

	if err := s.apps.SetAppSetting(ctx, appID, key, stored); err != nil {
		return fmt.Errorf("set setting %s.%s: %w", appID, key, err)
	}
	logger.FromContext(ctx).Debug().Str("appid", appID).Str("key", key).Msg("game setting updated")
	return nil
}

func (s *settingsService) GetAppSettings(ctx context.Context, appID string) (models.EntitySettings, error) {
	rows, err := s.apps.GetAppSettings(ctx, appID)
	if err != nil {
		return models.EntitySettings{}, fmt.Errorf("get settings of %s: %w", appID, err)
	}

	var settings models.EntitySettings
	for _, key := range models.SettingKeys {
		value := rows[string(key)]
		if key == models.SettingPassword && value != "" {
			if value, err = s.open(appID, value); err != nil {
				return models.EntitySettings{}, err
			}
		}
		settings.Set(key, value)
	}
	return settings, nil
}

func (s *settingsService) open(appID, sealed string) (string, error) {
	plain, err := s.box.Open(sealed)
	if err != nil {
		s.logger.Error().Err(err).Str("appid", appID).Msg("cannot open stored password")
		return "", fmt.Errorf("open password of %s: %w", appID, err)
	}
	return plain, nil
}
