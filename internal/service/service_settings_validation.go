package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-git-save/internal/validators"
	"github.com/MKhiriev/go-git-save/models"
)

// SettingsValidationService checks plugin arguments before delegating to the
// wrapped [SettingsService].
type SettingsValidationService struct {
	inner     SettingsService
	validator validators.Validator
}

func NewSettingsValidationService() SettingsServiceWrapper {
	return &SettingsValidationService{
		validator: validators.NewPluginArgsValidator(),
	}
}

func (v *SettingsValidationService) GetConfig(ctx context.Context, key, defaults string) (string, error) {
	if err := v.validator.Validate(ctx, models.GetConfigRequest{Key: key, Defaults: defaults}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetConfig(ctx, key, defaults)
}

func (v *SettingsValidationService) SetConfig(ctx context.Context, key, value string) error {
	if err := v.validator.Validate(ctx, models.SetConfigRequest{Key: key, Value: value}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SetConfig(ctx, key, value)
}

func (v *SettingsValidationService) GetAppSetting(ctx context.Context, appID, key, defaults string) (string, error) {
	if err := v.validator.Validate(ctx, models.GetAppSettingRequest{AppID: appID, Key: key, Defaults: defaults}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetAppSetting(ctx, appID, key, defaults)
}

func (v *SettingsValidationService) SetAppSetting(ctx context.Context, appID, key, value string) error {
	if err := v.validator.Validate(ctx, models.SetAppSettingRequest{AppID: appID, Key: key, Value: value}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SetAppSetting(ctx, appID, key, value)
}

func (v *SettingsValidationService) GetAppSettings(ctx context.Context, appID string) (models.EntitySettings, error) {
	if err := v.validator.Validate(ctx, models.SubmitRequest{AppID: appID}, validators.FieldAppID); err != nil {
		return models.EntitySettings{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetAppSettings(ctx, appID)
}

func (v *SettingsValidationService) Wrap(inner SettingsService) SettingsService {
	v.inner = inner
	return v
}
