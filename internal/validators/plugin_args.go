package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-git-save/models"
)

// Field names accepted by [PluginArgsValidator.Validate].
const (
	FieldAppID      = "appid"
	FieldConfigKey  = "config_key"
	FieldConfigVal  = "config_value"
	FieldSettingKey = "setting_key"
	FieldSettingVal = "setting_value"
)

const (
	maxAppIDLength = 64
	maxValueLength = 4096
)

// PluginArgsValidator validates the argument objects of the plugin methods.
type PluginArgsValidator struct{}

func NewPluginArgsValidator() Validator {
	return &PluginArgsValidator{}
}

// Validate implements [Validator]. Both values and pointers of the models
// request types are accepted.
func (v *PluginArgsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmitRequest:
		return v.validateFields(fields, map[string]func() error{
			FieldAppID: func() error { return validateAppID(value.AppID) },
		})
	case *models.SubmitRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ProbeRequest:
		return v.validateFields(fields, map[string]func() error{
			FieldAppID: func() error {
				if value.AppID == "" {
					return nil
				}
				return validateAppID(value.AppID)
			},
		})
	case *models.ProbeRequest:
		return v.Validate(ctx, *value, fields...)

	case models.GetConfigRequest:
		return v.validateFields(fields, map[string]func() error{
			FieldConfigKey: func() error { return validateConfigKey(value.Key) },
		})
	case *models.GetConfigRequest:
		return v.Validate(ctx, *value, fields...)

	case models.SetConfigRequest:
		return v.validateFields(fields, map[string]func() error{
			FieldConfigKey: func() error { return validateConfigKey(value.Key) },
			FieldConfigVal: func() error { return validateConfigValue(value.Value) },
		})
	case *models.SetConfigRequest:
		return v.Validate(ctx, *value, fields...)

	case models.GetAppSettingRequest:
		return v.validateFields(fields, map[string]func() error{
			FieldAppID:      func() error { return validateAppID(value.AppID) },
			FieldSettingKey: func() error { return validateSettingKey(value.Key) },
		})
	case *models.GetAppSettingRequest:
		return v.Validate(ctx, *value, fields...)

	case models.SetAppSettingRequest:
		return v.validateFields(fields, map[string]func() error{
			FieldAppID:      func() error { return validateAppID(value.AppID) },
			FieldSettingKey: func() error { return validateSettingKey(value.Key) },
			FieldSettingVal: func() error { return validateSettingValue(models.SettingKey(value.Key), value.Value) },
		})
	case *models.SetAppSettingRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateFields runs the checks named in fields, or every check when fields
// is empty. Checks run in a fixed order so the first error is stable.
func (v *PluginArgsValidator) validateFields(fields []string, checks map[string]func() error) error {
	if len(fields) == 0 {
		for _, name := range []string{FieldAppID, FieldConfigKey, FieldConfigVal, FieldSettingKey, FieldSettingVal} {
			if check, ok := checks[name]; ok {
				if err := check(); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, name := range fields {
		check, ok := checks[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func validateAppID(appID string) error {
	switch {
	case appID == "",
		len(appID) > maxAppIDLength,
		strings.ContainsAny(appID, `/\`),
		strings.Contains(appID, ".."):
		return fmt.Errorf("%w: %q", ErrInvalidAppID, appID)
	}
	return nil
}

func validateConfigKey(key string) error {
	for _, known := range models.PersistedStateKeys {
		if models.StateKey(key) == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidConfigKey, key)
}

func validateConfigValue(value string) error {
	if value != "true" && value != "false" {
		return ErrInvalidConfigValue
	}
	return nil
}

func validateSettingKey(key string) error {
	if !models.SettingKey(key).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSettingKey, key)
	}
	return nil
}

// validateSettingValue allows clearing any setting. A non-empty local path
// must be absolute.
func validateSettingValue(key models.SettingKey, value string) error {
	if len(value) > maxValueLength {
		return ErrValueTooLong
	}
	if key == models.SettingLocalPath && value != "" && !filepath.IsAbs(value) {
		return fmt.Errorf("%w: %q", ErrInvalidLocalPath, value)
	}
	return nil
}
