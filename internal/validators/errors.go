package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAppID       = errors.New("invalid appid")
	ErrInvalidConfigKey   = errors.New("invalid config key")
	ErrInvalidConfigValue = errors.New("config value must be \"true\" or \"false\"")
	ErrInvalidSettingKey  = errors.New("invalid setting key")
	ErrInvalidLocalPath   = errors.New("local path must be absolute")
	ErrValueTooLong       = errors.New("value is too long")
)
