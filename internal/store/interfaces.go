package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigRepository stores global plugin configuration values such as the
// panel toggles.
type ConfigRepository interface {
	// GetConfig returns the value stored under key, or [ErrSettingNotFound].
	GetConfig(ctx context.Context, key string) (string, error)
	// SetConfig inserts or replaces the value stored under key.
	SetConfig(ctx context.Context, key, value string) error
}

// AppSettingRepository stores per-game git settings.
type AppSettingRepository interface {
	// GetAppSetting returns one setting of a game, or [ErrSettingNotFound].
	GetAppSetting(ctx context.Context, appID, key string) (string, error)
	// GetAppSettings returns every stored setting of a game keyed by name.
	// A game without settings yields an empty map.
	GetAppSettings(ctx context.Context, appID string) (map[string]string, error)
	// SetAppSetting inserts or replaces one setting of a game.
	SetAppSetting(ctx context.Context, appID, key, value string) error
}
