package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	configTable     = "config"
	appSettingTable = "app_settings"
)

// psql renders "?" placeholders for sqlite.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectConfigQuery(key string) (string, []any, error) {
	query, args, err := psql.
		Select("value").
		From(configTable).
		Where(sq.Eq{"config_key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertConfigQuery(key, value string, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(configTable).
		Columns("config_key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT (config_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectAppSettingQuery(appID, key string) (string, []any, error) {
	query, args, err := psql.
		Select("value").
		From(appSettingTable).
		Where(sq.Eq{"app_id": appID}).
		Where(sq.Eq{"setting_key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectAppSettingsQuery(appID string) (string, []any, error) {
	query, args, err := psql.
		Select("setting_key", "value").
		From(appSettingTable).
		Where(sq.Eq{"app_id": appID}).
		OrderBy("setting_key").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertAppSettingQuery(appID, key, value string, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(appSettingTable).
		Columns("app_id", "setting_key", "value", "updated_at").
		Values(appID, key, value, now).
		Suffix("ON CONFLICT (app_id, setting_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
