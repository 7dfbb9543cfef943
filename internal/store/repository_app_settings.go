package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
)

// appSettingRepository is the sqlite implementation of
// [AppSettingRepository] over the "app_settings" table.
type appSettingRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewAppSettingRepository constructs an [AppSettingRepository] backed by db.
func NewAppSettingRepository(db *DB, logger *logger.Logger) AppSettingRepository {
	logger.Debug().Msg("creating app setting repository")
	return &appSettingRepository{db: db, logger: logger, now: time.Now}
}

// GetAppSetting implements [AppSettingRepository].
func (r *appSettingRepository) GetAppSetting(ctx context.Context, appID, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAppSettingQuery(appID, key)
	if err != nil {
		log.Err(err).Str("func", "*appSettingRepository.GetAppSetting").Msg("error building query")
		return "", err
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		log.Err(err).Str("func", "*appSettingRepository.GetAppSetting").
			Str("appid", appID).Str("key", key).Msg("error reading setting")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

// GetAppSettings implements [AppSettingRepository].
func (r *appSettingRepository) GetAppSettings(ctx context.Context, appID string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAppSettingsQuery(appID)
	if err != nil {
		log.Err(err).Str("func", "*appSettingRepository.GetAppSettings").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*appSettingRepository.GetAppSettings").Str("appid", appID).Msg("error reading settings")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		settings[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return settings, nil
}

// SetAppSetting implements [AppSettingRepository].
func (r *appSettingRepository) SetAppSetting(ctx context.Context, appID, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertAppSettingQuery(appID, key, value, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*appSettingRepository.SetAppSetting").Msg("error building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*appSettingRepository.SetAppSetting").
			Str("appid", appID).Str("key", key).Msg("error writing setting")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
