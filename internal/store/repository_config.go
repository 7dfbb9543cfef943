package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
)

// configRepository is the sqlite implementation of [ConfigRepository] over
// the "config" table.
type configRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewConfigRepository constructs a [ConfigRepository] backed by db.
func NewConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	logger.Debug().Msg("creating config repository")
	return &configRepository{db: db, logger: logger, now: time.Now}
}

// GetConfig implements [ConfigRepository].
func (r *configRepository) GetConfig(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectConfigQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.GetConfig").Msg("error building query")
		return "", err
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		log.Err(err).Str("func", "*configRepository.GetConfig").Str("key", key).Msg("error reading config")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

// SetConfig implements [ConfigRepository].
func (r *configRepository) SetConfig(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertConfigQuery(key, value, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*configRepository.SetConfig").Msg("error building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*configRepository.SetConfig").Str("key", key).Msg("error writing config")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
