package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return NewDB(conn, logger.Nop()), mock
}

func newTestConfigRepo(t *testing.T) (*configRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	repo := NewConfigRepository(db, logger.Nop()).(*configRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func newTestAppSettingRepo(t *testing.T) (*appSettingRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	repo := NewAppSettingRepository(db, logger.Nop()).(*appSettingRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

// ── config ───────────────────────────────────────────────────────────────────

func TestConfigRepository_GetConfig(t *testing.T) {
	repo, mock := newTestConfigRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM config WHERE config_key = ?")).
		WithArgs("sync_on_game_exit").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("false"))

	value, err := repo.GetConfig(context.Background(), "sync_on_game_exit")

	require.NoError(t, err)
	assert.Equal(t, "false", value)
}

func TestConfigRepository_GetConfig_NotFound(t *testing.T) {
	repo, mock := newTestConfigRepo(t)

	mock.ExpectQuery("SELECT value FROM config").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetConfig(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestConfigRepository_GetConfig_DBError(t *testing.T) {
	repo, mock := newTestConfigRepo(t)

	mock.ExpectQuery("SELECT value FROM config").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetConfig(context.Background(), "k")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestConfigRepository_SetConfig(t *testing.T) {
	repo, mock := newTestConfigRepo(t)

	mock.ExpectExec("INSERT INTO config").
		WithArgs("toast_auto_sync", "true", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetConfig(context.Background(), "toast_auto_sync", "true"))
}

func TestConfigRepository_SetConfig_DBError(t *testing.T) {
	repo, mock := newTestConfigRepo(t)

	mock.ExpectExec("INSERT INTO config").
		WillReturnError(errors.New("database is locked"))

	err := repo.SetConfig(context.Background(), "k", "v")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── app settings ─────────────────────────────────────────────────────────────

func TestAppSettingRepository_GetAppSetting(t *testing.T) {
	repo, mock := newTestAppSettingRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM app_settings WHERE app_id = ? AND setting_key = ?")).
		WithArgs("570", "origin").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("https://example.com/saves.git"))

	value, err := repo.GetAppSetting(context.Background(), "570", "origin")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/saves.git", value)
}

func TestAppSettingRepository_GetAppSetting_NotFound(t *testing.T) {
	repo, mock := newTestAppSettingRepo(t)

	mock.ExpectQuery("SELECT value FROM app_settings").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAppSetting(context.Background(), "570", "user")

	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestAppSettingRepository_GetAppSettings(t *testing.T) {
	repo, mock := newTestAppSettingRepo(t)

	mock.ExpectQuery("SELECT setting_key, value FROM app_settings").
		WithArgs("570").
		WillReturnRows(sqlmock.NewRows([]string{"setting_key", "value"}).
			AddRow("local", "/saves/570").
			AddRow("user", "gabe"))

	settings, err := repo.GetAppSettings(context.Background(), "570")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"local": "/saves/570", "user": "gabe"}, settings)
}

func TestAppSettingRepository_GetAppSettings_Empty(t *testing.T) {
	repo, mock := newTestAppSettingRepo(t)

	mock.ExpectQuery("SELECT setting_key, value FROM app_settings").
		WillReturnRows(sqlmock.NewRows([]string{"setting_key", "value"}))

	settings, err := repo.GetAppSettings(context.Background(), "730")

	require.NoError(t, err)
	assert.Empty(t, settings)
	assert.NotNil(t, settings)
}

func TestAppSettingRepository_GetAppSettings_ScanError(t *testing.T) {
	repo, mock := newTestAppSettingRepo(t)

	mock.ExpectQuery("SELECT setting_key, value FROM app_settings").
		WillReturnRows(sqlmock.NewRows([]string{"setting_key"}).AddRow("local"))

	_, err := repo.GetAppSettings(context.Background(), "570")

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestAppSettingRepository_GetAppSettings_QueryError(t *testing.T) {
	repo, mock := newTestAppSettingRepo(t)

	mock.ExpectQuery("SELECT setting_key, value FROM app_settings").
		WillReturnError(errors.New("no such table: app_settings"))

	_, err := repo.GetAppSettings(context.Background(), "570")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestAppSettingRepository_SetAppSetting(t *testing.T) {
	repo, mock := newTestAppSettingRepo(t)

	mock.ExpectExec("INSERT INTO app_settings").
		WithArgs("570", "password", "sbx1:abc", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetAppSetting(context.Background(), "570", "password", "sbx1:abc"))
}

func TestAppSettingRepository_SetAppSetting_DBError(t *testing.T) {
	repo, mock := newTestAppSettingRepo(t)

	mock.ExpectExec("INSERT INTO app_settings").
		WillReturnError(errors.New("readonly database"))

	err := repo.SetAppSetting(context.Background(), "570", "local", "/saves")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestNewStorages(t *testing.T) {
	db, _ := newTestDB(t)

	storages := NewStorages(db, logger.Nop())

	assert.NotNil(t, storages.ConfigRepository)
	assert.NotNil(t, storages.AppSettingRepository)
}

func TestDB_MigrateNil(t *testing.T) {
	var db *DB
	assert.ErrorIs(t, db.Migrate(), ErrNilDatabase)
}
