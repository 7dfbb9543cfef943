package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectConfigQuery(t *testing.T) {
	query, args, err := buildSelectConfigQuery("sync_on_game_exit")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM config WHERE config_key = ?", query)
	assert.Equal(t, []any{"sync_on_game_exit"}, args)
}

func Test_buildUpsertConfigQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpsertConfigQuery("toast_auto_sync", "false", now)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO config (config_key,value,updated_at) VALUES (?,?,?)")
	assert.Contains(t, query, "ON CONFLICT (config_key) DO UPDATE")
	assert.Equal(t, []any{"toast_auto_sync", "false", now}, args)
}

func Test_buildSelectAppSettingQuery(t *testing.T) {
	query, args, err := buildSelectAppSettingQuery("570", "origin")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM app_settings WHERE app_id = ? AND setting_key = ?", query)
	assert.Equal(t, []any{"570", "origin"}, args)
}

func Test_buildSelectAppSettingsQuery(t *testing.T) {
	query, args, err := buildSelectAppSettingsQuery("570")
	require.NoError(t, err)

	assert.Equal(t, "SELECT setting_key, value FROM app_settings WHERE app_id = ? ORDER BY setting_key", query)
	assert.Equal(t, []any{"570"}, args)
}

func Test_buildUpsertAppSettingQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildUpsertAppSettingQuery("570", "user", "gabe", now)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO app_settings (app_id,setting_key,value,updated_at) VALUES (?,?,?,?)")
	assert.Contains(t, query, "ON CONFLICT (app_id, setting_key) DO UPDATE")
	assert.Equal(t, []any{"570", "user", "gabe", now}, args)
}
