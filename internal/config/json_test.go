package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllGroups(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"secret_key": "k", "token_duration": "2m", "version": "1.2.3"},
		"storage": map[string]any{"db": map[string]any{"dsn": "/data/settings.db"}},
		"server":  map[string]any{"http_address": "127.0.0.1:8000", "request_timeout": "4s"},
		"adapter": map[string]any{"http_address": "127.0.0.1:8000"},
		"workers": map[string]any{
			"poll_interval":   "360ms",
			"poll_timeout":    "-1s",
			"debounce_window": 1500000000,
			"lock_policy":     "global",
			"session_dir":     "/run/s",
			"job_timeout":     "5m",
		},
		"git": map[string]any{"author_name": "a", "author_email": "a@b", "commit_message": "m", "branch": "b", "lock_dir": "/l"},
		"log": map[string]any{"file": "/tmp/x.log"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.SecretKey)
	assert.Equal(t, 2*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/data/settings.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "127.0.0.1:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 360*time.Millisecond, cfg.Workers.PollInterval)
	assert.Equal(t, -time.Second, cfg.Workers.PollTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Workers.DebounceWindow)
	assert.Equal(t, "global", cfg.Workers.LockPolicy)
	assert.Equal(t, "/run/s", cfg.Workers.SessionDir)
	assert.Equal(t, 5*time.Minute, cfg.Workers.JobTimeout)
	assert.Equal(t, Git{AuthorName: "a", AuthorEmail: "a@b", CommitMessage: "m", Branch: "b", LockDir: "/l"}, cfg.Git)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{"workers": map[string]any{"poll_interval": "fast"}})

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1.5s"`, string(b))
}
