// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// panel and the backend. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the shared secret and token parameters used between the
	// panel and the backend.
	App App `envPrefix:"APP_"`

	// Storage holds the backend's SQLite settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the backend listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the panel's view of the backend address.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds sync coordination and background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Git holds commit identity and repository locking settings used by the
	// backend executor.
	Git Git `envPrefix:"GIT_"`

	// Log holds output settings for the panel log.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds values shared by both binaries.
type App struct {
	// SecretKey signs panel access tokens and derives the key that seals
	// stored git passwords. Must be identical for panel and backend.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// TokenIssuer is the "iss" claim of panel access tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a panel access token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the backend's persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file path, created on first start.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the backend's inbound transport settings.
type Server struct {
	// HTTPAddress is the loopback address the backend listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single plugin method call.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the panel's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the backend base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single plugin method call from the panel.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds sync coordination settings.
type Workers struct {
	// PollInterval is the delay between sync_now_probe calls.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PollTimeout bounds how long the panel waits for one job. Zero selects
	// the default; a negative value disables the bound.
	// Env: WORKERS_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`

	// DebounceWindow is the settings quiescence window.
	// Env: WORKERS_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`

	// LockPolicy is "global" or "per-entity".
	// Env: WORKERS_LOCK_POLICY
	LockPolicy string `env:"LOCK_POLICY"`

	// SessionDir is the directory where the launcher drops <appid>.running
	// markers while a game is running.
	// Env: WORKERS_SESSION_DIR
	SessionDir string `env:"SESSION_DIR"`

	// JobTimeout bounds one backend git sync.
	// Env: WORKERS_JOB_TIMEOUT
	JobTimeout time.Duration `env:"JOB_TIMEOUT"`
}

// Git holds the backend executor settings.
type Git struct {
	// AuthorName and AuthorEmail sign sync commits.
	// Env: GIT_AUTHOR_NAME, GIT_AUTHOR_EMAIL
	AuthorName  string `env:"AUTHOR_NAME"`
	AuthorEmail string `env:"AUTHOR_EMAIL"`

	// CommitMessage is used for every sync commit.
	// Env: GIT_COMMIT_MESSAGE
	CommitMessage string `env:"COMMIT_MESSAGE"`

	// Branch is the branch pushed to and pulled from.
	// Env: GIT_BRANCH
	Branch string `env:"BRANCH"`

	// LockDir holds per-game lock files guarding concurrent git runs.
	// Env: GIT_LOCK_DIR
	LockDir string `env:"LOCK_DIR"`
}

// Log holds panel log output settings.
type Log struct {
	// File is the panel log path. Empty means next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Default values applied by the panel and backend views.
const (
	DefaultTokenIssuer    = "git-save-panel"
	DefaultTokenDuration  = 5 * time.Minute
	DefaultRequestTimeout = 10 * time.Second
	DefaultPollInterval   = 360 * time.Millisecond
	DefaultPollTimeout    = 10 * time.Minute
	DefaultDebounceWindow = 1500 * time.Millisecond
	DefaultJobTimeout     = 10 * time.Minute
	DefaultServerAddress  = "127.0.0.1:8731"
	DefaultCommitMessage  = "Git Save Sync"
	DefaultBranch         = "main"
	DefaultAuthorName     = "Git Save"
	DefaultAuthorEmail    = "git-save@localhost"

	LockPolicyGlobal    = "global"
	LockPolicyPerEntity = "per-entity"
)

// GetStructuredConfig loads and merges the configuration from all available
// sources in priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaultDuration(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultSessionDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "git-save", "sessions")
	}
	return filepath.Join(os.TempDir(), "git-save-sessions")
}
