// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// PanelConfig is the configuration view used by the panel binary.
type PanelConfig struct {
	App     App
	Adapter Adapter
	Workers Workers
	Log     Log
}

// BackendConfig is the configuration view used by the backend binary.
type BackendConfig struct {
	App     App
	Storage Storage
	Server  Server
	Workers Workers
	Git     Git
}

// GetPanelConfig loads the structured config and projects it into a validated
// [PanelConfig] with defaults applied.
func GetPanelConfig() (*PanelConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return NewPanelConfig(cfg)
}

// GetBackendConfig loads the structured config and projects it into a
// validated [BackendConfig] with defaults applied.
func GetBackendConfig() (*BackendConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return NewBackendConfig(cfg)
}

// NewPanelConfig applies panel defaults to cfg and validates the result.
func NewPanelConfig(cfg *StructuredConfig) (*PanelConfig, error) {
	panel := &PanelConfig{
		App:     withAppDefaults(cfg.App),
		Adapter: cfg.Adapter,
		Workers: withWorkerDefaults(cfg.Workers),
		Log:     cfg.Log,
	}
	panel.Adapter.HTTPAddress = defaultString(panel.Adapter.HTTPAddress, DefaultServerAddress)
	panel.Adapter.RequestTimeout = defaultDuration(panel.Adapter.RequestTimeout, DefaultRequestTimeout)

	if err := panel.validate(); err != nil {
		return nil, err
	}

	return panel, nil
}

// NewBackendConfig applies backend defaults to cfg and validates the result.
func NewBackendConfig(cfg *StructuredConfig) (*BackendConfig, error) {
	backend := &BackendConfig{
		App:     withAppDefaults(cfg.App),
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: withWorkerDefaults(cfg.Workers),
		Git:     cfg.Git,
	}
	backend.Server.HTTPAddress = defaultString(backend.Server.HTTPAddress, DefaultServerAddress)
	backend.Server.RequestTimeout = defaultDuration(backend.Server.RequestTimeout, DefaultRequestTimeout)
	backend.Git.AuthorName = defaultString(backend.Git.AuthorName, DefaultAuthorName)
	backend.Git.AuthorEmail = defaultString(backend.Git.AuthorEmail, DefaultAuthorEmail)
	backend.Git.CommitMessage = defaultString(backend.Git.CommitMessage, DefaultCommitMessage)
	backend.Git.Branch = defaultString(backend.Git.Branch, DefaultBranch)

	if err := backend.validate(); err != nil {
		return nil, err
	}

	return backend, nil
}

func withAppDefaults(app App) App {
	app.TokenIssuer = defaultString(app.TokenIssuer, DefaultTokenIssuer)
	app.TokenDuration = defaultDuration(app.TokenDuration, DefaultTokenDuration)
	return app
}

func withWorkerDefaults(w Workers) Workers {
	w.PollInterval = defaultDuration(w.PollInterval, DefaultPollInterval)
	w.PollTimeout = defaultDuration(w.PollTimeout, DefaultPollTimeout)
	w.DebounceWindow = defaultDuration(w.DebounceWindow, DefaultDebounceWindow)
	w.JobTimeout = defaultDuration(w.JobTimeout, DefaultJobTimeout)
	w.LockPolicy = defaultString(w.LockPolicy, LockPolicyGlobal)
	w.SessionDir = defaultString(w.SessionDir, defaultSessionDir())
	return w
}

func (c *PanelConfig) validate() error {
	if c.App.SecretKey == "" {
		return fmt.Errorf("%w: secret key is empty", ErrInvalidAppConfigs)
	}
	if err := validateHostPort(c.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}
	return validateWorkers(c.Workers)
}

func (c *BackendConfig) validate() error {
	if c.App.SecretKey == "" {
		return fmt.Errorf("%w: secret key is empty", ErrInvalidAppConfigs)
	}
	if c.Storage.DB.DSN == "" || c.Storage.DB.DSN == ":memory:" {
		return fmt.Errorf("%w: database file is required", ErrInvalidStorageConfigs)
	}
	if err := validateHostPort(c.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	if c.Workers.JobTimeout < 0 {
		return fmt.Errorf("%w: job timeout must not be negative", ErrInvalidWorkerConfigs)
	}
	return validateWorkers(c.Workers)
}

func validateWorkers(w Workers) error {
	if w.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", ErrInvalidWorkerConfigs)
	}
	if w.DebounceWindow <= 0 {
		return fmt.Errorf("%w: debounce window must be positive", ErrInvalidWorkerConfigs)
	}
	switch w.LockPolicy {
	case LockPolicyGlobal, LockPolicyPerEntity:
	default:
		return fmt.Errorf("%w: unknown lock policy %q", ErrInvalidWorkerConfigs, w.LockPolicy)
	}
	return nil
}

// PollTimeoutOrDisabled returns the configured poll timeout, or zero when the
// configured value is negative.
func (w Workers) PollTimeoutOrDisabled() time.Duration {
	if w.PollTimeout < 0 {
		return 0
	}
	return w.PollTimeout
}
