package service

import "errors"

// Panel sync errors.
var (
	ErrBusy       = errors.New("a sync is already running")
	ErrSubmit     = errors.New("sync submission failed")
	ErrProbe      = errors.New("sync probe failed")
	ErrSyncFailed = errors.New("sync failed")
	ErrTimeout    = errors.New("sync timed out")
	ErrCancelled  = errors.New("sync cancelled")
)

// Backend errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrSettingsIncomplete  = errors.New("game settings are incomplete")
	ErrRunnerStopped       = errors.New("sync runner is shutting down")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
