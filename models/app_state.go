// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StateKey names one field of [SyncState]. The string value doubles as the
// configuration key used when the field is persisted by the backend.
type StateKey string

const (
	StateSyncing         StateKey = "syncing"
	StateSyncOnGameEntry StateKey = "sync_on_game_entry"
	StateSyncOnGameExit  StateKey = "sync_on_game_exit"
	StateToastAutoSync   StateKey = "toast_auto_sync"
)

// PersistedStateKeys lists the preference keys restored from the backend at
// startup. Syncing is runtime-only and never persisted.
var PersistedStateKeys = []StateKey{
	StateSyncOnGameEntry,
	StateSyncOnGameExit,
	StateToastAutoSync,
}

// SyncState is the process-wide observable panel state.
type SyncState struct {
	// Syncing is true while a sync job is in flight.
	Syncing bool `json:"syncing"`

	// SyncOnGameEntry triggers a sync when a game session starts.
	SyncOnGameEntry bool `json:"sync_on_game_entry"`

	// SyncOnGameExit triggers a sync when a game session ends.
	SyncOnGameExit bool `json:"sync_on_game_exit"`

	// ToastAutoSync controls whether automatic syncs produce success toasts.
	ToastAutoSync bool `json:"toast_auto_sync"`
}

// DefaultSyncState returns the state every process starts with.
func DefaultSyncState() SyncState {
	return SyncState{
		Syncing:         false,
		SyncOnGameEntry: true,
		SyncOnGameExit:  true,
		ToastAutoSync:   true,
	}
}

// With returns a copy of s with key set to value. ok is false for unknown keys,
// in which case s is returned unchanged.
func (s SyncState) With(key StateKey, value bool) (next SyncState, ok bool) {
	next = s
	switch key {
	case StateSyncing:
		next.Syncing = value
	case StateSyncOnGameEntry:
		next.SyncOnGameEntry = value
	case StateSyncOnGameExit:
		next.SyncOnGameExit = value
	case StateToastAutoSync:
		next.ToastAutoSync = value
	default:
		return s, false
	}
	return next, true
}

// Value returns the field addressed by key.
func (s SyncState) Value(key StateKey) (value bool, ok bool) {
	switch key {
	case StateSyncing:
		return s.Syncing, true
	case StateSyncOnGameEntry:
		return s.SyncOnGameEntry, true
	case StateSyncOnGameExit:
		return s.SyncOnGameExit, true
	case StateToastAutoSync:
		return s.ToastAutoSync, true
	}
	return false, false
}
