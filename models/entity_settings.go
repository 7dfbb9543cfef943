// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SettingKey names one per-game git setting.
type SettingKey string

const (
	SettingLocalPath SettingKey = "local"
	SettingRemoteURL SettingKey = "origin"
	SettingUser      SettingKey = "user"
	SettingPassword  SettingKey = "password"
)

// SettingKeys lists every per-game setting in form order.
var SettingKeys = []SettingKey{
	SettingLocalPath,
	SettingRemoteURL,
	SettingUser,
	SettingPassword,
}

// Valid reports whether k is one of [SettingKeys].
func (k SettingKey) Valid() bool {
	for _, known := range SettingKeys {
		if k == known {
			return true
		}
	}
	return false
}

// EntitySettings holds the git parameters of a single game.
type EntitySettings struct {
	LocalPath string `json:"local"`
	RemoteURL string `json:"origin"`
	User      string `json:"user"`
	Password  string `json:"password"`
}

// Get returns the value stored under key.
func (e EntitySettings) Get(key SettingKey) string {
	switch key {
	case SettingLocalPath:
		return e.LocalPath
	case SettingRemoteURL:
		return e.RemoteURL
	case SettingUser:
		return e.User
	case SettingPassword:
		return e.Password
	}
	return ""
}

// Set stores value under key. Unknown keys are ignored.
func (e *EntitySettings) Set(key SettingKey, value string) {
	switch key {
	case SettingLocalPath:
		e.LocalPath = value
	case SettingRemoteURL:
		e.RemoteURL = value
	case SettingUser:
		e.User = value
	case SettingPassword:
		e.Password = value
	}
}

// Missing returns the keys whose values are empty.
func (e EntitySettings) Missing() []SettingKey {
	var missing []SettingKey
	for _, key := range SettingKeys {
		if e.Get(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Complete reports whether every setting required for a sync is present.
func (e EntitySettings) Complete() bool {
	return len(e.Missing()) == 0
}
