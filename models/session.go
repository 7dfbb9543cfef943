// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionEvent reports that a game session started (Running) or ended.
type SessionEvent struct {
	EntityID string
	Running  bool
	At       time.Time
}
