// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Severity of a [Notification].
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is a human-readable status message for the user.
type Notification struct {
	Title    string
	Body     string
	Severity Severity
	Duration time.Duration
}
