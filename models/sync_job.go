// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncResult is the lifecycle result of a [SyncJob].
type SyncResult string

const (
	SyncPending   SyncResult = "pending"
	SyncSucceeded SyncResult = "succeeded"
	SyncSkipped   SyncResult = "skipped"
	SyncFailed    SyncResult = "failed"
)

// FailureKind classifies why a job ended in [SyncFailed].
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureSubmit    FailureKind = "submit_error"
	FailureProbe     FailureKind = "probe_error"
	FailureSync      FailureKind = "sync_failed"
	FailureTimeout   FailureKind = "timeout"
	FailureCancelled FailureKind = "cancelled"
)

// SyncJob is one request-to-terminal-result execution of the backend sync
// routine. It is owned by the coordinator call that created it.
type SyncJob struct {
	ID         string      `json:"id"`
	EntityID   string      `json:"entity_id"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Result     SyncResult  `json:"result"`
	Failure    FailureKind `json:"failure,omitempty"`
	Code       *int        `json:"code,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// Elapsed returns the wall-clock duration between request and terminal result.
func (j SyncJob) Elapsed() time.Duration {
	if j.FinishedAt.IsZero() {
		return 0
	}
	return j.FinishedAt.Sub(j.StartedAt)
}

// Terminal reports whether the job has reached a final result.
func (j SyncJob) Terminal() bool {
	return j.Result != SyncPending && j.Result != ""
}
