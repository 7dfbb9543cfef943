package service

import (
	"context"

	"github.com/MKhiriev/go-git-save/internal/state"
	"github.com/MKhiriev/go-git-save/models"
)

// SyncOptions controls the notifications of a single RequestSync call.
type SyncOptions struct {
	// Toast enables the success notification.
	Toast bool
	// ToastSkips additionally enables a notification for skipped jobs.
	// It has no effect without Toast.
	ToastSkips bool
}

// SyncBackend submits sync jobs and probes their completion.
type SyncBackend interface {
	SubmitSync(ctx context.Context, entityID string) (models.SubmitResponse, error)
	ProbeSync(ctx context.Context, entityID string) (models.ProbeResponse, error)
}

// StateStore is the part of the app state the coordinator needs.
type StateStore interface {
	Get() models.SyncState
	Set(key models.StateKey, value bool, persist bool) error
}

// StateObserver is a [StateStore] that also accepts subscribers.
type StateObserver interface {
	StateStore
	Subscribe(fn state.Subscriber) state.SubscriptionID
	Unsubscribe(id state.SubscriptionID)
}

// SyncCoordinator runs sync jobs: it submits a job, polls it until it
// reaches a terminal result, keeps the syncing flag up to date, and reports
// the outcome to the notification sink.
type SyncCoordinator interface {
	// RequestSync runs one job for entityID and blocks until it is terminal.
	//
	// It returns [ErrBusy] without side effects when another job holds the
	// lock. Succeeded and skipped jobs return a nil error. Failed jobs return
	// the job together with an error wrapping one of [ErrSubmit], [ErrProbe],
	// [ErrSyncFailed], [ErrTimeout] or [ErrCancelled].
	RequestSync(ctx context.Context, entityID string, opts SyncOptions) (models.SyncJob, error)

	// Busy reports whether a RequestSync for entityID would be rejected now.
	Busy(entityID string) bool
}

// SessionSource streams game session events until ctx is done. The returned
// channel is closed when the source stops.
type SessionSource interface {
	Watch(ctx context.Context) (<-chan models.SessionEvent, error)
}

// ClientSyncJob is the background worker that turns game session events into
// automatic syncs.
type ClientSyncJob interface {
	// Start launches the worker. Any previously running worker is stopped
	// first.
	Start(ctx context.Context) error

	// Stop cancels the worker and blocks until it and every sync it started
	// have returned.
	Stop()
}
