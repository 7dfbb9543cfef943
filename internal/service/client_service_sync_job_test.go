package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/state"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionSource struct {
	events  chan models.SessionEvent
	err     error
	watched int
}

func newFakeSessionSource() *fakeSessionSource {
	return &fakeSessionSource{events: make(chan models.SessionEvent)}
}

func (s *fakeSessionSource) Watch(context.Context) (<-chan models.SessionEvent, error) {
	s.watched++
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

type syncCall struct {
	entityID string
	opts     SyncOptions
}

type stubCoordinator struct {
	mu    sync.Mutex
	calls []syncCall
	err   error
}

func (c *stubCoordinator) RequestSync(_ context.Context, entityID string, opts SyncOptions) (models.SyncJob, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, syncCall{entityID: entityID, opts: opts})
	return models.SyncJob{EntityID: entityID}, c.err
}

func (c *stubCoordinator) Busy(string) bool { return false }

func (c *stubCoordinator) recorded() []syncCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]syncCall(nil), c.calls...)
}

type runningRecorder struct {
	mu  sync.Mutex
	ids []string
}

func (r *runningRecorder) record(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *runningRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func startWatcher(t *testing.T, st *state.Store, coord SyncCoordinator, onRunning RunningFunc) (*fakeSessionSource, ClientSyncJob) {
	t.Helper()
	source := newFakeSessionSource()
	job := NewClientSyncJob(source, st, coord, onRunning, logger.Nop())
	require.NoError(t, job.Start(context.Background()))
	t.Cleanup(job.Stop)
	return source, job
}

func TestClientSyncJob_TriggersOnEntryAndExit(t *testing.T) {
	st := state.NewStore(nil, logger.Nop())
	coord := &stubCoordinator{}
	running := &runningRecorder{}
	source, job := startWatcher(t, st, coord, running.record)

	source.events <- models.SessionEvent{EntityID: "570", Running: true}
	source.events <- models.SessionEvent{EntityID: "570", Running: false}
	job.Stop()

	calls := coord.recorded()
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Equal(t, "570", call.entityID)
		assert.Equal(t, SyncOptions{Toast: true, ToastSkips: false}, call.opts)
	}
	assert.Equal(t, []string{"570", ""}, running.all())
}

func TestClientSyncJob_RespectsPreferences(t *testing.T) {
	tests := []struct {
		name      string
		pref      models.StateKey
		event     models.SessionEvent
		wantCalls int
	}{
		{name: "entry disabled", pref: models.StateSyncOnGameEntry, event: models.SessionEvent{EntityID: "570", Running: true}},
		{name: "exit disabled", pref: models.StateSyncOnGameExit, event: models.SessionEvent{EntityID: "570"}},
		{name: "entry still fires when exit disabled", pref: models.StateSyncOnGameExit, event: models.SessionEvent{EntityID: "570", Running: true}, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := state.NewStore(nil, logger.Nop())
			require.NoError(t, st.Set(tt.pref, false, false))
			coord := &stubCoordinator{}
			source, job := startWatcher(t, st, coord, nil)

			source.events <- tt.event
			job.Stop()

			assert.Len(t, coord.recorded(), tt.wantCalls)
		})
	}
}

func TestClientSyncJob_ToastFollowsAutoSyncPreference(t *testing.T) {
	st := state.NewStore(nil, logger.Nop())
	require.NoError(t, st.Set(models.StateToastAutoSync, false, false))
	coord := &stubCoordinator{}
	source, job := startWatcher(t, st, coord, nil)

	source.events <- models.SessionEvent{EntityID: "730", Running: true}
	job.Stop()

	calls := coord.recorded()
	require.Len(t, calls, 1)
	assert.False(t, calls[0].opts.Toast)
}

func TestClientSyncJob_CoordinatorErrorsDoNotStopWatcher(t *testing.T) {
	st := state.NewStore(nil, logger.Nop())
	coord := &stubCoordinator{err: ErrBusy}
	source, job := startWatcher(t, st, coord, nil)

	source.events <- models.SessionEvent{EntityID: "570", Running: true}
	coord.mu.Lock()
	coord.err = errors.New("boom")
	coord.mu.Unlock()
	source.events <- models.SessionEvent{EntityID: "730", Running: true}
	job.Stop()

	assert.Len(t, coord.recorded(), 2)
}

func TestClientSyncJob_RunningTracksLatestGame(t *testing.T) {
	st := state.NewStore(nil, logger.Nop())
	require.NoError(t, st.Set(models.StateSyncOnGameEntry, false, false))
	require.NoError(t, st.Set(models.StateSyncOnGameExit, false, false))
	running := &runningRecorder{}
	source, job := startWatcher(t, st, &stubCoordinator{}, running.record)

	source.events <- models.SessionEvent{EntityID: "570", Running: true}
	source.events <- models.SessionEvent{EntityID: "730", Running: true}
	// Exit of a game that is no longer tracked keeps the current one.
	source.events <- models.SessionEvent{EntityID: "570", Running: false}
	source.events <- models.SessionEvent{EntityID: "730", Running: false}
	job.Stop()

	assert.Equal(t, []string{"570", "730", "730", ""}, running.all())
}

func TestClientSyncJob_StartPropagatesWatchError(t *testing.T) {
	source := newFakeSessionSource()
	source.err = errors.New("no session dir")
	job := NewClientSyncJob(source, state.NewStore(nil, logger.Nop()), &stubCoordinator{}, nil, logger.Nop())

	err := job.Start(context.Background())

	assert.ErrorIs(t, err, source.err)
	job.Stop()
}

func TestClientSyncJob_StopsWhenSourceCloses(t *testing.T) {
	source := newFakeSessionSource()
	job := NewClientSyncJob(source, state.NewStore(nil, logger.Nop()), &stubCoordinator{}, nil, logger.Nop())
	require.NoError(t, job.Start(context.Background()))

	close(source.events)

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the source closed")
	}
}

func TestClientSyncJob_RestartWatchesAgain(t *testing.T) {
	st := state.NewStore(nil, logger.Nop())
	source := newFakeSessionSource()
	job := NewClientSyncJob(source, st, &stubCoordinator{}, nil, logger.Nop())

	require.NoError(t, job.Start(context.Background()))
	require.NoError(t, job.Start(context.Background()))
	job.Stop()

	assert.Equal(t, 2, source.watched)
}
