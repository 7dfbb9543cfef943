package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
)

// RunningFunc is told which game is running. An empty entityID means none.
type RunningFunc func(entityID string)

type clientSyncJob struct {
	source      SessionSource
	state       StateStore
	coordinator SyncCoordinator
	onRunning   RunningFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running string

	logger *logger.Logger
}

// NewClientSyncJob creates the session watcher. It is idle until Start is
// called. onRunning may be nil.
func NewClientSyncJob(source SessionSource, state StateStore, coordinator SyncCoordinator, onRunning RunningFunc, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		source:      source,
		state:       state,
		coordinator: coordinator,
		onRunning:   onRunning,
		logger:      logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running watcher,
// subscribes to the session source and handles events until ctx is cancelled
// or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) error {
	j.Stop()

	jobCtx, cancel := context.WithCancel(ctx)
	events, err := j.source.Watch(jobCtx)
	if err != nil {
		cancel()
		return err
	}

	j.mu.Lock()
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		for {
			select {
			case <-jobCtx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				j.handle(jobCtx, ev)
			}
		}
	}()

	return nil
}

// Stop implements ClientSyncJob. Safe to call when the watcher is not
// running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// handle tracks the running game and starts an automatic sync when the
// matching preference is on. Syncs run on their own goroutine so that later
// events are not held up by a long poll.
func (j *clientSyncJob) handle(ctx context.Context, ev models.SessionEvent) {
	j.trackRunning(ev)

	st := j.state.Get()
	trigger := (ev.Running && st.SyncOnGameEntry) || (!ev.Running && st.SyncOnGameExit)
	if !trigger {
		return
	}

	opts := SyncOptions{Toast: st.ToastAutoSync, ToastSkips: false}
	log := j.logger.With().Str("appid", ev.EntityID).Bool("running", ev.Running).Logger()

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		_, err := j.coordinator.RequestSync(ctx, ev.EntityID, opts)
		switch {
		case err == nil:
		case errors.Is(err, ErrBusy):
			log.Debug().Msg("automatic sync skipped, another sync is running")
		default:
			log.Warn().Err(err).Msg("automatic sync failed")
		}
	}()
}

func (j *clientSyncJob) trackRunning(ev models.SessionEvent) {
	j.mu.Lock()
	switch {
	case ev.Running:
		j.running = ev.EntityID
	case j.running == ev.EntityID:
		j.running = ""
	}
	running := j.running
	j.mu.Unlock()

	if j.onRunning != nil {
		j.onRunning(running)
	}
}
