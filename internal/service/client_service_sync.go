// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/notify"
	"github.com/MKhiriev/go-git-save/internal/utils"
	"github.com/MKhiriev/go-git-save/models"
	"k8s.io/utils/clock"
)

// CoordinatorConfig holds the polling and locking parameters of a
// [SyncCoordinator].
type CoordinatorConfig struct {
	// PollInterval is the delay between probes. Non-positive selects
	// config.DefaultPollInterval.
	PollInterval time.Duration
	// PollTimeout bounds the wait for a terminal probe. Non-positive disables
	// the bound.
	PollTimeout time.Duration
	// LockPolicy is config.LockPolicyGlobal (default) or
	// config.LockPolicyPerEntity.
	LockPolicy string
}

// NewCoordinatorConfig builds a CoordinatorConfig from the worker settings.
func NewCoordinatorConfig(w config.Workers) CoordinatorConfig {
	return CoordinatorConfig{
		PollInterval: w.PollInterval,
		PollTimeout:  w.PollTimeoutOrDisabled(),
		LockPolicy:   w.LockPolicy,
	}
}

type syncCoordinator struct {
	backend  SyncBackend
	state    StateStore
	notifier notify.Notifier
	clock    clock.Clock
	ids      *utils.UUIDGenerator

	pollInterval time.Duration
	pollTimeout  time.Duration
	perEntity    bool

	mu       sync.Mutex
	inFlight map[string]struct{}

	logger *logger.Logger
}

// NewSyncCoordinator wires a coordinator. A nil clk selects the real clock.
func NewSyncCoordinator(
	backend SyncBackend,
	state StateStore,
	notifier notify.Notifier,
	clk clock.Clock,
	cfg CoordinatorConfig,
	logger *logger.Logger,
) SyncCoordinator {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = config.DefaultPollInterval
	}
	if notifier == nil {
		notifier = notify.Multi{}
	}

	return &syncCoordinator{
		backend:      backend,
		state:        state,
		notifier:     notifier,
		clock:        clk,
		ids:          utils.NewUUIDGenerator(),
		pollInterval: cfg.PollInterval,
		pollTimeout:  cfg.PollTimeout,
		perEntity:    cfg.LockPolicy == config.LockPolicyPerEntity,
		inFlight:     make(map[string]struct{}),
		logger:       logger,
	}
}

// RequestSync implements [SyncCoordinator].
func (c *syncCoordinator) RequestSync(ctx context.Context, entityID string, opts SyncOptions) (models.SyncJob, error) {
	if !c.claim(entityID) {
		c.logger.Debug().Str("appid", entityID).Msg("sync request rejected, another sync is running")
		return models.SyncJob{}, ErrBusy
	}

	job := models.SyncJob{
		ID:        c.ids.Generate(),
		EntityID:  entityID,
		StartedAt: c.clock.Now(),
		Result:    models.SyncPending,
	}
	log := c.logger.With().Str("appid", entityID).Str("job_id", job.ID).Logger()
	log.Info().Msg("sync requested")

	job = c.run(ctx, job)
	job.FinishedAt = c.clock.Now()

	c.release(entityID)
	c.report(job, opts)

	event := log.Info()
	if job.Result == models.SyncFailed {
		event = log.Warn().Str("failure", string(job.Failure)).Str("message", job.Message)
		if job.Code != nil {
			event = event.Int("code", *job.Code)
		}
	}
	event.Str("result", string(job.Result)).Dur("elapsed", job.Elapsed()).Msg("sync finished")

	if job.Result == models.SyncFailed {
		return job, fmt.Errorf("%w: %s", failureError(job.Failure), job.Message)
	}
	return job, nil
}

// Busy implements [SyncCoordinator].
func (c *syncCoordinator) Busy(entityID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busyLocked(entityID)
}

// claim atomically checks the lock policy and marks entityID as in flight
// before any external call is made.
func (c *syncCoordinator) claim(entityID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busyLocked(entityID) {
		return false
	}

	c.inFlight[entityID] = struct{}{}
	c.setSyncingLocked()
	return true
}

func (c *syncCoordinator) release(entityID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.inFlight, entityID)
	c.setSyncingLocked()
}

func (c *syncCoordinator) busyLocked(entityID string) bool {
	if c.perEntity {
		_, running := c.inFlight[entityID]
		return running
	}
	return len(c.inFlight) > 0 || c.state.Get().Syncing
}

// setSyncingLocked publishes whether anything is in flight. Callers hold c.mu
// so that concurrent claims and releases publish in order.
func (c *syncCoordinator) setSyncingLocked() {
	if err := c.state.Set(models.StateSyncing, len(c.inFlight) > 0, false); err != nil {
		c.logger.Error().Err(err).Msg("failed to update syncing state")
	}
}

// run drives one job from submission to a terminal result.
func (c *syncCoordinator) run(ctx context.Context, job models.SyncJob) models.SyncJob {
	resp, err := c.backend.SubmitSync(ctx, job.EntityID)
	if err != nil {
		if ctx.Err() != nil {
			return cancelled(job)
		}
		return failed(job, models.FailureSubmit, describeAdapterError(err))
	}
	if !resp.Success {
		return failed(job, models.FailureSubmit, resp.Result)
	}

	switch resp.Result {
	case models.SubmitSucceeded:
		job.Result = models.SyncSucceeded
		return job
	case models.SubmitSkipped:
		job.Result = models.SyncSkipped
		return job
	case models.SubmitStarted, models.SubmitRunning:
		return c.poll(ctx, job)
	default:
		return failed(job, models.FailureSubmit, fmt.Sprintf("unexpected submit result %q", resp.Result))
	}
}

// poll probes immediately and then once per interval until the backend
// reports an exit code, ctx is done, or the poll timeout passes.
func (c *syncCoordinator) poll(ctx context.Context, job models.SyncJob) models.SyncJob {
	var deadline time.Time
	if c.pollTimeout > 0 {
		deadline = job.StartedAt.Add(c.pollTimeout)
	}

	for {
		resp, err := c.backend.ProbeSync(ctx, job.EntityID)
		if err != nil {
			if ctx.Err() != nil {
				return cancelled(job)
			}
			return failed(job, models.FailureProbe, describeAdapterError(err))
		}
		if !resp.Success {
			return failed(job, models.FailureProbe, "backend rejected the probe")
		}
		if resp.Result != nil {
			return withCode(job, *resp.Result)
		}

		wait := c.pollInterval
		if !deadline.IsZero() {
			remaining := deadline.Sub(c.clock.Now())
			if remaining <= 0 {
				return timedOut(job, c.pollTimeout)
			}
			if remaining < wait {
				wait = remaining
			}
		}

		select {
		case <-ctx.Done():
			return cancelled(job)
		case <-c.clock.After(wait):
		}

		if !deadline.IsZero() && !c.clock.Now().Before(deadline) {
			return timedOut(job, c.pollTimeout)
		}
	}
}

// report sends at most one notification for a terminal job.
func (c *syncCoordinator) report(job models.SyncJob, opts SyncOptions) {
	switch job.Result {
	case models.SyncSucceeded:
		if opts.Toast {
			c.notifier.Notify(notify.Infof("Sync completed in %.2fs.", job.Elapsed().Seconds()))
		}
	case models.SyncSkipped:
		if opts.Toast && opts.ToastSkips {
			c.notifier.Notify(notify.Info("Saves already up to date."))
		}
	case models.SyncFailed:
		c.notifier.Notify(notify.Error(failureSummary(job)))
	}
}

func withCode(job models.SyncJob, code int) models.SyncJob {
	job.Code = &code
	switch code {
	case models.ProbeCodeOK:
		job.Result = models.SyncSucceeded
	case models.ProbeCodeSkipped:
		job.Result = models.SyncSkipped
	default:
		job.Result = models.SyncFailed
		job.Failure = models.FailureSync
		job.Message = describeProbeCode(code)
	}
	return job
}

func failed(job models.SyncJob, kind models.FailureKind, message string) models.SyncJob {
	job.Result = models.SyncFailed
	job.Failure = kind
	job.Message = message
	return job
}

func cancelled(job models.SyncJob) models.SyncJob {
	return failed(job, models.FailureCancelled, "sync was cancelled")
}

func timedOut(job models.SyncJob, after time.Duration) models.SyncJob {
	return failed(job, models.FailureTimeout, fmt.Sprintf("no result after %s", after))
}

// failureSummary is the error notification body for a failed job.
func failureSummary(job models.SyncJob) string {
	switch job.Failure {
	case models.FailureSync:
		return fmt.Sprintf("Sync failed with code %d: %s", *job.Code, job.Message)
	case models.FailureSubmit:
		return "Sync failure: " + job.Message
	default:
		return fmt.Sprintf("Sync of app %s failed: %s", job.EntityID, job.Message)
	}
}
