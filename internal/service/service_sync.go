// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-git-save/internal/gitsync"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/utils"
	"github.com/MKhiriev/go-git-save/models"
	"k8s.io/utils/clock"
)

// syncJob is one background git run. code is nil until done is closed.
type syncJob struct {
	id        string
	appID     string
	startedAt time.Time
	done      chan struct{}
	code      *int
}

func (j *syncJob) running() bool {
	select {
	case <-j.done:
		return false
	default:
		return true
	}
}

// syncService is the job table behind sync_now and sync_now_probe.
type syncService struct {
	settings   SettingsService
	executor   gitsync.Executor
	jobTimeout time.Duration
	clock      clock.PassiveClock
	ids        *utils.UUIDGenerator

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu   sync.Mutex
	jobs map[string]*syncJob
	last string

	logger *logger.Logger
}

// NewSyncService creates the runner. Each job runs under its own context
// bounded by jobTimeout (non-positive disables the bound) and cancelled by
// Shutdown. A nil clk selects the real clock.
func NewSyncService(settings SettingsService, executor gitsync.Executor, jobTimeout time.Duration, clk clock.PassiveClock, logger *logger.Logger) SyncService {
	if clk == nil {
		clk = clock.RealClock{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &syncService{
		settings:   settings,
		executor:   executor,
		jobTimeout: jobTimeout,
		clock:      clk,
		ids:        utils.NewUUIDGenerator(),
		baseCtx:    ctx,
		cancel:     cancel,
		jobs:       make(map[string]*syncJob),
		logger:     logger,
	}
}

// Submit implements [SyncService].
func (s *syncService) Submit(ctx context.Context, appID string) (string, error) {
	log := logger.FromContext(ctx)

	if s.baseCtx.Err() != nil {
		return "", ErrRunnerStopped
	}
	if job := s.runningJob(appID); job != nil {
		log.Debug().Str("appid", appID).Str("job_id", job.id).Msg("sync already running")
		return models.SubmitStarted, nil
	}

	settings, err := s.settings.GetAppSettings(ctx, appID)
	if err != nil {
		return "", err
	}
	if missing := settings.Missing(); len(missing) > 0 {
		keys := make([]string, len(missing))
		for i, k := range missing {
			keys[i] = string(k)
		}
		return "", fmt.Errorf("%w: missing %s", ErrSettingsIncomplete, strings.Join(keys, ", "))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have started the job while settings were read.
	if job, ok := s.jobs[appID]; ok && job.running() {
		return models.SubmitStarted, nil
	}

	job := &syncJob{
		id:        s.ids.Generate(),
		appID:     appID,
		startedAt: s.clock.Now(),
		done:      make(chan struct{}),
	}
	s.jobs[appID] = job
	s.last = appID

	s.wg.Add(1)
	go s.run(job, settings)

	log.Info().Str("appid", appID).Str("job_id", job.id).Msg("sync started")
	return models.SubmitStarted, nil
}

// Probe implements [SyncService].
func (s *syncService) Probe(ctx context.Context, appID string) (*int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appID == "" {
		appID = s.last
	}

	job, ok := s.jobs[appID]
	if !ok {
		code := models.ProbeCodeUnknownJob
		return &code, nil
	}
	if job.running() {
		return nil, nil
	}

	code := *job.code
	return &code, nil
}

// Shutdown implements [SyncService].
func (s *syncService) Shutdown() {
	s.cancel()
	s.wg.Wait()
}

func (s *syncService) runningJob(appID string) *syncJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, ok := s.jobs[appID]; ok && job.running() {
		return job
	}
	return nil
}

func (s *syncService) run(job *syncJob, settings models.EntitySettings) {
	defer s.wg.Done()

	ctx, cancel := s.baseCtx, context.CancelFunc(func() {})
	if s.jobTimeout > 0 {
		ctx, cancel = context.WithTimeout(s.baseCtx, s.jobTimeout)
	}
	defer cancel()

	res := s.executor.Sync(ctx, job.appID, settings)

	s.mu.Lock()
	code := res.Code
	job.code = &code
	close(job.done)
	s.mu.Unlock()

	event := s.logger.Info()
	if res.Code != models.ProbeCodeOK && res.Code != models.ProbeCodeSkipped {
		event = s.logger.Warn().Str("message", res.Message)
	}
	event.
		Str("appid", job.appID).
		Str("job_id", job.id).
		Int("code", res.Code).
		Dur("elapsed", s.clock.Since(job.startedAt)).
		Msg("sync finished")
}
