// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWorker struct {
	name     string
	startErr error
	events   *[]string
}

func (r *recordingWorker) Start(context.Context) error {
	*r.events = append(*r.events, "start "+r.name)
	return r.startErr
}

func (r *recordingWorker) Stop() {
	*r.events = append(*r.events, "stop "+r.name)
}

func TestWorkers_StartAndStopOrder(t *testing.T) {
	var events []string
	ws := NewWorkers(logger.Nop()).
		Add("sessions", &recordingWorker{name: "sessions", events: &events}).
		Add("toasts", &recordingWorker{name: "toasts", events: &events})

	require.NoError(t, ws.Start(context.Background()))
	ws.Stop()
	ws.Stop()

	assert.Equal(t, []string{"start sessions", "start toasts", "stop toasts", "stop sessions"}, events)
}

func TestWorkers_StartFailureStopsStarted(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	ws := NewWorkers(logger.Nop()).
		Add("first", &recordingWorker{name: "first", events: &events}).
		Add("second", &recordingWorker{name: "second", startErr: boom, events: &events}).
		Add("third", &recordingWorker{name: "third", events: &events})

	err := ws.Start(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "second")
	assert.Equal(t, []string{"start first", "start second", "stop first"}, events)
}

func TestWorkers_NilWorkerSkipped(t *testing.T) {
	ws := NewWorkers(logger.Nop()).Add("none", nil)

	require.NoError(t, ws.Start(context.Background()))
	ws.Stop()
}
