// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the git save panel in the terminal.
//
// The root model owns every piece of view state. Background components never
// touch it directly: state changes, the running game and notifications are
// published into buffered channels and pulled into the program by commands.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/service"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// SettingsEditor is the part of the settings store used by the form.
type SettingsEditor interface {
	Load(ctx context.Context, entityID string) models.EntitySettings
	Set(ctx context.Context, entityID string, key models.SettingKey, value string, immediate bool) error
	Flush(ctx context.Context)
	Pending() int
}

type TUI struct {
	state       service.StateObserver
	settings    SettingsEditor
	coordinator service.SyncCoordinator
	toasts      *ToastSink
	running     *RunningFeed
	build       models.AppBuildInfo
	logger      *logger.Logger
}

func New(
	services *service.ClientServices,
	toasts *ToastSink,
	running *RunningFeed,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: client services are required")
	}
	if toasts == nil {
		toasts = NewToastSink(0)
	}
	if running == nil {
		running = NewRunningFeed()
	}

	return &TUI{
		state:       services.State,
		settings:    services.Settings,
		coordinator: services.Coordinator,
		toasts:      toasts,
		running:     running,
		build:       build,
		logger:      logger,
	}, nil
}

// Run shows the panel until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stateFeed := newLatest[models.SyncState]()
	id := t.state.Subscribe(stateFeed.publish)
	defer t.state.Unsubscribe(id)

	m := newAppModel(ctx, t.deps(stateFeed))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (t *TUI) deps(stateFeed *latest[models.SyncState]) modelDeps {
	return modelDeps{
		state:       t.state,
		settings:    t.settings,
		coordinator: t.coordinator,
		stateFeed:   stateFeed,
		toasts:      t.toasts,
		running:     t.running,
		build:       t.build,
		copyFn:      clipboard.WriteAll,
		logger:      t.logger,
	}
}
