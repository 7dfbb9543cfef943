package service

import (
	"github.com/MKhiriev/go-git-save/internal/adapter"
	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/notify"
	"github.com/MKhiriev/go-git-save/internal/settings"
	"github.com/MKhiriev/go-git-save/internal/state"
	"k8s.io/utils/clock"
)

// ClientServices groups the panel-side services around one backend adapter.
type ClientServices struct {
	State       *state.Store
	Settings    *settings.Store
	Coordinator SyncCoordinator
	SyncJob     ClientSyncJob
}

// NewClientServices wires the panel services. sessions may be nil, in which
// case no automatic syncs are started.
func NewClientServices(
	backend adapter.BackendAdapter,
	sessions SessionSource,
	notifier notify.Notifier,
	workers config.Workers,
	onRunning RunningFunc,
	logger *logger.Logger,
) *ClientServices {
	clk := clock.RealClock{}
	appState := state.NewStore(backend, logger)
	coordinator := NewSyncCoordinator(backend, appState, notifier, clk, NewCoordinatorConfig(workers), logger)

	services := &ClientServices{
		State:       appState,
		Settings:    settings.NewStore(backend, clk, workers.DebounceWindow, logger),
		Coordinator: coordinator,
	}
	if sessions != nil {
		services.SyncJob = NewClientSyncJob(sessions, appState, coordinator, onRunning, logger)
	}
	return services
}
