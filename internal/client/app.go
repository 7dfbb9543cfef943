package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/service"
	"github.com/MKhiriev/go-git-save/internal/workers"
)

const shutdownFlushTimeout = 5 * time.Second

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}

	ws := workers.NewWorkers(logger)
	if services.SyncJob != nil {
		ws.Add("session-watcher", services.SyncJob)
	}

	return &App{services: services, ui: ui, workers: ws, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.services.State.Initialize(ctx)
	defer a.services.State.Close()

	if err := a.workers.Start(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}
	defer a.workers.Stop()

	uiErr := a.ui.Run(ctx)

	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownFlushTimeout)
	defer cancel()
	a.services.Settings.Flush(flushCtx)

	if uiErr != nil {
		return fmt.Errorf("run panel: %w", uiErr)
	}
	a.logger.Info().Msg("panel closed")
	return nil
}
