package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-git-save/internal/adapter"
	"github.com/MKhiriev/go-git-save/internal/client"
	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/notify"
	"github.com/MKhiriev/go-git-save/internal/service"
	"github.com/MKhiriev/go-git-save/internal/session"
	"github.com/MKhiriev/go-git-save/internal/tui"
	"github.com/MKhiriev/go-git-save/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const healthCheckTimeout = 3 * time.Second

func main() {
	cfg, err := config.GetPanelConfig()
	if err != nil {
		logger.NewLogger("git-save-panel").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("git-save-panel", cfg.Log.File)
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", build.BuildVersion()).
		Str("commit", build.BuildCommit()).
		Str("backend", cfg.Adapter.HTTPAddress).
		Msg("starting panel")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	sessions, err := session.NewDirSource(cfg.Workers.SessionDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session source")
	}

	toasts := tui.NewToastSink(0)
	running := tui.NewRunningFeed()
	notifier := notify.Multi{notify.NewLogNotifier(log), toasts}

	services := service.NewClientServices(backend, sessions, notifier, cfg.Workers, running.Set, log)

	healthCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	if err = backend.Health(healthCtx); err != nil {
		log.Warn().Err(err).Msg("backend is not reachable")
		notifier.Notify(notify.Error("Backend is not reachable, syncs will fail until it starts"))
	}
	cancel()

	ui, err := tui.New(services, toasts, running, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init panel app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("panel run error")
	}
}
