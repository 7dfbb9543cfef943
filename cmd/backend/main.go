package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/crypto"
	"github.com/MKhiriev/go-git-save/internal/gitsync"
	"github.com/MKhiriev/go-git-save/internal/handler"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/server"
	"github.com/MKhiriev/go-git-save/internal/service"
	"github.com/MKhiriev/go-git-save/internal/store"
	"github.com/MKhiriev/go-git-save/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("git-save-backend")
	cfg, err := config.GetBackendConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("database", cfg.Storage.DB.DSN).
		Dur("job_timeout", cfg.Workers.JobTimeout).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	box, err := crypto.NewSecretBox(cfg.App.SecretKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret box")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(
		store.NewStorages(db, log),
		box,
		gitsync.NewExecutor(cfg.Git, log),
		build,
		*cfg,
		log,
	)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log,
		services.SyncService.Shutdown,
		func() {
			if err := db.Close(); err != nil {
				log.Err(err).Msg("error closing database")
			}
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
