package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/config"
	httpHandler "github.com/MKhiriev/go-feed-board/internal/handler/http"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/server"
	"github.com/MKhiriev/go-feed-board/internal/service"
	"github.com/MKhiriev/go-feed-board/internal/session"
	"github.com/MKhiriev/go-feed-board/internal/store"
	"github.com/MKhiriev/go-feed-board/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("feed-board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = cfg.ValidateServerSecrets(); err != nil {
		log.Fatal().Err(err).Msg("refusing to start without session sign key and password hash key")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	db, err := store.NewConnectPostgres(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	sessions := session.NewManager(cfg.App, log)
	handler := httpHandler.NewHandler(services, sessions, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
