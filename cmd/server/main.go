package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trip-journal/internal/config"
	"github.com/MKhiriev/go-trip-journal/internal/handler"
	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/server"
	"github.com/MKhiriev/go-trip-journal/internal/service"
	"github.com/MKhiriev/go-trip-journal/internal/storage"
	"github.com/MKhiriev/go-trip-journal/internal/store"
	"github.com/MKhiriev/go-trip-journal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("trip-journal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectMongo(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close(ctx)

	storages, err := store.NewStorages(ctx, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	objectStorage, err := storage.NewS3Storage(cfg.Storage.S3, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object storage")
	}

	imageCleanup := workers.NewImageCleanupWorker(objectStorage, cfg.Workers.CleanupQueueSize, log)

	services, err := service.NewServices(storages, objectStorage, imageCleanup, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(imageCleanup), cfg.Server, log)
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
