package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/handler"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/metrics"
	"github.com/MKhiriev/recipe-tracker/internal/notify"
	"github.com/MKhiriev/recipe-tracker/internal/server"
	"github.com/MKhiriev/recipe-tracker/internal/service"
	"github.com/MKhiriev/recipe-tracker/internal/store"
	"github.com/MKhiriev/recipe-tracker/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipe-tracker")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	storages, err := store.NewStorages(startupCtx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	m := metrics.New()

	gateway, err := notify.NewGateway(cfg.Notifier, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notification gateway")
	}
	observedGateway := notify.NewObservedGateway(gateway, m)
	defer func() {
		if err := observedGateway.Close(); err != nil {
			log.Err(err).Msg("error closing notification gateway")
		}
	}()

	services := service.NewServices(storages, observedGateway, cfg.App, log)

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	workersDone := make(chan struct{})
	go func() {
		workers.NewWorkers(storages, cfg.App, log).Run(workersCtx)
		close(workersDone)
	}()

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stopWorkers()
	<-workersDone
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
