package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/handler"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/server"
	"github.com/MKhiriev/go-customer-keeper/internal/service"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("customer-server", config.DefaultEnvironment).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("customer-server", cfg.App.Environment)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		storages.Close()
		os.Exit(1)
	}
}
