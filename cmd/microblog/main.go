// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-micropost/internal/app"
	"github.com/MKhiriev/go-micropost/internal/config"
	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/internal/service"
	"github.com/MKhiriev/go-micropost/internal/store"
	"github.com/MKhiriev/go-micropost/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger("microblog")
	cfg, rest, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}

	log, err = log.WithLevel(cfg.Log.Level)
	if err != nil {
		log = logger.NewLogger("microblog")
		log.Error().Err(err).Msg("invalid log level")
		return 2
	}
	ctx = log.WithContext(ctx)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		return 1
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.App, log)

	if err := app.NewRunner(services, storages.DB, os.Stdout, os.Stderr).Run(ctx, rest); err != nil {
		log.Debug().Err(err).Msg("command finished with error")
		return 1
	}
	return 0
}
