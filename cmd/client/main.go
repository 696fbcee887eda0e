// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/device-sync-gate/internal/adapter"
	"github.com/MKhiriev/device-sync-gate/internal/client"
	"github.com/MKhiriev/device-sync-gate/internal/config"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/store"
	"github.com/MKhiriev/device-sync-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("device-sync", cfg.Logs.FilePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	app := client.NewApp(ctx, cfg, buildInfo, storages.Settings, serverAdapter, nil, log)

	if cfg.App.StatusOnly {
		if _, err = app.BootstrapOnce(ctx); err != nil {
			log.Err(err).Msg("bootstrap failed")
		}
		if err = app.PrintStatus(ctx, os.Stdout); err != nil {
			log.Err(err).Msg("print status")
		}
		return
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
