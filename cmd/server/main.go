// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/handler"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/server"
	"github.com/MKhiriev/my-group/internal/service"
	"github.com/MKhiriev/my-group/internal/store"
	"github.com/MKhiriev/my-group/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("my-group-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("my-group-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.RootUsername != "" {
		created, err := services.UserService.EnsureRootAdmin(ctx, cfg.App.RootUsername, cfg.App.RootPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("error seeding root admin")
		}
		log.Info().Bool("created", created).Str("username", cfg.App.RootUsername).Msg("root admin ensured")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newBuildInfo prefers linker-injected values and falls back to the module
// version recorded by the Go toolchain.
func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			buildVersion = info.Main.Version
		}
	}
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
