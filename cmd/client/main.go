// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/my-group/internal/client"
	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	buildInfo := models.NewAppBuildInfo(valueOrNA(buildVersion), valueOrNA(buildDate), valueOrNA(buildCommit))

	log := logger.NewClientLogger("my-group-client", cfg.App.LogLevel, cfg.App.LogFile)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Str("server", cfg.Adapter.HTTPAddress).
		Msg("client starting")

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err = app.Run(); err != nil {
		os.Exit(1)
	}
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
