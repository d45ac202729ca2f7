// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs the persisted session record.
	HashKey string
	// AllowOfflineDemo enables the degraded demo authenticator.
	AllowOfflineDemo bool
	LogLevel         string
	LogFile          string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// HealthTimeout bounds the reachability check.
	HealthTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage

	// Args are the command-line arguments left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates the client configuration.
// args are the process arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:          cfg.App.HashKey,
			AllowOfflineDemo: cfg.App.AllowOfflineDemo,
			LogLevel:         cfg.App.LogLevel,
			LogFile:          cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HealthTimeout:  cfg.Adapter.HealthTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Args: b.rest,
	}
	clientCfg.applyDefaults()

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}
	if cfg.Adapter.HealthTimeout == 0 {
		cfg.Adapter.HealthTimeout = 3 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "my-group-client.db"
	}
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = "my-group-client.log"
	}
}
