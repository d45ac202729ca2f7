// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg carries no
// version, so a server never starts without one.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", cfg.Version).Msg("serving application version")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
