// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/store"
	"github.com/MKhiriev/my-group/internal/utils"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	LocationService LocationService
	HealthService   HealthService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	hasher := utils.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, hasher, utils.NewUUIDGenerator(), logger),
		LocationService: NewLocationService(storages.LocationRepository, storages.UserRepository, logger),
		HealthService:   NewHealthService(storages.HealthChecker, cfg.Storage.DB.QueryTimeout, logger),
		AppInfoService:  appInfoService,
	}, nil
}
