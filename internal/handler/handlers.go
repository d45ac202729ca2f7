// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the server.
package handler

import (
	"errors"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/handler/grpc"
	"github.com/MKhiriev/my-group/internal/handler/http"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/service"
)

// errNoHandlersAreCreated means neither transport address is configured.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// Handlers holds one handler per enabled transport. A nil field means the
// transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
