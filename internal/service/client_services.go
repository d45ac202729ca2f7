// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/my-group/internal/adapter"
	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/store"
)

type ClientServices struct {
	Session *ClientSession
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Session: NewClientSession(serverAdapter, localStore.SessionRepository, cfg, logger),
	}
}
