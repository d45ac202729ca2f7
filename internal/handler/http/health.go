// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/my-group/internal/app"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

// health always answers 200 while the process serves requests. Database
// reachability is reported in the body.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Success:   true,
		Message:   app.MsgServerIsRunning,
		Database:  models.DatabaseConnected,
		Timestamp: time.Now().UTC(),
	}

	if err := h.services.HealthService.DatabaseStatus(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("database is not reachable")
		resp.Database = models.DatabaseDisconnected
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
