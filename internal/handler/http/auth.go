// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/my-group/internal/app"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/service"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

// login verifies credentials and issues a bearer token. The token is returned
// in the envelope and in the Authorization header. A missing account and a
// wrong password produce the same response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		badRequest(w, r, err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidCredential) {
			log.Info().Str("username", req.Username).Msg("login rejected")
			writeError(w, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials, app.CodeInvalidCredential})
			return
		}
		h.fail(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Str("role", user.Role.String()).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: app.MsgLoginSuccessful,
		User:    user,
		Token:   token.SignedString,
	}, http.StatusOK)
}
