// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/my-group/internal/app"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/service"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

// errorResponse is the HTTP rendering of a service error kind.
type errorResponse struct {
	status  int
	message string
	code    string
}

// errorStatusMap translates service error kinds. Every service error wraps
// exactly one kind, so lookup order does not matter. A taken username is a
// 400 like every other rejected provisioning request; the code tells it apart.
var errorStatusMap = map[error]errorResponse{
	service.ErrValidation:        {http.StatusBadRequest, app.MsgInvalidDataProvided, app.CodeValidation},
	service.ErrNotFound:          {http.StatusNotFound, app.MsgUserNotFound, app.CodeNotFound},
	service.ErrInvalidCredential: {http.StatusUnauthorized, app.MsgInvalidCredentials, app.CodeInvalidCredential},
	service.ErrDuplicateUsername: {http.StatusBadRequest, app.MsgUsernameAlreadyExists, app.CodeDuplicateUsername},
	service.ErrDuplicateCode:     {http.StatusConflict, app.MsgCodeAlreadyExists, app.CodeDuplicateCode},
	service.ErrInvalidReference:  {http.StatusBadRequest, app.MsgInvalidReference, app.CodeInvalidReference},
	service.ErrConflict:          {http.StatusConflict, app.MsgHasDependents, app.CodeConflict},
	service.ErrUnauthenticated:   {http.StatusUnauthorized, app.MsgAuthenticationRequired, app.CodeUnauthenticated},
	service.ErrForbidden:         {http.StatusForbidden, app.MsgAccessDenied, app.CodeForbidden},
	service.ErrUnavailable:       {http.StatusServiceUnavailable, app.MsgServiceUnavailable, app.CodeUnavailable},
	service.ErrInternal:          {http.StatusInternalServerError, app.MsgInternalServerError, app.CodeInternal},
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError, app.CodeInternal}

// responseFromError resolves the rendering of err. Validation errors carry
// their own message, unknown errors collapse to 500.
func responseFromError(err error) errorResponse {
	for kind, resp := range errorStatusMap {
		if errors.Is(err, kind) {
			if kind == service.ErrValidation {
				resp.message = validationMessage(err)
			}
			return resp
		}
	}
	return internalErrorResponse
}

// validationMessage drops the kind prefix from a validation chain, leaving
// the text written for the caller.
func validationMessage(err error) string {
	_, detail, found := strings.Cut(err.Error(), service.ErrValidation.Error()+": ")
	if !found || detail == "" {
		return app.MsgInvalidDataProvided
	}
	return detail
}

func writeError(w http.ResponseWriter, resp errorResponse) {
	utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Error:   resp.message,
		Code:    resp.code,
	}, resp.status)
}

// fail writes the envelope for a service error. Server-side failures are
// logged with the full chain, client mistakes only at debug level.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.failWith(w, r, err, responseFromError(err))
}

// failLocation is fail for the location routes, reporting a missing location
// instead of a missing user.
func (h *Handler) failLocation(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)
	if resp.code == app.CodeNotFound {
		resp.message = app.MsgLocationNotFound
	}
	h.failWith(w, r, err, resp)
}

func (h *Handler) failWith(w http.ResponseWriter, r *http.Request, err error, resp errorResponse) {
	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	writeError(w, resp)
}

// badRequest answers a body or path that could not be decoded.
func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg(app.MsgInvalidDataProvided)
	writeError(w, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided, app.CodeValidation})
}
