// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-group/internal/app"
	"github.com/MKhiriev/my-group/internal/service"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

// createUser provisions an account. Anonymous callers may only self-register,
// authenticated callers provision the role directly below their own.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		badRequest(w, r, err)
		return
	}

	actor := utils.GetPrincipalFromContext(r.Context())
	user, err := h.services.UserService.CreateUser(r.Context(), actor, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, Message: app.MsgUserCreated, User: user}, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetPrincipalFromContext(r.Context())
	users, err := h.services.UserService.ListByCreator(r.Context(), actor, nil)
	h.writeUsers(w, r, users, err)
}

func (h *Handler) listUsersByCreator(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorId")
	actor := utils.GetPrincipalFromContext(r.Context())
	users, err := h.services.UserService.ListByCreator(r.Context(), actor, &creatorID)
	h.writeUsers(w, r, users, err)
}

func (h *Handler) writeUsers(w http.ResponseWriter, r *http.Request, users []models.User, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	utils.WriteJSON(w, models.UsersResponse{Success: true, Users: users}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetPrincipalFromContext(r.Context())
	user, err := h.services.UserService.GetUser(r.Context(), actor, chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, http.StatusOK)
}

func (h *Handler) updateUserStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	if req.IsActive == nil {
		h.fail(w, r, fmt.Errorf("%w: isActive is required", service.ErrValidation))
		return
	}

	actor := utils.GetPrincipalFromContext(r.Context())
	user, err := h.services.UserService.UpdateStatus(r.Context(), actor, chi.URLParam(r, "userId"), *req.IsActive)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, Message: app.MsgStatusUpdated, User: user}, http.StatusOK)
}

// updateUserDetails creates or replaces the profile named by userId.
func (h *Handler) updateUserDetails(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		badRequest(w, r, err)
		return
	}

	actor := utils.GetPrincipalFromContext(r.Context())
	profile, err := h.services.UserService.UpsertProfile(r.Context(), actor, req.Profile())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, Message: app.MsgProfileUpdated, UserDetails: profile}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetPrincipalFromContext(r.Context())
	if err := h.services.UserService.DeleteUser(r.Context(), actor, chi.URLParam(r, "userId")); err != nil {
		h.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgUserDeleted}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		badRequest(w, r, err)
		return
	}

	actor := utils.GetPrincipalFromContext(r.Context())
	if err := h.services.UserService.ChangePassword(r.Context(), actor, chi.URLParam(r, "userId"), req); err != nil {
		h.fail(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgPasswordChanged}, http.StatusOK)
}
