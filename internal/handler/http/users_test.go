// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/my-group/internal/service"
	"github.com/MKhiriev/my-group/models"
)

// ─── POST /api/users ───

func TestCreateUser_Anonymous(t *testing.T) {
	router, deps := newTestRouter(t)
	req := models.CreateUserRequest{Username: "visitor", Password: "secret1", Role: models.RoleUser}

	deps.users.EXPECT().CreateUser(gomock.Any(), gomock.Nil(), req).
		Return(models.User{UserID: branchID, Username: "visitor", Role: models.RoleUser, IsActive: true}, nil)

	rr := doRequest(router, http.MethodPost, "/api/users", `{"username":"visitor","password":"secret1","role":"USER"}`, false)

	require.Equal(t, http.StatusCreated, rr.Code)
	var body models.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "visitor", body.User.Username)
}

func TestCreateUser_AuthenticatedActorIsPassed(t *testing.T) {
	router, deps := newTestRouter(t)
	actor := deps.expectToken(rootID, models.RoleSuperAdmin)

	deps.users.EXPECT().CreateUser(gomock.Any(), actor, gomock.Any()).
		Return(models.User{UserID: corpID, Role: models.RoleCorporate}, nil)

	rr := doRequest(router, http.MethodPost, "/api/users", `{"username":"corporate1","password":"secret1","role":"CORPORATE"}`, true)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateUser_BadTokenIsNotAnonymous(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(models.Token{}, service.ErrUnauthenticated)

	rr := doRequest(router, http.MethodPost, "/api/users", `{"username":"visitor","password":"secret1","role":"USER"}`, true)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateUser_DuplicateUsernameIsBadRequest(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.users.EXPECT().CreateUser(gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("%w: login already exists", service.ErrDuplicateUsername))

	rr := doRequest(router, http.MethodPost, "/api/users", `{"username":"visitor","password":"secret1","role":"USER"}`, false)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"username already exists","code":"DUPLICATE_USERNAME"}`, rr.Body.String())
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{name: "role rule", err: fmt.Errorf("%w: SUPER_ADMIN cannot create BRANCH", service.ErrForbidden), wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN", wantError: "access denied"},
		{name: "duplicate", err: fmt.Errorf("%w: login already exists", service.ErrDuplicateUsername), wantStatus: http.StatusBadRequest, wantCode: "DUPLICATE_USERNAME", wantError: "username already exists"},
		{name: "validation keeps message", err: fmt.Errorf("%w: password must be at least 6 characters", service.ErrValidation), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR", wantError: "password must be at least 6 characters"},
		{name: "bad location", err: fmt.Errorf("%w: fk", service.ErrInvalidReference), wantStatus: http.StatusBadRequest, wantCode: "INVALID_REFERENCE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rr := doRequest(router, http.MethodPost, "/api/users", `{"username":"x","password":"y"}`, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body.Error)
			}
		})
	}
}

// ─── listings ───

func TestListUsersByCreator_BothPaths(t *testing.T) {
	for _, path := range []string{"/api/users/created-by/" + corpID, "/api/users/creator/" + corpID} {
		t.Run(path, func(t *testing.T) {
			router, deps := newTestRouter(t)
			actor := deps.expectToken(corpID, models.RoleCorporate)
			creator := corpID

			deps.users.EXPECT().ListByCreator(gomock.Any(), actor, &creator).
				Return([]models.User{{UserID: branchID}}, nil)

			rr := doRequest(router, http.MethodGet, path, "", true)

			require.Equal(t, http.StatusOK, rr.Code)
			var body models.UsersResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			require.Len(t, body.Users, 1)
			assert.Equal(t, branchID, body.Users[0].UserID)
		})
	}
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	router, deps := newTestRouter(t)
	actor := deps.expectToken(rootID, models.RoleSuperAdmin)

	deps.users.EXPECT().ListByCreator(gomock.Any(), actor, gomock.Nil()).Return(nil, nil)

	rr := doRequest(router, http.MethodGet, "/api/users", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"users":[]}`, rr.Body.String())
}

func TestListUsers_Forbidden(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.expectToken(branchID, models.RoleBranch)

	deps.users.EXPECT().ListByCreator(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrForbidden)

	rr := doRequest(router, http.MethodGet, "/api/users", "", true)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

// ─── single user ───

func TestGetUser(t *testing.T) {
	router, deps := newTestRouter(t)
	actor := deps.expectToken(rootID, models.RoleSuperAdmin)

	deps.users.EXPECT().GetUser(gomock.Any(), actor, corpID).Return(models.User{UserID: corpID}, nil)

	rr := doRequest(router, http.MethodGet, "/api/users/"+corpID, "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, corpID, body.User.UserID)
}

func TestGetUser_NotFound(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.expectToken(rootID, models.RoleSuperAdmin)

	deps.users.EXPECT().GetUser(gomock.Any(), gomock.Any(), "missing").Return(models.User{}, service.ErrNotFound)

	rr := doRequest(router, http.MethodGet, "/api/users/missing", "", true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "user not found", decodeError(t, rr).Error)
}

func TestUpdateUserStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "camelCase field", body: `{"isActive":false}`},
		{name: "snake_case field", body: `{"is_active":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			actor := deps.expectToken(corpID, models.RoleCorporate)

			deps.users.EXPECT().UpdateStatus(gomock.Any(), actor, branchID, false).
				Return(models.User{UserID: branchID, IsActive: false}, nil)

			rr := doRequest(router, http.MethodPut, "/api/users/"+branchID+"/status", tt.body, true)

			require.Equal(t, http.StatusOK, rr.Code)
			var body models.UserResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.False(t, body.User.IsActive)
		})
	}
}

func TestUpdateUserStatus_MissingFlag(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.expectToken(corpID, models.RoleCorporate)

	rr := doRequest(router, http.MethodPut, "/api/users/"+branchID+"/status", `{}`, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "isActive is required", decodeError(t, rr).Error)
}

func TestUpdateUserDetails(t *testing.T) {
	router, deps := newTestRouter(t)
	actor := deps.expectToken(branchID, models.RoleBranch)
	fullName := "Branch One"

	deps.users.EXPECT().UpsertProfile(gomock.Any(), actor, models.UserProfile{
		UserID:        branchID,
		ProfileFields: models.ProfileFields{FullName: &fullName},
	}).Return(models.UserProfile{UserID: branchID, ProfileFields: models.ProfileFields{FullName: &fullName}}, nil)

	rr := doRequest(router, http.MethodPut, "/api/users/update-details", `{"userId":"`+branchID+`","full_name":"Branch One"}`, true)

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, branchID, body.UserDetails.UserID)
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "has dependents", err: fmt.Errorf("%w: fk", service.ErrConflict), wantStatus: http.StatusConflict},
		{name: "missing", err: service.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			actor := deps.expectToken(rootID, models.RoleSuperAdmin)

			deps.users.EXPECT().DeleteUser(gomock.Any(), actor, corpID).Return(tt.err)

			rr := doRequest(router, http.MethodDelete, "/api/users/"+corpID, "", true)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestChangePassword(t *testing.T) {
	router, deps := newTestRouter(t)
	actor := deps.expectToken(corpID, models.RoleCorporate)

	deps.users.EXPECT().ChangePassword(gomock.Any(), actor, corpID, models.ChangePasswordRequest{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	}).Return(nil)

	rr := doRequest(router, http.MethodPut, "/api/users/"+corpID+"/change-password", `{"current_password":"old-pass","new_password":"new-pass"}`, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"password changed successfully"}`, rr.Body.String())
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.expectToken(corpID, models.RoleCorporate)

	deps.users.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), corpID, gomock.Any()).Return(service.ErrInvalidCredential)

	rr := doRequest(router, http.MethodPut, "/api/users/"+corpID+"/change-password", `{"current_password":"x","new_password":"new-pass"}`, true)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "INVALID_CREDENTIAL", decodeError(t, rr).Code)
}
