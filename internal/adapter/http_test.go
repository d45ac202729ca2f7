// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
		HealthTimeout:  time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func closedServerURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

// ─── NewHTTPServerAdapter ───

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: " https://api.example.com/ ", want: "https://api.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─── Health ───

func TestHealth_AnyResponseIsReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).Health(context.Background()))
}

func TestHealth_Unreachable(t *testing.T) {
	err := newTestAdapter(t, closedServerURL()).Health(context.Background())

	assert.ErrorIs(t, err, ErrServerUnreachable)
}

// ─── Login ───

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "corporate1", req.Username)
		assert.Equal(t, "password123", req.Password)

		name := "Corporate One"
		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Success: true,
			User:    models.User{UserID: "u-1", Username: "corporate1", Role: models.RoleCorporate, FullName: &name},
			Token:   "signed.jwt.token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	principal, err := a.Login(context.Background(), "corporate1", "password123")

	require.NoError(t, err)
	assert.Equal(t, "u-1", principal.UserID)
	assert.Equal(t, models.RoleCorporate, principal.Role)
	assert.Equal(t, "Corporate One", principal.Name)
	assert.Equal(t, "signed.jwt.token", principal.Token)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer header.jwt.token")
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Success: true, User: models.User{UserID: "u-1"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	principal, err := a.Login(context.Background(), "x", "y")

	require.NoError(t, err)
	assert.Equal(t, "header.jwt.token", principal.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials", Code: "INVALID_CREDENTIAL"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "x", "y")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "INVALID_CREDENTIAL")
	assert.Empty(t, a.Token())
}

func TestLogin_Unreachable(t *testing.T) {
	_, err := newTestAdapter(t, closedServerURL()).Login(context.Background(), "x", "y")

	assert.ErrorIs(t, err, ErrServerUnreachable)
}

// ─── authenticated calls ───

func TestCreateUser_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))

		var req models.CreateUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.RoleBranch, req.Role)

		writeJSON(t, w, http.StatusCreated, models.UserResponse{Success: true, User: models.User{UserID: "u-9", Username: req.Username, Role: req.Role}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  tkn ")

	user, err := a.CreateUser(context.Background(), models.CreateUserRequest{Username: "branch9", Password: "secret1", Role: models.RoleBranch})

	require.NoError(t, err)
	assert.Equal(t, "u-9", user.UserID)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "username already exists", Code: "DUPLICATE_USERNAME"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.CreateUserRequest{})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bad request: DUPLICATE_USERNAME", err.Error())
}

func TestListUsersByCreator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/created-by/c-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.UsersResponse{Success: true, Users: []models.User{{UserID: "a"}, {UserID: "b"}}})
	}))
	defer srv.Close()

	users, err := newTestAdapter(t, srv.URL).ListUsersByCreator(context.Background(), "c-1")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].UserID)
}

func TestListUsers_EmptyIsNonNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"users":null}`))
	}))
	defer srv.Close()

	users, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestSetUserStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/u-2/status", r.URL.Path)

		var req models.StatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.IsActive)
		assert.False(t, *req.IsActive)

		writeJSON(t, w, http.StatusOK, models.UserResponse{Success: true, User: models.User{UserID: "u-2", IsActive: false}})
	}))
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL).SetUserStatus(context.Background(), "u-2", false)

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestUpdateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/update-details", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u-3", req["userId"])

		writeJSON(t, w, http.StatusOK, models.ProfileResponse{Success: true, UserDetails: models.UserProfile{UserID: "u-3"}})
	}))
	defer srv.Close()

	name := "Three"
	profile, err := newTestAdapter(t, srv.URL).UpdateProfile(context.Background(), models.UpdateProfileRequest{
		UserID:        "u-3",
		ProfileFields: models.ProfileFields{DisplayName: &name},
	})

	require.NoError(t, err)
	assert.Equal(t, "u-3", profile.UserID)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "user not found", Code: "NOT_FOUND"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), "u-x")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangePassword_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/u-4/change-password", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ChangePassword(context.Background(), "u-4", models.ChangePasswordRequest{})

	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "forbidden: Forbidden", err.Error())
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.2\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.2", version)
}

func TestDecode_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), "u-1")

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestMapHTTPError_UnlistedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("  short and stout "))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 418: short and stout", err.Error())
}
