// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/service"
	"github.com/MKhiriev/my-group/internal/tui"
	"github.com/MKhiriev/my-group/models"
)

const (
	corpID    = "0190a1b2-0000-7000-8000-000000000002"
	branchID  = "0190a1b2-0000-7000-8000-000000000003"
	visitorID = "0190a1b2-0000-7000-8000-000000000004"
	token     = "jwt-token"
)

type fakeUI struct {
	runs int
	err  error
}

func (f *fakeUI) Run(context.Context) error {
	f.runs++
	return f.err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+token
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{Success: true, Database: models.DatabaseConnected})
	})
	mux.HandleFunc("GET /api/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.2.3"))
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username == "visitor" && req.Password == "secret1" {
			writeJSON(w, http.StatusOK, models.LoginResponse{
				Success: true,
				User:    models.User{UserID: visitorID, Username: "visitor", Role: models.RoleUser, IsActive: true},
				Token:   "visitor-token",
			})
			return
		}
		if req.Username != "corporate1" || req.Password != "password123" {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials", Code: "INVALID_CREDENTIAL"})
			return
		}
		writeJSON(w, http.StatusOK, models.LoginResponse{
			Success: true,
			User:    models.User{UserID: corpID, Username: "corporate1", Role: models.RoleCorporate, IsActive: true},
			Token:   token,
		})
	})
	mux.HandleFunc("GET /api/users/created-by/{creatorId}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required", Code: "UNAUTHENTICATED"})
			return
		}
		if r.PathValue("creatorId") != corpID {
			writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "access denied", Code: "FORBIDDEN"})
			return
		}
		writeJSON(w, http.StatusOK, models.UsersResponse{Success: true, Users: []models.User{
			{UserID: branchID, Username: "branch1", Role: models.RoleBranch, IsActive: true},
		}})
	})
	mux.HandleFunc("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if r.Header.Get("Authorization") == "" && req.Role != models.RoleUser {
			writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "access denied", Code: "FORBIDDEN"})
			return
		}
		if req.Username == "corporate1" {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "username already exists", Code: "DUPLICATE_USERNAME"})
			return
		}
		writeJSON(w, http.StatusCreated, models.UserResponse{Success: true, User: models.User{
			UserID: visitorID, Username: req.Username, Role: req.Role, IsActive: true,
		}})
	})
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "access denied", Code: "FORBIDDEN"})
	})
	mux.HandleFunc("PUT /api/users/{userId}/status", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required", Code: "UNAUTHENTICATED"})
			return
		}
		var req models.StatusRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, http.StatusOK, models.UserResponse{Success: true, User: models.User{
			UserID: r.PathValue("userId"), Username: "branch1", Role: models.RoleBranch, IsActive: req.IsActive != nil && *req.IsActive,
		}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type testEnv struct {
	serverURL string
	dsn       string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		serverURL: newTestServer(t).URL,
		dsn:       filepath.Join(t.TempDir(), "client.db"),
	}
}

type result struct {
	out    string
	errOut string
	err    error
	ui     *fakeUI
}

func (e *testEnv) run(t *testing.T, args ...string) result {
	t.Helper()

	cfg := &config.ClientConfig{
		App: config.ClientApp{HashKey: "test-hash-key"},
		Adapter: config.ClientAdapter{
			HTTPAddress:    e.serverURL,
			RequestTimeout: 5 * time.Second,
			HealthTimeout:  time.Second,
		},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: e.dsn}},
		Args:    args,
	}

	var out, errOut bytes.Buffer
	app, err := newApp(context.Background(), cfg, logger.Nop(), &out, &errOut)
	require.NoError(t, err)

	ui := &fakeUI{err: tui.ErrUserQuit}
	app.ui = ui

	err = app.run(context.Background())
	return result{out: out.String(), errOut: errOut.String(), err: err, ui: ui}
}

// ─── commands ───

func TestApp_LoginPersistsAcrossRuns(t *testing.T) {
	env := newTestEnv(t)

	res := env.run(t, "login", "corporate1", "password123")
	require.NoError(t, res.err)
	assert.Equal(t, "signed in as corporate1 (Corporate)\n", res.out)

	res = env.run(t, "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, corpID)
	assert.Contains(t, res.out, "Corporate")
	assert.Contains(t, res.out, "remote")
}

func TestApp_LoginFailure(t *testing.T) {
	env := newTestEnv(t)

	res := env.run(t, "login", "corporate1", "wrong")

	assert.ErrorIs(t, res.err, service.ErrInvalidCredential)
	assert.Equal(t, "error: invalid credentials\n", res.errOut)

	res = env.run(t, "whoami")
	require.NoError(t, res.err)
	assert.Equal(t, "not signed in\n", res.out)
}

func TestApp_ListAndStatus(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.run(t, "login", "corporate1", "password123").err)

	res := env.run(t, "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "USERNAME")
	assert.Contains(t, res.out, "branch1")
	assert.Contains(t, res.out, branchID)

	res = env.run(t, "status", branchID, "inactive")
	require.NoError(t, res.err)
	assert.Equal(t, "branch1 is now inactive\n", res.out)

	res = env.run(t, "list", "all")
	assert.ErrorIs(t, res.err, service.ErrForbidden)
	assert.Equal(t, "error: access denied\n", res.errOut)
}

func TestApp_RegisterSignsIn(t *testing.T) {
	env := newTestEnv(t)

	res := env.run(t, "register", "visitor", "secret1", "Visiting", "User")
	require.NoError(t, res.err)
	assert.Equal(t, "registered and signed in as visitor (User)\n", res.out)

	res = env.run(t, "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, visitorID)
}

func TestApp_RegisterDuplicate(t *testing.T) {
	res := newTestEnv(t).run(t, "register", "corporate1", "secret1")

	assert.ErrorIs(t, res.err, service.ErrDuplicateUsername)
	assert.Equal(t, "error: username already exists\n", res.errOut)
}

func TestApp_RequiresSignIn(t *testing.T) {
	env := newTestEnv(t)

	res := env.run(t, "list")

	assert.ErrorIs(t, res.err, service.ErrNotAuthenticated)
	assert.Equal(t, "error: session expired, please sign in again\n", res.errOut)
}

func TestApp_Logout(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.run(t, "login", "corporate1", "password123").err)

	res := env.run(t, "logout")
	require.NoError(t, res.err)
	assert.Equal(t, "signed out\n", res.out)

	res = env.run(t, "whoami")
	assert.Equal(t, "not signed in\n", res.out)
}

func TestApp_Version(t *testing.T) {
	res := newTestEnv(t).run(t, "version")

	require.NoError(t, res.err)
	assert.Equal(t, "v1.2.3\n", res.out)
}

func TestApp_DefaultRunsTUI(t *testing.T) {
	env := newTestEnv(t)

	for _, args := range [][]string{nil, {"tui"}} {
		res := env.run(t, args...)

		require.NoError(t, res.err)
		assert.Equal(t, 1, res.ui.runs)
	}
}

func TestApp_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown command", args: []string{"frobnicate"}, wantErr: ErrUnknownCommand},
		{name: "login without password", args: []string{"login", "corporate1"}, wantErr: ErrUsage},
		{name: "bad status", args: []string{"status", branchID, "maybe"}, wantErr: ErrUsage},
		{name: "list extra args", args: []string{"list", "some", "more"}, wantErr: ErrUsage},
		{name: "register without password", args: []string{"register", "visitor"}, wantErr: ErrUsage},
		{name: "create-user missing role", args: []string{"create-user", "branch9", "secret1"}, wantErr: ErrUsage},
	}

	env := newTestEnv(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := env.run(t, tt.args...)

			assert.ErrorIs(t, res.err, tt.wantErr)
			assert.Contains(t, res.errOut, "usage: my-group-client")
		})
	}
}

func TestApp_Help(t *testing.T) {
	res := newTestEnv(t).run(t, "help")

	require.NoError(t, res.err)
	assert.Contains(t, res.out, "create-user <username> <password> <role>")
}

// ─── helpers ───

func TestRedactArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "empty", args: nil, want: []string{}},
		{name: "login", args: []string{"login", "corporate1", "secret"}, want: []string{"login", "corporate1", "***"}},
		{name: "create-user", args: []string{"create-user", "b", "secret", "BRANCH"}, want: []string{"create-user", "b", "***", "BRANCH"}},
		{name: "register", args: []string{"register", "visitor", "secret", "Full", "Name"}, want: []string{"register", "visitor", "***", "Full", "Name"}},
		{name: "list untouched", args: []string{"list", "all"}, want: []string{"list", "all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactArgs(tt.args)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
			if len(tt.args) > 2 {
				assert.NotEqual(t, "***", tt.args[2])
			}
		})
	}
}
