// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/my-group/internal/adapter"
	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/store"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

// ClientSession holds the signed-in principal of the terminal client.
//
// Init must be called once before any other method. It checks the server,
// picks the login strategy and restores a previously persisted principal.
// All methods are safe for concurrent use.
type ClientSession struct {
	adapter  adapter.ServerAdapter
	sessions store.LocalSessionRepository

	hashKey          string
	allowOfflineDemo bool

	logger *logger.Logger

	mu        sync.RWMutex
	auth      ClientAuthenticator
	principal *models.Principal
}

func NewClientSession(serverAdapter adapter.ServerAdapter, sessions store.LocalSessionRepository, cfg config.ClientApp, logger *logger.Logger) *ClientSession {
	return &ClientSession{
		adapter:          serverAdapter,
		sessions:         sessions,
		hashKey:          cfg.HashKey,
		allowOfflineDemo: cfg.AllowOfflineDemo,
		logger:           logger,
		auth:             newRemoteAuthenticator(serverAdapter),
	}
}

// Init checks the server and restores the persisted principal.
//
// The offline demo strategy is chosen only when the check could not reach the
// server at all and offline demo mode is allowed. A record with a bad
// signature is discarded. The returned error reports a local storage failure;
// the session is usable either way.
func (s *ClientSession) Init(ctx context.Context) error {
	healthErr := s.adapter.Health(ctx)

	auth := ClientAuthenticator(newRemoteAuthenticator(s.adapter))
	if healthErr != nil {
		s.logger.Warn().Err(healthErr).Msg("server health check failed")
		if errors.Is(healthErr, adapter.ErrServerUnreachable) && s.allowOfflineDemo {
			auth = newOfflineDemoAuthenticator()
		}
	}

	principal, err := s.restore(ctx, auth.Mode())

	s.mu.Lock()
	s.auth = auth
	s.principal = principal
	s.mu.Unlock()

	if principal != nil && principal.Token != "" {
		s.adapter.SetToken(principal.Token)
	}

	s.logger.Info().Str("mode", string(auth.Mode())).Bool("restored", principal != nil).Msg("client session initialized")
	return err
}

// Login authenticates with the strategy chosen during Init and replaces any
// current principal.
func (s *ClientSession) Login(ctx context.Context, username, password string) (models.Principal, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Principal{}, validationError("username and password are required")
	}

	s.mu.RLock()
	auth := s.auth
	s.mu.RUnlock()

	principal, err := auth.Authenticate(ctx, username, password)
	if err != nil {
		return models.Principal{}, err
	}

	s.mu.Lock()
	s.principal = &principal
	s.mu.Unlock()

	if principal.Token != "" {
		s.adapter.SetToken(principal.Token)
	}

	if err = s.persist(ctx, principal, auth.Mode()); err != nil {
		s.logger.Err(err).Str("func", "*ClientSession.Login").Msg("session persistence failed")
	}

	return principal, nil
}

// Logout forgets the principal locally. The server is not contacted.
func (s *ClientSession) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.principal = nil
	s.mu.Unlock()

	s.adapter.SetToken("")

	if err := s.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("%w: clearing stored session: %w", ErrInternal, err)
	}
	return nil
}

// Principal returns a copy of the signed-in principal.
func (s *ClientSession) Principal() (models.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.principal == nil {
		return models.Principal{}, false
	}
	return *s.principal, true
}

func (s *ClientSession) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal != nil
}

// Degraded reports whether the session runs on the offline demo strategy.
func (s *ClientSession) Degraded() bool {
	return s.Mode() == models.AuthModeOfflineDemo
}

func (s *ClientSession) Mode() models.AuthMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.Mode()
}

// CreateUser provisions an account beneath the signed-in principal.
func (s *ClientSession) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if _, err := s.remote(); err != nil {
		return models.User{}, err
	}

	user, err := s.adapter.CreateUser(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

// Register signs up a USER account without a principal and then signs it
// in. Registration needs the server, so it is refused in offline demo mode.
func (s *ClientSession) Register(ctx context.Context, req models.CreateUserRequest) (models.Principal, error) {
	if s.Authenticated() {
		return models.Principal{}, validationError("sign out before registering a new account")
	}
	if s.Degraded() {
		return models.Principal{}, ErrOfflineOperation
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Role = models.RoleUser
	req.CreatedBy = nil

	if _, err := s.adapter.CreateUser(ctx, req); err != nil {
		return models.Principal{}, mapAdapterError(err)
	}
	s.logger.Info().Str("username", req.Username).Msg("account registered")

	return s.Login(ctx, req.Username, req.Password)
}

// ListSubordinates lists the accounts created by the signed-in principal.
func (s *ClientSession) ListSubordinates(ctx context.Context) ([]models.User, error) {
	principal, err := s.remote()
	if err != nil {
		return nil, err
	}

	users, err := s.adapter.ListUsersByCreator(ctx, principal.UserID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return users, nil
}

// ListAllUsers lists every account. Only SUPER_ADMIN is admitted by the
// server.
func (s *ClientSession) ListAllUsers(ctx context.Context) ([]models.User, error) {
	if _, err := s.remote(); err != nil {
		return nil, err
	}

	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return users, nil
}

func (s *ClientSession) SetStatus(ctx context.Context, userID string, isActive bool) (models.User, error) {
	if _, err := s.remote(); err != nil {
		return models.User{}, err
	}

	user, err := s.adapter.SetUserStatus(ctx, userID, isActive)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (s *ClientSession) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.UserProfile, error) {
	if _, err := s.remote(); err != nil {
		return models.UserProfile{}, err
	}

	profile, err := s.adapter.UpdateProfile(ctx, req)
	if err != nil {
		return models.UserProfile{}, mapAdapterError(err)
	}
	return profile, nil
}

// ChangePassword changes the password of the signed-in principal.
func (s *ClientSession) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	principal, err := s.remote()
	if err != nil {
		return err
	}

	err = s.adapter.ChangePassword(ctx, principal.UserID, models.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	return mapAdapterError(err)
}

// ServerVersion asks the server for its version. It needs no principal.
func (s *ClientSession) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

// remote returns the principal when remote calls are possible.
func (s *ClientSession) remote() (models.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.principal == nil {
		return models.Principal{}, ErrNotAuthenticated
	}
	if s.auth.Mode() == models.AuthModeOfflineDemo {
		return models.Principal{}, ErrOfflineOperation
	}
	return *s.principal, nil
}

func (s *ClientSession) persist(ctx context.Context, principal models.Principal, mode models.AuthMode) error {
	payload, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("marshal principal: %w", err)
	}

	return s.sessions.SaveSession(ctx, models.StoredSession{
		Payload:   string(payload),
		Signature: utils.HashString(signedContent(mode, string(payload)), s.hashKey),
		Mode:      mode,
	})
}

// restore loads the persisted principal. Tampered and unreadable records are
// cleared, so are offline demo records once the server is back.
func (s *ClientSession) restore(ctx context.Context, mode models.AuthMode) (*models.Principal, error) {
	stored, err := s.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading stored session: %w", ErrInternal, err)
	}

	var principal models.Principal
	switch {
	case !utils.VerifyHashString(signedContent(stored.Mode, stored.Payload), stored.Signature, s.hashKey):
		s.logger.Warn().Msg("stored session signature mismatch, discarding")
	case stored.Mode == models.AuthModeOfflineDemo && mode != models.AuthModeOfflineDemo:
		s.logger.Info().Str("stored_mode", string(stored.Mode)).Msg("stored session belongs to another mode, discarding")
	case json.Unmarshal([]byte(stored.Payload), &principal) != nil || principal.UserID == "":
		s.logger.Warn().Msg("stored session is unreadable, discarding")
	default:
		return &principal, nil
	}

	if err = s.sessions.ClearSession(ctx); err != nil {
		return nil, fmt.Errorf("%w: clearing stored session: %w", ErrInternal, err)
	}
	return nil, nil
}

func signedContent(mode models.AuthMode, payload string) string {
	return string(mode) + ":" + payload
}
