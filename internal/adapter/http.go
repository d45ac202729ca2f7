// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

const defaultHealthTimeout = 3 * time.Second

type httpServerAdapter struct {
	client *utils.HTTPClient

	healthTimeout time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	healthTimeout := adapterCfg.HealthTimeout
	if healthTimeout <= 0 {
		healthTimeout = defaultHealthTimeout
	}

	return &httpServerAdapter{
		client:        utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		healthTimeout: healthTimeout,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Health implements [ServerAdapter]. The check uses its own, shorter timeout.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.healthTimeout)
	defer cancel()

	if _, err := h.client.R().SetContext(ctx).Get("/api/health"); err != nil {
		return unreachable("health", err)
	}
	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. The token is read from the envelope and, when absent
// there, from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.Principal, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: username, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return models.Principal{}, unreachable("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Principal{}, err
	}

	var body models.LoginResponse
	if err = decode(resp, &body); err != nil {
		return models.Principal{}, err
	}

	token := body.Token
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.Principal{}, fmt.Errorf("%w: login parse bearer token: %w", ErrUnexpectedResponse, err)
		}
	}

	h.SetToken(token)

	principal := models.NewPrincipal(body.User)
	principal.Token = token
	return principal, nil
}

// CreateUser implements [ServerAdapter]. It POSTs to /api/users with the
// current bearer token, if any.
func (h *httpServerAdapter) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users")
	if err != nil {
		return models.User{}, unreachable("create user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body models.UserResponse
	if err = decode(resp, &body); err != nil {
		return models.User{}, err
	}
	return body.User, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users")
	return h.users("list users", resp, err)
}

func (h *httpServerAdapter) ListUsersByCreator(ctx context.Context, creatorID string) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("creatorId", creatorID).
		Get("/api/users/created-by/{creatorId}")
	return h.users("list users by creator", resp, err)
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("userId", userID).
		Get("/api/users/{userId}")
	if err != nil {
		return models.User{}, unreachable("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body models.UserResponse
	if err = decode(resp, &body); err != nil {
		return models.User{}, err
	}
	return body.User, nil
}

// SetUserStatus implements [ServerAdapter] via PUT /api/users/{userId}/status.
func (h *httpServerAdapter) SetUserStatus(ctx context.Context, userID string, isActive bool) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("userId", userID).
		SetBody(models.StatusRequest{IsActive: &isActive}).
		Put("/api/users/{userId}/status")
	if err != nil {
		return models.User{}, unreachable("set user status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body models.UserResponse
	if err = decode(resp, &body); err != nil {
		return models.User{}, err
	}
	return body.User, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.UserProfile, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/users/update-details")
	if err != nil {
		return models.UserProfile{}, unreachable("update profile", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	var body models.ProfileResponse
	if err = decode(resp, &body); err != nil {
		return models.UserProfile{}, err
	}
	return body.UserDetails, nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("userId", userID).
		SetBody(req).
		Put("/api/users/{userId}/change-password")
	if err != nil {
		return unreachable("change password", err)
	}
	return mapHTTPError(resp)
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", unreachable("version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) users(op string, resp *resty.Response, err error) ([]models.User, error) {
	if err != nil {
		return nil, unreachable(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.UsersResponse
	if err = decode(resp, &body); err != nil {
		return nil, err
	}
	if body.Users == nil {
		body.Users = []models.User{}
	}
	return body.Users, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decode(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

func unreachable(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrServerUnreachable, op, err)
}
