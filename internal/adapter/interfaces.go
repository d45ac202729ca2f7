// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the my-group server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// session from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). A request
// that never produced a response wraps [ErrServerUnreachable].
package adapter

import (
	"context"

	"github.com/MKhiriev/my-group/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the my-group
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Health calls GET /api/health. Any HTTP response, whatever its status,
	// counts as reachable; only transport failures return an error.
	Health(ctx context.Context) error

	// Login authenticates with username and password. On success it stores
	// the returned bearer token and returns the principal carrying it.
	Login(ctx context.Context, username, password string) (models.Principal, error)

	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByCreator(ctx context.Context, creatorID string) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	SetUserStatus(ctx context.Context, userID string, isActive bool) (models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.UserProfile, error)
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error

	// Version returns the plain-text version reported by the server.
	Version(ctx context.Context) (string, error)
}
