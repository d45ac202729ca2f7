// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// context keys, HMAC signing, password hashing, JWT handling,
// JSON response writing, HTTP client construction and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/my-group/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated principal of a
// request is stored.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the authenticated principal from ctx.
//
// Returns nil when the request is anonymous.
func GetPrincipalFromContext(ctx context.Context) *models.Principal {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok {
		return nil
	}
	return &p
}

// GetUserIDFromContext retrieves the identifier of the authenticated user.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	p := GetPrincipalFromContext(ctx)
	if p == nil || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}
