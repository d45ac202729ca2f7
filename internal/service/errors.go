// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Error kinds. Every error returned by a service wraps exactly one of them,
// callers branch with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateCode     = errors.New("code already exists")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrConflict          = errors.New("conflict")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrUnavailable       = errors.New("service unavailable")
	ErrInternal          = errors.New("internal error")
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrOfflineOperation is returned by the client session for calls that
	// need the server while it runs in offline demo mode.
	ErrOfflineOperation = errors.New("operation is not available in offline demo mode")
	// ErrNotAuthenticated is returned by the client session when no principal
	// is held.
	ErrNotAuthenticated = errors.New("not signed in")
)
