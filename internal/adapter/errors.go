// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors returned by the adapter. Status errors are wrapped with the
// envelope code of the response as "<sentinel>: <code>".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrServerUnreachable reports that no HTTP response was received at all.
	ErrServerUnreachable = errors.New("server unreachable")
	// ErrUnexpectedResponse reports a 2xx body that cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response")
)
