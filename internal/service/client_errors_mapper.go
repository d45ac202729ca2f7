// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/my-group/internal/adapter"
	"github.com/MKhiriev/my-group/internal/app"
)

// codeKinds maps the envelope code of a failed response to a service kind.
var codeKinds = map[string]error{
	app.CodeValidation:        ErrValidation,
	app.CodeNotFound:          ErrNotFound,
	app.CodeInvalidCredential: ErrInvalidCredential,
	app.CodeDuplicateUsername: ErrDuplicateUsername,
	app.CodeDuplicateCode:     ErrDuplicateCode,
	app.CodeInvalidReference:  ErrInvalidReference,
	app.CodeConflict:          ErrConflict,
	app.CodeUnauthenticated:   ErrUnauthenticated,
	app.CodeForbidden:         ErrForbidden,
	app.CodeUnavailable:       ErrUnavailable,
	app.CodeInternal:          ErrInternal,
}

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if kind, ok := codeKinds[extractBody(err)]; ok {
		return fmt.Errorf("%w: %w", kind, err)
	}

	var kind error
	switch {
	case errors.Is(err, adapter.ErrServerUnreachable), errors.Is(err, adapter.ErrServiceUnavailable):
		kind = ErrUnavailable
	case errors.Is(err, adapter.ErrBadRequest):
		kind = ErrValidation
	case errors.Is(err, adapter.ErrUnauthorized):
		kind = ErrUnauthenticated
	case errors.Is(err, adapter.ErrForbidden):
		kind = ErrForbidden
	case errors.Is(err, adapter.ErrNotFound):
		kind = ErrNotFound
	case errors.Is(err, adapter.ErrConflict):
		kind = ErrConflict
	default:
		kind = ErrInternal
	}

	return fmt.Errorf("%w: %w", kind, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// DescribeLoginError renders a failed login. Missing accounts and wrong
// passwords read the same.
func DescribeLoginError(err error) string {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidCredential) {
		return app.MsgInvalidCredentials
	}
	return DescribeError(err)
}

// DescribeError renders err for the person at the terminal.
func DescribeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredential):
		return app.MsgInvalidCredentials
	case errors.Is(err, ErrNotFound):
		return app.MsgUserNotFound
	case errors.Is(err, ErrOfflineOperation):
		return ErrOfflineOperation.Error()
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrUnauthenticated):
		return "session expired, please sign in again"
	case errors.Is(err, ErrValidation):
		return err.Error()
	case errors.Is(err, ErrDuplicateUsername):
		return app.MsgUsernameAlreadyExists
	case errors.Is(err, ErrForbidden):
		return app.MsgAccessDenied
	case errors.Is(err, ErrInvalidReference):
		return app.MsgInvalidReference
	case errors.Is(err, ErrConflict):
		return app.MsgHasDependents
	case errors.Is(err, ErrUnavailable):
		return "server is unreachable, try again later"
	default:
		return app.MsgInternalServerError
	}
}
