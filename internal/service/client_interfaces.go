// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/my-group/models"
)

// ClientAuthenticator is a login strategy of the client session. The session
// picks one strategy during Init and keeps it for its lifetime.
type ClientAuthenticator interface {
	// Mode names the strategy. It is persisted with the session so that an
	// offline demo principal is never mistaken for a remote one.
	Mode() models.AuthMode

	// Authenticate verifies username and password. Missing accounts report
	// ErrNotFound, wrong passwords ErrInvalidCredential.
	Authenticate(ctx context.Context, username, password string) (models.Principal, error)
}
