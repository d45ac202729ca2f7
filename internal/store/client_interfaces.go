// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/my-group/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the single signed session record of the
// terminal client.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.StoredSession) error
	// LoadSession returns [ErrLocalSessionNotFound] when nothing is stored.
	LoadSession(ctx context.Context) (models.StoredSession, error)
	ClearSession(ctx context.Context) error
}
