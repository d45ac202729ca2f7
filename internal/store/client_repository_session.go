// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] over the
// client SQLite database.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.StoredSession) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveLocalSession, session.Payload, session.Signature, string(session.Mode))
	if err != nil {
		log.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("failed to save local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.StoredSession, error) {
	log := logger.FromContext(ctx)

	var (
		session models.StoredSession
		mode    string
	)
	err := l.DB.QueryRowContext(ctx, loadLocalSession).Scan(&session.Payload, &session.Signature, &mode)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("failed to load local session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	session.Mode = models.AuthMode(mode)

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, clearLocalSession); err != nil {
		log.Err(err).Str("func", "*localSessionRepository.ClearSession").Msg("failed to clear local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
