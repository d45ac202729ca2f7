// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by
// [PostgresErrorClassifier.Classify]. Repositories translate it into the
// store sentinel errors.
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation is a unique constraint violation (23505).
	UniqueViolation

	// ForeignKeyViolation is a foreign key violation (23503), raised both by
	// writes pointing at missing rows and by deletes of referenced rows.
	ForeignKeyViolation

	// InvalidData covers data exceptions (class 22) and the not-null and
	// check constraint violations.
	InvalidData

	// Unavailable means the database could not be reached or did not answer
	// in time.
	Unavailable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// accessed through the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Deadlines, broken connections, network errors and pgx connect failures
// are [Unavailable]. Server-side errors are classified by SQLSTATE via
// [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		pgconn.Timeout(err) {
		return Unavailable
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Unavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		return InvalidData
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.TooManyConnections:
		return Unavailable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code):
		return Unavailable
	case pgerrcode.IsDataException(pgErr.Code):
		return InvalidData
	}

	return Unclassified
}
