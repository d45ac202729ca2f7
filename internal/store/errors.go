// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an account with the same
	// username already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrReferenceViolation is returned when a write points at a creator,
	// user or location row that does not exist.
	ErrReferenceViolation = errors.New("referenced row does not exist")

	// ErrHasDependents is returned when a delete is blocked by rows that
	// still reference the target.
	ErrHasDependents = errors.New("row is still referenced")

	// ErrInvalidValue is returned when the database rejects a value
	// (malformed date, check constraint, value too long).
	ErrInvalidValue = errors.New("invalid value")

	// ErrLocationAlreadyExists is returned when a location code is already taken
	// within its parent.
	ErrLocationAlreadyExists = errors.New("location code already exists")

	// ErrLocationNotFound is returned when a location row does not exist.
	ErrLocationNotFound = errors.New("location was not found")

	// ErrStoreUnavailable is returned when the database cannot be reached,
	// refuses connections, or does not answer within the query timeout.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrLocalSessionNotFound is returned when the client has no persisted session.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
