// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It works against the "users" and "user_profiles" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] and
// bound every statement with the query timeout of the underlying [DB].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedBy,
		&u.IsActive,
		&u.CreatedOn,
		&u.FullName,
		&u.DisplayName,
		&u.EmailID,
	)
	return u, err
}

// translate maps a failed write onto the user-domain sentinels.
func (r *userRepository) translate(err error, base error) error {
	switch r.db.classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrLoginAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceViolation, err)
	case InvalidData:
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return r.db.wrapError(err, base)
}

// CreateUser persists a new account and its optional profile in one
// transaction and returns the stored row.
//
// Error handling:
//   - unique_violation (23505) → [ErrLoginAlreadyExists].
//   - foreign_key_violation (23503) → [ErrReferenceViolation] (creator or location missing).
//   - unreachable database → [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, profile *models.ProfileFields) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, r.db.wrapError(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createUser, user.UserID, user.Username, user.PasswordHash, user.Role, user.CreatedBy)

	var created models.User
	err = row.Scan(
		&created.UserID,
		&created.Username,
		&created.PasswordHash,
		&created.Role,
		&created.CreatedBy,
		&created.IsActive,
		&created.CreatedOn,
	)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")
		return models.User{}, r.translate(err, ErrExecutingStatement)
	}

	if profile != nil {
		_, err = tx.ExecContext(ctx, createUserProfile, profileArgs(created.UserID, *profile)...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("user_id", created.UserID).Msg("error inserting user profile")
			return models.User{}, r.translate(err, ErrExecutingStatement)
		}
		created.FullName = profile.FullName
		created.DisplayName = profile.DisplayName
		created.EmailID = profile.EmailID
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, r.db.wrapError(err, ErrCommitingTransaction)
	}

	return created, nil
}

// FindUserByUsername returns the active account holding username.
// Inactive and absent accounts both yield [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID returns the account with the given identifier, active or not.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		if r.db.classify(err) == InvalidData {
			// malformed uuid literal
			return models.User{}, ErrNoUserWasFound
		}
		return models.User{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	return user, nil
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.db.QueryRowContext(ctx, usernameExists, username).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.UsernameExists").Msg("error checking username")
		return false, r.db.wrapError(err, ErrExecutingQuery)
	}

	return exists, nil
}

// ListUsersByCreator lists accounts ordered by creation time and then by
// identifier, both descending. A nil creatorID lists every account.
func (r *userRepository) ListUsersByCreator(ctx context.Context, creatorID *string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(creatorID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersByCreator").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersByCreator").Msg("error querying users")
		if r.db.classify(err) == InvalidData {
			return []models.User{}, nil
		}
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsersByCreator").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersByCreator").Msg("error iterating user rows")
		return nil, r.db.wrapError(err, ErrScanningRows)
	}

	return users, nil
}

func buildListUsersQuery(creatorID *string) (string, []any, error) {
	q := psql.Select(userColumns...).
		From("users u").
		LeftJoin("user_profiles p ON p.user_id = u.id").
		OrderBy("u.created_on DESC", "u.id DESC")
	if creatorID != nil {
		q = q.Where(sq.Eq{"u.created_by": *creatorID})
	}
	return q.ToSql()
}

func (r *userRepository) UpdateUserStatus(ctx context.Context, userID string, isActive bool) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRowContext(ctx, updateUserStatus, userID, isActive))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserStatus").Str("user_id", userID).Msg("error updating user status")
		return models.User{}, r.translate(err, ErrExecutingStatement)
	}

	return user, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, updatePasswordHash, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Str("user_id", userID).Msg("error updating password")
		return r.translate(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.wrapError(err, ErrExecutingStatement)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpsertProfile inserts the profile or replaces every field of the existing one.
func (r *userRepository) UpsertProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var stored models.UserProfile
	err := r.db.QueryRowContext(ctx, upsertUserProfile, profileArgs(profile.UserID, profile.ProfileFields)...).Scan(
		&stored.UserID,
		&stored.DisplayName,
		&stored.FullName,
		&stored.EmailID,
		&stored.Gender,
		&stored.MaritalStatus,
		&stored.Nationality,
		&stored.Education,
		&stored.Profession,
		&stored.DateOfBirth,
		&stored.CountryID,
		&stored.StateID,
		&stored.DistrictID,
		&stored.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertProfile").Str("user_id", profile.UserID).Msg("error upserting profile")
		return models.UserProfile{}, r.translate(err, ErrExecutingStatement)
	}

	return stored, nil
}

// DeleteUser removes the account. Its profile goes with it, accounts it
// created block the delete with [ErrHasDependents].
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user")
		if r.db.classify(err) == ForeignKeyViolation {
			return fmt.Errorf("%w: %w", ErrHasDependents, err)
		}
		return r.db.wrapError(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.wrapError(err, ErrExecutingStatement)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func profileArgs(userID string, p models.ProfileFields) []any {
	return []any{
		userID,
		p.DisplayName,
		p.FullName,
		p.EmailID,
		p.Gender,
		p.MaritalStatus,
		p.Nationality,
		p.Education,
		p.Profession,
		p.DateOfBirth,
		p.CountryID,
		p.StateID,
		p.DistrictID,
	}
}
