// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/store"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

// dummyPassword is hashed once per service so that lookups of unknown
// usernames still pay for a bcrypt comparison.
const dummyPassword = "my-group-dummy-password"

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes held by the UserRepository
// and issues HS256 JWTs.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// hasher verifies passwords against stored hashes.
	hasher PasswordHasher

	// dummyHash is compared against when the account does not exist.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("dummy hash generation failed")
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		dummyHash:      dummyHash,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate checks username and password against the active account
// holding that username.
//
// Returns the sanitized user or:
//   - ErrValidation if either field is empty.
//   - ErrNotFound if no active account holds username.
//   - ErrInvalidCredential if the password does not match.
//   - ErrUnavailable if the database cannot be reached.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, validationError("username and password are required")
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = a.hasher.Compare(a.dummyHash, password)
		} else {
			log.Err(err).Str("func", "*authService.Authenticate").Str("username", username).Msg("user search by username failed")
		}
		return models.User{}, mapStoreError(err)
	}

	if err = a.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Info().Str("func", "*authService.Authenticate").Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredential
	}

	return user.Sanitized(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user id as "sub", the role, the configured issuer and
// expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w: %w", ErrInternal, ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, unknown role) is
// reported as ErrUnauthenticated so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return token, nil
}
