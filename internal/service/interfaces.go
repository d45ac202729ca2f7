// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/my-group/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies credentials and manages the bearer token lifecycle.
type AuthService interface {
	// Authenticate returns the sanitized active account matching username and
	// password. Missing, inactive and wrong-password cases are distinct kinds
	// (ErrNotFound, ErrInvalidCredential) but take comparable time.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken validates a raw JWT and returns its claims. Any failure is
	// reported as ErrUnauthenticated.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService provisions accounts and manages them along the creator
// hierarchy. A nil actor means an anonymous caller.
type UserService interface {
	CreateUser(ctx context.Context, actor *models.Principal, req models.CreateUserRequest) (models.User, error)
	// EnsureRootAdmin creates the SUPER_ADMIN account named username unless
	// the username already exists. It reports whether an account was created.
	EnsureRootAdmin(ctx context.Context, username, password string) (bool, error)
	// ListByCreator returns the accounts created directly by creatorID, newest
	// first. A nil creatorID lists every account.
	ListByCreator(ctx context.Context, actor *models.Principal, creatorID *string) ([]models.User, error)
	GetUser(ctx context.Context, actor *models.Principal, userID string) (models.User, error)
	UpdateStatus(ctx context.Context, actor *models.Principal, userID string, isActive bool) (models.User, error)
	UpsertProfile(ctx context.Context, actor *models.Principal, profile models.UserProfile) (models.UserProfile, error)
	DeleteUser(ctx context.Context, actor *models.Principal, userID string) error
	ChangePassword(ctx context.Context, actor *models.Principal, userID string, req models.ChangePasswordRequest) error
}

// LocationService manages the continent > country > state > district
// reference data. Reads are public, writes require a SUPER_ADMIN actor.
type LocationService interface {
	ListContinents(ctx context.Context) ([]models.Continent, error)
	CreateContinent(ctx context.Context, actor *models.Principal, continent models.Continent) (models.Continent, error)
	UpdateContinent(ctx context.Context, actor *models.Principal, continent models.Continent) (models.Continent, error)
	DeleteContinent(ctx context.Context, actor *models.Principal, id int64) error

	ListCountries(ctx context.Context, continentID *int64) ([]models.Country, error)
	GetCountry(ctx context.Context, id int64) (models.Country, error)
	CreateCountry(ctx context.Context, actor *models.Principal, country models.Country) (models.Country, error)
	UpdateCountry(ctx context.Context, actor *models.Principal, country models.Country) (models.Country, error)
	DeleteCountry(ctx context.Context, actor *models.Principal, id int64) error

	ListStates(ctx context.Context, countryID int64) ([]models.State, error)
	CreateState(ctx context.Context, actor *models.Principal, state models.State) (models.State, error)

	ListDistricts(ctx context.Context, stateID int64) ([]models.District, error)
	CreateDistrict(ctx context.Context, actor *models.Principal, district models.District) (models.District, error)

	// Hierarchy returns the active rows of every level nested under their
	// parents.
	Hierarchy(ctx context.Context) ([]models.ContinentNode, error)
}

// HealthService reports backend dependency status.
type HealthService interface {
	// DatabaseStatus returns nil when the database answers a ping within the
	// configured timeout.
	DatabaseStatus(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
