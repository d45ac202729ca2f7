// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/my-group/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their profiles.
//
// Returned users carry PasswordHash, it is the service's duty to sanitize
// them before they leave the process.
type UserRepository interface {
	// CreateUser inserts user and, when profile is non-nil, its profile in
	// one transaction. Either both rows exist afterwards or neither does.
	CreateUser(ctx context.Context, user models.User, profile *models.ProfileFields) (models.User, error)
	// FindUserByUsername returns the active account with the given username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns the account regardless of its activity flag.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// UsernameExists reports whether any account, active or not, holds username.
	UsernameExists(ctx context.Context, username string) (bool, error)
	// ListUsersByCreator lists accounts created by creatorID, newest first.
	// A nil creatorID lists every account.
	ListUsersByCreator(ctx context.Context, creatorID *string) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, userID string, isActive bool) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
	UpsertProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
	DeleteUser(ctx context.Context, userID string) error
}

// LocationRepository persists the continent > country > state > district
// reference hierarchy.
type LocationRepository interface {
	ListContinents(ctx context.Context, filter models.LocationFilter) ([]models.Continent, error)
	CreateContinent(ctx context.Context, continent models.Continent) (models.Continent, error)
	UpdateContinent(ctx context.Context, continent models.Continent) (models.Continent, error)
	DeleteContinent(ctx context.Context, id int64) error

	ListCountries(ctx context.Context, filter models.LocationFilter) ([]models.Country, error)
	GetCountry(ctx context.Context, id int64) (models.Country, error)
	CreateCountry(ctx context.Context, country models.Country) (models.Country, error)
	UpdateCountry(ctx context.Context, country models.Country) (models.Country, error)
	DeleteCountry(ctx context.Context, id int64) error

	ListStates(ctx context.Context, filter models.LocationFilter) ([]models.State, error)
	CreateState(ctx context.Context, state models.State) (models.State, error)

	ListDistricts(ctx context.Context, filter models.LocationFilter) ([]models.District, error)
	CreateDistrict(ctx context.Context, district models.District) (models.District, error)
}

// HealthChecker reports whether the backing database answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver errors onto [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
