// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/models"
)

func newTestLocationRepo(t *testing.T) (*locationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &locationRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}, mock
}

var continentColumns = []string{"id", "code", "name", "display_order", "is_active", "created_at", "updated_at"}

func TestListContinents_ActiveOnly(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM continents WHERE is_active = $1 ORDER BY display_order, name")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(continentColumns).
			AddRow(1, "AF", "Africa", 1, true, now, now).
			AddRow(3, "AS", "Asia", 3, true, now, now))

	continents, err := repo.ListContinents(context.Background(), models.LocationFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, continents, 2)
	assert.Equal(t, "AS", continents[1].Code)
}

func TestListCountries_ByContinent(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	continentID := int64(3)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.continent_id = $1")).
		WithArgs(continentID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "continent_id", "continent_name", "code", "name", "currency", "flag_image", "iso_code", "nationality",
			"display_order", "is_active", "created_at", "updated_at",
		}).AddRow(10, continentID, "Asia", "IN", "India", "INR", nil, "IND", "Indian", 1, true, time.Now(), time.Now()))

	countries, err := repo.ListCountries(context.Background(), models.LocationFilter{ParentID: &continentID})
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Asia", countries[0].ContinentName)
	require.NotNil(t, countries[0].Currency)
	assert.Equal(t, "INR", *countries[0].Currency)
	assert.Nil(t, countries[0].FlagImage)
	assert.Equal(t, "IND", *countries[0].ISOCode)
	assert.Equal(t, "Indian", *countries[0].Nationality)
}

func TestUpdateCountry_TouchesUpdatedAt(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	currency := "INR"

	mock.ExpectQuery(regexp.QuoteMeta("nationality = $8, display_order = $9, is_active = $10, updated_at = now()")).
		WithArgs(int64(10), int64(3), "IN", "India", &currency, nil, nil, nil, 2, true).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "continent_id", "code", "name", "currency", "flag_image", "iso_code", "nationality",
			"display_order", "is_active", "created_at", "updated_at",
		}).AddRow(10, 3, "IN", "India", "INR", nil, nil, nil, 2, true, created, updated))

	country, err := repo.UpdateCountry(context.Background(), models.Country{
		ID: 10, ContinentID: 3, Code: "IN", Name: "India", Currency: &currency, DisplayOrder: 2, IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, updated, country.UpdatedAt)
	assert.True(t, country.UpdatedAt.After(country.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContinent_TouchesUpdatedAt(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("is_active = $5, updated_at = now()")).
		WithArgs(int64(4), "EU", "Europe", 4, true).
		WillReturnRows(sqlmock.NewRows(continentColumns).AddRow(4, "EU", "Europe", 4, true, now, now))

	continent, err := repo.UpdateContinent(context.Background(), models.Continent{ID: 4, Code: "EU", Name: "Europe", DisplayOrder: 4, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, now, continent.UpdatedAt)
}

func TestCreateContinent_DuplicateName(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO continents")).WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateContinent(context.Background(), models.Continent{Code: "EU2", Name: "Europe"})
	assert.ErrorIs(t, err, ErrLocationAlreadyExists)
}

func TestGetCountry_NotFound(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM countries c")).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCountry(context.Background(), 42)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestCreateCountry_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"duplicate code", pgError(pgerrcode.UniqueViolation), ErrLocationAlreadyExists},
		{"unknown continent", pgError(pgerrcode.ForeignKeyViolation), ErrReferenceViolation},
		{"unavailable", pgError(pgerrcode.ConnectionException), ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestLocationRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO countries")).WillReturnError(tt.dbErr)

			_, err := repo.CreateCountry(context.Background(), models.Country{ContinentID: 99, Code: "IN", Name: "India"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateState(t *testing.T) {
	repo, mock := newTestLocationRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO states")).
		WithArgs(int64(10), "KA", "Karnataka", 0, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "country_id", "code", "name", "display_order", "is_active", "created_at"}).
			AddRow(100, 10, "KA", "Karnataka", 0, true, time.Now()))

	state, err := repo.CreateState(context.Background(), models.State{CountryID: 10, Code: "KA", Name: "Karnataka", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(100), state.ID)
}

func TestListDistricts_ByState(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	stateID := int64(100)

	mock.ExpectQuery(regexp.QuoteMeta("FROM districts WHERE state_id = $1")).
		WithArgs(stateID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state_id", "code", "name", "display_order", "is_active", "created_at"}))

	districts, err := repo.ListDistricts(context.Background(), models.LocationFilter{ParentID: &stateID})
	require.NoError(t, err)
	assert.Empty(t, districts)
}

func TestDeleteContinent_Conflict(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM continents")).WithArgs(int64(3)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	assert.ErrorIs(t, repo.DeleteContinent(context.Background(), 3), ErrHasDependents)
}

func TestDeleteCountry_NotFound(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM countries")).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteCountry(context.Background(), 3), ErrLocationNotFound)
}

func TestUpdateContinent_NotFound(t *testing.T) {
	repo, mock := newTestLocationRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE continents")).
		WillReturnRows(sqlmock.NewRows(continentColumns))

	_, err := repo.UpdateContinent(context.Background(), models.Continent{ID: 77, Code: "XX", Name: "Nowhere"})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}
