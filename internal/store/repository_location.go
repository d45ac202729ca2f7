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

// locationRepository is the PostgreSQL-backed implementation of [LocationRepository].
type locationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLocationRepository constructs a [LocationRepository] backed by db.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *locationRepository) translate(err error, base error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrLocationNotFound
	}
	switch r.db.classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrLocationAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceViolation, err)
	case InvalidData:
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return r.db.wrapError(err, base)
}

// listRows runs a squirrel SELECT and scans every row with scan.
func listRows[T any](ctx context.Context, db *DB, funcName string, builder sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, db.wrapError(err, ErrScanningRows)
	}

	return result, nil
}

func applyFilter(b sq.SelectBuilder, parentColumn, activeColumn string, filter models.LocationFilter) sq.SelectBuilder {
	if filter.ParentID != nil && parentColumn != "" {
		b = b.Where(sq.Eq{parentColumn: *filter.ParentID})
	}
	if filter.ActiveOnly {
		b = b.Where(sq.Eq{activeColumn: true})
	}
	return b
}

// execDelete runs a DELETE and reports [ErrLocationNotFound] when nothing matched.
func (r *locationRepository) execDelete(ctx context.Context, funcName, query string, id int64) error {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("error deleting location")
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
		return ErrLocationNotFound
	}
	return nil
}

// ─── continents ───────────────────────────────────────────────────────────────

func scanContinent(row rowScanner) (models.Continent, error) {
	var c models.Continent
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *locationRepository) ListContinents(ctx context.Context, filter models.LocationFilter) ([]models.Continent, error) {
	b := psql.Select("id", "code", "name", "display_order", "is_active", "created_at", "updated_at").
		From("continents").
		OrderBy("display_order", "name")
	b = applyFilter(b, "", "is_active", filter)

	return listRows(ctx, r.db, "*locationRepository.ListContinents", b, scanContinent)
}

func (r *locationRepository) CreateContinent(ctx context.Context, continent models.Continent) (models.Continent, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	created, err := scanContinent(r.db.QueryRowContext(ctx, createContinent,
		continent.Code, continent.Name, continent.DisplayOrder, continent.IsActive))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*locationRepository.CreateContinent").Msg("error creating continent")
		return models.Continent{}, r.translate(err, ErrExecutingStatement)
	}
	return created, nil
}

func (r *locationRepository) UpdateContinent(ctx context.Context, continent models.Continent) (models.Continent, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	updated, err := scanContinent(r.db.QueryRowContext(ctx, updateContinent,
		continent.ID, continent.Code, continent.Name, continent.DisplayOrder, continent.IsActive))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*locationRepository.UpdateContinent").Msg("error updating continent")
		return models.Continent{}, r.translate(err, ErrExecutingStatement)
	}
	return updated, nil
}

func (r *locationRepository) DeleteContinent(ctx context.Context, id int64) error {
	return r.execDelete(ctx, "*locationRepository.DeleteContinent", deleteContinent, id)
}

// ─── countries ────────────────────────────────────────────────────────────────

func scanCountry(row rowScanner) (models.Country, error) {
	var c models.Country
	err := row.Scan(&c.ID, &c.ContinentID, &c.ContinentName, &c.Code, &c.Name,
		&c.Currency, &c.FlagImage, &c.ISOCode, &c.Nationality,
		&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanCountryRow(row rowScanner) (models.Country, error) {
	var c models.Country
	err := row.Scan(&c.ID, &c.ContinentID, &c.Code, &c.Name,
		&c.Currency, &c.FlagImage, &c.ISOCode, &c.Nationality,
		&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *locationRepository) ListCountries(ctx context.Context, filter models.LocationFilter) ([]models.Country, error) {
	b := psql.Select(
		"c.id", "c.continent_id", "ct.name", "c.code", "c.name",
		"c.currency", "c.flag_image", "c.iso_code", "c.nationality",
		"c.display_order", "c.is_active", "c.created_at", "c.updated_at",
	).
		From("countries c").
		Join("continents ct ON ct.id = c.continent_id").
		OrderBy("c.display_order", "c.name")
	b = applyFilter(b, "c.continent_id", "c.is_active", filter)

	return listRows(ctx, r.db, "*locationRepository.ListCountries", b, scanCountry)
}

func (r *locationRepository) GetCountry(ctx context.Context, id int64) (models.Country, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	country, err := scanCountry(r.db.QueryRowContext(ctx, getCountry, id))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", "*locationRepository.GetCountry").Int64("id", id).Msg("error getting country")
		}
		return models.Country{}, r.translate(err, ErrExecutingQuery)
	}
	return country, nil
}

func (r *locationRepository) CreateCountry(ctx context.Context, country models.Country) (models.Country, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	created, err := scanCountryRow(r.db.QueryRowContext(ctx, createCountry,
		country.ContinentID, country.Code, country.Name,
		country.Currency, country.FlagImage, country.ISOCode, country.Nationality,
		country.DisplayOrder, country.IsActive))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*locationRepository.CreateCountry").Msg("error creating country")
		return models.Country{}, r.translate(err, ErrExecutingStatement)
	}
	return created, nil
}

func (r *locationRepository) UpdateCountry(ctx context.Context, country models.Country) (models.Country, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	updated, err := scanCountryRow(r.db.QueryRowContext(ctx, updateCountry,
		country.ID, country.ContinentID, country.Code, country.Name,
		country.Currency, country.FlagImage, country.ISOCode, country.Nationality,
		country.DisplayOrder, country.IsActive))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*locationRepository.UpdateCountry").Msg("error updating country")
		return models.Country{}, r.translate(err, ErrExecutingStatement)
	}
	return updated, nil
}

func (r *locationRepository) DeleteCountry(ctx context.Context, id int64) error {
	return r.execDelete(ctx, "*locationRepository.DeleteCountry", deleteCountry, id)
}

// ─── states and districts ─────────────────────────────────────────────────────

func scanState(row rowScanner) (models.State, error) {
	var s models.State
	err := row.Scan(&s.ID, &s.CountryID, &s.Code, &s.Name, &s.DisplayOrder, &s.IsActive, &s.CreatedAt)
	return s, err
}

func scanDistrict(row rowScanner) (models.District, error) {
	var d models.District
	err := row.Scan(&d.ID, &d.StateID, &d.Code, &d.Name, &d.DisplayOrder, &d.IsActive, &d.CreatedAt)
	return d, err
}

func (r *locationRepository) ListStates(ctx context.Context, filter models.LocationFilter) ([]models.State, error) {
	b := psql.Select("id", "country_id", "code", "name", "display_order", "is_active", "created_at").
		From("states").
		OrderBy("display_order", "name")
	b = applyFilter(b, "country_id", "is_active", filter)

	return listRows(ctx, r.db, "*locationRepository.ListStates", b, scanState)
}

func (r *locationRepository) CreateState(ctx context.Context, state models.State) (models.State, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	created, err := scanState(r.db.QueryRowContext(ctx, createState,
		state.CountryID, state.Code, state.Name, state.DisplayOrder, state.IsActive))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*locationRepository.CreateState").Msg("error creating state")
		return models.State{}, r.translate(err, ErrExecutingStatement)
	}
	return created, nil
}

func (r *locationRepository) ListDistricts(ctx context.Context, filter models.LocationFilter) ([]models.District, error) {
	b := psql.Select("id", "state_id", "code", "name", "display_order", "is_active", "created_at").
		From("districts").
		OrderBy("display_order", "name")
	b = applyFilter(b, "state_id", "is_active", filter)

	return listRows(ctx, r.db, "*locationRepository.ListDistricts", b, scanDistrict)
}

func (r *locationRepository) CreateDistrict(ctx context.Context, district models.District) (models.District, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	created, err := scanDistrict(r.db.QueryRowContext(ctx, createDistrict,
		district.StateID, district.Code, district.Name, district.DisplayOrder, district.IsActive))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*locationRepository.CreateDistrict").Msg("error creating district")
		return models.District{}, r.translate(err, ErrExecutingStatement)
	}
	return created, nil
}
