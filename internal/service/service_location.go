// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/store"
	"github.com/MKhiriev/my-group/models"
)

type locationService struct {
	locations store.LocationRepository
	users     store.UserRepository

	logger *logger.Logger
}

func NewLocationService(locations store.LocationRepository, users store.UserRepository, logger *logger.Logger) LocationService {
	return &locationService{locations: locations, users: users, logger: logger}
}

func (s *locationService) ListContinents(ctx context.Context) ([]models.Continent, error) {
	continents, err := s.locations.ListContinents(ctx, models.LocationFilter{})
	if err != nil {
		return nil, s.fail(ctx, "ListContinents", err)
	}
	return continents, nil
}

func (s *locationService) CreateContinent(ctx context.Context, actor *models.Principal, continent models.Continent) (models.Continent, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return models.Continent{}, err
	}
	if err := normalizeCodeName(&continent.Code, &continent.Name); err != nil {
		return models.Continent{}, err
	}

	created, err := s.locations.CreateContinent(ctx, continent)
	if err != nil {
		return models.Continent{}, s.fail(ctx, "CreateContinent", err)
	}
	return created, nil
}

func (s *locationService) UpdateContinent(ctx context.Context, actor *models.Principal, continent models.Continent) (models.Continent, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return models.Continent{}, err
	}
	if continent.ID <= 0 {
		return models.Continent{}, fmt.Errorf("%w: continent %d", ErrNotFound, continent.ID)
	}
	if err := normalizeCodeName(&continent.Code, &continent.Name); err != nil {
		return models.Continent{}, err
	}

	updated, err := s.locations.UpdateContinent(ctx, continent)
	if err != nil {
		return models.Continent{}, s.fail(ctx, "UpdateContinent", err)
	}
	return updated, nil
}

func (s *locationService) DeleteContinent(ctx context.Context, actor *models.Principal, id int64) error {
	if err := s.authorize(ctx, actor); err != nil {
		return err
	}
	if err := s.locations.DeleteContinent(ctx, id); err != nil {
		return s.fail(ctx, "DeleteContinent", err)
	}
	return nil
}

// ListCountries lists countries with their continent name. A nil
// continentID lists all of them.
func (s *locationService) ListCountries(ctx context.Context, continentID *int64) ([]models.Country, error) {
	countries, err := s.locations.ListCountries(ctx, models.LocationFilter{ParentID: continentID})
	if err != nil {
		return nil, s.fail(ctx, "ListCountries", err)
	}
	return countries, nil
}

func (s *locationService) GetCountry(ctx context.Context, id int64) (models.Country, error) {
	country, err := s.locations.GetCountry(ctx, id)
	if err != nil {
		return models.Country{}, s.fail(ctx, "GetCountry", err)
	}
	return country, nil
}

func (s *locationService) CreateCountry(ctx context.Context, actor *models.Principal, country models.Country) (models.Country, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return models.Country{}, err
	}
	if err := normalizeCodeName(&country.Code, &country.Name); err != nil {
		return models.Country{}, err
	}
	if country.ContinentID <= 0 {
		return models.Country{}, validationError("continent_id is required")
	}

	created, err := s.locations.CreateCountry(ctx, country)
	if err != nil {
		return models.Country{}, s.fail(ctx, "CreateCountry", err)
	}
	return created, nil
}

func (s *locationService) UpdateCountry(ctx context.Context, actor *models.Principal, country models.Country) (models.Country, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return models.Country{}, err
	}
	if country.ID <= 0 {
		return models.Country{}, fmt.Errorf("%w: country %d", ErrNotFound, country.ID)
	}
	if err := normalizeCodeName(&country.Code, &country.Name); err != nil {
		return models.Country{}, err
	}
	if country.ContinentID <= 0 {
		return models.Country{}, validationError("continent_id is required")
	}

	updated, err := s.locations.UpdateCountry(ctx, country)
	if err != nil {
		return models.Country{}, s.fail(ctx, "UpdateCountry", err)
	}
	return updated, nil
}

func (s *locationService) DeleteCountry(ctx context.Context, actor *models.Principal, id int64) error {
	if err := s.authorize(ctx, actor); err != nil {
		return err
	}
	if err := s.locations.DeleteCountry(ctx, id); err != nil {
		return s.fail(ctx, "DeleteCountry", err)
	}
	return nil
}

// ListStates lists the active states of a country.
func (s *locationService) ListStates(ctx context.Context, countryID int64) ([]models.State, error) {
	states, err := s.locations.ListStates(ctx, models.LocationFilter{ParentID: &countryID, ActiveOnly: true})
	if err != nil {
		return nil, s.fail(ctx, "ListStates", err)
	}
	return states, nil
}

func (s *locationService) CreateState(ctx context.Context, actor *models.Principal, state models.State) (models.State, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return models.State{}, err
	}
	if err := normalizeCodeName(&state.Code, &state.Name); err != nil {
		return models.State{}, err
	}
	if state.CountryID <= 0 {
		return models.State{}, validationError("country_id is required")
	}

	created, err := s.locations.CreateState(ctx, state)
	if err != nil {
		return models.State{}, s.fail(ctx, "CreateState", err)
	}
	return created, nil
}

// ListDistricts lists the active districts of a state.
func (s *locationService) ListDistricts(ctx context.Context, stateID int64) ([]models.District, error) {
	districts, err := s.locations.ListDistricts(ctx, models.LocationFilter{ParentID: &stateID, ActiveOnly: true})
	if err != nil {
		return nil, s.fail(ctx, "ListDistricts", err)
	}
	return districts, nil
}

func (s *locationService) CreateDistrict(ctx context.Context, actor *models.Principal, district models.District) (models.District, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return models.District{}, err
	}
	if err := normalizeCodeName(&district.Code, &district.Name); err != nil {
		return models.District{}, err
	}
	if district.StateID <= 0 {
		return models.District{}, validationError("state_id is required")
	}

	created, err := s.locations.CreateDistrict(ctx, district)
	if err != nil {
		return models.District{}, s.fail(ctx, "CreateDistrict", err)
	}
	return created, nil
}

// Hierarchy loads each level once and nests the rows in memory.
func (s *locationService) Hierarchy(ctx context.Context) ([]models.ContinentNode, error) {
	active := models.LocationFilter{ActiveOnly: true}

	continents, err := s.locations.ListContinents(ctx, active)
	if err != nil {
		return nil, s.fail(ctx, "Hierarchy", err)
	}
	countries, err := s.locations.ListCountries(ctx, active)
	if err != nil {
		return nil, s.fail(ctx, "Hierarchy", err)
	}
	states, err := s.locations.ListStates(ctx, active)
	if err != nil {
		return nil, s.fail(ctx, "Hierarchy", err)
	}
	districts, err := s.locations.ListDistricts(ctx, active)
	if err != nil {
		return nil, s.fail(ctx, "Hierarchy", err)
	}

	districtsByState := make(map[int64][]models.District)
	for _, d := range districts {
		districtsByState[d.StateID] = append(districtsByState[d.StateID], d)
	}

	statesByCountry := make(map[int64][]models.StateNode)
	for _, st := range states {
		node := models.StateNode{State: st, Districts: districtsByState[st.ID]}
		if node.Districts == nil {
			node.Districts = []models.District{}
		}
		statesByCountry[st.CountryID] = append(statesByCountry[st.CountryID], node)
	}

	countriesByContinent := make(map[int64][]models.CountryNode)
	for _, c := range countries {
		node := models.CountryNode{Country: c, States: statesByCountry[c.ID]}
		if node.States == nil {
			node.States = []models.StateNode{}
		}
		countriesByContinent[c.ContinentID] = append(countriesByContinent[c.ContinentID], node)
	}

	tree := make([]models.ContinentNode, 0, len(continents))
	for _, ct := range continents {
		node := models.ContinentNode{Continent: ct, Countries: countriesByContinent[ct.ID]}
		if node.Countries == nil {
			node.Countries = []models.CountryNode{}
		}
		tree = append(tree, node)
	}

	return tree, nil
}

// authorize admits active SUPER_ADMIN actors only.
func (s *locationService) authorize(ctx context.Context, actor *models.Principal) error {
	if actor == nil || actor.UserID == "" {
		return ErrUnauthenticated
	}

	user, err := s.users.FindUserByID(ctx, actor.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("%w: account no longer exists", ErrUnauthenticated)
	}
	if err != nil {
		return mapStoreError(err)
	}
	if !user.IsActive {
		return fmt.Errorf("%w: account is inactive", ErrUnauthenticated)
	}
	if user.Role != models.RoleSuperAdmin {
		return fmt.Errorf("%w: location changes require %s", ErrForbidden, models.RoleSuperAdmin)
	}
	return nil
}

func (s *locationService) fail(ctx context.Context, method string, err error) error {
	mapped := mapStoreError(err)
	if errors.Is(mapped, ErrInternal) || errors.Is(mapped, ErrUnavailable) {
		logger.FromContext(ctx).Err(err).Str("func", "*locationService."+method).Msg("location store call failed")
	}
	return mapped
}

func normalizeCodeName(code, name *string) error {
	*code = strings.TrimSpace(*code)
	*name = strings.TrimSpace(*name)
	if *name == "" {
		return validationError("name is required")
	}
	if *code == "" {
		return validationError("code is required")
	}
	return nil
}
