// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-group/internal/app"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

func (h *Handler) listContinents(w http.ResponseWriter, r *http.Request) {
	continents, err := h.services.LocationService.ListContinents(r.Context())
	writeData(h, w, r, continents, err, http.StatusOK)
}

func (h *Handler) createContinent(w http.ResponseWriter, r *http.Request) {
	var continent models.Continent
	if err := utils.ReadJSON(r, &continent); err != nil {
		badRequest(w, r, err)
		return
	}

	created, err := h.services.LocationService.CreateContinent(r.Context(), utils.GetPrincipalFromContext(r.Context()), continent)
	writeData(h, w, r, created, err, http.StatusCreated)
}

func (h *Handler) updateContinent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "continentId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	var continent models.Continent
	if err = utils.ReadJSON(r, &continent); err != nil {
		badRequest(w, r, err)
		return
	}
	continent.ID = id

	updated, err := h.services.LocationService.UpdateContinent(r.Context(), utils.GetPrincipalFromContext(r.Context()), continent)
	writeData(h, w, r, updated, err, http.StatusOK)
}

func (h *Handler) deleteContinent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "continentId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	err = h.services.LocationService.DeleteContinent(r.Context(), utils.GetPrincipalFromContext(r.Context()), id)
	h.writeLocationDeleted(w, r, err)
}

// listCountries accepts an optional continentId query parameter.
func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	var continentID *int64
	if raw := r.URL.Query().Get("continentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(w, r, fmt.Errorf("%w: continentId: %w", errInvalidPathID, err))
			return
		}
		continentID = &id
	}

	countries, err := h.services.LocationService.ListCountries(r.Context(), continentID)
	writeData(h, w, r, countries, err, http.StatusOK)
}

func (h *Handler) getCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "countryId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	country, err := h.services.LocationService.GetCountry(r.Context(), id)
	writeData(h, w, r, country, err, http.StatusOK)
}

func (h *Handler) createCountry(w http.ResponseWriter, r *http.Request) {
	var country models.Country
	if err := utils.ReadJSON(r, &country); err != nil {
		badRequest(w, r, err)
		return
	}

	created, err := h.services.LocationService.CreateCountry(r.Context(), utils.GetPrincipalFromContext(r.Context()), country)
	writeData(h, w, r, created, err, http.StatusCreated)
}

func (h *Handler) updateCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "countryId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	var country models.Country
	if err = utils.ReadJSON(r, &country); err != nil {
		badRequest(w, r, err)
		return
	}
	country.ID = id

	updated, err := h.services.LocationService.UpdateCountry(r.Context(), utils.GetPrincipalFromContext(r.Context()), country)
	writeData(h, w, r, updated, err, http.StatusOK)
}

func (h *Handler) deleteCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "countryId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	err = h.services.LocationService.DeleteCountry(r.Context(), utils.GetPrincipalFromContext(r.Context()), id)
	h.writeLocationDeleted(w, r, err)
}

func (h *Handler) listStates(w http.ResponseWriter, r *http.Request) {
	countryID, err := pathID(r, "countryId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	states, err := h.services.LocationService.ListStates(r.Context(), countryID)
	writeData(h, w, r, states, err, http.StatusOK)
}

// createState adds a state under the country named in the path. A country
// id in the body is ignored.
func (h *Handler) createState(w http.ResponseWriter, r *http.Request) {
	countryID, err := pathID(r, "countryId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	var state models.State
	if err = utils.ReadJSON(r, &state); err != nil {
		badRequest(w, r, err)
		return
	}
	state.CountryID = countryID

	created, err := h.services.LocationService.CreateState(r.Context(), utils.GetPrincipalFromContext(r.Context()), state)
	writeData(h, w, r, created, err, http.StatusCreated)
}

func (h *Handler) listDistricts(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, "stateId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	districts, err := h.services.LocationService.ListDistricts(r.Context(), stateID)
	writeData(h, w, r, districts, err, http.StatusOK)
}

func (h *Handler) createDistrict(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, "stateId")
	if err != nil {
		badRequest(w, r, err)
		return
	}

	var district models.District
	if err = utils.ReadJSON(r, &district); err != nil {
		badRequest(w, r, err)
		return
	}
	district.StateID = stateID

	created, err := h.services.LocationService.CreateDistrict(r.Context(), utils.GetPrincipalFromContext(r.Context()), district)
	writeData(h, w, r, created, err, http.StatusCreated)
}

func (h *Handler) hierarchy(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.services.LocationService.Hierarchy(r.Context())
	writeData(h, w, r, nodes, err, http.StatusOK)
}

func (h *Handler) writeLocationDeleted(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.failLocation(w, r, err)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgLocationDeleted}, http.StatusOK)
}

// writeData renders a location result in the data envelope.
func writeData[T any](h *Handler, w http.ResponseWriter, r *http.Request, data T, err error, status int) {
	if err != nil {
		h.failLocation(w, r, err)
		return
	}
	utils.WriteJSON(w, models.DataResponse[T]{Success: true, Data: data}, status)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidPathID, name, err)
	}
	return id, nil
}
