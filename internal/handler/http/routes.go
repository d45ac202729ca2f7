// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Handle("/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		// health and version
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Post("/auth/login", h.login)

		r.Route("/users", func(r chi.Router) {
			r.Post("/login", h.login)
			r.With(h.optionalAuth).Post("/", h.createUser)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Get("/", h.listUsers)
				r.Get("/created-by/{creatorId}", h.listUsersByCreator)
				r.Get("/creator/{creatorId}", h.listUsersByCreator)
				r.Put("/update-details", h.updateUserDetails)
				r.Get("/{userId}", h.getUser)
				r.Delete("/{userId}", h.deleteUser)
				r.Put("/{userId}/status", h.updateUserStatus)
				r.Put("/{userId}/change-password", h.changePassword)
			})
		})

		// location reference data, reads are public
		r.Get("/continents", h.listContinents)
		r.Get("/countries", h.listCountries)
		r.Get("/countries/{countryId}", h.getCountry)
		r.Get("/countries/{countryId}/states", h.listStates)
		r.Get("/states/{stateId}/districts", h.listDistricts)
		r.Get("/hierarchy", h.hierarchy)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/continents", h.createContinent)
			r.Put("/continents/{continentId}", h.updateContinent)
			r.Delete("/continents/{continentId}", h.deleteContinent)
			r.Post("/countries", h.createCountry)
			r.Put("/countries/{countryId}", h.updateCountry)
			r.Delete("/countries/{countryId}", h.deleteCountry)
			r.Post("/countries/{countryId}/states", h.createState)
			r.Post("/states/{stateId}/districts", h.createDistrict)
		})
	})

	return router
}
