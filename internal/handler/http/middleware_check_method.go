// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-group/internal/app"
)

// routableMethods are the methods tried when building the Allow header.
var routableMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// chi calls it when the request path matches a registered route but the
// method does not. It answers 405 with the JSON envelope and an "Allow"
// header listing the methods registered for the path, resolved through
// [chi.Mux.Match] so parameterised routes are covered too.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routableMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeError(w, errorResponse{http.StatusMethodNotAllowed, app.MsgMethodNotAllowed, app.CodeNotFound})
	}
}

// routeNotFound answers unknown paths with the JSON envelope.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, errorResponse{http.StatusNotFound, app.MsgRouteNotFound, app.CodeNotFound})
}
