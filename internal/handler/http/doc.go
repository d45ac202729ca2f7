// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the my-group server.
//
// It wires the chi router, request handlers for accounts, location reference
// data and health checks, and the middleware chain (trace id, access log, metrics,
// panic recovery, bearer authentication). Handlers decode the JSON envelope,
// delegate to the service layer and translate service error kinds to status
// codes through errorStatusMap.
package http
