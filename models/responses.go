// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Every HTTP response body is an envelope carrying a success flag.
// Failures carry a human readable error and a stable machine code.

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// UserResponse wraps a single account.
type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// UsersResponse wraps an account listing.
type UsersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}

// ProfileResponse wraps a stored profile.
type ProfileResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message,omitempty"`
	UserDetails UserProfile `json:"userDetails"`
}

// MessageResponse is a success envelope without payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataResponse wraps location reference data.
type DataResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// Database connectivity labels reported by the health endpoint.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthResponse reports server liveness and store reachability.
type HealthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse reports the running server version.
type VersionResponse struct {
	Version string `json:"version"`
}
