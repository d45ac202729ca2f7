// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// User is an account row joined with the display fields of its profile.
//
// PasswordHash is populated only by the persistence layer for credential
// checks and is never serialized.
type User struct {
	UserID       string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedBy    *string   `json:"created_by"`
	IsActive     bool      `json:"is_active"`
	CreatedOn    time.Time `json:"created_on"`

	FullName    *string `json:"full_name"`
	DisplayName *string `json:"display_name"`
	EmailID     *string `json:"email_id"`
}

// Sanitized returns a copy of u without credential material.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// Name returns the best available human label for the account:
// display name, then full name, then username.
func (u User) Name() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}

// CreateUserRequest is the payload of a provisioning or registration call.
//
// CreatedBy is accepted on the wire for compatibility with older clients
// but is never trusted: the creator is always taken from the acting session.
type CreateUserRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Role      Role    `json:"role"`
	CreatedBy *string `json:"created_by,omitempty"`

	ProfileFields
}

// ChangePasswordRequest carries the current and the new password of an account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// LoginRequest carries credentials submitted to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StatusRequest toggles the activity flag of an account. A pointer is used
// so that a missing field can be told apart from false.
type StatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// UnmarshalJSON accepts the snake_case spelling too; isActive wins when
// both are present.
func (s *StatusRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		IsActive  *bool `json:"isActive"`
		SnakeCase *bool `json:"is_active"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.IsActive = raw.IsActive
	if s.IsActive == nil {
		s.IsActive = raw.SnakeCase
	}
	return nil
}
