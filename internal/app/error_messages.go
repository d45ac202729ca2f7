// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// my-group server handlers, middleware and the terminal client.
//
// Msg* constants are the human-readable strings written into the "error" and
// "message" fields of the JSON envelope. Code* constants are the stable
// machine-readable kinds written into the "code" field; clients branch on
// them instead of on the wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for every failed login, whether the
	// account is missing, inactive or the password is wrong.
	MsgInvalidCredentials = "invalid credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgAuthenticationRequired is returned when a protected route is called
	// without an Authorization header.
	MsgAuthenticationRequired = "authentication required"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the caller's role does not permit the
	// operation.
	MsgAccessDenied = "access denied"

	MsgUserNotFound     = "user not found"
	MsgLocationNotFound = "location not found"

	// MsgUsernameAlreadyExists is returned when the username is taken by
	// another account, active or not.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgCodeAlreadyExists is returned when a location code collides with an
	// existing one.
	MsgCodeAlreadyExists = "code already exists"

	// MsgInvalidReference is returned when a referenced record (creator,
	// country, state, district) does not exist.
	MsgInvalidReference = "referenced record does not exist"

	// MsgHasDependents is returned when a record cannot be deleted because
	// other records still point at it.
	MsgHasDependents = "record has dependent records"

	// MsgServiceUnavailable is returned when the database cannot be reached.
	MsgServiceUnavailable = "service temporarily unavailable"

	MsgLoginSuccessful  = "login successful"
	MsgUserCreated      = "user created successfully"
	MsgUserDeleted      = "user deleted successfully"
	MsgStatusUpdated    = "user status updated successfully"
	MsgProfileUpdated   = "user details updated successfully"
	MsgPasswordChanged  = "password changed successfully"
	MsgLocationDeleted  = "location deleted successfully"
	MsgServerIsRunning  = "server is running"
	MsgRouteNotFound    = "route not found"
	MsgMethodNotAllowed = "method not allowed"
)

// Error kinds carried in the "code" field of failed responses.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidCredential = "INVALID_CREDENTIAL"
	CodeDuplicateUsername = "DUPLICATE_USERNAME"
	CodeDuplicateCode     = "DUPLICATE_CODE"
	CodeInvalidReference  = "INVALID_REFERENCE"
	CodeConflict          = "CONFLICT"
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeForbidden         = "FORBIDDEN"
	CodeUnavailable       = "UNAVAILABLE"
	CodeInternal          = "INTERNAL"
)
