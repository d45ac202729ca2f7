// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the authenticated identity carried by a session.
//
// On the server it is resolved from a bearer token and passed to services
// as the acting account. On the client it is the signed-in account kept by
// the session context, Token holding the bearer credential issued at login.
type Principal struct {
	UserID    string  `json:"id"`
	Username  string  `json:"username"`
	Role      Role    `json:"role"`
	Name      string  `json:"name,omitempty"`
	Email     string  `json:"email,omitempty"`
	CreatedBy *string `json:"created_by,omitempty"`
	Token     string  `json:"token,omitempty"`
}

// NewPrincipal builds a Principal from a sanitized user.
func NewPrincipal(u User) Principal {
	p := Principal{
		UserID:    u.UserID,
		Username:  u.Username,
		Role:      u.Role,
		Name:      u.Name(),
		CreatedBy: u.CreatedBy,
	}
	if u.EmailID != nil {
		p.Email = *u.EmailID
	}
	return p
}

// IsSuperAdmin reports whether the principal holds the root tier.
func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// AuthMode names the strategy a client session authenticates with.
type AuthMode string

const (
	// AuthModeRemote authenticates against the server.
	AuthModeRemote AuthMode = "remote"
	// AuthModeOfflineDemo authenticates against a fixed built-in account table.
	// It is selected only when the server is unreachable and the operator
	// explicitly allowed degraded mode.
	AuthModeOfflineDemo AuthMode = "offline-demo"
)

// StoredSession is the signed form of a principal persisted on the client.
type StoredSession struct {
	Payload   string
	Signature string
	Mode      AuthMode
}
