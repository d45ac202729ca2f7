// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// Role is the organizational tier of an account.
//
// The set of roles is closed: only the constants declared below are valid,
// and every switch over Role is expected to handle each of them.
type Role string

const (
	// RoleSuperAdmin is the root tier. A super admin provisions corporate accounts.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleCorporate provisions branch accounts.
	RoleCorporate Role = "CORPORATE"
	// RoleBranch is a leaf operator account.
	RoleBranch Role = "BRANCH"
	// RoleUser is the only tier available through self-registration.
	RoleUser Role = "USER"
)

// ErrUnknownRole is returned by ParseRole for strings outside the closed role set.
var ErrUnknownRole = errors.New("unknown role")

// Roles returns every valid role in hierarchy order.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleCorporate, RoleBranch, RoleUser}
}

// ParseRole converts s into a Role. Leading and trailing spaces are ignored,
// the comparison is case-sensitive.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleCorporate, RoleBranch, RoleUser:
		return true
	default:
		return false
	}
}

// CanCreate reports whether an account holding r may provision an account
// with the target role.
//
// SUPER_ADMIN creates CORPORATE, CORPORATE creates BRANCH. BRANCH and USER
// provision nothing.
func (r Role) CanCreate(target Role) bool {
	switch r {
	case RoleSuperAdmin:
		return target == RoleCorporate
	case RoleCorporate:
		return target == RoleBranch
	case RoleBranch, RoleUser:
		return false
	default:
		return false
	}
}

// SelfRegistrable reports whether an anonymous caller may register an
// account with role r.
func (r Role) SelfRegistrable() bool {
	return r == RoleUser
}

// Title returns a human readable label used by the terminal client.
func (r Role) Title() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleCorporate:
		return "Corporate"
	case RoleBranch:
		return "Branch"
	case RoleUser:
		return "User"
	default:
		return string(r)
	}
}

func (r Role) String() string {
	return string(r)
}
