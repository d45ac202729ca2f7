// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login.
// The subject holds the user identifier.
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// Token wraps a signed JWT with the identity it was issued for.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	*jwt.Token `json:"-"`

	Claims

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// Principal returns the acting identity encoded in the token.
func (t *Token) Principal() Principal {
	return Principal{UserID: t.UserID, Role: t.Role, Token: t.SignedString}
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
