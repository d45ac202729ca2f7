// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"

	"github.com/MKhiriev/my-group/internal/adapter"
	"github.com/MKhiriev/my-group/models"
)

// remoteAuthenticator logs in through the server API.
type remoteAuthenticator struct {
	adapter adapter.ServerAdapter
}

func newRemoteAuthenticator(serverAdapter adapter.ServerAdapter) *remoteAuthenticator {
	return &remoteAuthenticator{adapter: serverAdapter}
}

func (a *remoteAuthenticator) Mode() models.AuthMode {
	return models.AuthModeRemote
}

func (a *remoteAuthenticator) Authenticate(ctx context.Context, username, password string) (models.Principal, error) {
	principal, err := a.adapter.Login(ctx, username, password)
	if err != nil {
		return models.Principal{}, mapAdapterError(err)
	}
	return principal, nil
}

// demoPassword is shared by every offline demo account.
const demoPassword = "password123"

type demoAccount struct {
	principal models.Principal
	password  string
}

// offlineDemoAuthenticator checks credentials against a fixed account table.
// Principals it returns carry no token.
type offlineDemoAuthenticator struct {
	accounts map[string]demoAccount
}

func newOfflineDemoAuthenticator() *offlineDemoAuthenticator {
	superAdminID, corporateID := "1", "2"

	return &offlineDemoAuthenticator{accounts: map[string]demoAccount{
		"superadmin": {
			principal: models.Principal{UserID: superAdminID, Username: "superadmin", Role: models.RoleSuperAdmin, Name: "Super Admin", Email: "superadmin@demo.local"},
			password:  demoPassword,
		},
		"corporate1": {
			principal: models.Principal{UserID: corporateID, Username: "corporate1", Role: models.RoleCorporate, Name: "Corporate One", Email: "corporate1@demo.local", CreatedBy: &superAdminID},
			password:  demoPassword,
		},
		"branch1": {
			principal: models.Principal{UserID: "3", Username: "branch1", Role: models.RoleBranch, Name: "Branch One", Email: "branch1@demo.local", CreatedBy: &corporateID},
			password:  demoPassword,
		},
	}}
}

func (a *offlineDemoAuthenticator) Mode() models.AuthMode {
	return models.AuthModeOfflineDemo
}

func (a *offlineDemoAuthenticator) Authenticate(_ context.Context, username, password string) (models.Principal, error) {
	account, ok := a.accounts[username]
	if !ok {
		return models.Principal{}, ErrNotFound
	}
	if subtle.ConstantTimeCompare([]byte(account.password), []byte(password)) != 1 {
		return models.Principal{}, ErrInvalidCredential
	}
	return account.principal, nil
}
