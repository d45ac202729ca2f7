// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/my-group/models"
)

const (
	testRootID   = "0190a1b2-0000-7000-8000-000000000001"
	testCorpID   = "0190a1b2-0000-7000-8000-000000000002"
	testBranchID = "0190a1b2-0000-7000-8000-000000000003"
	testOtherID  = "0190a1b2-0000-7000-8000-000000000004"
	testNewID    = "0190a1b2-0000-7000-8000-0000000000ff"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func principalOf(id string, role models.Role) *models.Principal {
	return &models.Principal{UserID: id, Role: role}
}

func activeUser(id string, role models.Role, createdBy *string) models.User {
	return models.User{UserID: id, Username: string(role) + "-" + id[len(id)-2:], PasswordHash: "stored-hash", Role: role, CreatedBy: createdBy, IsActive: true}
}

func strPtr(s string) *string { return &s }
