// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/my-group/models"
)

type loginResultMsg struct {
	principal models.Principal
	err       error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type statusChangedMsg struct {
	user models.User
	err  error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	userID string
	err    error
}

type accountCreatedMsg struct {
	user models.User
	err  error
}

type registeredMsg struct {
	principal models.Principal
	err       error
}

type clearStatusMsg struct{}
