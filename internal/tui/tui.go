// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal screens of the my-group
// client: a login form, self-registration, a role dashboard listing the
// accounts the signed-in principal manages and the form that provisions them.
package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/models"
)

var (
	ErrUserQuit = errors.New("user quit the program")

	errUnexpectedModel = errors.New("terminal program finished with an unexpected model")
)

// Session is the part of the client session the screens drive.
type Session interface {
	Principal() (models.Principal, bool)
	Degraded() bool
	Login(ctx context.Context, username, password string) (models.Principal, error)
	Register(ctx context.Context, req models.CreateUserRequest) (models.Principal, error)
	Logout(ctx context.Context) error
	ListSubordinates(ctx context.Context) ([]models.User, error)
	ListAllUsers(ctx context.Context) ([]models.User, error)
	SetStatus(ctx context.Context, userID string, isActive bool) (models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
}

type TUI struct {
	session Session
	copy    func(string) error
	logger  *logger.Logger
}

func New(session Session, logger *logger.Logger) *TUI {
	return &TUI{session: session, copy: clipboard.WriteAll, logger: logger}
}

// Run shows the login form, or the dashboard when a principal was restored,
// and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(newRootModel(ctx, t.session, t.copy), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(rootModel)
	if !ok {
		return errUnexpectedModel
	}
	if result.quitByUser {
		t.logger.Info().Msg("user left the terminal client")
		return ErrUserQuit
	}
	return nil
}
