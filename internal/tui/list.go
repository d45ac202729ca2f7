// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/my-group/models"
)

// listModel is the role dashboard: the signed-in principal and the accounts
// they manage.
type listModel struct {
	principal models.Principal
	degraded  bool

	users   []models.User
	idx     int
	showAll bool
	loading bool
	spinner spinner.Model
	status  string
	lastErr string
}

func newListModel(principal models.Principal, degraded bool) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{principal: principal, degraded: degraded, spinner: s}
}

func (m listModel) current() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func (m *listModel) setUsers(users []models.User) {
	m.users = users
	if m.idx >= len(m.users) {
		m.idx = len(m.users) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) replaceUser(user models.User) {
	for i := range m.users {
		if m.users[i].UserID == user.UserID {
			m.users[i] = user
			return
		}
	}
}

func (m *listModel) move(delta int) {
	if len(m.users) == 0 {
		return
	}
	m.idx = (m.idx + delta + len(m.users)) % len(m.users)
}

func statusLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func modeLabel(degraded bool) string {
	if degraded {
		return "offline demo"
	}
	return "online"
}

func (m listModel) scopeLabel() string {
	if m.showAll {
		return "All users"
	}
	return "Created by you"
}

func (m listModel) hotKeys() string {
	if m.degraded {
		return helpLine(keys.logout, keys.quit)
	}

	bindings := []key.Binding{keys.up, keys.down, keys.refresh, keys.toggle, keys.copyUser}
	if _, ok := creatableRole(m.principal.Role); ok {
		bindings = append(bindings, keys.newUser)
	}
	if m.principal.IsSuperAdmin() {
		bindings = append(bindings, keys.scope)
	}
	bindings = append(bindings, keys.logout, keys.quit)
	return helpLine(bindings...)
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-14s%s (%s)\n", "Signed in as", m.principal.Name, m.principal.Username))
	b.WriteString(fmt.Sprintf("%-14s%s\n", "Role", m.principal.Role.Title()))
	b.WriteString(fmt.Sprintf("%-14s%s\n", "Mode", modeLabel(m.degraded)))
	b.WriteString(fmt.Sprintf("%-14s%s\n", "Created by", valueOrDash(m.principal.CreatedBy)))

	if m.degraded {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Offline demo mode: the server is unreachable, account management is disabled."))
		b.WriteString("\n")
		return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), m.hotKeys())
	}

	header := m.scopeLabel()
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	switch {
	case m.loading && len(m.users) == 0:
		b.WriteString("Loading...\n")
	case len(m.users) == 0:
		b.WriteString("No accounts\n")
	default:
		b.WriteString(fmt.Sprintf("  %-20s %-12s %-9s %s\n", "Username", "Role", "Status", "Name"))
		for i, user := range m.users {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			row := fmt.Sprintf("%s%-20s %-12s %-9s %s",
				cursor,
				fitText(user.Username, 20),
				user.Role.Title(),
				statusLabel(user.IsActive),
				fitText(user.Name(), 30),
			)
			if !user.IsActive {
				row = inactiveStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.lastErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.lastErr))
		b.WriteString("\n")
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m listModel) title() string {
	return "MY GROUP │ " + strings.ToUpper(m.principal.Role.Title()) + " DASHBOARD"
}
