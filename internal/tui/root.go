// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type page int

const (
	pageLogin page = iota
	pageDashboard
	pageCreate
	pageRegister
)

// rootModel switches between the sign-in form, the dashboard and the account
// forms and owns every command that talks to the session.
type rootModel struct {
	ctx     context.Context
	session Session
	copy    func(string) error

	page    page
	login   *loginModel
	list    listModel
	form    *accountFormModel
	overlay *errorOverlayModel

	quitByUser bool
}

func newRootModel(ctx context.Context, session Session, copyFn func(string) error) rootModel {
	m := rootModel{
		ctx:     ctx,
		session: session,
		copy:    copyFn,
		page:    pageLogin,
		login:   newLoginModel(ctx, session),
	}
	if principal, ok := session.Principal(); ok {
		m.page = pageDashboard
		m.list = newListModel(principal, session.Degraded())
		m.list.loading = !m.list.degraded
	}
	return m
}

func (m rootModel) Init() tea.Cmd {
	if m.page == pageDashboard {
		return m.loadCmds()
	}
	return m.login.Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.overlay != nil {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				m.overlay = nil
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			var cmd tea.Cmd
			m.login, cmd = m.login.Update(msg)
			return m, cmd
		}
		m.page = pageDashboard
		m.list = newListModel(msg.principal, m.session.Degraded())
		cmd := m.startLoading()
		return m, cmd

	case accountCreatedMsg:
		if msg.err != nil {
			if m.form == nil {
				return m, nil
			}
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		m.page = pageDashboard
		m.form = nil
		m.list.lastErr = ""
		m.list.status = fmt.Sprintf("created %s account %s", msg.user.Role.Title(), msg.user.Username)
		cmd := m.startLoading()
		return m, tea.Batch(cmd, clearStatusAfter(statusTTL))

	case registeredMsg:
		if msg.err != nil {
			if m.form == nil {
				return m, nil
			}
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		m.page = pageDashboard
		m.form = nil
		m.list = newListModel(msg.principal, m.session.Degraded())
		m.list.status = "welcome, " + msg.principal.Name
		cmd := m.startLoading()
		return m, tea.Batch(cmd, clearStatusAfter(statusTTL))

	case usersLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.list.lastErr = describeError(msg.err)
			return m, nil
		}
		m.list.lastErr = ""
		m.list.setUsers(msg.users)
		return m, nil

	case statusChangedMsg:
		if msg.err != nil {
			m.list.lastErr = describeError(msg.err)
			return m, nil
		}
		m.list.lastErr = ""
		m.list.replaceUser(msg.user)
		m.list.status = fmt.Sprintf("%s is now %s", msg.user.Username, statusLabel(msg.user.IsActive))
		return m, clearStatusAfter(statusTTL)

	case copiedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "could not copy to clipboard: " + msg.err.Error()}
			return m, nil
		}
		m.list.status = "user id copied to clipboard"
		return m, clearStatusAfter(statusTTL)

	case loggedOutMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: describeError(msg.err)}
			return m, nil
		}
		m.page = pageLogin
		m.list = listModel{}
		m.login = newLoginModel(m.ctx, m.session)
		return m, m.login.Init()

	case clearStatusMsg:
		m.list.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	}

	switch m.page {
	case pageLogin:
		return m.updateLogin(msg)
	case pageCreate, pageRegister:
		return m.updateForm(msg)
	default:
		return m.updateDashboard(msg)
	}
}

func (m rootModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.register):
			if m.login.submitting {
				return m, nil
			}
			m.page = pageRegister
			m.form = newRegisterForm(m.ctx, m.session)
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

// updateForm drives the account forms. esc returns to the page the form was
// opened from.
func (m rootModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.back) {
		if m.page == pageRegister {
			m.page = pageLogin
		} else {
			m.page = pageDashboard
		}
		m.form = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m rootModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	if m.list.degraded {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.list.move(-1)
	case key.Matches(keyMsg, keys.down):
		m.list.move(1)
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		cmd := m.startLoading()
		return m, cmd
	case key.Matches(keyMsg, keys.scope):
		if !m.list.principal.IsSuperAdmin() || m.list.loading {
			return m, nil
		}
		m.list.showAll = !m.list.showAll
		m.list.users = nil
		m.list.idx = 0
		cmd := m.startLoading()
		return m, cmd
	case key.Matches(keyMsg, keys.toggle):
		user, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdSetStatus(user.UserID, !user.IsActive)
	case key.Matches(keyMsg, keys.copyUser):
		user, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(user.UserID)
	case key.Matches(keyMsg, keys.newUser):
		role, ok := creatableRole(m.list.principal.Role)
		if !ok {
			return m, nil
		}
		m.page = pageCreate
		m.form = newSubordinateForm(m.ctx, m.session, role)
		return m, m.form.Init()
	}
	return m, nil
}

func (m rootModel) View() string {
	var view string
	switch m.page {
	case pageLogin:
		view = m.login.View()
	case pageCreate, pageRegister:
		view = m.form.View()
	default:
		view = m.list.View()
	}

	if m.overlay != nil {
		view += "\n" + m.overlay.View()
	}
	return view
}

// startLoading marks the dashboard as loading and returns the commands that
// fetch the current scope.
func (m *rootModel) startLoading() tea.Cmd {
	if m.list.degraded {
		return nil
	}
	m.list.loading = true
	return m.loadCmds()
}

func (m rootModel) loadCmds() tea.Cmd {
	if m.list.degraded {
		return nil
	}
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
}

func (m rootModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	session := m.session
	showAll := m.list.showAll

	return func() tea.Msg {
		if showAll {
			users, err := session.ListAllUsers(ctx)
			return usersLoadedMsg{users: users, err: err}
		}
		users, err := session.ListSubordinates(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m rootModel) cmdSetStatus(userID string, isActive bool) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		user, err := session.SetStatus(ctx, userID, isActive)
		return statusChangedMsg{user: user, err: err}
	}
}

func (m rootModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

func (m rootModel) cmdCopy(userID string) tea.Cmd {
	copyFn := m.copy

	return func() tea.Msg {
		return copiedMsg{userID: userID, err: copyFn(userID)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
