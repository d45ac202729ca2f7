// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-group/internal/service"
	"github.com/MKhiriev/my-group/models"
)

type statusCall struct {
	userID   string
	isActive bool
}

type fakeSession struct {
	principal *models.Principal
	degraded  bool

	loginErr    error
	users       []models.User
	allUsers    []models.User
	listErr     error
	logoutErr   error
	statusErr   error
	statusCalls []statusCall
	logouts     int

	createErr   error
	createCalls []models.CreateUserRequest
	registerErr error
	registered  []models.CreateUserRequest
}

func (f *fakeSession) Principal() (models.Principal, bool) {
	if f.principal == nil {
		return models.Principal{}, false
	}
	return *f.principal, true
}

func (f *fakeSession) Degraded() bool { return f.degraded }

func (f *fakeSession) Login(_ context.Context, username, _ string) (models.Principal, error) {
	if f.loginErr != nil {
		return models.Principal{}, f.loginErr
	}
	p := models.Principal{UserID: "u-1", Username: username, Name: username, Role: models.RoleCorporate}
	f.principal = &p
	return p, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.logouts++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.principal = nil
	return nil
}

func (f *fakeSession) ListSubordinates(context.Context) ([]models.User, error) {
	return f.users, f.listErr
}

func (f *fakeSession) ListAllUsers(context.Context) ([]models.User, error) {
	return f.allUsers, f.listErr
}

func (f *fakeSession) SetStatus(_ context.Context, userID string, isActive bool) (models.User, error) {
	f.statusCalls = append(f.statusCalls, statusCall{userID: userID, isActive: isActive})
	if f.statusErr != nil {
		return models.User{}, f.statusErr
	}
	return models.User{UserID: userID, Username: "branch1", Role: models.RoleBranch, IsActive: isActive}, nil
}

func (f *fakeSession) CreateUser(_ context.Context, req models.CreateUserRequest) (models.User, error) {
	f.createCalls = append(f.createCalls, req)
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	return models.User{UserID: "u-9", Username: req.Username, Role: req.Role, IsActive: true}, nil
}

func (f *fakeSession) Register(_ context.Context, req models.CreateUserRequest) (models.Principal, error) {
	f.registered = append(f.registered, req)
	if f.registerErr != nil {
		return models.Principal{}, f.registerErr
	}
	p := models.Principal{UserID: "u-10", Username: req.Username, Name: *req.FullName, Role: models.RoleUser}
	f.principal = &p
	return p, nil
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func update(t *testing.T, m rootModel, msg tea.Msg) (rootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(rootModel)
	require.True(t, ok)
	return result, cmd
}

func signedIn(role models.Role) *fakeSession {
	return &fakeSession{
		principal: &models.Principal{UserID: "u-1", Username: "corporate1", Name: "Corporate One", Role: role},
		users: []models.User{
			{UserID: "u-2", Username: "branch1", Role: models.RoleBranch, IsActive: true},
			{UserID: "u-3", Username: "branch2", Role: models.RoleBranch, IsActive: false},
		},
	}
}

func loadedDashboard(t *testing.T, session *fakeSession, copyFn func(string) error) rootModel {
	t.Helper()
	m := newRootModel(context.Background(), session, copyFn)
	require.Equal(t, pageDashboard, m.page)

	msg := m.cmdLoadUsers()()
	m, _ = update(t, m, msg)
	require.False(t, m.list.loading)
	return m
}

// ─── startup ───

func TestNewRootModel_StartPage(t *testing.T) {
	tests := []struct {
		name        string
		session     *fakeSession
		wantPage    page
		wantLoading bool
	}{
		{name: "no principal shows login", session: &fakeSession{}, wantPage: pageLogin},
		{name: "restored principal shows dashboard", session: signedIn(models.RoleCorporate), wantPage: pageDashboard, wantLoading: true},
		{name: "offline principal does not load", session: func() *fakeSession {
			s := signedIn(models.RoleBranch)
			s.degraded = true
			return s
		}(), wantPage: pageDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRootModel(context.Background(), tt.session, nil)

			assert.Equal(t, tt.wantPage, m.page)
			assert.Equal(t, tt.wantLoading, m.list.loading)
		})
	}
}

// ─── login ───

func TestLogin_RequiresBothFields(t *testing.T) {
	m := newRootModel(context.Background(), &fakeSession{}, nil)
	m.login.inputs[0].SetValue("corporate1")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.login.submitting)
	assert.Equal(t, "username and password are required", m.login.errMsg)
}

func TestLogin_SuccessOpensDashboard(t *testing.T) {
	session := &fakeSession{users: []models.User{{UserID: "u-2", Username: "branch1", IsActive: true}}}
	m := newRootModel(context.Background(), session, nil)
	m.login.inputs[0].SetValue("  corporate1 ")
	m.login.inputs[1].SetValue("password123")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.login.submitting)

	result, ok := cmd().(loginResultMsg)
	require.True(t, ok)
	require.NoError(t, result.err)
	assert.Equal(t, "corporate1", result.principal.Username)

	m, cmd = update(t, m, result)

	assert.Equal(t, pageDashboard, m.page)
	assert.True(t, m.list.loading)
	assert.NotNil(t, cmd)
	assert.Equal(t, "corporate1", m.list.principal.Username)
}

func TestLogin_FailureStaysOnForm(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "wrong password", err: fmt.Errorf("%w: bad", service.ErrInvalidCredential), wantMsg: "invalid credentials"},
		{name: "unknown user looks the same", err: service.ErrNotFound, wantMsg: "invalid credentials"},
		{name: "server down", err: service.ErrUnavailable, wantMsg: "server is unreachable, try again later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRootModel(context.Background(), &fakeSession{loginErr: tt.err}, nil)
			m.login.inputs[0].SetValue("corporate1")
			m.login.inputs[1].SetValue("wrong")

			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			m, _ = update(t, m, cmd())

			assert.Equal(t, pageLogin, m.page)
			assert.False(t, m.login.submitting)
			assert.Equal(t, tt.wantMsg, m.login.errMsg)
			assert.Empty(t, m.login.inputs[1].Value())
			assert.Contains(t, m.View(), tt.wantMsg)
		})
	}
}

func TestLogin_TabMovesFocus(t *testing.T) {
	m := newRootModel(context.Background(), &fakeSession{}, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.login.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.login.focus)
}

func TestLogin_EscQuits(t *testing.T) {
	m := newRootModel(context.Background(), &fakeSession{}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	require.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
}

// ─── dashboard ───

func TestDashboard_ListsSubordinates(t *testing.T) {
	m := loadedDashboard(t, signedIn(models.RoleCorporate), nil)

	require.Len(t, m.list.users, 2)
	view := m.View()
	assert.Contains(t, view, "CORPORATE DASHBOARD")
	assert.Contains(t, view, "Corporate One (corporate1)")
	assert.Contains(t, view, "branch1")
	assert.Contains(t, view, "inactive")
	assert.Contains(t, view, "Created by you")
}

func TestDashboard_LoadError(t *testing.T) {
	session := signedIn(models.RoleBranch)
	session.listErr = fmt.Errorf("%w: branch", service.ErrForbidden)
	m := loadedDashboard(t, session, nil)

	assert.Equal(t, "access denied", m.list.lastErr)
	assert.Contains(t, m.View(), "Error: access denied")
}

func TestDashboard_MoveWraps(t *testing.T) {
	m := loadedDashboard(t, signedIn(models.RoleCorporate), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.list.idx)

	m, _ = update(t, m, runeKey("j"))
	assert.Equal(t, 0, m.list.idx)
}

func TestDashboard_ToggleStatus(t *testing.T) {
	session := signedIn(models.RoleCorporate)
	m := loadedDashboard(t, session, nil)

	m, cmd := update(t, m, runeKey("s"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.Len(t, session.statusCalls, 1)
	assert.Equal(t, statusCall{userID: "u-2", isActive: false}, session.statusCalls[0])
	assert.False(t, m.list.users[0].IsActive)
	assert.Equal(t, "branch1 is now inactive", m.list.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.list.status)
}

func TestDashboard_ToggleStatusError(t *testing.T) {
	session := signedIn(models.RoleCorporate)
	session.statusErr = service.ErrForbidden
	m := loadedDashboard(t, session, nil)

	m, cmd := update(t, m, runeKey("s"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.True(t, m.list.users[0].IsActive)
	assert.Equal(t, "access denied", m.list.lastErr)
}

func TestDashboard_ScopeSwitchIsSuperAdminOnly(t *testing.T) {
	t.Run("super admin lists everyone", func(t *testing.T) {
		session := signedIn(models.RoleSuperAdmin)
		session.allUsers = []models.User{{UserID: "u-9", Username: "everyone"}}
		m := loadedDashboard(t, session, nil)

		m, cmd := update(t, m, runeKey("a"))
		require.NotNil(t, cmd)
		assert.True(t, m.list.showAll)
		assert.True(t, m.list.loading)

		m, _ = update(t, m, m.cmdLoadUsers()())
		require.Len(t, m.list.users, 1)
		assert.Equal(t, "everyone", m.list.users[0].Username)
		assert.Contains(t, m.View(), "All users")
	})

	t.Run("corporate cannot switch", func(t *testing.T) {
		m := loadedDashboard(t, signedIn(models.RoleCorporate), nil)

		m, cmd := update(t, m, runeKey("a"))

		assert.Nil(t, cmd)
		assert.False(t, m.list.showAll)
	})
}

func TestDashboard_CopyUserID(t *testing.T) {
	var copied string
	m := loadedDashboard(t, signedIn(models.RoleCorporate), func(v string) error {
		copied = v
		return nil
	})

	m, cmd := update(t, m, runeKey("u"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "u-2", copied)
	assert.Equal(t, "user id copied to clipboard", m.list.status)
}

func TestDashboard_CopyFailureShowsOverlay(t *testing.T) {
	m := loadedDashboard(t, signedIn(models.RoleCorporate), func(string) error {
		return errors.New("no clipboard")
	})

	m, cmd := update(t, m, runeKey("u"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "no clipboard")

	m, _ = update(t, m, runeKey("s"))
	assert.NotNil(t, m.overlay)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Nil(t, m.overlay)
}

func TestDashboard_Logout(t *testing.T) {
	session := signedIn(models.RoleCorporate)
	m := loadedDashboard(t, session, nil)

	m, cmd := update(t, m, runeKey("l"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, 1, session.logouts)
	assert.Equal(t, pageLogin, m.page)
	assert.Empty(t, m.list.users)
	assert.Contains(t, m.View(), "SIGN IN")
}

func TestDashboard_OfflineDemo(t *testing.T) {
	session := signedIn(models.RoleBranch)
	session.degraded = true
	m := newRootModel(context.Background(), session, nil)

	assert.Nil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "Offline demo mode")
	assert.Contains(t, view, "offline demo")

	m, cmd := update(t, m, runeKey("s"))
	assert.Nil(t, cmd)
	assert.Empty(t, session.statusCalls)

	_, cmd = update(t, m, runeKey("l"))
	assert.NotNil(t, cmd)
}

func TestDashboard_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := loadedDashboard(t, signedIn(models.RoleCorporate), nil)

			m, cmd := update(t, m, msg)

			require.NotNil(t, cmd)
			assert.True(t, m.quitByUser)
		})
	}
}

// ─── account forms ───

func fillForm(t *testing.T, form *accountFormModel, values map[string]string) {
	t.Helper()
	for label, v := range values {
		found := false
		for i := range form.fields {
			if form.fields[i].label == label {
				form.fields[i].input.SetValue(v)
				found = true
			}
		}
		require.True(t, found, "no field %q", label)
	}
}

func openCreateForm(t *testing.T, session *fakeSession) rootModel {
	t.Helper()
	m := loadedDashboard(t, session, nil)

	m, cmd := update(t, m, runeKey("n"))
	require.NotNil(t, cmd)
	require.Equal(t, pageCreate, m.page)
	return m
}

func TestDashboard_NewAccountPresetsRole(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		wantRole models.Role
		title    string
	}{
		{name: "super admin creates corporate", role: models.RoleSuperAdmin, wantRole: models.RoleCorporate, title: "NEW CORPORATE ACCOUNT"},
		{name: "corporate creates branch", role: models.RoleCorporate, wantRole: models.RoleBranch, title: "NEW BRANCH ACCOUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := openCreateForm(t, signedIn(tt.role))

			assert.Equal(t, tt.wantRole, m.form.role)
			assert.Equal(t, formSubordinate, m.form.kind)
			assert.Contains(t, m.View(), tt.title)
		})
	}
}

func TestDashboard_NewAccountUnavailable(t *testing.T) {
	t.Run("branch provisions nothing", func(t *testing.T) {
		m := loadedDashboard(t, signedIn(models.RoleBranch), nil)

		m, cmd := update(t, m, runeKey("n"))

		assert.Nil(t, cmd)
		assert.Equal(t, pageDashboard, m.page)
		assert.Nil(t, m.form)
	})

	t.Run("offline demo", func(t *testing.T) {
		session := signedIn(models.RoleSuperAdmin)
		session.degraded = true
		m := newRootModel(context.Background(), session, nil)

		m, cmd := update(t, m, runeKey("n"))

		assert.Nil(t, cmd)
		assert.Equal(t, pageDashboard, m.page)
	})
}

func TestCreateAccount_Success(t *testing.T) {
	session := signedIn(models.RoleCorporate)
	m := openCreateForm(t, session)
	fillForm(t, m.form, map[string]string{
		"Full name": " Branch Nine ",
		"Username":  "branch9",
		"Password":  "secret1",
		"Email":     "b9@mygroup.com",
	})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)
	assert.Contains(t, m.View(), "[Saving...]")

	m, cmd = update(t, m, cmd())

	require.Len(t, session.createCalls, 1)
	req := session.createCalls[0]
	assert.Equal(t, "branch9", req.Username)
	assert.Equal(t, "secret1", req.Password)
	assert.Equal(t, models.RoleBranch, req.Role)
	require.NotNil(t, req.FullName)
	assert.Equal(t, "Branch Nine", *req.FullName)
	require.NotNil(t, req.EmailID)
	assert.Equal(t, "b9@mygroup.com", *req.EmailID)

	assert.Equal(t, pageDashboard, m.page)
	assert.Nil(t, m.form)
	assert.True(t, m.list.loading)
	assert.NotNil(t, cmd)
	assert.Equal(t, "created Branch account branch9", m.list.status)
}

func TestCreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		wantMsg string
	}{
		{name: "missing name", values: map[string]string{"Username": "b9", "Password": "secret1"}, wantMsg: "full name, username and password are required"},
		{name: "short password", values: map[string]string{"Full name": "B", "Username": "b9", "Password": "12345"}, wantMsg: "password must be at least 6 characters"},
		{name: "bad email", values: map[string]string{"Full name": "B", "Username": "b9", "Password": "secret1", "Email": "nope"}, wantMsg: "please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := signedIn(models.RoleCorporate)
			m := openCreateForm(t, session)
			fillForm(t, m.form, tt.values)

			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			assert.Nil(t, cmd)
			assert.False(t, m.form.submitting)
			assert.Equal(t, tt.wantMsg, m.form.errMsg)
			assert.Empty(t, session.createCalls)
		})
	}
}

func TestCreateAccount_ServerErrorKeepsForm(t *testing.T) {
	session := signedIn(models.RoleCorporate)
	session.createErr = fmt.Errorf("%w: DUPLICATE_USERNAME", service.ErrDuplicateUsername)
	m := openCreateForm(t, session)
	fillForm(t, m.form, map[string]string{"Full name": "Branch One", "Username": "branch1", "Password": "secret1"})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, pageCreate, m.page)
	assert.False(t, m.form.submitting)
	assert.Equal(t, "username already exists", m.form.errMsg)
	assert.Equal(t, "branch1", m.form.value("Username"))
	assert.Empty(t, m.form.value("Password"))
	assert.Contains(t, m.View(), "Error: username already exists")
}

func TestCreateAccount_EscReturnsToDashboard(t *testing.T) {
	m := openCreateForm(t, signedIn(models.RoleCorporate))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, pageDashboard, m.page)
	assert.Nil(t, m.form)
	assert.False(t, m.quitByUser)

	// a late failure for the closed form is dropped
	m, cmd := update(t, m, accountCreatedMsg{err: service.ErrForbidden})
	assert.Nil(t, cmd)
	assert.Equal(t, pageDashboard, m.page)
}

func TestCreateAccount_FocusWraps(t *testing.T) {
	m := openCreateForm(t, signedIn(models.RoleCorporate))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(m.form.fields)-1, m.form.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.form.focus)

	// j is text here, not navigation
	m, _ = update(t, m, runeKey("j"))
	assert.Equal(t, 0, m.form.focus)
	assert.Equal(t, "j", m.form.value("Full name"))
}

func TestRegister_FromLogin(t *testing.T) {
	session := &fakeSession{}
	m := newRootModel(context.Background(), session, nil)
	assert.Contains(t, m.View(), "ctrl+n: register")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	require.NotNil(t, cmd)
	require.Equal(t, pageRegister, m.page)
	assert.Equal(t, formRegister, m.form.kind)
	assert.Equal(t, models.RoleUser, m.form.role)
	assert.Contains(t, m.View(), "REGISTER")

	fillForm(t, m.form, map[string]string{"Full name": "Visiting User", "Username": "visitor", "Password": "secret1", "Repeat": "secret2"})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "passwords do not match", m.form.errMsg)

	fillForm(t, m.form, map[string]string{"Repeat": "secret1"})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.Len(t, session.registered, 1)
	assert.Equal(t, models.RoleUser, session.registered[0].Role)
	assert.Equal(t, pageDashboard, m.page)
	assert.Equal(t, "visitor", m.list.principal.Username)
	assert.Equal(t, "welcome, Visiting User", m.list.status)
}

func TestRegister_FailureAndBack(t *testing.T) {
	session := &fakeSession{registerErr: service.ErrOfflineOperation}
	m := newRootModel(context.Background(), session, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	fillForm(t, m.form, map[string]string{"Full name": "V", "Username": "visitor", "Password": "secret1", "Repeat": "secret1"})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, pageRegister, m.page)
	assert.Equal(t, service.ErrOfflineOperation.Error(), m.form.errMsg)
	assert.Empty(t, m.form.value("Repeat"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, pageLogin, m.page)
	assert.False(t, m.quitByUser)
}

func TestCreatableRole(t *testing.T) {
	tests := []struct {
		role   models.Role
		want   models.Role
		wantOK bool
	}{
		{role: models.RoleSuperAdmin, want: models.RoleCorporate, wantOK: true},
		{role: models.RoleCorporate, want: models.RoleBranch, wantOK: true},
		{role: models.RoleBranch},
		{role: models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got, ok := creatableRole(tt.role)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─── view helpers ───

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "longer...", fitText("longer-than-ten", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestValueOrDash(t *testing.T) {
	v := "root"
	empty := ""

	assert.Equal(t, "-", valueOrDash(nil))
	assert.Equal(t, "-", valueOrDash(&empty))
	assert.Equal(t, "root", valueOrDash(&v))
}

func TestListModel_HotKeys(t *testing.T) {
	tests := []struct {
		name      string
		role      models.Role
		degraded  bool
		want      []string
		wantNotIn []string
	}{
		{name: "super admin can switch scope", role: models.RoleSuperAdmin, want: []string{"s: toggle status", "a: all/own", "n: new account"}},
		{name: "corporate", role: models.RoleCorporate, want: []string{"u: copy id", "n: new account"}, wantNotIn: []string{"a: all/own"}},
		{name: "branch cannot provision", role: models.RoleBranch, wantNotIn: []string{"n: new account"}},
		{name: "offline demo", role: models.RoleSuperAdmin, degraded: true, want: []string{"l: sign out", "q: quit"}, wantNotIn: []string{"s: toggle status", "n: new account"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := newListModel(models.Principal{Role: tt.role}, tt.degraded).hotKeys()

			for _, want := range tt.want {
				assert.Contains(t, line, want)
			}
			for _, unwanted := range tt.wantNotIn {
				assert.NotContains(t, line, unwanted)
			}
		})
	}
}
