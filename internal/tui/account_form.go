// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/my-group/models"
)

const minPasswordLength = 6

type formKind int

const (
	// formSubordinate provisions an account beneath the signed-in principal.
	formSubordinate formKind = iota
	// formRegister signs up an anonymous visitor as USER.
	formRegister
)

type formField struct {
	label string
	input textinput.Model
}

// accountFormModel is the account form shared by provisioning and
// self-registration. The role is fixed when the form is built: the one role
// the principal may create, or USER for a visitor.
type accountFormModel struct {
	ctx     context.Context
	session Session

	kind   formKind
	role   models.Role
	fields []formField

	focus      int
	submitting bool
	errMsg     string
}

// creatableRole returns the role an account holding r provisions.
func creatableRole(r models.Role) (models.Role, bool) {
	for _, target := range models.Roles() {
		if r.CanCreate(target) {
			return target, true
		}
	}
	return "", false
}

func newSubordinateForm(ctx context.Context, session Session, role models.Role) *accountFormModel {
	return newAccountForm(ctx, session, formSubordinate, role)
}

func newRegisterForm(ctx context.Context, session Session) *accountFormModel {
	return newAccountForm(ctx, session, formRegister, models.RoleUser)
}

func newAccountForm(ctx context.Context, session Session, kind formKind, role models.Role) *accountFormModel {
	fields := []formField{
		{label: "Full name", input: newFormInput("full name", 100, false)},
		{label: "Username", input: newFormInput("username", 64, false)},
		{label: "Password", input: newFormInput("password", 256, true)},
	}
	if kind == formRegister {
		fields = append(fields, formField{label: "Repeat", input: newFormInput("repeat password", 256, true)})
	}
	fields = append(fields, formField{label: "Email", input: newFormInput("email (optional)", 254, false)})
	fields[0].input.Focus()

	return &accountFormModel{
		ctx:     ctx,
		session: session,
		kind:    kind,
		role:    role,
		fields:  fields,
	}
}

func newFormInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func (m *accountFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *accountFormModel) value(label string) string {
	for _, f := range m.fields {
		if f.label == label {
			return f.input.Value()
		}
	}
	return ""
}

// Update handles navigation and submission. Failed results keep the form
// filled in, except for the passwords.
func (m *accountFormModel) Update(msg tea.Msg) (*accountFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case accountCreatedMsg:
		m.finish(msg.err)
		return m, nil
	case registeredMsg:
		m.finish(msg.err)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			m.move(1)
			return m, nil
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			m.move(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *accountFormModel) finish(err error) {
	m.submitting = false
	if err == nil {
		return
	}
	m.errMsg = describeError(err)
	for i := range m.fields {
		if m.fields[i].input.EchoMode == textinput.EchoPassword {
			m.fields[i].input.SetValue("")
		}
	}
}

func (m *accountFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	req, problem := m.request()
	if problem != "" {
		m.errMsg = problem
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	if m.kind == formRegister {
		return m.cmdRegister(req)
	}
	return m.cmdCreate(req)
}

// request validates the inputs and builds the provisioning payload. A
// non-empty problem describes the first invalid input.
func (m *accountFormModel) request() (models.CreateUserRequest, string) {
	fullName := strings.TrimSpace(m.value("Full name"))
	username := strings.TrimSpace(m.value("Username"))
	password := m.value("Password")
	email := strings.TrimSpace(m.value("Email"))

	switch {
	case fullName == "" || username == "" || password == "":
		return models.CreateUserRequest{}, "full name, username and password are required"
	case len(password) < minPasswordLength:
		return models.CreateUserRequest{}, "password must be at least 6 characters"
	case m.kind == formRegister && password != m.value("Repeat"):
		return models.CreateUserRequest{}, "passwords do not match"
	case email != "" && !strings.Contains(email, "@"):
		return models.CreateUserRequest{}, "please enter a valid email address"
	}

	req := models.CreateUserRequest{
		Username: username,
		Password: password,
		Role:     m.role,
	}
	req.FullName = &fullName
	if email != "" {
		req.EmailID = &email
	}
	return req, ""
}

func (m *accountFormModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for _, f := range m.fields {
		b.WriteString(padLabel(f.label))
		b.WriteString(" │ [")
		b.WriteString(f.input.View())
		b.WriteString("]\n")
	}
	b.WriteString(padLabel("Role"))
	b.WriteString(" │ ")
	b.WriteString(m.role.Title())
	b.WriteString("\n")

	switch {
	case m.submitting:
		b.WriteString("\n[Saving...]\n")
	case m.kind == formRegister:
		b.WriteString("\n[Register]\n")
	default:
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), helpLine(keys.back, keys.tab, keys.enter))
}

func (m *accountFormModel) title() string {
	if m.kind == formRegister {
		return "REGISTER"
	}
	return "NEW " + strings.ToUpper(m.role.Title()) + " ACCOUNT"
}

func padLabel(label string) string {
	return label + strings.Repeat(" ", max(0, 10-len(label)))
}

func (m *accountFormModel) move(delta int) {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

func (m *accountFormModel) cmdCreate(req models.CreateUserRequest) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		user, err := session.CreateUser(ctx, req)
		return accountCreatedMsg{user: user, err: err}
	}
}

func (m *accountFormModel) cmdRegister(req models.CreateUserRequest) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		principal, err := session.Register(ctx, req)
		return registeredMsg{principal: principal, err: err}
	}
}
