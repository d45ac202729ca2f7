// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	back     key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	toggle   key.Binding
	scope    key.Binding
	copyUser key.Binding
	newUser  key.Binding
	register key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	logout:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "sign out")),
	refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	toggle:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle status")),
	scope:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all/own")),
	copyUser: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "copy id")),
	newUser:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new account")),
	register: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "register")),
}

// helpLine renders bindings as "key: description" pairs.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " │ ")
}
