// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// errorOverlayModel is a modal error box. While it is shown every key
// except enter and esc is swallowed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	body := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter/esc: close")
	return overlayStyle.Render(body)
}
