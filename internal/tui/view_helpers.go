// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const dividerWidth = 54

// renderPage lays out a screen: title, body between two dividers, then the
// hot key line.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	divider := dividerStyle.Render(strings.Repeat("─", dividerWidth))

	sections := []string{
		titleStyle.Render(title),
		bodyStyle.Render(divider),
		"",
		bodyStyle.Render(body),
		"",
		bodyStyle.Render(divider),
	}
	if strings.TrimSpace(hotKeys) != "" {
		sections = append(sections, bodyStyle.Render(helpStyle.Render(hotKeys)))
	}
	sections = append(sections, bodyStyle.Render(helpStyle.Render("ctrl+c: quit")))

	return pageStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// fitText truncates v to max bytes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
