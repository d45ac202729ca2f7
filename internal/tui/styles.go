// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorError   = lipgloss.Color("9")
	colorWarning = lipgloss.Color("11")
	colorAccent  = lipgloss.Color("12")
)

var (
	pageStyle     = lipgloss.NewStyle().Padding(1, 2)
	bodyStyle     = lipgloss.NewStyle().PaddingLeft(2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	dividerStyle  = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarning)
	inactiveStyle = lipgloss.NewStyle().Faint(true)
	overlayStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Padding(1, 2)
)
