// Package theme defines the lipgloss styles shared by CLI output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — restrained, readable on dark terminals
var (
	Primary = lipgloss.Color("#3B82F6") // Blue
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#EAB308") // Amber
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Valid = lipgloss.NewStyle().
		Bold(true).
		Foreground(Success)

	Invalid = lipgloss.NewStyle().
		Bold(true).
		Foreground(Error)

	Warn = lipgloss.NewStyle().
		Foreground(Warning)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// ScoreStyle picks a style for a 0-100 validation score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return Valid
	case score >= 50:
		return Warn
	default:
		return Invalid
	}
}
