// Package tui provides an interactive browser for drift results.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - matches the CLI colors
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F3F4F6") // Light gray
)

// Styles contains the lipgloss styles used by the drift browser.
type Styles struct {
	Header      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Empty        lipgloss.Style

	Footer  lipgloss.Style
	HelpKey lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() *Styles {
	s := &Styles{}

	s.Header = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	s.TabActive = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 2).
		Underline(true)

	s.TabInactive = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 2)

	s.Item = lipgloss.NewStyle().
		Foreground(ColorText).
		PaddingLeft(2)

	s.ItemSelected = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		PaddingLeft(0)

	s.Empty = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Italic(true).
		Padding(1, 2)

	s.Footer = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	return s
}
