// Package term renders the console in a plain terminal: huh prompts for
// confirmations, lipgloss styled notices and a lipgloss table of groups.
package term

import (
	"groupadmin/server/internal/console"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles for the terminal front end
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1D4ED8")).
			Background(lipgloss.Color("#DBEAFE")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))
)

// statusStyle colours an enum cell by its status
func statusStyle(s console.Status) lipgloss.Style {
	switch s {
	case console.StatusSuccess:
		return cellStyle.Foreground(lipgloss.Color("#10b981"))
	case console.StatusError:
		return cellStyle.Foreground(lipgloss.Color("#ef4444"))
	}
	return cellStyle
}
