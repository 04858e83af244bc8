// Package components renders the pieces of the board view. Every function is
// pure: it takes data and styles and returns a string.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config"
)

// ColumnWidth is the outer width of one rendered column, border included
const ColumnWidth = 32

// BoardCardHeight is the height of one rendered board card, border included
const BoardCardHeight = 3

// Styles holds every style the board view uses, derived from one color scheme
type Styles struct {
	Column         lipgloss.Style
	SelectedColumn lipgloss.Style
	ColumnTitle    lipgloss.Style

	Board         lipgloss.Style
	SelectedBoard lipgloss.Style

	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the view styles from a color scheme
func NewStyles(c config.ColorScheme) Styles {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	board := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.BoardBorder)).
		Foreground(lipgloss.Color(c.Normal)).
		Padding(0, 1).
		Width(ColumnWidth - 4)

	return Styles{
		Column:         column,
		SelectedColumn: column.BorderForeground(lipgloss.Color(c.SelectedBorder)),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Accent)),

		Board: board,
		SelectedBoard: board.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(c.SelectedBorder)).
			Foreground(lipgloss.Color(c.Title)),

		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.InfoFg)),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.WarningFg)),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.ErrorFg)),
	}
}
