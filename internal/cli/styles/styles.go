// Package styles holds the lipgloss styles used by human-readable CLI output
package styles

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "ID:", "Column:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For column headers in trees

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Tree styles
	BranchStyle lipgloss.Style
	IDStyle     lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ColumnBorder)).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))

	BranchStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.BoardBorder))

	IDStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderTreeColumn renders a column header line of a project tree
func RenderTreeColumn(title, id string, boards int) string {
	count := "boards"
	if boards == 1 {
		count = "board"
	}
	return SectionStyle.Render(title) + " " +
		IDStyle.Render("("+id+", "+strconv.Itoa(boards)+" "+count+")")
}

// RenderTreeBoard renders one board line under its column; last selects the
// closing branch glyph.
func RenderTreeBoard(title, id string, last bool) string {
	branch := "├── "
	if last {
		branch = "└── "
	}
	return BranchStyle.Render(branch) + ValueStyle.Render(title) + " " + IDStyle.Render(id)
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(strings.TrimRight(content, "\n"))
}
