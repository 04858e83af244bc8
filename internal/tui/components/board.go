package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
)

// RenderBoard renders one board as a single-line card, truncating long titles
func RenderBoard(s Styles, b *models.Board, selected bool) string {
	style := s.Board
	if selected {
		style = s.SelectedBoard
	}
	inner := style.GetWidth() - style.GetHorizontalPadding()
	return style.Render(truncate(b.Title, inner))
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
