package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
)

// columnOverhead is border(2) + header(1) + the two scroll indicator lines
const columnOverhead = 5

// RenderColumn renders a column with its boards top to bottom
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Board 1}
//	{Board 2}
//	...
//	▼ (if more boards below)
//
// selectedBoard is the index of the selected board, or -1 when the selection
// is in another column. height 0 means unbounded.
func RenderColumn(s Styles, col *models.ColumnWithBoards, selected bool, selectedBoard, height int) string {
	var content strings.Builder
	content.WriteString(s.ColumnTitle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Boards))))
	content.WriteString("\n")

	if len(col.Boards) == 0 {
		content.WriteString(s.Subtle.Italic(true).Render("No boards"))
	} else {
		first, last := VisibleRange(len(col.Boards), selectedBoard, height)

		if first > 0 {
			content.WriteString(s.Subtle.Render("▲ more above"))
		}
		content.WriteString("\n")

		for i := first; i < last; i++ {
			content.WriteString(RenderBoard(s, col.Boards[i], selected && i == selectedBoard))
			content.WriteString("\n")
		}

		if last < len(col.Boards) {
			content.WriteString(s.Subtle.Render("▼ more below"))
		}
	}

	style := s.Column
	if selected {
		style = s.SelectedColumn
	}
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(strings.TrimRight(content.String(), "\n"))
}

// VisibleRange returns the half-open range of boards that fit into height,
// scrolled just enough to keep selected in view
func VisibleRange(total, selected, height int) (first, last int) {
	if height <= 0 {
		return 0, total
	}
	fit := max((height-columnOverhead)/BoardCardHeight, 1)
	if total <= fit {
		return 0, total
	}
	if selected >= fit {
		first = selected - fit + 1
	}
	return first, min(first+fit, total)
}
