package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/tui/components"
)

// View renders the board, the status bar and the help footer
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		m.renderBoard(),
		m.renderStatusBar(),
		m.help.View(m.keys),
	)
	return view
}

func (m Model) renderBoard() string {
	p := m.currentProject()
	if p == nil {
		return m.styles.Subtle.Render("No projects yet. Create one with: kanban project create --title=...")
	}
	cols := m.columns()
	if m.tree == nil {
		return m.styles.Subtle.Render("Loading " + p.Title + "...")
	}
	if len(cols) == 0 {
		return m.styles.Subtle.Render("No columns yet. Add one with: kanban column create --project=" + p.ID.String() + " --title=...")
	}

	// status bar and help take the bottom lines
	height := max(m.height-3, 0)
	if m.help.ShowAll {
		height = max(m.height-6, 0)
	}

	last := min(m.columnOffset+m.visibleColumns(), len(cols))
	rendered := make([]string, 0, last-m.columnOffset)
	for i := m.columnOffset; i < last; i++ {
		selected := i == m.selectedColumn
		selectedBoard := -1
		if selected {
			selectedBoard = m.selectedBoard
		}
		rendered = append(rendered, components.RenderColumn(m.styles, cols[i], selected, selectedBoard, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderStatusBar() string {
	props := components.StatusBarProps{
		Width:       m.width,
		Live:        m.live,
		Notice:      m.notice,
		NoticeLevel: m.noticeLevel,
	}
	if p := m.currentProject(); p != nil {
		props.Project = p.Title
		props.Position = fmt.Sprintf("%d/%d", m.projectIdx+1, len(m.projects))
	}
	return components.RenderStatusBar(m.styles, props)
}
