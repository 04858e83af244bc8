package tui

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/services"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Update handles all messages and returns the updated model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scrollToSelection()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case projectsLoadedMsg:
		var current types.ProjectID
		if p := m.currentProject(); p != nil {
			current = p.ID
		}
		m.projects = msg.projects
		m.projectIdx = 0
		for i, p := range m.projects {
			if p.ID == current {
				m.projectIdx = i
			}
		}
		if len(m.projects) == 0 {
			m.tree = nil
			m.clamp()
			return m, nil
		}
		return m, m.loadTree()

	case treeLoadedMsg:
		if p := m.currentProject(); p == nil || p.ID != msg.tree.ID {
			// a reply for a project we already switched away from
			return m, nil
		}
		sel := m.selection()
		m.tree = msg.tree
		m.restore(sel)
		return m, nil

	case changedMsg:
		m.setNotice(components.NoticeInfo, msg.notice)
		return m, m.loadTree()

	case errMsg:
		return m.handleError(msg.err)

	case RefreshMsg:
		var cmds []tea.Cmd
		if m.events != nil {
			cmds = append(cmds, listen(m.ctx, m.events))
		}
		switch {
		case strings.HasPrefix(msg.Event.Op, "project.") || msg.Event.ProjectID == "":
			cmds = append(cmds, m.loadProjects())
		case m.currentProject() != nil && msg.Event.Matches(m.currentProject().ID):
			cmds = append(cmds, m.loadTree())
		}
		return m, tea.Batch(cmds...)

	case hubClosedMsg:
		m.live = false
		m.setNotice(components.NoticeWarning, "lost connection to the event hub; press r to refresh")
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.setNotice(components.NoticeInfo, "")
		return m, m.loadProjects()

	case key.Matches(msg, m.keys.PrevColumn):
		m.selectedColumn--
		m.selectedBoard = 0
		m.clamp()
		return m, nil

	case key.Matches(msg, m.keys.NextColumn):
		m.selectedColumn++
		m.selectedBoard = 0
		m.clamp()
		return m, nil

	case key.Matches(msg, m.keys.PrevBoard):
		m.selectedBoard--
		m.clamp()
		return m, nil

	case key.Matches(msg, m.keys.NextBoard):
		m.selectedBoard++
		m.clamp()
		return m, nil

	case key.Matches(msg, m.keys.PrevProject):
		return m.switchProject(-1)

	case key.Matches(msg, m.keys.NextProject):
		return m.switchProject(1)

	case key.Matches(msg, m.keys.MoveBoardUp):
		return m, m.moveBoardWithinColumn(-1)

	case key.Matches(msg, m.keys.MoveBoardDown):
		return m, m.moveBoardWithinColumn(1)

	case key.Matches(msg, m.keys.MoveBoardLeft):
		return m, m.moveBoardToColumn(-1)

	case key.Matches(msg, m.keys.MoveBoardRight):
		return m, m.moveBoardToColumn(1)

	case key.Matches(msg, m.keys.MoveColumnLeft):
		return m, m.moveColumn(-1)

	case key.Matches(msg, m.keys.MoveColumnRight):
		return m, m.moveColumn(1)
	}

	return m, nil
}

func (m Model) switchProject(delta int) (tea.Model, tea.Cmd) {
	if len(m.projects) < 2 {
		return m, nil
	}
	m.projectIdx = (m.projectIdx + delta + len(m.projects)) % len(m.projects)
	m.tree = nil
	m.selectedColumn, m.selectedBoard, m.columnOffset = 0, 0, 0
	m.setNotice(components.NoticeInfo, "")
	return m, m.loadTree()
}

// moveBoardWithinColumn swaps the selected board with its neighbour above
// (delta -1) or below (delta 1)
func (m Model) moveBoardWithinColumn(delta int) tea.Cmd {
	col, b := m.currentColumn(), m.currentBoard()
	if b == nil {
		return nil
	}
	i, n := m.selectedBoard, len(col.Boards)

	var newNext *types.BoardID
	switch {
	case delta < 0 && i > 0:
		newNext = &col.Boards[i-1].ID
	case delta > 0 && i < n-1:
		if i+2 < n {
			newNext = &col.Boards[i+2].ID
		}
	default:
		return nil
	}

	return m.reorderBoard(boardservice.ReorderBoardRequest{
		ID:          b.ID,
		NewColumnID: col.ID,
		NewNextID:   newNext,
	}, fmt.Sprintf("moved '%s'", b.Title))
}

// moveBoardToColumn moves the selected board to the neighbouring column,
// keeping its row when the target column is long enough
func (m Model) moveBoardToColumn(delta int) tea.Cmd {
	b := m.currentBoard()
	cols := m.columns()
	j := m.selectedColumn + delta
	if b == nil || j < 0 || j >= len(cols) {
		return nil
	}
	target := cols[j]

	var newNext *types.BoardID
	if m.selectedBoard < len(target.Boards) {
		newNext = &target.Boards[m.selectedBoard].ID
	}

	return m.reorderBoard(boardservice.ReorderBoardRequest{
		ID:          b.ID,
		NewColumnID: target.ID,
		NewNextID:   newNext,
	}, fmt.Sprintf("moved '%s' to %s", b.Title, target.Title))
}

// moveColumn swaps the selected column with its left (delta -1) or right
// (delta 1) neighbour
func (m Model) moveColumn(delta int) tea.Cmd {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	cols := m.columns()
	j, n := m.selectedColumn, len(cols)

	var newNext *types.ColumnID
	switch {
	case delta < 0 && j > 0:
		newNext = &cols[j-1].ID
	case delta > 0 && j < n-1:
		if j+2 < n {
			newNext = &cols[j+2].ID
		}
	default:
		return nil
	}

	return m.reorderColumn(col.ID, newNext, fmt.Sprintf("moved column '%s'", col.Title))
}

func (m Model) handleError(err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		// someone else deleted what we were looking at
		m.setNotice(components.NoticeWarning, err.Error())
		return m, m.loadProjects()
	case errors.Is(err, services.ErrInvalidArgument):
		m.setNotice(components.NoticeWarning, err.Error())
	default:
		m.setNotice(components.NoticeError, err.Error())
	}
	return m, nil
}
