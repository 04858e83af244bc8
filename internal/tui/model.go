// Package tui is the live board view: every column of a project side by side,
// with keys to move boards and columns. It reloads whenever the event hub
// reports a change, so several views and CLI sessions stay in sync.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    *app.App
	keys   keyMap
	help   help.Model
	styles components.Styles

	// nil when no server is running
	events <-chan events.Event
	live   bool

	projects   []*models.Project
	projectIdx int
	tree       *models.ProjectTree

	selectedColumn int
	selectedBoard  int
	columnOffset   int // index of the leftmost visible column

	width  int
	height int

	notice      string
	noticeLevel components.NoticeLevel
}

// New creates the board view. eventChan may be nil, in which case the view
// only reloads after its own changes and on the refresh key.
func New(ctx context.Context, a *app.App, cfg *config.Config, eventChan <-chan events.Event) Model {
	return Model{
		ctx:    ctx,
		app:    a,
		keys:   newKeyMap(cfg.KeyMappings),
		help:   help.New(),
		styles: components.NewStyles(cfg.ColorScheme),
		events: eventChan,
		live:   eventChan != nil,
	}
}

// Init loads the projects and starts listening for hub events
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadProjects()}
	if m.events != nil {
		cmds = append(cmds, listen(m.ctx, m.events))
	}
	return tea.Batch(cmds...)
}

// currentProject returns the project on screen, or nil when there are none
func (m Model) currentProject() *models.Project {
	if m.projectIdx < 0 || m.projectIdx >= len(m.projects) {
		return nil
	}
	return m.projects[m.projectIdx]
}

func (m Model) columns() []*models.ColumnWithBoards {
	if m.tree == nil {
		return nil
	}
	return m.tree.Columns
}

// currentColumn returns the selected column, or nil when the project has none
func (m Model) currentColumn() *models.ColumnWithBoards {
	cols := m.columns()
	if m.selectedColumn < 0 || m.selectedColumn >= len(cols) {
		return nil
	}
	return cols[m.selectedColumn]
}

// currentBoard returns the selected board, or nil when the column is empty
func (m Model) currentBoard() *models.Board {
	col := m.currentColumn()
	if col == nil || m.selectedBoard < 0 || m.selectedBoard >= len(col.Boards) {
		return nil
	}
	return col.Boards[m.selectedBoard]
}

// selection captures the selected column and board by id so it survives a reload
type selection struct {
	column types.ColumnID
	board  types.BoardID
}

func (m Model) selection() selection {
	var sel selection
	if col := m.currentColumn(); col != nil {
		sel.column = col.ID
	}
	if b := m.currentBoard(); b != nil {
		sel.board = b.ID
	}
	return sel
}

// restore points the selection at sel in the freshly loaded tree, falling back
// to clamping the old indexes when the ids are gone
func (m *Model) restore(sel selection) {
	for ci, col := range m.columns() {
		if sel.board != "" {
			for bi, b := range col.Boards {
				if b.ID == sel.board {
					m.selectedColumn, m.selectedBoard = ci, bi
					m.scrollToSelection()
					return
				}
			}
		}
	}
	for ci, col := range m.columns() {
		if col.ID == sel.column {
			m.selectedColumn = ci
			break
		}
	}
	m.clamp()
}

func (m *Model) clamp() {
	cols := m.columns()
	m.selectedColumn = min(max(m.selectedColumn, 0), max(len(cols)-1, 0))
	boards := 0
	if col := m.currentColumn(); col != nil {
		boards = len(col.Boards)
	}
	m.selectedBoard = min(max(m.selectedBoard, 0), max(boards-1, 0))
	m.scrollToSelection()
}

// visibleColumns is how many columns fit side by side
func (m Model) visibleColumns() int {
	if m.width <= 0 {
		return max(len(m.columns()), 1)
	}
	return max(m.width/components.ColumnWidth, 1)
}

func (m *Model) scrollToSelection() {
	visible := m.visibleColumns()
	if m.selectedColumn < m.columnOffset {
		m.columnOffset = m.selectedColumn
	}
	if m.selectedColumn >= m.columnOffset+visible {
		m.columnOffset = m.selectedColumn - visible + 1
	}
	m.columnOffset = max(m.columnOffset, 0)
}

func (m *Model) setNotice(level components.NoticeLevel, text string) {
	m.notice = text
	m.noticeLevel = level
}
