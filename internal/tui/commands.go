package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	columnservice "github.com/thenoetrevino/kanban/internal/services/column"
	"github.com/thenoetrevino/kanban/internal/types"
)

// projectsLoadedMsg carries the project list
type projectsLoadedMsg struct {
	projects []*models.Project
}

// treeLoadedMsg carries the columns and boards of one project
type treeLoadedMsg struct {
	tree *models.ProjectTree
}

// changedMsg reports that a mutation of this view committed
type changedMsg struct {
	notice string
}

// errMsg reports a failed load or mutation
type errMsg struct {
	err error
}

// RefreshMsg is sent when the event hub reports a change
type RefreshMsg struct {
	Event events.Event
}

// hubClosedMsg means the event channel closed, so the view is no longer live
type hubClosedMsg struct{}

func (m Model) loadProjects() tea.Cmd {
	ctx, svc := m.ctx, m.app.ProjectService
	return func() tea.Msg {
		projects, err := svc.ListProjects(ctx)
		if err != nil {
			return errMsg{err}
		}
		return projectsLoadedMsg{projects}
	}
}

func (m Model) loadTree() tea.Cmd {
	p := m.currentProject()
	if p == nil {
		return nil
	}
	ctx, svc, id := m.ctx, m.app.ProjectService, p.ID
	return func() tea.Msg {
		tree, err := svc.GetProjectTree(ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return treeLoadedMsg{tree}
	}
}

func (m Model) reorderBoard(req boardservice.ReorderBoardRequest, notice string) tea.Cmd {
	ctx, svc := m.ctx, m.app.BoardService
	return func() tea.Msg {
		if err := svc.ReorderBoard(ctx, req); err != nil {
			return errMsg{err}
		}
		return changedMsg{notice}
	}
}

func (m Model) reorderColumn(id types.ColumnID, newNext *types.ColumnID, notice string) tea.Cmd {
	ctx, svc := m.ctx, m.app.ColumnService
	return func() tea.Msg {
		err := svc.ReorderColumn(ctx, columnservice.ReorderColumnRequest{ID: id, NewNextID: newNext})
		if err != nil {
			return errMsg{err}
		}
		return changedMsg{notice}
	}
}

// listen waits for the next hub event
func listen(ctx context.Context, ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return hubClosedMsg{}
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
