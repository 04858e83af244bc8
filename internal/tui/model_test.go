package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	projectservice "github.com/thenoetrevino/kanban/internal/services/project"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/types"
)

type fixture struct {
	app     *app.App
	project types.ProjectID
	columns []types.ColumnID // Todo, Doing, Done
}

// setupModel builds a project with three columns; Todo holds a, b, c and
// Doing holds x. The returned model has loaded it.
func setupModel(t *testing.T) (Model, *fixture) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	a := app.New(database.NewRepository(db))

	f := &fixture{app: a}
	f.project = testutil.CreateTestProject(t, db, "Alpha")
	for _, title := range []string{"Todo", "Doing", "Done"} {
		f.columns = append(f.columns, testutil.CreateTestColumn(t, db, f.project, title))
	}
	for _, title := range []string{"a", "b", "c"} {
		testutil.CreateTestBoard(t, db, f.columns[0], title)
	}
	testutil.CreateTestBoard(t, db, f.columns[1], "x")

	m := New(context.Background(), a, config.Default(t.TempDir()), nil)
	m = drain(t, m, m.Init())
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.NotNil(t, m.tree)
	return m, f
}

// drain runs cmd and every command it produces, feeding messages to m
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "command loop did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			next, nc := m.Update(msg)
			m = next.(Model)
			queue = append(queue, nc)
		}
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		r := []rune(k)[0]
		m = update(t, m, tea.KeyPressMsg(tea.Key{Text: k, Code: r}))
	}
	return m
}

func titlesOf(boards []*models.Board) []string {
	out := make([]string, len(boards))
	for i, b := range boards {
		out[i] = b.Title
	}
	return out
}

func (f *fixture) boards(t *testing.T, col int) []string {
	t.Helper()
	boards, err := f.app.BoardService.ListOrderedBoards(context.Background(), f.columns[col])
	require.NoError(t, err)
	return titlesOf(boards)
}

func (f *fixture) columnTitles(t *testing.T) []string {
	t.Helper()
	cols, err := f.app.ColumnService.ListOrderedColumns(context.Background(), f.project)
	require.NoError(t, err)
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Title
	}
	return out
}

func TestInit_LoadsFirstProject(t *testing.T) {
	m, f := setupModel(t)

	assert.Equal(t, f.project, m.currentProject().ID)
	require.Len(t, m.columns(), 3)
	assert.Equal(t, "Todo", m.currentColumn().Title)
	assert.Equal(t, "a", m.currentBoard().Title)
}

func TestInit_NoProjects(t *testing.T) {
	db := testutil.SetupTestDB(t)
	m := New(context.Background(), app.New(database.NewRepository(db)), config.Default(t.TempDir()), nil)
	m = drain(t, m, m.Init())
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, m.currentProject())
	assert.Contains(t, m.View().Content, "No projects yet")
}

func TestNavigation(t *testing.T) {
	m, _ := setupModel(t)

	m = press(t, m, "j", "j", "j") // past the bottom stays on c
	assert.Equal(t, "c", m.currentBoard().Title)

	m = press(t, m, "l")
	assert.Equal(t, "Doing", m.currentColumn().Title)
	assert.Equal(t, "x", m.currentBoard().Title)

	m = press(t, m, "l", "l")
	assert.Equal(t, "Done", m.currentColumn().Title)
	assert.Nil(t, m.currentBoard())

	m = press(t, m, "h", "h", "h")
	assert.Equal(t, "Todo", m.currentColumn().Title)
}

func TestMoveBoardDown_FollowsBoard(t *testing.T) {
	m, f := setupModel(t)

	m = press(t, m, "J")
	assert.Equal(t, []string{"b", "a", "c"}, f.boards(t, 0))
	assert.Equal(t, "a", m.currentBoard().Title)
	assert.Equal(t, 1, m.selectedBoard)

	m = press(t, m, "J")
	assert.Equal(t, []string{"b", "c", "a"}, f.boards(t, 0))
	assert.Equal(t, 2, m.selectedBoard)

	// already at the bottom
	next, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: "J", Code: 'J'}))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, next.(Model).selectedBoard)
}

func TestMoveBoardUp(t *testing.T) {
	m, f := setupModel(t)

	m = press(t, m, "j", "j", "K")
	assert.Equal(t, []string{"a", "c", "b"}, f.boards(t, 0))
	assert.Equal(t, "c", m.currentBoard().Title)
	assert.Equal(t, 1, m.selectedBoard)
}

func TestMoveBoardAcrossColumns(t *testing.T) {
	m, f := setupModel(t)

	// b sits on row 1; Doing has a single board so b lands at its bottom
	m = press(t, m, "j", "L")
	assert.Equal(t, []string{"a", "c"}, f.boards(t, 0))
	assert.Equal(t, []string{"x", "b"}, f.boards(t, 1))
	assert.Equal(t, "Doing", m.currentColumn().Title)
	assert.Equal(t, "b", m.currentBoard().Title)

	// row 0 of Todo is a; moving x left puts it before a
	m = press(t, m, "k", "H")
	assert.Equal(t, []string{"x", "a", "c"}, f.boards(t, 0))
	assert.Equal(t, []string{"b"}, f.boards(t, 1))
	assert.Equal(t, "x", m.currentBoard().Title)

	// nothing left of the first column
	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: "H", Code: 'H'}))
	assert.Nil(t, cmd)
}

func TestMoveColumn(t *testing.T) {
	m, f := setupModel(t)

	m = press(t, m, ">")
	assert.Equal(t, []string{"Doing", "Todo", "Done"}, f.columnTitles(t))
	assert.Equal(t, "Todo", m.currentColumn().Title)
	assert.Equal(t, 1, m.selectedColumn)

	m = press(t, m, ">")
	assert.Equal(t, []string{"Doing", "Done", "Todo"}, f.columnTitles(t))

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: ">", Code: '>'}))
	assert.Nil(t, cmd, "rightmost column cannot move right")

	m = press(t, m, "<", "<")
	assert.Equal(t, []string{"Todo", "Doing", "Done"}, f.columnTitles(t))
	assert.Equal(t, 0, m.selectedColumn)
}

func TestRefresh_ReloadsOnHubEvent(t *testing.T) {
	m, f := setupModel(t)

	_, err := f.app.BoardService.CreateBoard(context.Background(), boardservice.CreateBoardRequest{
		ColumnID: f.columns[2],
		Title:    "shipped",
	})
	require.NoError(t, err)

	m = update(t, m, RefreshMsg{Event: events.Changed(f.project, "board.created")})
	assert.Equal(t, []string{"shipped"}, titlesOf(m.columns()[2].Boards))
}

func TestRefresh_OtherProjectIgnored(t *testing.T) {
	m, _ := setupModel(t)

	next, cmd := m.Update(RefreshMsg{Event: events.Changed(types.NewProjectID(), "board.created")})
	assert.Nil(t, cmd)
	assert.Equal(t, m.tree, next.(Model).tree)
}

func TestSwitchProject(t *testing.T) {
	m, f := setupModel(t)

	_, err := f.app.ProjectService.CreateProject(context.Background(), projectservice.CreateProjectRequest{Title: "Beta"})
	require.NoError(t, err)
	m = update(t, m, RefreshMsg{Event: events.Changed("", "project.created")})
	require.Len(t, m.projects, 2)

	m = press(t, m, "]")
	assert.Equal(t, "Beta", m.currentProject().Title)
	assert.Empty(t, m.columns())
	assert.Contains(t, m.View().Content, "No columns yet")

	m = press(t, m, "[")
	assert.Equal(t, "Alpha", m.currentProject().Title)
}

func TestErrors_SetNotice(t *testing.T) {
	m, _ := setupModel(t)

	m = update(t, m, errMsg{errors.New("disk on fire")})
	assert.Equal(t, components.NoticeError, m.noticeLevel)
	assert.Equal(t, "disk on fire", m.notice)

	m = update(t, m, errMsg{&database.NotFoundError{Entity: "board", ID: "b", Err: database.ErrNotFound}})
	assert.Equal(t, components.NoticeWarning, m.noticeLevel)
}

func TestHubClosed(t *testing.T) {
	m, _ := setupModel(t)
	m.live = true

	m = update(t, m, hubClosedMsg{})
	assert.False(t, m.live)
	assert.Equal(t, components.NoticeWarning, m.noticeLevel)
}

func TestView_RendersColumns(t *testing.T) {
	m, _ := setupModel(t)

	content := m.View().Content
	for _, want := range []string{"Todo (3)", "Doing (1)", "Done (0)", "Alpha", "offline"} {
		assert.Contains(t, content, want)
	}
	assert.True(t, m.View().AltScreen)
}

func TestQuit(t *testing.T) {
	m, _ := setupModel(t)

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: "q", Code: 'q'}))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestHelpToggle(t *testing.T) {
	m, _ := setupModel(t)
	short := m.View().Content

	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	assert.True(t, strings.Contains(m.View().Content, "move column left"))
	assert.NotEqual(t, short, m.View().Content)
}
