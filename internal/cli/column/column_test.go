package column

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	testutilcli "github.com/thenoetrevino/kanban/internal/testutil/cli"
	"github.com/thenoetrevino/kanban/internal/types"
)

type cliFixture struct {
	t         *testing.T
	app       *app.App
	projectID types.ProjectID
}

// titles lists the column titles of the fixture project in display order
func (f *cliFixture) titles() []string {
	f.t.Helper()
	columns, err := f.app.ColumnService.ListOrderedColumns(context.Background(), f.projectID)
	require.NoError(f.t, err)
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
	}
	return titles
}

func columnTitles(t *testing.T, output string) []string {
	t.Helper()
	var titles []string
	for _, c := range testutilcli.ParseJSON(t, output)["columns"].([]any) {
		titles = append(titles, c.(map[string]any)["title"].(string))
	}
	return titles
}

func TestCreateColumn(t *testing.T) {
	t.Run("appends to the end", func(t *testing.T) {
		db, app := testutilcli.SetupCLITest(t)
		projectID := testutilcli.CreateTestProject(t, db, "Alpha")
		testutilcli.CreateTestColumn(t, db, projectID, "Todo")

		output, err := testutilcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--project", projectID.String(), "--title", "Done", "--quiet"})
		require.NoError(t, err)
		_, err = types.ParseColumnID(strings.TrimSpace(output))
		require.NoError(t, err)

		output, err = testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{projectID.String(), "--json"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Todo", "Done"}, columnTitles(t, output))
	})

	t.Run("project from environment", func(t *testing.T) {
		db, app := testutilcli.SetupCLITest(t)
		projectID := testutilcli.CreateTestProject(t, db, "Alpha")
		t.Setenv(cli.ProjectEnv, projectID.String())

		output, err := testutilcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Todo", "--json"})
		require.NoError(t, err)
		column := testutilcli.ParseJSON(t, output)["column"].(map[string]any)
		assert.Equal(t, projectID.String(), column["projectId"])
	})

	t.Run("no project anywhere", func(t *testing.T) {
		_, app := testutilcli.SetupCLITest(t)
		t.Setenv(cli.ProjectEnv, "")

		output, err := testutilcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Todo", "--json"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		assert.Contains(t, output, "NO_PROJECT")
	})

	t.Run("unknown project", func(t *testing.T) {
		_, app := testutilcli.SetupCLITest(t)

		_, err := testutilcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--project", types.NewProjectID().String(), "--title", "Todo"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestMoveColumn(t *testing.T) {
	setup := func(t *testing.T) (*cliFixture, []types.ColumnID) {
		db, app := testutilcli.SetupCLITest(t)
		projectID := testutilcli.CreateTestProject(t, db, "Alpha")
		ids := []types.ColumnID{
			testutilcli.CreateTestColumn(t, db, projectID, "Todo"),
			testutilcli.CreateTestColumn(t, db, projectID, "Doing"),
			testutilcli.CreateTestColumn(t, db, projectID, "Done"),
		}
		return &cliFixture{t: t, app: app, projectID: projectID}, ids
	}

	t.Run("before another column", func(t *testing.T) {
		f, ids := setup(t)

		output, err := testutilcli.ExecuteCLICommand(t, f.app, MoveCmd(), []string{ids[2].String(), "--before", ids[0].String()})
		require.NoError(t, err)
		assert.Contains(t, output, "moved before "+ids[0].String())
		assert.Equal(t, []string{"Done", "Todo", "Doing"}, f.titles())
	})

	t.Run("to the end", func(t *testing.T) {
		f, ids := setup(t)

		output, err := testutilcli.ExecuteCLICommand(t, f.app, MoveCmd(), []string{ids[0].String()})
		require.NoError(t, err)
		assert.Contains(t, output, "moved to the end")
		assert.Equal(t, []string{"Doing", "Done", "Todo"}, f.titles())
	})

	t.Run("before itself is a validation error", func(t *testing.T) {
		f, ids := setup(t)

		_, err := testutilcli.ExecuteCLICommand(t, f.app, MoveCmd(), []string{ids[1].String(), "--before", ids[1].String(), "--json"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Equal(t, []string{"Todo", "Doing", "Done"}, f.titles())
	})

	t.Run("unknown insertion point", func(t *testing.T) {
		f, ids := setup(t)

		_, err := testutilcli.ExecuteCLICommand(t, f.app, MoveCmd(), []string{ids[1].String(), "--before", types.NewColumnID().String()})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestDeleteColumn(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	projectID := testutilcli.CreateTestProject(t, db, "Alpha")
	todo := testutilcli.CreateTestColumn(t, db, projectID, "Todo")
	doing := testutilcli.CreateTestColumn(t, db, projectID, "Doing")
	testutilcli.CreateTestColumn(t, db, projectID, "Done")
	board := testutilcli.CreateTestBoard(t, db, doing, "Task")
	f := &cliFixture{t: t, app: app, projectID: projectID}

	output, err := testutilcli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{doing.String()}, "\n")
	require.NoError(t, err)
	assert.Contains(t, output, "Delete column 'Doing' and its 1 board?")
	assert.Contains(t, output, "Cancelled")
	assert.Equal(t, []string{"Todo", "Doing", "Done"}, f.titles())

	_, err = testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{doing.String(), "--force"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Todo", "Done"}, f.titles())

	_, err = app.BoardService.GetBoard(context.Background(), board)
	assert.Error(t, err, "boards go with their column")

	_, err = testutilcli.ExecuteCLICommand(t, app, RenameCmd(), []string{todo.String(), "--title", "Backlog"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Backlog", "Done"}, f.titles())
}
