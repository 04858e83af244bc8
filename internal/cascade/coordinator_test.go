package cascade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/types"
)

type fixture struct {
	repo    *database.Repository
	project types.ProjectID
	columns []types.ColumnID
}

// seed creates a project with two columns of three boards each
func seed(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	repo := database.NewRepository(testutil.SetupTestDB(t))

	p, err := repo.CreateProject(ctx, "Release")
	require.NoError(t, err)

	f := fixture{repo: repo, project: p.ID}
	for _, title := range []string{"Todo", "Done"} {
		c, err := repo.CreateColumn(ctx, p.ID, title)
		require.NoError(t, err)
		f.columns = append(f.columns, c.ID)
		for _, card := range []string{"one", "two", "three"} {
			_, err := repo.CreateBoard(ctx, c.ID, card)
			require.NoError(t, err)
		}
	}
	return f
}

func TestDeleteProject_RemovesEverything(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	report, err := New(f.repo, nil).DeleteProject(ctx, f.project)
	require.NoError(t, err)
	assert.Equal(t, Report{Boards: 6, Columns: 2, Projects: 1}, report)

	_, err = f.repo.GetProjectByID(ctx, f.project)
	assert.ErrorIs(t, err, database.ErrNotFound)

	columns, err := f.repo.GetColumnsByProject(ctx, f.project)
	require.NoError(t, err)
	assert.Empty(t, columns)

	boards, err := f.repo.GetBoardsByProject(ctx, f.project)
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestDeleteProject_LeavesOtherProjectsAlone(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	other, err := f.repo.CreateProject(ctx, "Other")
	require.NoError(t, err)
	col, err := f.repo.CreateColumn(ctx, other.ID, "Todo")
	require.NoError(t, err)
	_, err = f.repo.CreateBoard(ctx, col.ID, "keep me")
	require.NoError(t, err)

	_, err = New(f.repo, nil).DeleteProject(ctx, f.project)
	require.NoError(t, err)

	boards, err := f.repo.GetBoardsByProject(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}

func TestDeleteProject_NotFound(t *testing.T) {
	f := seed(t)

	_, err := New(f.repo, nil).DeleteProject(context.Background(), types.NewProjectID())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteColumn_RemovesBoardsAndRepairsChain(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	third, err := f.repo.CreateColumn(ctx, f.project, "Archive")
	require.NoError(t, err)

	projectID, report, err := New(f.repo, nil).DeleteColumn(ctx, f.columns[1])
	require.NoError(t, err)
	assert.Equal(t, f.project, projectID)
	assert.Equal(t, Report{Boards: 3, Columns: 1}, report)

	ordered, err := f.repo.GetOrderedColumns(ctx, f.project)
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Equal(t, f.columns[0], ordered[0].ID)
	assert.Equal(t, third.ID, ordered[1].ID)

	boards, err := f.repo.GetBoardsByProject(ctx, f.project)
	require.NoError(t, err)
	assert.Len(t, boards, 3, "boards of the surviving column stay")
}

func TestDeleteColumn_NotFoundMutatesNothing(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	_, _, err := New(f.repo, nil).DeleteColumn(ctx, types.NewColumnID())
	var nf *database.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "column", nf.Entity)

	boards, err := f.repo.GetBoardsByProject(ctx, f.project)
	require.NoError(t, err)
	assert.Len(t, boards, 6)
}
