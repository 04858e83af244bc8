package use

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/cli"
	testutilcli "github.com/thenoetrevino/kanban/internal/testutil/cli"
	"github.com/thenoetrevino/kanban/internal/types"
)

func TestUseProject(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	projectID := testutilcli.CreateTestProject(t, db, "Alpha")

	t.Run("prints export", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ProjectCmd(), []string{projectID.String()})
		require.NoError(t, err)
		assert.Equal(t, "export KANBAN_PROJECT="+projectID.String()+"\n", output)
	})

	t.Run("clear", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--clear"})
		require.NoError(t, err)
		assert.Equal(t, "unset KANBAN_PROJECT\n", output)
	})

	t.Run("show", func(t *testing.T) {
		t.Setenv(cli.ProjectEnv, projectID.String())

		output, err := testutilcli.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--show"})
		require.NoError(t, err)
		assert.Contains(t, output, "Current project: Alpha")
	})

	t.Run("show without context", func(t *testing.T) {
		t.Setenv(cli.ProjectEnv, "")

		output, err := testutilcli.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--show"})
		require.NoError(t, err)
		assert.Contains(t, output, "No project context set")
	})

	t.Run("unknown project", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ProjectCmd(), []string{types.NewProjectID().String()})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
		assert.NotContains(t, output, "export")
	})
}
