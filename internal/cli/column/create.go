package column

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	columnservice "github.com/thenoetrevino/kanban/internal/services/column"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a new column to a project",
		Long: `Create a new column. New columns always go to the right end of the
project; use "kanban column move" to put them elsewhere.

Examples:
  kanban column create --project=<project-id> --title="Review"
  COLUMN_ID=$(kanban column create --project=<project-id> --title="Review" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("project", "", "Project ID (default: $KANBAN_PROJECT)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rawProject, _ := cmd.Flags().GetString("project")
	title, _ := cmd.Flags().GetString("title")
	formatter := cli.FormatterFor(cmd)

	projectID, err := formatter.ResolveProjectID(rawProject)
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	column, err := cliInstance.App.ColumnService.CreateColumn(ctx, columnservice.CreateColumnRequest{
		ProjectID: projectID,
		Title:     title,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.ID(column.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"column":  column,
		})
	}

	formatter.Printf("✓ Column '%s' created successfully (ID: %s)\n", column.Title, column.ID)
	return nil
}
