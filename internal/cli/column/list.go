package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [project-id]",
		Short: "List the columns of a project, left to right",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	projectID, err := formatter.ResolveProjectID(firstArg(args))
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	columns, err := cliInstance.App.ColumnService.ListOrderedColumns(ctx, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, c := range columns {
			formatter.ID(c.ID)
		}
		return nil
	}

	if formatter.JSON {
		if columns == nil {
			columns = []*models.Column{}
		}
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"columns": columns,
		})
	}

	if len(columns) == 0 {
		formatter.Printf("No columns found\n")
		return nil
	}

	formatter.Printf("Found %s:\n\n", cli.Plural(len(columns), "column"))
	for i, c := range columns {
		formatter.Printf("  %d. %s  %s\n", i+1, c.ID, c.Title)
	}
	return nil
}
