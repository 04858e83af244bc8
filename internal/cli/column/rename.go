package column

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	columnservice "github.com/thenoetrevino/kanban/internal/services/column"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column-id>",
		Short: "Change the title of a column",
		Args:  cobra.ExactArgs(1),
		RunE:  runRename,
	}

	cmd.Flags().String("title", "", "New column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	title, _ := cmd.Flags().GetString("title")
	formatter := cli.FormatterFor(cmd)

	columnID, err := formatter.ColumnID(args[0])
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	column, err := cliInstance.App.ColumnService.UpdateColumn(ctx, columnservice.UpdateColumnRequest{
		ID:    columnID,
		Title: title,
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

	formatter.Printf("✓ Column %s renamed to '%s'\n", column.ID, column.Title)
	return nil
}
