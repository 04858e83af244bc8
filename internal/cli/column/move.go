package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	columnservice "github.com/thenoetrevino/kanban/internal/services/column"
	"github.com/thenoetrevino/kanban/internal/types"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column-id>",
		Short: "Reorder a column within its project",
		Long: `Move a column so it sits immediately before another column of the same
project. Without --before the column moves to the right end.

Examples:
  # put "Review" before "Done"
  kanban column move <review-id> --before=<done-id>

  # make it the last column
  kanban column move <review-id>
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("before", "", "Column ID to place the column in front of (default: last)")
	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	before, _ := cmd.Flags().GetString("before")
	formatter := cli.FormatterFor(cmd)

	columnID, err := formatter.ColumnID(args[0])
	if err != nil {
		return err
	}

	var newNext *types.ColumnID
	if before != "" {
		next, err := formatter.ColumnID(before)
		if err != nil {
			return err
		}
		newNext = &next
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	err = cliInstance.App.ColumnService.ReorderColumn(ctx, columnservice.ReorderColumnRequest{
		ID:        columnID,
		NewNextID: newNext,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":   true,
			"column_id": columnID,
			"before":    newNext,
		})
	}

	if newNext == nil {
		formatter.Printf("✓ Column %s moved to the end\n", columnID)
	} else {
		formatter.Printf("✓ Column %s moved before %s\n", columnID, *newNext)
	}
	return nil
}
