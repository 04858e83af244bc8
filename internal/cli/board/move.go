package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/types"
)

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <board-id>",
		Short: "Reorder a board or move it to another column",
		Long: `Move a board so it sits immediately before another board. The target
column defaults to the board's current one; without --before the board goes
to the bottom of the target column.

Examples:
  # reorder within the current column
  kanban board move <board-id> --before=<other-board-id>

  # move to the bottom of another column
  kanban board move <board-id> --column=<done-column-id>
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("column", "", "Target column ID (default: current column)")
	cmd.Flags().String("before", "", "Board ID to place the board in front of (default: bottom)")
	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rawColumn, _ := cmd.Flags().GetString("column")
	before, _ := cmd.Flags().GetString("before")
	formatter := cli.FormatterFor(cmd)

	boardID, err := formatter.BoardID(args[0])
	if err != nil {
		return err
	}

	var columnID types.ColumnID
	if rawColumn != "" {
		if columnID, err = formatter.ColumnID(rawColumn); err != nil {
			return err
		}
	}

	var newNext *types.BoardID
	if before != "" {
		next, err := formatter.BoardID(before)
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

	if columnID == "" {
		board, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
		if err != nil {
			return formatter.Fail(err)
		}
		columnID = board.ColumnID
	}

	err = cliInstance.App.BoardService.ReorderBoard(ctx, boardservice.ReorderBoardRequest{
		ID:          boardID,
		NewColumnID: columnID,
		NewNextID:   newNext,
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
			"board_id":  boardID,
			"column_id": columnID,
			"before":    newNext,
		})
	}

	if newNext == nil {
		formatter.Printf("✓ Board %s moved to the bottom of column %s\n", boardID, columnID)
	} else {
		formatter.Printf("✓ Board %s moved before %s in column %s\n", boardID, *newNext, columnID)
	}
	return nil
}
