package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board",
		Long:  "Delete a board. The boards around it are relinked so the column keeps its order.",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	boardID, err := formatter.BoardID(args[0])
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	if err := cliInstance.App.BoardService.DeleteBoard(ctx, boardID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":  true,
			"board_id": boardID,
		})
	}

	formatter.Printf("✓ Board %s deleted successfully\n", boardID)
	return nil
}
