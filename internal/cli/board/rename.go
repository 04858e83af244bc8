package board

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// RenameCmd returns the board rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <board-id>",
		Short: "Change the title of a board",
		Args:  cobra.ExactArgs(1),
		RunE:  runRename,
	}

	cmd.Flags().String("title", "", "New board title (required)")
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

	boardID, err := formatter.BoardID(args[0])
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	board, err := cliInstance.App.BoardService.UpdateBoard(ctx, boardservice.UpdateBoardRequest{
		ID:    boardID,
		Title: title,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.ID(board.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"board":   board,
		})
	}

	formatter.Printf("✓ Board %s renamed to '%s'\n", board.ID, board.Title)
	return nil
}
