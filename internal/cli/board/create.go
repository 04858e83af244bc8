package board

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a board to the bottom of a column",
		Long: `Create a new board at the bottom of a column.

Examples:
  kanban board create --column=<column-id> --title="Fix login bug"
  BOARD_ID=$(kanban board create --column=<column-id> --title="Fix login bug" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("column", "", "Column ID (required)")
	cmd.Flags().String("title", "", "Board title (required)")
	for _, name := range []string{"column", "title"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rawColumn, _ := cmd.Flags().GetString("column")
	title, _ := cmd.Flags().GetString("title")
	formatter := cli.FormatterFor(cmd)

	columnID, err := formatter.ColumnID(rawColumn)
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	board, err := cliInstance.App.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{
		ColumnID: columnID,
		Title:    title,
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

	formatter.Printf("✓ Board '%s' created successfully (ID: %s)\n", board.Title, board.ID)
	return nil
}
