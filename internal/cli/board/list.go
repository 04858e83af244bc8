package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <column-id>",
		Short: "List the boards of a column, top to bottom",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
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

	boards, err := cliInstance.App.BoardService.ListOrderedBoards(ctx, columnID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, b := range boards {
			formatter.ID(b.ID)
		}
		return nil
	}

	if formatter.JSON {
		if boards == nil {
			boards = []*models.Board{}
		}
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"boards":  boards,
		})
	}

	if len(boards) == 0 {
		formatter.Printf("No boards found\n")
		return nil
	}

	formatter.Printf("Found %s:\n\n", cli.Plural(len(boards), "board"))
	for i, b := range boards {
		formatter.Printf("  %d. %s  %s\n", i+1, b.ID, b.Title)
	}
	return nil
}
