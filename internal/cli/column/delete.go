package column

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column-id>",
		Short: "Delete a column and its boards",
		Long: `Delete a column together with every board in it. The neighbouring
columns are relinked so the project keeps its order.
Requires confirmation unless --force, --json or --quiet.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
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

	column, err := cliInstance.App.ColumnService.GetColumn(ctx, columnID)
	if err != nil {
		return formatter.Fail(err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		boards, err := cliInstance.App.BoardService.ListOrderedBoards(ctx, columnID)
		if err != nil {
			return formatter.Fail(err)
		}
		formatter.Printf("Delete column '%s' and its %s? (y/N): ", column.Title, cli.Plural(len(boards), "board"))
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := cliInstance.App.ColumnService.DeleteColumn(ctx, columnID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":   true,
			"column_id": columnID,
		})
	}

	formatter.Printf("✓ Column '%s' deleted successfully\n", column.Title)
	return nil
}
