package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// TreeCmd returns the project tree subcommand
func TreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [project-id]",
		Short: "Display columns and boards in display order",
		Long: `Display every column of a project, left to right, with the boards of
each column listed top to bottom beneath it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTree,
	}

	cli.AddOutputFlags(cmd, "Minimal output (column IDs with their board IDs indented)")

	return cmd
}

func runTree(cmd *cobra.Command, args []string) error {
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

	tree, err := cliInstance.App.ProjectService.GetProjectTree(ctx, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, col := range tree.Columns {
			formatter.ID(col.ID)
			for _, b := range col.Boards {
				fmt.Printf("  %s\n", b.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"tree":    normalizeTree(tree),
		})
	}

	styles.Init(cliInstance.Config.ColorScheme)
	formatter.Printf("%s", renderTree(tree))
	return nil
}

// normalizeTree replaces nil slices so JSON shows [] rather than null
func normalizeTree(tree *models.ProjectTree) *models.ProjectTree {
	if tree.Columns == nil {
		tree.Columns = []*models.ColumnWithBoards{}
	}
	for _, col := range tree.Columns {
		if col.Boards == nil {
			col.Boards = []*models.Board{}
		}
	}
	return tree
}

func renderTree(tree *models.ProjectTree) string {
	var out strings.Builder
	out.WriteString(styles.TitleStyle.Render(tree.Title) + "\n")

	if len(tree.Columns) == 0 {
		out.WriteString(styles.SubtitleStyle.Render("No columns yet") + "\n")
		return out.String()
	}

	for _, col := range tree.Columns {
		out.WriteString("\n" + styles.RenderTreeColumn(col.Title, col.ID.String(), len(col.Boards)) + "\n")
		for i, b := range col.Boards {
			out.WriteString(styles.RenderTreeBoard(b.Title, b.ID.String(), i == len(col.Boards)-1) + "\n")
		}
	}
	return out.String()
}
