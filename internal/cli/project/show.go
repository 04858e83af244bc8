package project

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [project-id]",
		Short: "Render a project as a markdown document",
		Long: `Render a project as markdown: one section per column, in display order,
with its boards as a numbered list. Use --raw to print the markdown
without terminal styling, e.g. to paste it elsewhere.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Bool("raw", false, "Print markdown without rendering")
	cmd.Flags().Int("width", 80, "Word wrap width for rendered output")
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	raw, _ := cmd.Flags().GetBool("raw")
	width, _ := cmd.Flags().GetInt("width")
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
		formatter.ID(tree.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":  true,
			"project":  tree.Project,
			"markdown": Markdown(tree),
		})
	}

	doc := Markdown(tree)
	if raw {
		formatter.Printf("%s", doc)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to create markdown renderer: %w", err))
	}
	rendered, err := renderer.Render(doc)
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to render markdown: %w", err))
	}
	formatter.Printf("%s", rendered)
	return nil
}

// Markdown renders tree as a markdown document
func Markdown(tree *models.ProjectTree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", tree.Title)
	if len(tree.Columns) == 0 {
		b.WriteString("_No columns yet._\n")
		return b.String()
	}

	for _, col := range tree.Columns {
		fmt.Fprintf(&b, "## %s\n\n", col.Title)
		if len(col.Boards) == 0 {
			b.WriteString("_Empty._\n\n")
			continue
		}
		for i, board := range col.Boards {
			fmt.Fprintf(&b, "%d. %s\n", i+1, board.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}
