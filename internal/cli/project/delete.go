package project

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Long: `Delete a project together with all of its columns and boards
(requires confirmation unless --force, --json or --quiet).`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.FormatterFor(cmd)

	projectID, err := formatter.ProjectID(args[0])
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	// Get project details for confirmation
	tree, err := cliInstance.App.ProjectService.GetProjectTree(ctx, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		boards := 0
		for _, col := range tree.Columns {
			boards += len(col.Boards)
		}
		formatter.Printf("Delete project '%s' with %s and %s? (y/N): ",
			tree.Title, cli.Plural(len(tree.Columns), "column"), cli.Plural(boards, "board"))
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := cliInstance.App.ProjectService.DeleteProject(ctx, projectID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":    true,
			"project_id": projectID,
		})
	}

	formatter.Printf("✓ Project %s deleted successfully\n", projectID)
	return nil
}
