package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	projects, err := cliInstance.App.ProjectService.ListProjects(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, p := range projects {
			formatter.ID(p.ID)
		}
		return nil
	}

	if formatter.JSON {
		if projects == nil {
			projects = []*models.Project{}
		}
		return formatter.WriteJSON(map[string]any{
			"success":  true,
			"projects": projects,
		})
	}

	if len(projects) == 0 {
		formatter.Printf("No projects found\n")
		return nil
	}

	formatter.Printf("Found %s:\n\n", cli.Plural(len(projects), "project"))
	for _, p := range projects {
		formatter.Printf("  %s  %s\n", p.ID, p.Title)
	}
	return nil
}
