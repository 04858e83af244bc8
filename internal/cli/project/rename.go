package project

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	projectservice "github.com/thenoetrevino/kanban/internal/services/project"
)

// RenameCmd returns the project rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <project-id>",
		Short: "Change the title of a project",
		Args:  cobra.ExactArgs(1),
		RunE:  runRename,
	}

	cmd.Flags().String("title", "", "New project title (required)")
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

	projectID, err := formatter.ProjectID(args[0])
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	project, err := cliInstance.App.ProjectService.UpdateProject(ctx, projectservice.UpdateProjectRequest{
		ID:    projectID,
		Title: title,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.ID(project.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"project": project,
		})
	}

	formatter.Printf("✓ Project %s renamed to '%s'\n", project.ID, project.Title)
	return nil
}
