package project

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	projectservice "github.com/thenoetrevino/kanban/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new, empty project.

Examples:
  # Simple project (human-readable output)
  kanban project create --title="Backend API"

  # JSON output for agents
  kanban project create --title="Backend API" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(kanban project create --title="Backend API" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Project title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	title, _ := cmd.Flags().GetString("title")
	formatter := cli.FormatterFor(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	project, err := cliInstance.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Title: title,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode (JSON/Quiet/Human)
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

	formatter.Printf("✓ Project '%s' created successfully (ID: %s)\n", project.Title, project.ID)
	return nil
}
