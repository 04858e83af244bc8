package use

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// ProjectCmd returns the use project subcommand
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [project-id]",
		Short: "Set project context for current shell session",
		Long: `Set the current project using an environment variable.
This command prints shell commands that should be evaluated:

  eval $(kanban use project <project-id>)   # Use a project
  eval $(kanban use project --clear)        # Clear project context
  kanban use project --show                 # Show current project

KANBAN_PROJECT is read by "column create", "column list", "project tree" and
"project show" when no project is passed explicitly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseProject,
	}

	cmd.Flags().Bool("clear", false, "Clear the current project context")
	cmd.Flags().Bool("show", false, "Show the current project context")

	return cmd
}

func runUseProject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	formatter := &cli.OutputFormatter{}

	if showFlag {
		return showCurrentProject(cmd, formatter)
	}

	if clearFlag {
		fmt.Printf("unset %s\n", cli.ProjectEnv)
		fmt.Fprintf(os.Stderr, "Cleared project context\n")
		return nil
	}

	if len(args) == 0 {
		return formatter.Usage("NO_PROJECT", "project ID required", "Usage: eval $(kanban use project <project-id>)")
	}
	projectID, err := formatter.ProjectID(args[0])
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	// Validate project exists
	project, err := cliInstance.App.ProjectService.GetProject(ctx, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	fmt.Printf("export %s=%s\n", cli.ProjectEnv, project.ID)
	fmt.Fprintf(os.Stderr, "Using project '%s'\n", project.Title)
	return nil
}

func showCurrentProject(cmd *cobra.Command, formatter *cli.OutputFormatter) error {
	raw := os.Getenv(cli.ProjectEnv)
	if raw == "" {
		fmt.Println("No project context set")
		return nil
	}
	projectID, err := formatter.ProjectID(raw)
	if err != nil {
		return err
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	project, err := cliInstance.App.ProjectService.GetProject(cmd.Context(), projectID)
	if err != nil {
		return formatter.Fail(err)
	}
	fmt.Printf("Current project: %s (%s)\n", project.Title, project.ID)
	return nil
}
