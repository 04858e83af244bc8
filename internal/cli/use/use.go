// Package use holds all cli commands related to setting contextual information
// e.g., kanban use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings for the current shell",
		Long: `Set context that applies to subsequent commands of the current shell
session, so you do not have to repeat the project on every call.

Examples:
  eval $(kanban use project <project-id>)   # Use a project
  eval $(kanban use project --clear)        # Clear project context
  kanban use project --show                 # Show current project`,
	}

	cmd.AddCommand(ProjectCmd())

	return cmd
}
