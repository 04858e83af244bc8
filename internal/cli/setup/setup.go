// Package setup writes the default config file
package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/config"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write the config file with every setting spelled out",
		Long: `Write the effective configuration (defaults plus KANBAN_* overrides) to
$XDG_CONFIG_HOME/kanban/config.yaml, or ~/.config/kanban/config.yaml.

Examples:
  # Create the file unless one exists
  kanban setup

  # Show where the file lives and whether it exists
  kanban setup --check

  # Overwrite an existing file
  kanban setup --force
`,
		Args: cobra.NoArgs,
		RunE: runSetup,
	}

	cmd.Flags().Bool("check", false, "Report the config path without writing")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd, "Print only the config path")

	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	check, _ := cmd.Flags().GetBool("check")
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.FormatterFor(cmd)

	path, err := config.Path()
	if err != nil {
		return formatter.Fail(err)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return formatter.Fail(statErr)
	}

	written := false
	if !check && (!exists || force) {
		cfg, err := cli.ConfigFromContext(cmd.Context())
		if err != nil {
			return formatter.Fail(err)
		}
		if err := cfg.Save(); err != nil {
			return formatter.Fail(fmt.Errorf("failed to write config: %w", err))
		}
		written = true
	}

	switch {
	case formatter.Quiet:
		fmt.Println(path)
	case formatter.JSON:
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"path":    path,
			"exists":  exists || written,
			"written": written,
		})
	case written:
		formatter.Printf("✓ Config written to %s\n", path)
	case exists:
		formatter.Printf("Config file: %s\n", path)
		if !check {
			formatter.Printf("Already exists; pass --force to overwrite\n")
		}
	default:
		formatter.Printf("✗ No config file at %s\n  Run: kanban setup\n", path)
	}
	return nil
}
