// Package cmd wires every kanban subcommand under one root command
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/column"
	"github.com/thenoetrevino/kanban/internal/cli/doctor"
	"github.com/thenoetrevino/kanban/internal/cli/project"
	"github.com/thenoetrevino/kanban/internal/cli/serve"
	"github.com/thenoetrevino/kanban/internal/cli/setup"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/cli/use"
	"github.com/thenoetrevino/kanban/internal/cli/view"
	"github.com/thenoetrevino/kanban/internal/cli/watch"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - ordered projects, columns and boards",
		Long: `Kanban keeps projects made of columns, and columns made of boards, in a
user-defined order. Use the subcommands to script it, "kanban view" for the
interactive board and "kanban serve" to expose it over RPC.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
				cfg.Log.Level = lvl
			}

			closer, err := logging.Init(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
			if err != nil {
				return err
			}
			logCloser = closer

			styles.Init(cfg.ColorScheme)
			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default from config)")

	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(watch.WatchCmd())
	rootCmd.AddCommand(doctor.DoctorCmd())
	rootCmd.AddCommand(view.ViewCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(setup.SetupCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	code := cli.ExitCode(err)
	var exitErr *cli.CodeError
	if !errors.As(err, &exitErr) {
		// not yet reported by the command itself
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		if isUsageError(err) {
			code = cli.ExitUsage
		}
	}
	return code
}
