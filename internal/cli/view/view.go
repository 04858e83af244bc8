// Package view launches the interactive board view
package view

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/tui"
)

// ViewCmd returns the view command
func ViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive board view",
		Long: `Open a full-screen view of your projects. Columns are shown side by side
with their boards top to bottom; boards and columns can be moved with the
keyboard (press ? for the key map, configurable under key_mappings).

When "kanban serve" is running the view refreshes as soon as anyone changes
the project, otherwise press r to reload.`,
		Args: cobra.NoArgs,
		RunE: runView,
	}
}

func runView(cmd *cobra.Command, args []string) error {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	formatter := &cli.OutputFormatter{}
	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	eventChan := subscribe(ctx, cliInstance.Events())

	model := tui.New(ctx, cliInstance.App, cliInstance.Config, eventChan)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// subscribe returns the hub's event stream for all projects, or nil when
// there is no hub to listen to
func subscribe(ctx context.Context, client *events.Client) <-chan events.Event {
	if client == nil {
		slog.Info("no kanban server running, continuing without live updates")
		return nil
	}
	ch, err := client.Listen(ctx)
	if err != nil {
		de := events.ClassifyDaemonError(err)
		slog.Warn("failed to listen for changes", "message", de.Message, "hint", de.Hint)
		return nil
	}
	return ch
}
