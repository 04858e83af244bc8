// Package watch streams change notifications from a running kanban server
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/types"
)

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print changes as they are committed",
		Long: `Connect to the event hub of a running "kanban serve" and print one line
per change notification until interrupted.

Examples:
  kanban watch
  kanban watch --project=<project-id> --json
`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}

	cmd.Flags().String("project", "", "Only show changes to this project")
	cmd.Flags().Bool("json", false, "Output one JSON event per line")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	rawProject, _ := cmd.Flags().GetString("project")
	formatter := cli.FormatterFor(cmd)

	var projectID types.ProjectID
	if rawProject != "" {
		id, err := formatter.ProjectID(rawProject)
		if err != nil {
			return err
		}
		projectID = id
	}

	cfg, err := cli.ConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := events.NewClient(cfg.Daemon.SocketPath)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Connect(ctx); err != nil {
		de := events.ClassifyDaemonError(err)
		if fmtErr := formatter.ErrorWithSuggestion("HUB_UNAVAILABLE", de.Message, de.Hint); fmtErr != nil {
			return fmtErr
		}
		return &cli.CodeError{Code: cli.ExitError, Err: de}
	}
	if !formatter.JSON {
		fmt.Fprintf(os.Stderr, "watching %s (Ctrl+C to stop)\n", cfg.Daemon.SocketPath)
	}
	if err := Follow(ctx, client, projectID, os.Stdout, formatter.JSON); err != nil {
		return formatter.Fail(err)
	}
	return nil
}

// Follow narrows a connected client to projectID (all projects when empty)
// and streams its events to w until ctx is done or the hub goes away.
func Follow(ctx context.Context, client events.EventPublisher, projectID types.ProjectID, w io.Writer, asJSON bool) error {
	if projectID != "" {
		if err := client.Subscribe(projectID); err != nil {
			return err
		}
	}

	ch, err := client.Listen(ctx)
	if err != nil {
		return err
	}
	return Stream(ctx, ch, w, asJSON)
}

// Stream writes every event from ch to w until ch closes or ctx is done
func Stream(ctx context.Context, ch <-chan events.Event, w io.Writer, asJSON bool) error {
	formatter := &cli.OutputFormatter{JSON: asJSON}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if err := writeEvent(w, ev, formatter); err != nil {
				return err
			}
		}
	}
}

func writeEvent(w io.Writer, ev events.Event, formatter *cli.OutputFormatter) error {
	if formatter.JSON {
		return cli.EncodeJSON(w, ev)
	}
	op := ev.Op
	if op == "" {
		op = string(ev.Type)
	}
	project := ev.ProjectID.String()
	if project == "" {
		project = "*"
	}
	_, err := fmt.Fprintf(w, "%s  #%d  %-16s %s\n",
		ev.Timestamp.Local().Format(time.TimeOnly), ev.SequenceID, op, project)
	return err
}
