// Package cli holds what every kanban subcommand shares: the application
// context, output formatting, exit codes and styles.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/events"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config

	db          *sql.DB // nil when the App was injected
	eventClient *events.Client
}

// NewCLI opens the database and, when a server is running, connects to its
// event hub so changes made here reach live watchers. Without a server the
// CLI still works; it just announces nothing.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var opts []app.Option
	var eventClient *events.Client
	client, err := events.NewClient(cfg.Daemon.SocketPath,
		events.WithDebounce(cfg.Daemon.Debounce()))
	if err == nil {
		dialCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		if err := client.Connect(dialCtx); err == nil {
			eventClient = client
			opts = append(opts, app.WithEventPublisher(client))
		} else {
			slog.Debug("event hub unavailable, continuing without live updates",
				"error", events.ClassifyDaemonError(err))
		}
		cancel()
	}

	return &CLI{
		App:         app.New(database.NewRepository(db), opts...),
		Config:      cfg,
		db:          db,
		eventClient: eventClient,
	}, nil
}

// Close flushes pending change events and releases the database
func (c *CLI) Close() error {
	if c.eventClient != nil {
		if err := c.eventClient.Close(); err != nil {
			slog.Warn("failed to close event client", "error", err)
		}
	}
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Events returns the connection to the event hub, or nil when no server was
// reachable at startup
func (c *CLI) Events() *events.Client {
	return c.eventClient
}
