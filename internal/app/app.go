// Package app wires the repository, the cascade coordinator and the services
// into one container shared by the RPC server, the CLI and the live view.
package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/cascade"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/events"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	columnservice "github.com/thenoetrevino/kanban/internal/services/column"
	projectservice "github.com/thenoetrevino/kanban/internal/services/project"
)

// App holds all application services and provides dependency injection.
type App struct {
	repo        *database.Repository
	eventClient events.Publisher
	logger      *slog.Logger

	ProjectService projectservice.Service
	ColumnService  columnservice.Service
	BoardService   boardservice.Service
}

// New creates a new App with all services initialized.
func New(repo *database.Repository, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	coordinator := cascade.New(repo, cfg.logger)

	return &App{
		repo:           repo,
		eventClient:    cfg.eventClient,
		logger:         cfg.logger,
		ProjectService: projectservice.NewService(repo, coordinator, cfg.eventClient),
		ColumnService:  columnservice.NewService(repo, coordinator, cfg.eventClient),
		BoardService:   boardservice.NewService(repo, cfg.eventClient),
	}
}

// Repo returns the underlying repository, used by the chain checker
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Publisher returns the configured event publisher, possibly nil
func (a *App) Publisher() events.Publisher {
	return a.eventClient
}

// Close performs cleanup of application resources.
// Currently a no-op; the database handle is owned by the caller.
func (a *App) Close() error {
	return nil
}
