package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/cascade"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id types.ProjectID) (*models.Project, error)
	GetProjectTree(ctx context.Context, id types.ProjectID) (*models.ProjectTree, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id types.ProjectID) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Title string
}

// UpdateProjectRequest encapsulates data for renaming a project
type UpdateProjectRequest struct {
	ID    types.ProjectID
	Title string
}

// repository defines the data access methods needed by the project service
type repository interface {
	CreateProject(ctx context.Context, title string) (*models.Project, error)
	GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProjectTitle(ctx context.Context, id types.ProjectID, title string) (*models.Project, error)

	// tree reads
	GetOrderedColumns(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error)
	GetOrderedBoards(ctx context.Context, columnID types.ColumnID) ([]*models.Board, error)
}

// deleter removes a project together with everything it owns
type deleter interface {
	DeleteProject(ctx context.Context, id types.ProjectID) (cascade.Report, error)
}

type service struct {
	repo        repository
	cascade     deleter
	eventClient events.Publisher
}

// NewService creates a new project service. eventClient may be nil.
func NewService(repo repository, cascade deleter, eventClient events.Publisher) Service {
	return &service{
		repo:        repo,
		cascade:     cascade,
		eventClient: eventClient,
	}
}

// ListProjects returns every project, oldest first
func (s *service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// GetProject retrieves a specific project
func (s *service) GetProject(ctx context.Context, id types.ProjectID) (*models.Project, error) {
	if !id.Valid() {
		return nil, ErrInvalidProjectID
	}
	p, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

// GetProjectTree returns the project with its columns and their boards, all in
// display order. A broken chain is reported as an error; the reconstructable
// part is still returned.
func (s *service) GetProjectTree(ctx context.Context, id types.ProjectID) (*models.ProjectTree, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	tree := &models.ProjectTree{Project: p, Columns: []*models.ColumnWithBoards{}}
	columns, chainErr := s.repo.GetOrderedColumns(ctx, id)
	if chainErr != nil && columns == nil {
		return nil, fmt.Errorf("failed to load columns: %w", chainErr)
	}

	for _, c := range columns {
		boards, err := s.repo.GetOrderedBoards(ctx, c.ID)
		if err != nil && boards == nil {
			return nil, fmt.Errorf("failed to load boards of column %s: %w", c.ID, err)
		}
		if err != nil && chainErr == nil {
			chainErr = fmt.Errorf("column %s: %w", c.ID, err)
		}
		tree.Columns = append(tree.Columns, &models.ColumnWithBoards{Column: c, Boards: boards})
	}

	return tree, chainErr
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	title, err := services.NormalizeTitle(req.Title, MaxTitleLength, ErrEmptyTitle, ErrTitleTooLong)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.CreateProject(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	services.Notify(ctx, s.eventClient, p.ID, services.OpProjectCreated)
	return p, nil
}

// UpdateProject renames an existing project
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	if !req.ID.Valid() {
		return nil, ErrInvalidProjectID
	}
	title, err := services.NormalizeTitle(req.Title, MaxTitleLength, ErrEmptyTitle, ErrTitleTooLong)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.UpdateProjectTitle(ctx, req.ID, title)
	if err != nil {
		return nil, mapErr(err)
	}

	services.Notify(ctx, s.eventClient, p.ID, services.OpProjectUpdated)
	return p, nil
}

// DeleteProject deletes a project with all of its columns and boards
func (s *service) DeleteProject(ctx context.Context, id types.ProjectID) error {
	if !id.Valid() {
		return ErrInvalidProjectID
	}

	report, err := s.cascade.DeleteProject(ctx, id)
	if err != nil {
		return mapErr(err)
	}

	slog.DebugContext(ctx, "project cascade finished", "project_id", id, "boards", report.Boards, "columns", report.Columns)
	services.Notify(ctx, s.eventClient, id, services.OpProjectDeleted)
	return nil
}

func mapErr(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrProjectNotFound, err)
	}
	return err
}
