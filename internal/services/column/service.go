package column

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/cascade"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Service defines all column-related business operations
type Service interface {
	// Read operations
	ListColumns(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error)
	ListOrderedColumns(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error)
	GetColumn(ctx context.Context, id types.ColumnID) (*models.Column, error)

	// Write operations
	CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error)
	UpdateColumn(ctx context.Context, req UpdateColumnRequest) (*models.Column, error)
	ReorderColumn(ctx context.Context, req ReorderColumnRequest) error
	DeleteColumn(ctx context.Context, id types.ColumnID) error
}

// CreateColumnRequest encapsulates data for creating a column.
// New columns are always appended at the tail of the project.
type CreateColumnRequest struct {
	ProjectID types.ProjectID
	Title     string
}

// UpdateColumnRequest encapsulates data for renaming a column
type UpdateColumnRequest struct {
	ID    types.ColumnID
	Title string
}

// ReorderColumnRequest places ID immediately before NewNextID, or at the tail
// when NewNextID is nil.
type ReorderColumnRequest struct {
	ID        types.ColumnID
	NewNextID *types.ColumnID
}

type repository interface {
	GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	database.ColumnRepository
}

// deleter removes a column together with its boards
type deleter interface {
	DeleteColumn(ctx context.Context, id types.ColumnID) (types.ProjectID, cascade.Report, error)
}

type service struct {
	repo        repository
	cascade     deleter
	eventClient events.Publisher
}

// NewService creates a new column service. eventClient may be nil.
func NewService(repo repository, cascade deleter, eventClient events.Publisher) Service {
	return &service{
		repo:        repo,
		cascade:     cascade,
		eventClient: eventClient,
	}
}

// ListColumns returns the columns of a project in storage order; display order
// is reconstructed by the caller from NextID.
func (s *service) ListColumns(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.GetColumnsByProject(ctx, projectID)
}

// ListOrderedColumns returns the columns of a project head first
func (s *service) ListOrderedColumns(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.GetOrderedColumns(ctx, projectID)
}

// GetColumn retrieves a specific column
func (s *service) GetColumn(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	if !id.Valid() {
		return nil, ErrInvalidColumnID
	}
	c, err := s.repo.GetColumnByID(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

// CreateColumn validates the request and appends a column to the project
func (s *service) CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error) {
	if !req.ProjectID.Valid() {
		return nil, ErrInvalidProjectID
	}
	title, err := services.NormalizeTitle(req.Title, MaxTitleLength, ErrEmptyTitle, ErrTitleTooLong)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.CreateColumn(ctx, req.ProjectID, title)
	if err != nil {
		return nil, mapErr(err)
	}

	services.Notify(ctx, s.eventClient, c.ProjectID, services.OpColumnCreated)
	return c, nil
}

// UpdateColumn renames a column
func (s *service) UpdateColumn(ctx context.Context, req UpdateColumnRequest) (*models.Column, error) {
	if !req.ID.Valid() {
		return nil, ErrInvalidColumnID
	}
	title, err := services.NormalizeTitle(req.Title, MaxTitleLength, ErrEmptyTitle, ErrTitleTooLong)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.UpdateColumnTitle(ctx, req.ID, title)
	if err != nil {
		return nil, mapErr(err)
	}

	services.Notify(ctx, s.eventClient, c.ProjectID, services.OpColumnUpdated)
	return c, nil
}

// ReorderColumn moves a column within its project
func (s *service) ReorderColumn(ctx context.Context, req ReorderColumnRequest) error {
	if !req.ID.Valid() {
		return ErrInvalidColumnID
	}
	if req.NewNextID != nil && !req.NewNextID.Valid() {
		return ErrInvalidColumnID
	}

	if _, err := s.repo.ReorderColumn(ctx, req.ID, req.NewNextID); err != nil {
		return mapErr(err)
	}

	projectID, err := s.repo.GetProjectIDForColumn(ctx, req.ID)
	if err != nil {
		return mapErr(err)
	}
	services.Notify(ctx, s.eventClient, projectID, services.OpColumnReordered)
	return nil
}

// DeleteColumn deletes a column and all of its boards, repairing the project's chain
func (s *service) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	if !id.Valid() {
		return ErrInvalidColumnID
	}

	projectID, _, err := s.cascade.DeleteColumn(ctx, id)
	if err != nil {
		return mapErr(err)
	}

	services.Notify(ctx, s.eventClient, projectID, services.OpColumnDeleted)
	return nil
}

func (s *service) requireProject(ctx context.Context, projectID types.ProjectID) error {
	if !projectID.Valid() {
		return ErrInvalidProjectID
	}
	if _, err := s.repo.GetProjectByID(ctx, projectID); err != nil {
		return mapErr(err)
	}
	return nil
}

// mapErr turns repository errors into the errors this package documents
func mapErr(err error) error {
	var nf *database.NotFoundError
	switch {
	case errors.As(err, &nf) && nf.Entity == "project":
		return fmt.Errorf("%w: %w", ErrProjectNotFound, err)
	case errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrColumnNotFound, err)
	case services.InvalidMove(err):
		return services.AsInvalid(err)
	default:
		return err
	}
}
