package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	ListBoards(ctx context.Context, projectID types.ProjectID) ([]*models.Board, error)
	ListOrderedBoards(ctx context.Context, columnID types.ColumnID) ([]*models.Board, error)
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)

	// Write operations
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	UpdateBoard(ctx context.Context, req UpdateBoardRequest) (*models.Board, error)
	ReorderBoard(ctx context.Context, req ReorderBoardRequest) error
	DeleteBoard(ctx context.Context, id types.BoardID) error
}

// CreateBoardRequest encapsulates data for creating a board at the bottom of a column
type CreateBoardRequest struct {
	ColumnID types.ColumnID
	Title    string
}

// UpdateBoardRequest encapsulates data for renaming a board
type UpdateBoardRequest struct {
	ID    types.BoardID
	Title string
}

// ReorderBoardRequest moves ID into NewColumnID, immediately before NewNextID
// or at the bottom when NewNextID is nil. NewColumnID may be the current column.
type ReorderBoardRequest struct {
	ID          types.BoardID
	NewColumnID types.ColumnID
	NewNextID   *types.BoardID
}

type repository interface {
	GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	GetColumnByID(ctx context.Context, id types.ColumnID) (*models.Column, error)
	GetProjectIDForColumn(ctx context.Context, id types.ColumnID) (types.ProjectID, error)
	database.BoardRepository
}

type service struct {
	repo        repository
	eventClient events.Publisher
}

// NewService creates a new board service. eventClient may be nil.
func NewService(repo repository, eventClient events.Publisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListBoards returns every board of every column of the project, unordered.
// Each board carries its ColumnID and NextID so callers can rebuild the chains.
func (s *service) ListBoards(ctx context.Context, projectID types.ProjectID) ([]*models.Board, error) {
	if !projectID.Valid() {
		return nil, ErrInvalidProjectID
	}
	if _, err := s.repo.GetProjectByID(ctx, projectID); err != nil {
		return nil, mapErr(err)
	}
	return s.repo.GetBoardsByProject(ctx, projectID)
}

// ListOrderedBoards returns the boards of one column, top first
func (s *service) ListOrderedBoards(ctx context.Context, columnID types.ColumnID) ([]*models.Board, error) {
	if !columnID.Valid() {
		return nil, ErrInvalidColumnID
	}
	if _, err := s.repo.GetColumnByID(ctx, columnID); err != nil {
		return nil, mapErr(err)
	}
	return s.repo.GetOrderedBoards(ctx, columnID)
}

// GetBoard retrieves a specific board
func (s *service) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	if !id.Valid() {
		return nil, ErrInvalidBoardID
	}
	b, err := s.repo.GetBoardByID(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return b, nil
}

// CreateBoard validates the request and appends a board to the column
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	if !req.ColumnID.Valid() {
		return nil, ErrInvalidColumnID
	}
	title, err := services.NormalizeTitle(req.Title, MaxTitleLength, ErrEmptyTitle, ErrTitleTooLong)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.CreateBoard(ctx, req.ColumnID, title)
	if err != nil {
		return nil, mapErr(err)
	}

	s.notifyColumn(ctx, b.ColumnID, services.OpBoardCreated)
	return b, nil
}

// UpdateBoard renames a board
func (s *service) UpdateBoard(ctx context.Context, req UpdateBoardRequest) (*models.Board, error) {
	if !req.ID.Valid() {
		return nil, ErrInvalidBoardID
	}
	title, err := services.NormalizeTitle(req.Title, MaxTitleLength, ErrEmptyTitle, ErrTitleTooLong)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.UpdateBoardTitle(ctx, req.ID, title)
	if err != nil {
		return nil, mapErr(err)
	}

	s.notifyColumn(ctx, b.ColumnID, services.OpBoardUpdated)
	return b, nil
}

// ReorderBoard moves a board within its column or into another one.
// A move into a column of another project announces the change to both projects.
func (s *service) ReorderBoard(ctx context.Context, req ReorderBoardRequest) error {
	if !req.ID.Valid() {
		return ErrInvalidBoardID
	}
	if !req.NewColumnID.Valid() {
		return ErrInvalidColumnID
	}
	if req.NewNextID != nil && !req.NewNextID.Valid() {
		return ErrInvalidBoardID
	}

	from, err := s.repo.GetProjectIDForBoard(ctx, req.ID)
	if err != nil {
		return mapErr(err)
	}

	if _, err := s.repo.MoveBoard(ctx, req.ID, req.NewColumnID, req.NewNextID); err != nil {
		return mapErr(err)
	}

	to, err := s.repo.GetProjectIDForColumn(ctx, req.NewColumnID)
	if err != nil {
		return mapErr(err)
	}
	services.Notify(ctx, s.eventClient, from, services.OpBoardMoved)
	if to != from {
		services.Notify(ctx, s.eventClient, to, services.OpBoardMoved)
	}
	return nil
}

// DeleteBoard unlinks a board from its column and deletes it
func (s *service) DeleteBoard(ctx context.Context, id types.BoardID) error {
	if !id.Valid() {
		return ErrInvalidBoardID
	}

	projectID, err := s.repo.GetProjectIDForBoard(ctx, id)
	if err != nil {
		return mapErr(err)
	}
	if _, err := s.repo.DeleteBoard(ctx, id); err != nil {
		return mapErr(err)
	}

	services.Notify(ctx, s.eventClient, projectID, services.OpBoardDeleted)
	return nil
}

func (s *service) notifyColumn(ctx context.Context, columnID types.ColumnID, op string) {
	projectID, err := s.repo.GetProjectIDForColumn(ctx, columnID)
	if err != nil {
		// the write is committed; announce to everyone rather than nobody
		projectID = ""
	}
	services.Notify(ctx, s.eventClient, projectID, op)
}

// mapErr turns repository errors into the errors this package documents
func mapErr(err error) error {
	var nf *database.NotFoundError
	if errors.As(err, &nf) {
		switch nf.Entity {
		case "project":
			return fmt.Errorf("%w: %w", ErrProjectNotFound, err)
		case "column":
			return fmt.Errorf("%w: %w", ErrColumnNotFound, err)
		default:
			return fmt.Errorf("%w: %w", ErrBoardNotFound, err)
		}
	}
	if services.InvalidMove(err) {
		return services.AsInvalid(err)
	}
	return err
}
