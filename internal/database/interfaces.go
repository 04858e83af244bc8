// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ProjectRepository defines project persistence.
type ProjectRepository interface {
	CreateProject(ctx context.Context, title string) (*models.Project, error)
	GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProjectTitle(ctx context.Context, id types.ProjectID, title string) (*models.Project, error)
}

// ColumnReader defines read operations for columns.
type ColumnReader interface {
	GetColumnByID(ctx context.Context, id types.ColumnID) (*models.Column, error)
	GetColumnsByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error)
	GetOrderedColumns(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error)
	GetProjectIDForColumn(ctx context.Context, id types.ColumnID) (types.ProjectID, error)
}

// ColumnWriter defines write operations for columns.
type ColumnWriter interface {
	CreateColumn(ctx context.Context, projectID types.ProjectID, title string) (*models.Column, error)
	UpdateColumnTitle(ctx context.Context, id types.ColumnID, title string) (*models.Column, error)
	ReorderColumn(ctx context.Context, id types.ColumnID, newNext *types.ColumnID) (ColumnResults, error)
}

// ColumnRepository combines all column-related operations.
type ColumnRepository interface {
	ColumnReader
	ColumnWriter
}

// BoardReader defines read operations for boards.
type BoardReader interface {
	GetBoardByID(ctx context.Context, id types.BoardID) (*models.Board, error)
	GetBoardsByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Board, error)
	GetBoardsByColumn(ctx context.Context, columnID types.ColumnID) ([]*models.Board, error)
	GetOrderedBoards(ctx context.Context, columnID types.ColumnID) ([]*models.Board, error)
	GetProjectIDForBoard(ctx context.Context, id types.BoardID) (types.ProjectID, error)
}

// BoardWriter defines write operations for boards.
type BoardWriter interface {
	CreateBoard(ctx context.Context, columnID types.ColumnID, title string) (*models.Board, error)
	UpdateBoardTitle(ctx context.Context, id types.BoardID, title string) (*models.Board, error)
	MoveBoard(ctx context.Context, id types.BoardID, newColumn types.ColumnID, newNext *types.BoardID) (BoardResults, error)
	DeleteBoard(ctx context.Context, id types.BoardID) (BoardResults, error)
}

// BoardRepository combines all board-related operations.
type BoardRepository interface {
	BoardReader
	BoardWriter
}

var (
	_ ProjectRepository = (*ProjectRepo)(nil)
	_ ColumnRepository  = (*ColumnRepo)(nil)
	_ BoardRepository   = (*BoardRepo)(nil)
)
