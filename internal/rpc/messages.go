package rpc

import (
	"github.com/thenoetrevino/kanban/internal/models"
)

// Request records. Ids travel as strings and are parsed by the handlers so a
// malformed id is reported as invalid_argument rather than not_found.

type CreateProjectRequest struct {
	Title string `json:"title"`
}

type IDRequest struct {
	ID string `json:"id"`
}

type ProjectIDRequest struct {
	ProjectID string `json:"projectId"`
}

type ColumnIDRequest struct {
	ColumnID string `json:"columnId"`
}

type UpdateTitleRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CreateColumnRequest struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
}

type ReorderColumnRequest struct {
	ID        string  `json:"id"`
	NewNextID *string `json:"newNextId,omitempty"`
}

type CreateBoardRequest struct {
	ColumnID string `json:"columnId"`
	Title    string `json:"title"`
}

type ReorderBoardRequest struct {
	ID          string  `json:"id"`
	NewColumnID string  `json:"newColumnId"`
	NewNextID   *string `json:"newNextId,omitempty"`
}

// Response records

type Empty struct{}

type ListProjectsResponse struct {
	Projects []*models.Project `json:"projects"`
}

type ListColumnsResponse struct {
	Columns []*models.Column `json:"columns"`
}

type ListBoardsResponse struct {
	Boards []*models.Board `json:"boards"`
}

// nonNil keeps empty lists encoded as [] instead of null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
