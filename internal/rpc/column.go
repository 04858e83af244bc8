package rpc

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
	columnservice "github.com/thenoetrevino/kanban/internal/services/column"
)

func (s *Server) createColumn(ctx context.Context, req *CreateColumnRequest) (*models.Column, error) {
	projectID, err := parseProjectID("projectId", req.ProjectID)
	if err != nil {
		return nil, err
	}
	return s.app.ColumnService.CreateColumn(ctx, columnservice.CreateColumnRequest{
		ProjectID: projectID,
		Title:     req.Title,
	})
}

func (s *Server) getColumn(ctx context.Context, req *IDRequest) (*models.Column, error) {
	id, err := parseColumnID("id", req.ID)
	if err != nil {
		return nil, err
	}
	return s.app.ColumnService.GetColumn(ctx, id)
}

// listColumns returns the columns unordered; callers rebuild the chain from nextId
func (s *Server) listColumns(ctx context.Context, req *ProjectIDRequest) (*ListColumnsResponse, error) {
	projectID, err := parseProjectID("projectId", req.ProjectID)
	if err != nil {
		return nil, err
	}
	columns, err := s.app.ColumnService.ListColumns(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &ListColumnsResponse{Columns: nonNil(columns)}, nil
}

func (s *Server) listOrderedColumns(ctx context.Context, req *ProjectIDRequest) (*ListColumnsResponse, error) {
	projectID, err := parseProjectID("projectId", req.ProjectID)
	if err != nil {
		return nil, err
	}
	columns, err := s.app.ColumnService.ListOrderedColumns(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &ListColumnsResponse{Columns: nonNil(columns)}, nil
}

func (s *Server) reorderColumn(ctx context.Context, req *ReorderColumnRequest) (*Empty, error) {
	id, err := parseColumnID("id", req.ID)
	if err != nil {
		return nil, err
	}
	next, err := parseOptional("newNextId", req.NewNextID, parseColumnID)
	if err != nil {
		return nil, err
	}
	if err := s.app.ColumnService.ReorderColumn(ctx, columnservice.ReorderColumnRequest{ID: id, NewNextID: next}); err != nil {
		return nil, err
	}
	return &Empty{}, nil
}

func (s *Server) updateColumn(ctx context.Context, req *UpdateTitleRequest) (*models.Column, error) {
	id, err := parseColumnID("id", req.ID)
	if err != nil {
		return nil, err
	}
	return s.app.ColumnService.UpdateColumn(ctx, columnservice.UpdateColumnRequest{ID: id, Title: req.Title})
}

func (s *Server) deleteColumn(ctx context.Context, req *IDRequest) (*Empty, error) {
	id, err := parseColumnID("id", req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.app.ColumnService.DeleteColumn(ctx, id); err != nil {
		return nil, err
	}
	return &Empty{}, nil
}
