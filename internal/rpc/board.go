package rpc

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

func (s *Server) createBoard(ctx context.Context, req *CreateBoardRequest) (*models.Board, error) {
	columnID, err := parseColumnID("columnId", req.ColumnID)
	if err != nil {
		return nil, err
	}
	return s.app.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{
		ColumnID: columnID,
		Title:    req.Title,
	})
}

func (s *Server) getBoard(ctx context.Context, req *IDRequest) (*models.Board, error) {
	id, err := parseBoardID("id", req.ID)
	if err != nil {
		return nil, err
	}
	return s.app.BoardService.GetBoard(ctx, id)
}

// listBoards spans every column of the project, unordered
func (s *Server) listBoards(ctx context.Context, req *ProjectIDRequest) (*ListBoardsResponse, error) {
	projectID, err := parseProjectID("projectId", req.ProjectID)
	if err != nil {
		return nil, err
	}
	boards, err := s.app.BoardService.ListBoards(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &ListBoardsResponse{Boards: nonNil(boards)}, nil
}

func (s *Server) listOrderedBoards(ctx context.Context, req *ColumnIDRequest) (*ListBoardsResponse, error) {
	columnID, err := parseColumnID("columnId", req.ColumnID)
	if err != nil {
		return nil, err
	}
	boards, err := s.app.BoardService.ListOrderedBoards(ctx, columnID)
	if err != nil {
		return nil, err
	}
	return &ListBoardsResponse{Boards: nonNil(boards)}, nil
}

func (s *Server) reorderBoard(ctx context.Context, req *ReorderBoardRequest) (*Empty, error) {
	id, err := parseBoardID("id", req.ID)
	if err != nil {
		return nil, err
	}
	columnID, err := parseColumnID("newColumnId", req.NewColumnID)
	if err != nil {
		return nil, err
	}
	next, err := parseOptional("newNextId", req.NewNextID, parseBoardID)
	if err != nil {
		return nil, err
	}
	err = s.app.BoardService.ReorderBoard(ctx, boardservice.ReorderBoardRequest{
		ID:          id,
		NewColumnID: columnID,
		NewNextID:   next,
	})
	if err != nil {
		return nil, err
	}
	return &Empty{}, nil
}

func (s *Server) updateBoard(ctx context.Context, req *UpdateTitleRequest) (*models.Board, error) {
	id, err := parseBoardID("id", req.ID)
	if err != nil {
		return nil, err
	}
	return s.app.BoardService.UpdateBoard(ctx, boardservice.UpdateBoardRequest{ID: id, Title: req.Title})
}

func (s *Server) deleteBoard(ctx context.Context, req *IDRequest) (*Empty, error) {
	id, err := parseBoardID("id", req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.app.BoardService.DeleteBoard(ctx, id); err != nil {
		return nil, err
	}
	return &Empty{}, nil
}
