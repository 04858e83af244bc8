package rpc

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
	projectservice "github.com/thenoetrevino/kanban/internal/services/project"
)

func (s *Server) createProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error) {
	return s.app.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{Title: req.Title})
}

func (s *Server) getProject(ctx context.Context, req *IDRequest) (*models.Project, error) {
	id, err := parseProjectID("id", req.ID)
	if err != nil {
		return nil, err
	}
	return s.app.ProjectService.GetProject(ctx, id)
}

func (s *Server) listProjects(ctx context.Context, _ *Empty) (*ListProjectsResponse, error) {
	projects, err := s.app.ProjectService.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProjectsResponse{Projects: nonNil(projects)}, nil
}

func (s *Server) updateProject(ctx context.Context, req *UpdateTitleRequest) (*models.Project, error) {
	id, err := parseProjectID("id", req.ID)
	if err != nil {
		return nil, err
	}
	return s.app.ProjectService.UpdateProject(ctx, projectservice.UpdateProjectRequest{ID: id, Title: req.Title})
}

func (s *Server) deleteProject(ctx context.Context, req *IDRequest) (*Empty, error) {
	id, err := parseProjectID("id", req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.app.ProjectService.DeleteProject(ctx, id); err != nil {
		return nil, err
	}
	return &Empty{}, nil
}

// tree returns the project with its columns and boards in display order
func (s *Server) tree(ctx context.Context, req *IDRequest) (*models.ProjectTree, error) {
	id, err := parseProjectID("id", req.ID)
	if err != nil {
		return nil, err
	}
	t, err := s.app.ProjectService.GetProjectTree(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Columns = nonNil(t.Columns)
	for _, col := range t.Columns {
		col.Boards = nonNil(col.Boards)
	}
	return t, nil
}
