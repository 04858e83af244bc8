package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ProjectRepo handles all project-related database operations.
// Projects are not ordered, so nothing here touches a chain.
type ProjectRepo struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(s rowScanner) (*models.Project, error) {
	p := &models.Project{}
	var id string
	if err := s.Scan(&id, &p.Title, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.ID = types.ProjectID(id)
	return p, nil
}

// CreateProject inserts a new project with a fresh id
func (r *ProjectRepo) CreateProject(ctx context.Context, title string) (*models.Project, error) {
	p := &models.Project{
		ID:        types.NewProjectID(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, created_at) VALUES (?, ?, ?)`,
		p.ID.String(), p.Title, p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}
	return p, nil
}

// GetProjectByID retrieves a project by its ID
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, created_at FROM projects WHERE id = ?`, id.String())
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: "project", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetAllProjects retrieves every project, oldest first
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, created_at FROM projects ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}
	return projects, nil
}

// UpdateProjectTitle renames a project and returns the stored row
func (r *ProjectRepo) UpdateProjectTitle(ctx context.Context, id types.ProjectID, title string) (*models.Project, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE projects SET title = ? WHERE id = ?`, title, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &NotFoundError{Entity: "project", ID: id.String()}
	}
	return r.GetProjectByID(ctx, id)
}
