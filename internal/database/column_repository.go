package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/ordering"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ColumnResults are the per-step outcomes of a column chain operation
type ColumnResults = []ordering.Result[types.ColumnID, types.ProjectID]

// ColumnRepo handles all column-related database operations.
// Columns never leave their project, so their chain is only Orderable.
type ColumnRepo struct {
	db *sql.DB
}

func columnChain(q querier) ordering.Orderable[types.ColumnID, types.ProjectID] {
	return ordering.NewEngine[types.ColumnID, types.ProjectID](newColumnTable[types.ColumnID, types.ProjectID](q))
}

const columnSelect = `SELECT id, project_id, title, next_id, created_at FROM columns`

func scanColumn(s rowScanner) (*models.Column, error) {
	c := &models.Column{}
	var id, projectID string
	var next sql.NullString
	if err := s.Scan(&id, &projectID, &c.Title, &next, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.ID = types.ColumnID(id)
	c.ProjectID = types.ProjectID(projectID)
	c.NextID = ptrFromNull[types.ColumnID](next)
	return c, nil
}

func queryColumns(ctx context.Context, q querier, query string, args ...any) ([]*models.Column, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	columns := []*models.Column{}
	for rows.Next() {
		c, err := scanColumn(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}
	return columns, nil
}

// CreateColumn inserts a column and links it behind the current tail of its project
func (r *ColumnRepo) CreateColumn(ctx context.Context, projectID types.ProjectID, title string) (*models.Column, error) {
	column := &models.Column{
		ID:        types.NewColumnID(),
		ProjectID: projectID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "projects", projectID.String())
		if err != nil {
			return err
		}
		if !ok {
			return &NotFoundError{Entity: "project", ID: projectID.String()}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO columns (id, project_id, title, next_id, created_at) VALUES (?, ?, ?, NULL, ?)`,
			column.ID.String(), projectID.String(), title, column.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert column: %w", err)
		}

		results, err := columnChain(tx).Append(ctx, projectID, column.ID)
		logResults(ctx, "append column", results)
		return err
	})
	if err != nil {
		return nil, err
	}
	return column, nil
}

// GetColumnByID retrieves a column by its ID
func (r *ColumnRepo) GetColumnByID(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	c, err := scanColumn(r.db.QueryRowContext(ctx, columnSelect+` WHERE id = ?`, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: "column", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get column: %w", err)
	}
	return c, nil
}

// GetColumnsByProject returns the columns of a project in storage order.
// Callers that need display order use GetOrderedColumns or ordering.Order.
func (r *ColumnRepo) GetColumnsByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error) {
	return queryColumns(ctx, r.db, columnSelect+` WHERE project_id = ? ORDER BY created_at, rowid`, projectID.String())
}

// GetOrderedColumns returns the columns of a project head first.
// When the chain is broken the reconstructable part is returned with an error
// matching ordering.ErrBrokenChain.
func (r *ColumnRepo) GetOrderedColumns(ctx context.Context, projectID types.ProjectID) ([]*models.Column, error) {
	columns, err := r.GetColumnsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return OrderColumns(columns)
}

// OrderColumns reconstructs display order from an unordered column set
func OrderColumns(columns []*models.Column) ([]*models.Column, error) {
	return ordering.Order(columns, func(c *models.Column) (types.ColumnID, *types.ColumnID) {
		return c.ID, c.NextID
	})
}

// UpdateColumnTitle renames a column and returns the stored row
func (r *ColumnRepo) UpdateColumnTitle(ctx context.Context, id types.ColumnID, title string) (*models.Column, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE columns SET title = ? WHERE id = ?`, title, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to update column: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &NotFoundError{Entity: "column", ID: id.String()}
	}
	return r.GetColumnByID(ctx, id)
}

// ReorderColumn places a column before newNext within its project, or at the
// tail when newNext is nil. The whole relink runs in one transaction.
func (r *ColumnRepo) ReorderColumn(ctx context.Context, id types.ColumnID, newNext *types.ColumnID) (ColumnResults, error) {
	var results ColumnResults
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		results, err = columnChain(tx).Reorder(ctx, id, newNext)
		logResults(ctx, "reorder column", results)
		return translateChainErr("column", id, newNext, err)
	})
	return results, err
}

// GetProjectIDForColumn returns the owning project of a column
func (r *ColumnRepo) GetProjectIDForColumn(ctx context.Context, id types.ColumnID) (types.ProjectID, error) {
	return projectIDForColumn(ctx, r.db, id)
}

func projectIDForColumn(ctx context.Context, q querier, id types.ColumnID) (types.ProjectID, error) {
	var projectID string
	err := q.QueryRowContext(ctx, `SELECT project_id FROM columns WHERE id = ?`, id.String()).Scan(&projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &NotFoundError{Entity: "column", ID: id.String()}
	}
	if err != nil {
		return "", fmt.Errorf("failed to get project_id for column %s: %w", id, err)
	}
	return types.ProjectID(projectID), nil
}
