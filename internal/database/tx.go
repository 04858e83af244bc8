package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Tx exposes the group-level writes a cascade needs, all bound to one transaction
type Tx struct {
	tx *sql.Tx
}

// RunInTx calls fn inside a transaction that commits only if fn returns nil
func (r *Repository) RunInTx(ctx context.Context, fn func(*Tx) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&Tx{tx: tx})
	})
}

// ProjectExists reports whether the project row is present
func (t *Tx) ProjectExists(ctx context.Context, id types.ProjectID) (bool, error) {
	return exists(ctx, t.tx, "projects", id.String())
}

// ProjectIDForColumn returns the owning project of a column
func (t *Tx) ProjectIDForColumn(ctx context.Context, id types.ColumnID) (types.ProjectID, error) {
	return projectIDForColumn(ctx, t.tx, id)
}

// DeleteBoardsByProject removes every board of every column of a project
func (t *Tx) DeleteBoardsByProject(ctx context.Context, projectID types.ProjectID) (int64, error) {
	res, err := t.tx.ExecContext(ctx,
		`DELETE FROM boards WHERE column_id IN (SELECT id FROM columns WHERE project_id = ?)`,
		projectID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to delete boards of project: %w", err)
	}
	return rowsAffected(res)
}

// DeleteBoardsByColumn removes the whole board group of a column
func (t *Tx) DeleteBoardsByColumn(ctx context.Context, columnID types.ColumnID) (int64, error) {
	return newBoardTable[types.BoardID, types.ColumnID](t.tx).deleteGroup(ctx, columnID)
}

// DeleteColumnsByProject removes the whole column group of a project.
// Boards must already be gone.
func (t *Tx) DeleteColumnsByProject(ctx context.Context, projectID types.ProjectID) (int64, error) {
	return newColumnTable[types.ColumnID, types.ProjectID](t.tx).deleteGroup(ctx, projectID)
}

// DeleteProject removes the project row. Columns must already be gone.
func (t *Tx) DeleteProject(ctx context.Context, id types.ProjectID) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id.String())
	if err != nil {
		return 0, fmt.Errorf("failed to delete project: %w", err)
	}
	return rowsAffected(res)
}

// UnlinkColumn repairs the project chain around a column and removes it.
// Boards of the column must already be gone.
func (t *Tx) UnlinkColumn(ctx context.Context, id types.ColumnID) (ColumnResults, error) {
	results, err := columnChain(t.tx).Unlink(ctx, id)
	logResults(ctx, "unlink column", results)
	return results, translateChainErr[types.ColumnID]("column", id, nil, err)
}
