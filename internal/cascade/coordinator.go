// Package cascade deletes a parent together with every ordered child group it owns.
//
// A cascade discards whole groups with group-scoped deletes instead of unlinking
// members one by one, so no member can be skipped and no chain repair is needed
// for the groups that disappear. Only the surviving sibling chain of a deleted
// column is repaired.
package cascade

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Store runs a cascade inside one transaction
type Store interface {
	RunInTx(ctx context.Context, fn func(*database.Tx) error) error
}

// Report counts the rows removed by each stage
type Report struct {
	Boards   int64 `json:"boards"`
	Columns  int64 `json:"columns"`
	Projects int64 `json:"projects"`
}

// Coordinator preserves referential integrity top-down
type Coordinator struct {
	store  Store
	logger *slog.Logger
}

// New returns a coordinator over store. A nil logger uses slog.Default.
func New(store Store, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{store: store, logger: logger}
}

// DeleteProject removes all boards under the project, then all of its columns,
// then the project row.
func (c *Coordinator) DeleteProject(ctx context.Context, id types.ProjectID) (Report, error) {
	var report Report
	err := c.store.RunInTx(ctx, func(tx *database.Tx) error {
		ok, err := tx.ProjectExists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return &database.NotFoundError{Entity: "project", ID: id.String()}
		}

		if report.Boards, err = tx.DeleteBoardsByProject(ctx, id); err != nil {
			return fmt.Errorf("deleting boards: %w", err)
		}
		if report.Columns, err = tx.DeleteColumnsByProject(ctx, id); err != nil {
			return fmt.Errorf("deleting columns: %w", err)
		}
		if report.Projects, err = tx.DeleteProject(ctx, id); err != nil {
			return fmt.Errorf("deleting project: %w", err)
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	c.logger.InfoContext(ctx, "project deleted",
		"project_id", id,
		"boards", report.Boards,
		"columns", report.Columns)
	return report, nil
}

// DeleteColumn removes every board of the column, then unlinks the column from
// its project's chain and removes it. The owning project is returned so callers
// can announce the change.
func (c *Coordinator) DeleteColumn(ctx context.Context, id types.ColumnID) (types.ProjectID, Report, error) {
	var (
		report    Report
		projectID types.ProjectID
	)
	err := c.store.RunInTx(ctx, func(tx *database.Tx) error {
		var err error
		if projectID, err = tx.ProjectIDForColumn(ctx, id); err != nil {
			return err
		}

		if report.Boards, err = tx.DeleteBoardsByColumn(ctx, id); err != nil {
			return fmt.Errorf("deleting boards: %w", err)
		}
		if _, err = tx.UnlinkColumn(ctx, id); err != nil {
			return fmt.Errorf("unlinking column: %w", err)
		}
		report.Columns = 1
		return nil
	})
	if err != nil {
		return "", Report{}, err
	}

	c.logger.InfoContext(ctx, "column deleted",
		"column_id", id,
		"project_id", projectID,
		"boards", report.Boards)
	return projectID, report, nil
}
