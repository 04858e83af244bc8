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

// BoardResults are the per-step outcomes of a board chain operation
type BoardResults = []ordering.Result[types.BoardID, types.ColumnID]

// BoardRepo handles all board-related database operations.
// Boards may change column, so their chain is Movable.
type BoardRepo struct {
	db *sql.DB
}

func boardChain(q querier) ordering.Movable[types.BoardID, types.ColumnID] {
	return ordering.NewEngine[types.BoardID, types.ColumnID](newBoardTable[types.BoardID, types.ColumnID](q))
}

const boardSelect = `SELECT b.id, b.column_id, b.title, b.next_id, b.created_at FROM boards b`

func scanBoard(s rowScanner) (*models.Board, error) {
	b := &models.Board{}
	var id, columnID string
	var next sql.NullString
	if err := s.Scan(&id, &columnID, &b.Title, &next, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.ID = types.BoardID(id)
	b.ColumnID = types.ColumnID(columnID)
	b.NextID = ptrFromNull[types.BoardID](next)
	return b, nil
}

func queryBoards(ctx context.Context, q querier, query string, args ...any) ([]*models.Board, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	boards := []*models.Board{}
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating board rows: %w", err)
	}
	return boards, nil
}

// CreateBoard inserts a board and links it behind the current tail of its column
func (r *BoardRepo) CreateBoard(ctx context.Context, columnID types.ColumnID, title string) (*models.Board, error) {
	board := &models.Board{
		ID:        types.NewBoardID(),
		ColumnID:  columnID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "columns", columnID.String())
		if err != nil {
			return err
		}
		if !ok {
			return &NotFoundError{Entity: "column", ID: columnID.String()}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO boards (id, column_id, title, next_id, created_at) VALUES (?, ?, ?, NULL, ?)`,
			board.ID.String(), columnID.String(), title, board.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert board: %w", err)
		}

		results, err := boardChain(tx).Append(ctx, columnID, board.ID)
		logResults(ctx, "append board", results)
		return err
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoardByID retrieves a board by its ID
func (r *BoardRepo) GetBoardByID(ctx context.Context, id types.BoardID) (*models.Board, error) {
	b, err := scanBoard(r.db.QueryRowContext(ctx, boardSelect+` WHERE b.id = ?`, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: "board", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return b, nil
}

// GetBoardsByProject returns every board of every column of a project, in storage order
func (r *BoardRepo) GetBoardsByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Board, error) {
	return queryBoards(ctx, r.db,
		boardSelect+` JOIN columns c ON c.id = b.column_id WHERE c.project_id = ? ORDER BY b.created_at, b.rowid`,
		projectID.String())
}

// GetBoardsByColumn returns the boards of one column in storage order
func (r *BoardRepo) GetBoardsByColumn(ctx context.Context, columnID types.ColumnID) ([]*models.Board, error) {
	return queryBoards(ctx, r.db, boardSelect+` WHERE b.column_id = ? ORDER BY b.created_at, b.rowid`, columnID.String())
}

// GetOrderedBoards returns the boards of a column head first.
// When the chain is broken the reconstructable part is returned with an error
// matching ordering.ErrBrokenChain.
func (r *BoardRepo) GetOrderedBoards(ctx context.Context, columnID types.ColumnID) ([]*models.Board, error) {
	boards, err := r.GetBoardsByColumn(ctx, columnID)
	if err != nil {
		return nil, err
	}
	return OrderBoards(boards)
}

// OrderBoards reconstructs display order from the unordered boards of one column
func OrderBoards(boards []*models.Board) ([]*models.Board, error) {
	return ordering.Order(boards, func(b *models.Board) (types.BoardID, *types.BoardID) {
		return b.ID, b.NextID
	})
}

// UpdateBoardTitle renames a board and returns the stored row
func (r *BoardRepo) UpdateBoardTitle(ctx context.Context, id types.BoardID, title string) (*models.Board, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE boards SET title = ? WHERE id = ?`, title, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &NotFoundError{Entity: "board", ID: id.String()}
	}
	return r.GetBoardByID(ctx, id)
}

// MoveBoard places a board before newNext inside newColumn, or at the tail of
// newColumn when newNext is nil. newColumn may be the board's current column.
func (r *BoardRepo) MoveBoard(ctx context.Context, id types.BoardID, newColumn types.ColumnID, newNext *types.BoardID) (BoardResults, error) {
	var results BoardResults
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, "columns", newColumn.String())
		if err != nil {
			return err
		}
		if !ok {
			return &NotFoundError{Entity: "column", ID: newColumn.String()}
		}

		results, err = boardChain(tx).Move(ctx, id, newColumn, newNext)
		logResults(ctx, "move board", results)
		return translateChainErr("board", id, newNext, err)
	})
	return results, err
}

// DeleteBoard repairs the chain around a board and removes it
func (r *BoardRepo) DeleteBoard(ctx context.Context, id types.BoardID) (BoardResults, error) {
	var results BoardResults
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		results, err = boardChain(tx).Unlink(ctx, id)
		logResults(ctx, "delete board", results)
		return translateChainErr[types.BoardID]("board", id, nil, err)
	})
	return results, err
}

// GetProjectIDForBoard returns the project that owns the board's column
func (r *BoardRepo) GetProjectIDForBoard(ctx context.Context, id types.BoardID) (types.ProjectID, error) {
	var projectID string
	err := r.db.QueryRowContext(ctx,
		`SELECT c.project_id FROM boards b JOIN columns c ON c.id = b.column_id WHERE b.id = ?`,
		id.String(),
	).Scan(&projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &NotFoundError{Entity: "board", ID: id.String()}
	}
	if err != nil {
		return "", fmt.Errorf("failed to get project_id for board %s: %w", id, err)
	}
	return types.ProjectID(projectID), nil
}
