package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/ordering"
)

// ErrNotFound is matched by every error reporting a missing row
var ErrNotFound = errors.New("not found")

// NotFoundError names the entity that was missing
type NotFoundError struct {
	Entity string
	ID     string
	Err    error // optional cause, e.g. ordering.ErrNextNotFound
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// exists reports whether a row with id is present in table
func exists(ctx context.Context, q querier, table, id string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", table, err)
	}
	return true, nil
}

// translateChainErr maps ordering errors onto the package's not-found errors
func translateChainErr[K ~string](entity string, id K, next *K, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ordering.ErrNodeNotFound):
		return &NotFoundError{Entity: entity, ID: string(id)}
	case errors.Is(err, ordering.ErrNextNotFound) && next != nil:
		return &NotFoundError{Entity: entity, ID: string(*next), Err: err}
	default:
		return err
	}
}

// logResults writes every step of a chain operation at debug level
func logResults[K, G comparable](ctx context.Context, op string, results []ordering.Result[K, G]) {
	for _, r := range results {
		attrs := []any{"op", op, "step", r.Write.Step.String(), "outcome", r.Outcome.String()}
		if r.Err != nil {
			attrs = append(attrs, "error", r.Err)
			slog.ErrorContext(ctx, "chain step failed", attrs...)
			continue
		}
		slog.DebugContext(ctx, "chain step", attrs...)
	}
}

// rowsAffected returns the affected row count of res
func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}

func nullString[T ~string](p *T) any {
	if p == nil {
		return nil
	}
	return string(*p)
}

func ptrFromNull[T ~string](ns sql.NullString) *T {
	if !ns.Valid {
		return nil
	}
	v := T(ns.String)
	return &v
}
