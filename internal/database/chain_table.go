package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanban/internal/ordering"
)

// chainTable is an ordering.Table over one linked SQL table.
// Every Write becomes a single UPDATE or DELETE that touches at most one row;
// a condition on the successor is resolved through a LIMIT 1 subselect so the
// whole step stays one statement.
type chainTable[K ~string, G ~string] struct {
	q        querier
	table    string // "columns" or "boards"
	groupCol string // "project_id" or "column_id"
}

func newColumnTable[K ~string, G ~string](q querier) *chainTable[K, G] {
	return &chainTable[K, G]{q: q, table: "columns", groupCol: "project_id"}
}

func newBoardTable[K ~string, G ~string](q querier) *chainTable[K, G] {
	return &chainTable[K, G]{q: q, table: "boards", groupCol: "column_id"}
}

func (t *chainTable[K, G]) Get(ctx context.Context, id K) (ordering.Node[K, G], error) {
	var (
		group string
		next  sql.NullString
	)
	query := fmt.Sprintf("SELECT %s, next_id FROM %s WHERE id = ?", t.groupCol, t.table)
	err := t.q.QueryRowContext(ctx, query, string(id)).Scan(&group, &next)
	if errors.Is(err, sql.ErrNoRows) {
		return ordering.Node[K, G]{}, ordering.ErrNodeNotFound
	}
	if err != nil {
		return ordering.Node[K, G]{}, fmt.Errorf("failed to read %s row: %w", t.table, err)
	}
	return ordering.Node[K, G]{ID: id, Group: G(group), Next: ptrFromNull[K](next)}, nil
}

func (t *chainTable[K, G]) Members(ctx context.Context, group G) ([]ordering.Node[K, G], error) {
	query := fmt.Sprintf("SELECT id, next_id FROM %s WHERE %s = ?", t.table, t.groupCol)
	rows, err := t.q.QueryContext(ctx, query, string(group))
	if err != nil {
		return nil, fmt.Errorf("querying %s members: %w", t.table, err)
	}
	defer rows.Close()

	var nodes []ordering.Node[K, G]
	for rows.Next() {
		var (
			id   string
			next sql.NullString
		)
		if err := rows.Scan(&id, &next); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", t.table, err)
		}
		nodes = append(nodes, ordering.Node[K, G]{ID: K(id), Group: group, Next: ptrFromNull[K](next)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", t.table, err)
	}
	return nodes, nil
}

func (t *chainTable[K, G]) Exec(ctx context.Context, w ordering.Write[K, G]) (ordering.Outcome, error) {
	query, args := t.statement(w)
	res, err := t.q.ExecContext(ctx, query, args...)
	if err != nil {
		return ordering.Failed, fmt.Errorf("%s %s: %w", w.Step, t.table, err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return ordering.Failed, err
	}
	if n == 0 {
		return ordering.NoOp, nil
	}
	return ordering.Applied, nil
}

// statement renders w as SQL
func (t *chainTable[K, G]) statement(w ordering.Write[K, G]) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)

	if w.Delete {
		fmt.Fprintf(&b, "DELETE FROM %s", t.table)
	} else {
		fmt.Fprintf(&b, "UPDATE %s SET next_id = ?", t.table)
		args = append(args, nullString(w.SetNext))
		if w.SetGroup != nil {
			fmt.Fprintf(&b, ", %s = ?", t.groupCol)
			args = append(args, string(*w.SetGroup))
		}
	}

	where, whereArgs := t.where(w.Where)
	b.WriteString(" WHERE ")
	b.WriteString(where)
	return b.String(), append(args, whereArgs...)
}

func (t *chainTable[K, G]) where(c ordering.Cond[K, G]) (string, []any) {
	if c.ID != nil {
		return "id = ?", []any{string(*c.ID)}
	}

	sub := fmt.Sprintf("SELECT id FROM %s WHERE %s = ? AND next_id IS ?", t.table, t.groupCol)
	args := []any{string(c.Group), nullString(c.Next)}
	if c.Exclude != nil {
		sub += " AND id != ?"
		args = append(args, string(*c.Exclude))
	}
	return "id = (" + sub + " LIMIT 1)", args
}

// deleteGroup removes every member of group at once and returns how many went
func (t *chainTable[K, G]) deleteGroup(ctx context.Context, group G) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.table, t.groupCol)
	res, err := t.q.ExecContext(ctx, query, string(group))
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", t.table, err)
	}
	return rowsAffected(res)
}
