package ordering

import (
	"context"
	"errors"
	"fmt"
)

// Outcome is what happened to a single conditional write
type Outcome int

const (
	Applied Outcome = iota // exactly one row changed
	NoOp                   // no row matched the condition
	Failed                 // the store returned an error
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NoOp:
		return "no-op"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result pairs a write with its outcome
type Result[K, G comparable] struct {
	Write   Write[K, G]
	Outcome Outcome
	Err     error
}

// Outcomes lists the outcome of every result, in order
func Outcomes[K, G comparable](results []Result[K, G]) []Outcome {
	out := make([]Outcome, len(results))
	for i, r := range results {
		out[i] = r.Outcome
	}
	return out
}

// Table is the storage side of one kind of ordered row.
// Exec must touch at most one row and report NoOp when nothing matched;
// "no row matched" is never an error.
type Table[K, G comparable] interface {
	Get(ctx context.Context, id K) (Node[K, G], error)
	Members(ctx context.Context, group G) ([]Node[K, G], error)
	Exec(ctx context.Context, w Write[K, G]) (Outcome, error)
}

// Orderable is a collection whose members never leave their group.
type Orderable[K, G comparable] interface {
	Append(ctx context.Context, group G, id K) ([]Result[K, G], error)
	Reorder(ctx context.Context, id K, newNext *K) ([]Result[K, G], error)
	Unlink(ctx context.Context, id K) ([]Result[K, G], error)
	Order(ctx context.Context, group G) ([]Node[K, G], error)
}

// Movable is an Orderable whose members may also move to another group.
type Movable[K, G comparable] interface {
	Orderable[K, G]
	Move(ctx context.Context, id K, newGroup G, newNext *K) ([]Result[K, G], error)
}

// Engine runs plans against a Table.
// It does not open transactions; callers scope the Table to one.
type Engine[K, G comparable] struct {
	table Table[K, G]
}

var _ Movable[string, string] = (*Engine[string, string])(nil)

// NewEngine returns an engine over table
func NewEngine[K, G comparable](table Table[K, G]) *Engine[K, G] {
	return &Engine[K, G]{table: table}
}

// Append links id, already stored with no successor, behind the tail of group
func (e *Engine[K, G]) Append(ctx context.Context, group G, id K) ([]Result[K, G], error) {
	return e.run(ctx, PlanAppend(group, id))
}

// Reorder moves id within its current group so it sits before newNext (tail when nil)
func (e *Engine[K, G]) Reorder(ctx context.Context, id K, newNext *K) ([]Result[K, G], error) {
	target, err := e.table.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.relink(ctx, target, target.Group, newNext)
}

// Move moves id into newGroup so it sits before newNext (tail when nil)
func (e *Engine[K, G]) Move(ctx context.Context, id K, newGroup G, newNext *K) ([]Result[K, G], error) {
	target, err := e.table.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.relink(ctx, target, newGroup, newNext)
}

// Unlink repairs the chain around id and deletes it
func (e *Engine[K, G]) Unlink(ctx context.Context, id K) ([]Result[K, G], error) {
	target, err := e.table.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, PlanUnlink(target))
}

// Order reconstructs the members of group, head first.
// On a broken chain the partial order is returned alongside the error.
func (e *Engine[K, G]) Order(ctx context.Context, group G) ([]Node[K, G], error) {
	rows, err := e.table.Members(ctx, group)
	if err != nil {
		return nil, err
	}
	return Reconstruct(rows)
}

func (e *Engine[K, G]) relink(ctx context.Context, target Node[K, G], group G, newNext *K) ([]Result[K, G], error) {
	if newNext != nil && *newNext != target.ID {
		next, err := e.table.Get(ctx, *newNext)
		if errors.Is(err, ErrNodeNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNextNotFound, *newNext)
		}
		if err != nil {
			return nil, err
		}
		if next.Group != group {
			return nil, ErrNextOutsideGroup
		}
	}

	writes, err := PlanRelink(target, group, newNext)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, writes)
}

// run executes writes in order and stops at the first failure.
// NoOp outcomes are recorded but not treated as errors.
func (e *Engine[K, G]) run(ctx context.Context, writes []Write[K, G]) ([]Result[K, G], error) {
	results := make([]Result[K, G], 0, len(writes))
	for _, w := range writes {
		outcome, err := e.table.Exec(ctx, w)
		if err != nil {
			results = append(results, Result[K, G]{Write: w, Outcome: Failed, Err: err})
			return results, fmt.Errorf("%s step failed: %w", w.Step, err)
		}
		results = append(results, Result[K, G]{Write: w, Outcome: outcome})
	}
	return results, nil
}
