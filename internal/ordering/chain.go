package ordering

import (
	"fmt"
	"slices"
	"strings"
)

// ChainError describes how a group violates the single-chain invariant.
type ChainError[K comparable] struct {
	Members   int
	Tails     int
	Forked    []K // members pointed at by more than one predecessor
	Unreached []K // members not reachable walking back from the tail
}

func (e *ChainError[K]) Error() string {
	var parts []string
	if e.Tails != 1 {
		parts = append(parts, fmt.Sprintf("%d tails", e.Tails))
	}
	if len(e.Forked) > 0 {
		parts = append(parts, fmt.Sprintf("%d forks", len(e.Forked)))
	}
	if len(e.Unreached) > 0 {
		parts = append(parts, fmt.Sprintf("%d of %d members unreachable", len(e.Unreached), e.Members))
	}
	return fmt.Sprintf("%s: %s", ErrBrokenChain, strings.Join(parts, ", "))
}

func (e *ChainError[K]) Unwrap() error {
	return ErrBrokenChain
}

// Order returns items in chain order, head first.
//
// It starts at the tail and repeatedly prepends whoever points at the current
// item. The walk is bounded by len(items), so a corrupted group (a cycle, a
// fork, a second tail, a pointer to a missing member) never hangs: the walk
// stops and Order returns the part it could reconstruct together with a
// *ChainError.
func Order[T any, K comparable](items []T, link func(T) (K, *K)) ([]T, error) {
	if len(items) == 0 {
		return []T{}, nil
	}

	// predecessor index: successor id -> position of the item pointing at it
	pred := make(map[K]int, len(items))
	ids := make([]K, len(items))
	tail := -1
	report := &ChainError[K]{Members: len(items)}

	for i, item := range items {
		id, next := link(item)
		ids[i] = id
		if next == nil {
			report.Tails++
			if tail < 0 {
				tail = i
			}
			continue
		}
		if _, dup := pred[*next]; dup {
			report.Forked = append(report.Forked, *next)
			continue
		}
		pred[*next] = i
	}

	if tail < 0 {
		report.Unreached = ids
		return []T{}, report
	}

	ordered := make([]T, 0, len(items))
	seen := make(map[K]bool, len(items))
	cur := tail
	for len(ordered) < len(items) {
		if seen[ids[cur]] {
			break
		}
		seen[ids[cur]] = true
		ordered = append(ordered, items[cur])

		p, ok := pred[ids[cur]]
		if !ok {
			break
		}
		cur = p
	}
	slices.Reverse(ordered)

	for _, id := range ids {
		if !seen[id] {
			report.Unreached = append(report.Unreached, id)
		}
	}

	if report.Tails != 1 || len(report.Forked) > 0 || len(report.Unreached) > 0 {
		return ordered, report
	}
	return ordered, nil
}

// Reconstruct returns the members of one group in chain order, head first
func Reconstruct[K, G comparable](rows []Node[K, G]) ([]Node[K, G], error) {
	return Order(rows, func(n Node[K, G]) (K, *K) { return n.ID, n.Next })
}

// Check validates the chain invariant for one group
func Check[K, G comparable](rows []Node[K, G]) error {
	_, err := Reconstruct(rows)
	return err
}

// IDs returns the ids of rows in their current order
func IDs[K, G comparable](rows []Node[K, G]) []K {
	out := make([]K, len(rows))
	for i, n := range rows {
		out[i] = n.ID
	}
	return out
}
