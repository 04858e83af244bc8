// Package ordering keeps sibling rows in a single linked chain.
//
// Every member of a group stores the id of the member that follows it (Next).
// The member with Next == nil is the tail and is displayed last; the member
// nobody points at is the head and is displayed first. The package is split in
// two halves: pure planners that turn an operation into a list of conditional
// writes, and an Engine that runs those writes against a Table.
package ordering

import "errors"

var (
	// ErrNodeNotFound is returned by a Table when the requested member does not exist
	ErrNodeNotFound = errors.New("member not found")

	// ErrNextNotFound means the requested insertion point does not exist
	ErrNextNotFound = errors.New("insertion point not found")

	// ErrNextOutsideGroup means the requested insertion point belongs to another group
	ErrNextOutsideGroup = errors.New("insertion point belongs to another group")

	// ErrSelfReference means a member was asked to be placed before itself
	ErrSelfReference = errors.New("member cannot be placed before itself")

	// ErrBrokenChain means a group's pointers do not form exactly one list
	ErrBrokenChain = errors.New("linked order is broken")
)

// Node is one member of an ordered group.
type Node[K comparable, G comparable] struct {
	ID    K
	Group G
	Next  *K // nil for the tail
}

// IsTail reports whether the node is the last member of its group
func (n Node[K, G]) IsTail() bool {
	return n.Next == nil
}

// PointsAt reports whether the node's successor is id
func (n Node[K, G]) PointsAt(id K) bool {
	return n.Next != nil && *n.Next == id
}

// FindTail returns the first member with no successor
func FindTail[K, G comparable](rows []Node[K, G]) (Node[K, G], bool) {
	for _, n := range rows {
		if n.Next == nil {
			return n, true
		}
	}
	return Node[K, G]{}, false
}

// FindPredecessor returns the member whose successor is id
func FindPredecessor[K, G comparable](rows []Node[K, G], id K) (Node[K, G], bool) {
	for _, n := range rows {
		if n.PointsAt(id) {
			return n, true
		}
	}
	return Node[K, G]{}, false
}

func ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
