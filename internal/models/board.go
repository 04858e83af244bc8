package models

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Board is a card inside a column. Boards of one column form a singly-linked list
// through NextID, and unlike columns a board may move to another column.
type Board struct {
	ID        types.BoardID  `json:"id"`
	ColumnID  types.ColumnID `json:"columnId"`
	Title     string         `json:"title"`
	NextID    *types.BoardID `json:"nextId,omitempty"` // nil for the tail
	CreatedAt time.Time      `json:"createdAt"`
}

// IsTail reports whether the board is the last one of its column
func (b *Board) IsTail() bool {
	return b.NextID == nil
}

// ColumnWithBoards is a column together with its boards in display order
type ColumnWithBoards struct {
	*Column
	Boards []*Board `json:"boards"`
}

// ProjectTree is a project with its columns and boards, everything in display order
type ProjectTree struct {
	*Project
	Columns []*ColumnWithBoards `json:"columns"`
}
