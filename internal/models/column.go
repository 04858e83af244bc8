package models

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Column represents a kanban column (e.g., "Todo", "In Progress", "Done").
// Columns of one project form a singly-linked list through NextID;
// the column with NextID == nil is the tail and is displayed last.
type Column struct {
	ID        types.ColumnID  `json:"id"`
	ProjectID types.ProjectID `json:"projectId"`
	Title     string          `json:"title"`
	NextID    *types.ColumnID `json:"nextId,omitempty"` // nil for the tail
	CreatedAt time.Time       `json:"createdAt"`
}

// IsTail reports whether the column is the last one of its project
func (c *Column) IsTail() bool {
	return c.NextID == nil
}
