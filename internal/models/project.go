package models

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Project represents a container for kanban columns and boards.
// Projects are the top-level organizational unit and carry no ordering of their own.
type Project struct {
	ID        types.ProjectID `json:"id"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"createdAt"`
}
