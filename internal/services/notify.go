package services

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Op names carried by change events
const (
	OpProjectCreated  = "project.created"
	OpProjectUpdated  = "project.updated"
	OpProjectDeleted  = "project.deleted"
	OpColumnCreated   = "column.created"
	OpColumnUpdated   = "column.updated"
	OpColumnReordered = "column.reordered"
	OpColumnDeleted   = "column.deleted"
	OpBoardCreated    = "board.created"
	OpBoardUpdated    = "board.updated"
	OpBoardMoved      = "board.moved"
	OpBoardDeleted    = "board.deleted"
)

// publishAttempts bounds how often a full queue is retried before giving up
const publishAttempts = 3

// Notify announces a committed change. Publishing is best effort: a missing or
// unreachable hub never fails the operation that already succeeded.
func Notify(ctx context.Context, pub events.Publisher, projectID types.ProjectID, op string) {
	if pub == nil {
		return
	}
	if err := events.PublishWithRetry(pub, events.Changed(projectID, op), publishAttempts); err != nil {
		slog.DebugContext(ctx, "change not announced", "project_id", projectID, "op", op)
	}
}
