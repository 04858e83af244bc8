package board

import (
	"errors"

	"github.com/thenoetrevino/kanban/internal/services"
)

// MaxTitleLength is the longest board title accepted, in characters
const MaxTitleLength = 200

// Board-related errors
var (
	// Validation errors
	ErrEmptyTitle       = services.Invalid("board title cannot be empty")
	ErrTitleTooLong     = services.Invalid("board title cannot exceed 200 characters")
	ErrInvalidBoardID   = services.Invalid("invalid board ID")
	ErrInvalidColumnID  = services.Invalid("invalid column ID")
	ErrInvalidProjectID = services.Invalid("invalid project ID")

	// Business logic errors
	ErrBoardNotFound   = errors.New("board not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrProjectNotFound = errors.New("project not found")
)
