package column

import (
	"errors"

	"github.com/thenoetrevino/kanban/internal/services"
)

// MaxTitleLength is the longest column title accepted, in characters
const MaxTitleLength = 50

// Column-related errors
var (
	// Validation errors
	ErrEmptyTitle       = services.Invalid("column title cannot be empty")
	ErrTitleTooLong     = services.Invalid("column title cannot exceed 50 characters")
	ErrInvalidColumnID  = services.Invalid("invalid column ID")
	ErrInvalidProjectID = services.Invalid("invalid project ID")

	// Business logic errors
	ErrColumnNotFound  = errors.New("column not found")
	ErrProjectNotFound = errors.New("project not found")
)
