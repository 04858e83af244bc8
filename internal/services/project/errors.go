package project

import (
	"errors"

	"github.com/thenoetrevino/kanban/internal/services"
)

// MaxTitleLength is the longest project title accepted, in characters
const MaxTitleLength = 100

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyTitle       = services.Invalid("project title cannot be empty")
	ErrTitleTooLong     = services.Invalid("project title cannot exceed 100 characters")
	ErrInvalidProjectID = services.Invalid("invalid project ID")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
)
