package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/services"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, hub errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed ids, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested project, column or board was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data, such as a broken chain.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong titles, moving an item before itself, or an
	// insertion point in another group.
	ExitValidation = 5
)

// CodeError carries the process exit code of a failed command.
// The message has already been printed by the command.
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodeError) Unwrap() error { return e.Err }

// ExitCode returns the exit code for err; nil is success and anything
// unclassified is a general error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Classify maps a service error to an error code string and an exit code
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return "NOT_FOUND", ExitNotFound
	case errors.Is(err, services.ErrInvalidArgument):
		return "VALIDATION_ERROR", ExitValidation
	default:
		return "INTERNAL_ERROR", ExitError
	}
}
