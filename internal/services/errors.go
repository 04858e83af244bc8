// Package services holds what the project, column and board services share:
// the validation error class and title normalization.
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/kanban/internal/ordering"
)

// ErrInvalidArgument is matched by every validation error of the service layer
var ErrInvalidArgument = errors.New("invalid argument")

// Invalid returns a validation error with the given message
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

// NormalizeTitle trims title and checks it against the limit in runes
func NormalizeTitle(title string, limit int, empty, tooLong error) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", empty
	}
	if utf8.RuneCountInString(title) > limit {
		return "", tooLong
	}
	return title, nil
}

// InvalidMove reports whether err is an insertion point the caller got wrong
// rather than a storage failure.
func InvalidMove(err error) bool {
	return errors.Is(err, ordering.ErrNextOutsideGroup) || errors.Is(err, ordering.ErrSelfReference)
}

// AsInvalid marks err as a validation error, keeping it matchable
func AsInvalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
